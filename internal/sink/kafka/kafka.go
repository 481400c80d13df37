// Package kafka publishes a "schema extracted" event for every stored artifact.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	kafka "github.com/segmentio/kafka-go"

	"github.com/alexanderjulianmartinez/franschema/internal/sink"
)

const EventType = "schema.extracted"

// Event is the JSON value of each message. The schema bytes stay in the
// other sinks; consumers fetch them by name.
type Event struct {
	Type   string    `json:"type"`
	RunID  string    `json:"runId"`
	Source string    `json:"source"`
	Index  int       `json:"index"`
	Offset int64     `json:"offset"`
	Name   string    `json:"name"`
	Size   int       `json:"size"`
	SHA256 string    `json:"sha256"`
	At     time.Time `json:"at"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Sink struct {
	w   messageWriter
	now func() time.Time
}

func New(brokers []string, topic string) (*Sink, error) {
	var addrs []string
	for _, b := range brokers {
		if b = strings.TrimSpace(b); b != "" {
			addrs = append(addrs, b)
		}
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("no kafka brokers provided")
	}
	if topic == "" {
		return nil, fmt.Errorf("kafka topic is required")
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(addrs...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 50 * time.Millisecond,
	}
	return &Sink{w: w, now: time.Now}, nil
}

func (s *Sink) Name() string { return "kafka" }

func (s *Sink) Store(ctx context.Context, a sink.Artifact) error {
	if err := a.Validate(); err != nil {
		return err
	}
	ev := Event{
		Type:   EventType,
		RunID:  a.RunID,
		Source: a.Source,
		Index:  a.Index,
		Offset: a.Offset,
		Name:   a.Name(),
		Size:   len(a.Data),
		SHA256: a.Checksum(),
		At:     s.now().UTC(),
	}
	value, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:   []byte(ev.Source),
		Value: value,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(EventType)},
			{Key: "run", Value: []byte(a.RunID)},
		},
	}
	if err := s.w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka publish %s: %w", ev.Name, err)
	}
	return nil
}

func (s *Sink) Close() error {
	return s.w.Close()
}
