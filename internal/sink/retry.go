package sink

import (
	"context"
	"errors"
	"time"

	"github.com/avast/retry-go/v4"
)

type retrying struct {
	Sink
	attempts uint
	delay    time.Duration
}

// WithRetry retries failed stores of s. Invalid artifacts and context errors
// are not retried. attempts <= 1 returns s unchanged.
func WithRetry(s Sink, attempts uint, delay time.Duration) Sink {
	if attempts <= 1 {
		return s
	}
	return &retrying{Sink: s, attempts: attempts, delay: delay}
}

func (r *retrying) Store(ctx context.Context, a Artifact) error {
	return retry.Do(
		func() error {
			err := r.Sink.Store(ctx, a)
			if errors.Is(err, ErrInvalidArtifact) {
				return retry.Unrecoverable(err)
			}
			return err
		},
		retry.Context(ctx),
		retry.Attempts(r.attempts),
		retry.Delay(r.delay),
		retry.LastErrorOnly(true),
	)
}
