// Package watch re-runs extraction when franchise files in a directory are
// written.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a file must stay quiet before it is handled.
// The game writes a save in several bursts.
const DefaultDebounce = 500 * time.Millisecond

// Handler is called with the path of a settled file.
type Handler func(ctx context.Context, path string)

type Config struct {
	Dir      string
	Pattern  string // filepath.Match pattern on the base name; empty matches all
	Debounce time.Duration
	Logger   *slog.Logger
	Handle   Handler
}

type Watcher struct {
	dir      string
	pattern  string
	debounce time.Duration
	logger   *slog.Logger
	handle   Handler
}

func New(cfg Config) (*Watcher, error) {
	if cfg.Dir == "" {
		return nil, errors.New("watch dir is required")
	}
	if cfg.Handle == nil {
		return nil, errors.New("watch handler is required")
	}
	if cfg.Pattern != "" {
		if _, err := filepath.Match(cfg.Pattern, ""); err != nil {
			return nil, fmt.Errorf("watch pattern: %w", err)
		}
	}
	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		dir:      cfg.Dir,
		pattern:  cfg.Pattern,
		debounce: debounce,
		logger:   logger.With("dir", cfg.Dir),
		handle:   cfg.Handle,
	}, nil
}

// Matches reports whether path is a file the watcher handles.
func (w *Watcher) Matches(path string) bool {
	if w.pattern == "" {
		return true
	}
	ok, _ := filepath.Match(w.pattern, filepath.Base(path))
	return ok
}

// Run watches until ctx is done. Handlers run one at a time on the calling
// goroutine.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.logger.Info("watching", "pattern", w.pattern)

	deb := newDebouncer(w.debounce, ctx.Done())
	defer deb.stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if !w.Matches(ev.Name) {
				continue
			}
			deb.touch(ev.Name)

		case f := <-deb.out:
			if !deb.settle(f) {
				continue
			}
			w.logger.Info("file changed", "path", f.name)
			w.handle(ctx, f.name)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err)
		}
	}
}

type settledFile struct {
	name string
	gen  uint64
}

type quietTimer struct {
	timer *time.Timer
	gen   uint64
}

// debouncer reports a file once it has had no events for delay. It is owned
// by one goroutine; only the timers send, and only on out. Every touch
// replaces the file's timer with a new generation, and settle drops sends
// from older generations, so a timer that fired just before a touch cannot
// report the file twice.
type debouncer struct {
	delay   time.Duration
	done    <-chan struct{}
	gen     uint64
	pending map[string]quietTimer
	out     chan settledFile
}

func newDebouncer(delay time.Duration, done <-chan struct{}) *debouncer {
	return &debouncer{
		delay:   delay,
		done:    done,
		pending: map[string]quietTimer{},
		out:     make(chan settledFile, 16),
	}
}

func (d *debouncer) touch(name string) {
	if q, ok := d.pending[name]; ok {
		q.timer.Stop()
	}
	d.gen++
	f := settledFile{name: name, gen: d.gen}
	d.pending[name] = quietTimer{
		gen: f.gen,
		timer: time.AfterFunc(d.delay, func() {
			select {
			case d.out <- f:
			case <-d.done:
			}
		}),
	}
}

// settle reports whether f is the current generation for its file and, if
// so, forgets the file.
func (d *debouncer) settle(f settledFile) bool {
	q, ok := d.pending[f.name]
	if !ok || q.gen != f.gen {
		return false
	}
	delete(d.pending, f.name)
	return true
}

func (d *debouncer) stop() {
	for _, q := range d.pending {
		q.timer.Stop()
	}
}
