// Package batcher buffers items and hands them to a flush callback in rate-limited batches.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add once Stop has been called.
var ErrStopped = errors.New("batcher stopped")

// FlushFunc receives a batch. The slice is reused after the call returns.
type FlushFunc[T any] func(context.Context, []T) error

// Config controls batch size, flush interval and flush rate. RPS 0 disables pacing.
type Config struct {
	Size     int
	Interval time.Duration
	RPS      int
}

// Batcher flushes when Size items are buffered or Interval elapses, whichever comes first.
type Batcher[T any] struct {
	flush  FlushFunc[T]
	items  chan T
	cfg    Config
	rl     ratelimit.Limiter
	logger *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher. Zero Size and Interval default to 100 items and one second.
func New[T any](logger *zap.Logger, cfg Config, flush FlushFunc[T]) *Batcher[T] {
	if cfg.Size <= 0 {
		cfg.Size = 100
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Second
	}
	rl := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		rl = ratelimit.New(cfg.RPS)
	}
	return &Batcher[T]{
		logger: logger,
		flush:  flush,
		items:  make(chan T, cfg.Size*2),
		cfg:    cfg,
		rl:     rl,
		stop:   make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes everything queued so far and waits for the loop to exit.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	b.wg.Wait()
}

// Add queues an item, blocking while the queue is full.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return ErrStopped
	case b.items <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.cfg.Interval)
	defer ticker.Stop()

	buf := make([]T, 0, b.cfg.Size)
	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}
		b.rl.Take()
		if err := b.flush(ctx, buf); err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = buf[:0]
	}
	drain := func() {
		for {
			select {
			case item := <-b.items:
				buf = append(buf, item)
				if len(buf) >= b.cfg.Size {
					flush(context.WithoutCancel(ctx))
				}
			default:
				flush(context.WithoutCancel(ctx))
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			return
		case <-b.stop:
			drain()
			return
		case item := <-b.items:
			buf = append(buf, item)
			if len(buf) >= b.cfg.Size {
				flush(ctx)
			}
		case <-ticker.C:
			flush(ctx)
		}
	}
}
