// Package scanner follows the chain head and emits the activity of watched addresses.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
	"go.uber.org/zap"
)

const (
	defaultInterval   = 10 * time.Second
	defaultBackoffMin = time.Second
	defaultBackoffMax = time.Minute
)

// Activity is one edge touching an address.
type Activity struct {
	Network   model.Network
	Address   string
	Direction model.Direction
	Entry     model.TxEntry
}

// Config tunes a Scanner.
type Config struct {
	Network model.Network
	// Start is the initial cursor. Zero starts a few blocks behind the head.
	Start int64
	// Interval is the wait once the scanner caught up with the head.
	Interval time.Duration
	// Backoff paces retries after failed scans.
	Backoff clock.Backoff
	// Signal wakes an idle scanner early, e.g. on a new block notification.
	Signal <-chan struct{}
	// Watch restricts emitted activity to these addresses, compared case-insensitively.
	// Empty watches everything except empty addresses.
	Watch []string
}

// Scanner repeatedly scans the unprocessed block range of one network.
type Scanner struct {
	source   BlockSource
	sink     Sink
	metrics  Metrics
	logger   *zap.Logger
	network  model.Network
	interval time.Duration
	backoff  clock.Backoff
	watch    map[string]struct{}
	signal   <-chan struct{}
	sleep    func(context.Context, time.Duration) error
	cursor   int64
}

// New builds a Scanner.
func New(source BlockSource, sink Sink, metrics Metrics, cfg Config, logger *zap.Logger) (*Scanner, error) {
	if source == nil {
		return nil, errors.New("block source is required")
	}
	if sink == nil {
		return nil, errors.New("sink is required")
	}
	if metrics == nil {
		return nil, errors.New("scanner metrics is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if cfg.Start < 0 {
		return nil, fmt.Errorf("start height %d must not be negative", cfg.Start)
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.Backoff.Initial <= 0 {
		cfg.Backoff = clock.Backoff{Initial: defaultBackoffMin, Max: defaultBackoffMax}
	}
	var watch map[string]struct{}
	if len(cfg.Watch) > 0 {
		watch = make(map[string]struct{}, len(cfg.Watch))
		for _, addr := range cfg.Watch {
			watch[strings.ToLower(addr)] = struct{}{}
		}
	}
	return &Scanner{
		source:   source,
		sink:     sink,
		metrics:  metrics,
		logger:   logger.Named("scanner").With(zap.String("network", string(cfg.Network))),
		network:  cfg.Network,
		interval: cfg.Interval,
		backoff:  cfg.Backoff,
		watch:    watch,
		signal:   cfg.Signal,
		sleep:    clock.SleepWithContext,
		cursor:   cfg.Start,
	}, nil
}

// Cursor returns the latest processed height.
func (s *Scanner) Cursor() int64 {
	return s.cursor
}

// Run scans until the context is canceled.
func (s *Scanner) Run(ctx context.Context) error {
	failures := 0
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		advanced, err := s.scan(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			failures++
			delay := s.backoff.Delay(failures)
			s.logger.Warn("scan failed, backing off", zap.Error(err), zap.Int("failures", failures), zap.Duration("sleep", delay))
			if sleepErr := s.sleep(ctx, delay); sleepErr != nil {
				return sleepErr
			}
			continue
		}
		failures = 0
		if advanced {
			continue
		}
		s.logger.Debug("caught up with head; sleeping", zap.Duration("sleep", s.interval))
		if waitErr := s.wait(ctx, s.interval); waitErr != nil {
			return waitErr
		}
	}
}

// wait sleeps for d, returning early when a block signal arrives.
func (s *Scanner) wait(ctx context.Context, d time.Duration) error {
	if s.signal == nil {
		return s.sleep(ctx, d)
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.signal:
		return nil
	case <-timer.C:
		return nil
	}
}

// scan processes one range and reports whether the cursor moved.
func (s *Scanner) scan(ctx context.Context) (bool, error) {
	started := time.Now()
	after := s.cursor
	latest, err := s.source.GetLatestBlock(ctx, after, 0)
	if err != nil {
		s.metrics.ObserveScan(err, 0, started)
		return false, err
	}

	emitted := 0
	for _, a := range s.activity(latest.Txs) {
		if err := s.sink.Add(ctx, a); err != nil {
			s.metrics.ObserveScan(err, 0, started)
			return false, fmt.Errorf("emit activity: %w", err)
		}
		emitted++
	}

	blocks := 0
	if after > 0 && latest.LatestProcessed > after {
		blocks = int(latest.LatestProcessed - after)
	}
	s.metrics.ObserveScan(nil, blocks, started)

	if latest.LatestProcessed <= s.cursor {
		return false, nil
	}
	s.cursor = latest.LatestProcessed
	s.metrics.ObserveLatestProcessed(s.cursor)
	s.logger.Info("scanned blocks",
		zap.Int64("after", after),
		zap.Int64("latest_processed", s.cursor),
		zap.Int("activity", emitted))
	return true, nil
}

// activity flattens block buckets into address-sorted, height-sorted records.
func (s *Scanner) activity(txs model.BlockTxs) []Activity {
	var out []Activity
	out = s.appendBuckets(out, txs.Outgoing, model.Outgoing)
	out = s.appendBuckets(out, txs.Incoming, model.Incoming)
	return out
}

func (s *Scanner) appendBuckets(out []Activity, buckets model.TxBuckets, direction model.Direction) []Activity {
	addresses := make([]string, 0, len(buckets))
	for addr := range buckets {
		if s.watched(addr) {
			addresses = append(addresses, addr)
		}
	}
	sort.Strings(addresses)

	for _, addr := range addresses {
		heights := make([]int64, 0, len(buckets[addr]))
		for h := range buckets[addr] {
			heights = append(heights, h)
		}
		sort.Slice(heights, func(i, j int) bool { return heights[i] < heights[j] })
		for _, h := range heights {
			for _, entry := range buckets[addr][h] {
				out = append(out, Activity{Network: s.network, Address: addr, Direction: direction, Entry: entry})
			}
		}
	}
	return out
}

func (s *Scanner) watched(address string) bool {
	if address == "" {
		return false
	}
	if s.watch == nil {
		return true
	}
	_, ok := s.watch[strings.ToLower(address)]
	return ok
}
