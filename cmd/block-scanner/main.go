package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/clock"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/config"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/scanner"
	"github.com/goodnatureofminers/blockinsight7000-explorer/pkg/batcher"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type options struct {
	Registry      string        `long:"registry" env:"BLOCK_SCANNER_REGISTRY" description:"provider registry yaml" required:"true"`
	Network       model.Network `long:"network" env:"BLOCK_SCANNER_NETWORK" description:"network to follow" required:"true"`
	Start         int64         `long:"start" env:"BLOCK_SCANNER_START" description:"height already processed, 0 starts near the head"`
	Watch         []string      `long:"watch" env:"BLOCK_SCANNER_WATCH" env-delim:"," description:"addresses to report, all when empty"`
	Interval      time.Duration `long:"interval" env:"BLOCK_SCANNER_INTERVAL" description:"wait once caught up" default:"10s"`
	BackoffMax    time.Duration `long:"backoff-max" env:"BLOCK_SCANNER_BACKOFF_MAX" description:"longest wait after failures" default:"1m"`
	BatchSize     int           `long:"batch-size" env:"BLOCK_SCANNER_BATCH_SIZE" description:"activity records per flush" default:"100"`
	FlushInterval time.Duration `long:"flush-interval" env:"BLOCK_SCANNER_FLUSH_INTERVAL" description:"max wait before a flush" default:"1s"`
	MetricsAddr   string        `long:"metrics-addr" env:"BLOCK_SCANNER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

func main() {
	opts := options{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&opts, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, opts, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("block scanner failed", zap.Error(err))
	}
}

func run(ctx context.Context, opts options, logger *zap.Logger) error {
	startMetricsServer(ctx, opts.MetricsAddr, logger)

	registryCfg, err := config.Load(opts.Registry)
	if err != nil {
		return err
	}
	registry, err := config.Build(registryCfg, logger)
	if err != nil {
		return fmt.Errorf("build explorers: %w", err)
	}
	defer registry.Close()

	e, ok := registry.Explorer(opts.Network)
	if !ok {
		return fmt.Errorf("network %s is not configured", opts.Network)
	}

	activityLogger := logger.Named("activity")
	sink := batcher.New[scanner.Activity](logger.Named("batcher"), batcher.Config{Size: opts.BatchSize, Interval: opts.FlushInterval},
		func(_ context.Context, batch []scanner.Activity) error {
			for _, a := range batch {
				activityLogger.Info("address activity",
					zap.String("network", string(a.Network)),
					zap.String("address", a.Address),
					zap.String("direction", string(a.Direction)),
					zap.String("tx_hash", a.Entry.TxHash),
					zap.Int64("block", a.Entry.BlockHeight),
					zap.String("value", a.Entry.Value.String()),
					zap.String("symbol", a.Entry.Symbol))
			}
			return nil
		})
	sink.Start(ctx)
	defer sink.Stop()

	s, err := scanner.New(e, sink, metrics.NewScanner(opts.Network), scanner.Config{
		Network:  opts.Network,
		Start:    opts.Start,
		Interval: opts.Interval,
		Backoff:  clock.Backoff{Initial: time.Second, Max: opts.BackoffMax},
		Watch:    opts.Watch,
	}, logger)
	if err != nil {
		return err
	}
	return s.Run(ctx)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
