package scanner

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/explorer"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// BlockSource returns the address activity after a cursor.
	BlockSource interface {
		GetLatestBlock(ctx context.Context, after, to int64) (explorer.LatestBlock, error)
	}

	// Sink receives scanned activity, usually a batcher.
	Sink interface {
		Add(ctx context.Context, item Activity) error
	}

	// Metrics records scan outcomes.
	Metrics interface {
		ObserveScan(err error, blocks int, started time.Time)
		ObserveLatestProcessed(height int64)
	}
)
