package explorer

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-explorer/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-explorer/pkg/workerpool"
)

// LatestBlock is the address activity of a scanned range.
// LatestProcessed is the highest height covered, or the head when nothing new was mined.
type LatestBlock struct {
	Txs             model.BlockTxs
	LatestProcessed int64
}

// BlockRange is a half-open range [Min, Max) of heights.
type BlockRange struct {
	Min int64
	Max int64
}

// Empty reports whether the range holds no height.
func (r BlockRange) Empty() bool {
	return r.Min >= r.Max
}

// UnprocessedRange computes the next range after the processed cursor, capped
// below the head and at maxBlocks heights. A zero cursor starts lookBack blocks behind the head.
func UnprocessedRange(head, processed, lookBack, maxBlocks int64) BlockRange {
	if processed == 0 {
		processed = head - lookBack
	}
	lo := head + 1
	if head > processed {
		lo = processed + 1
	}
	return BlockRange{Min: lo, Max: min(head+1, lo+maxBlocks)}
}

// GetLatestBlock scans the heights after the after cursor. When to is zero
// the provider head, minus the configured offset, bounds the range.
func (e *Explorer) GetLatestBlock(ctx context.Context, after, to int64) (LatestBlock, error) {
	if after < 0 || to < 0 {
		return LatestBlock{}, errors.New("block heights must not be negative")
	}
	return attempt(ctx, e, OpBlockTxs, e.providers.BlockTxs, func(ctx context.Context, p BlockTxsProvider) (LatestBlock, error) {
		head := to
		if head == 0 {
			h, err := p.BlockHead(ctx)
			if err != nil {
				return LatestBlock{}, err
			}
			head = h - e.opts.HeadOffset
			if head <= 0 {
				return LatestBlock{}, fmt.Errorf("%s returned no block height", p.Name())
			}
		}

		r := UnprocessedRange(head, after, e.opts.LookBack, e.opts.MaxBlocksPerCall)
		if r.Empty() {
			return LatestBlock{Txs: model.NewBlockTxs(), LatestProcessed: r.Min - 1}, nil
		}
		txs, err := e.fetchRange(ctx, p, r)
		if err != nil {
			return LatestBlock{}, err
		}
		return LatestBlock{Txs: txs, LatestProcessed: r.Max - 1}, nil
	})
}

// fetchRange issues one range call for batch providers and one call per height otherwise.
func (e *Explorer) fetchRange(ctx context.Context, p BlockTxsProvider, r BlockRange) (model.BlockTxs, error) {
	if p.BatchBlocks() {
		return p.BlockTxs(ctx, r.Min, r.Max-1)
	}

	heights := make([]int64, 0, r.Max-r.Min)
	for h := r.Min; h < r.Max; h++ {
		heights = append(heights, h)
	}
	blocks, err := workerpool.Collect(ctx, e.opts.Workers, heights,
		func(h int64) int64 { return h },
		func(ctx context.Context, h int64) (model.BlockTxs, error) {
			return p.BlockTxs(ctx, h, h)
		})
	if err != nil {
		return model.BlockTxs{}, err
	}

	out := model.NewBlockTxs()
	for _, h := range heights {
		out.Merge(blocks[h])
	}
	return out, nil
}
