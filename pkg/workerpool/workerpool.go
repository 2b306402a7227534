// Package workerpool provides bounded concurrent fan-out helpers.
package workerpool

import (
	"context"
	"sync"
)

// Process runs process for every item on at most workerCount goroutines.
// The first error cancels the remaining work and is returned.
func Process[T any](ctx context.Context, workerCount int, items []T, process func(context.Context, T) error) error {
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(items) {
		workerCount = len(items)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	tasks := make(chan T)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range tasks {
				if ctx.Err() != nil {
					continue
				}
				if err := process(ctx, item); err != nil {
					fail(err)
				}
			}
		}()
	}

feed:
	for _, item := range items {
		select {
		case <-ctx.Done():
			break feed
		case tasks <- item:
		}
	}
	close(tasks)
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}

// Collect runs fn for every item and joins the results by key.
// Items sharing a key are processed once.
func Collect[K comparable, T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	key func(T) K,
	fn func(context.Context, T) (R, error),
) (map[K]R, error) {
	seen := make(map[K]struct{}, len(items))
	unique := make([]T, 0, len(items))
	for _, item := range items {
		k := key(item)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, item)
	}

	var mu sync.Mutex
	out := make(map[K]R, len(unique))
	err := Process(ctx, workerCount, unique, func(ctx context.Context, item T) error {
		res, err := fn(ctx, item)
		if err != nil {
			return err
		}
		mu.Lock()
		out[key(item)] = res
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
