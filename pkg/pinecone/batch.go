package pinecone

import (
	"context"
	"sort"
	"sync"
)

const (
	// DefaultBatchSize is the number of vectors per chunk in UpsertBatch.
	DefaultBatchSize = 200

	// DefaultMaxConcurrency bounds how many chunk upserts are in flight at
	// once during UpsertBatch.
	DefaultMaxConcurrency = 10
)

// BatchOption configures UpsertBatch.
type BatchOption func(*batchConfig)

type batchConfig struct {
	batchSize      int
	maxConcurrency int
}

// WithBatchSize sets the number of vectors per chunk. Values < 1 are
// ignored.
func WithBatchSize(n int) BatchOption {
	return func(c *batchConfig) {
		if n > 0 {
			c.batchSize = n
		}
	}
}

// WithMaxConcurrency sets the maximum number of chunk upserts in flight.
// Values < 1 are ignored.
func WithMaxConcurrency(n int) BatchOption {
	return func(c *batchConfig) {
		if n > 0 {
			c.maxConcurrency = n
		}
	}
}

// UpsertBatch writes a large vector set as consecutive fixed-size chunks
// (the last chunk may be shorter) with a bounded number of uploads in
// flight.
//
// Every chunk is attempted exactly once; one chunk failing does not cancel
// chunks already dispatched or not yet started. After all chunks complete,
// any failures are reported together as a *BatchError naming each failed
// chunk and its vector range. Ordering between chunks is not guaranteed.
// An empty vector slice is a no-op success.
func (idx *Index) UpsertBatch(ctx context.Context, vectors []Vector, opts ...BatchOption) error {
	if len(vectors) == 0 {
		return nil
	}

	cfg := batchConfig{
		batchSize:      DefaultBatchSize,
		maxConcurrency: DefaultMaxConcurrency,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	sem := make(chan struct{}, cfg.maxConcurrency)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures []BatchFailure
	)

	for batch, start := 0, 0; start < len(vectors); batch, start = batch+1, start+cfg.batchSize {
		end := min(start+cfg.batchSize, len(vectors))

		wg.Add(1)
		go func(batch, start, end int) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			if _, err := idx.Upsert(ctx, vectors[start:end]); err != nil {
				mu.Lock()
				failures = append(failures, BatchFailure{
					Batch: batch,
					Start: start,
					End:   end,
					Err:   err,
				})
				mu.Unlock()
			}
		}(batch, start, end)
	}
	wg.Wait()

	if len(failures) > 0 {
		sort.Slice(failures, func(i, j int) bool {
			return failures[i].Batch < failures[j].Batch
		})
		return &BatchError{Failures: failures}
	}
	return nil
}
