package pinecone_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/haivivi/pinecone-go/pkg/pinecone"
)

func makeVectors(n int) []pinecone.Vector {
	vectors := make([]pinecone.Vector, n)
	for i := range vectors {
		vectors[i] = pinecone.Vector{
			ID:     fmt.Sprintf("vec-%d", i),
			Values: []float32{float32(i), float32(i)},
		}
	}
	return vectors
}

func TestUpsertBatch_ChunkCoverage(t *testing.T) {
	const (
		total     = 1050
		batchSize = 100
	)

	var (
		mu    sync.Mutex
		calls int
		seen  = map[string]int{}
	)

	s := newTestIndexServer(t)
	s.mux.HandleFunc("POST /vectors/upsert", func(w http.ResponseWriter, r *http.Request) {
		var req pinecone.UpsertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode upsert request: %v", err)
		}
		if len(req.Vectors) > batchSize {
			t.Errorf("batch carries %d vectors, want <= %d", len(req.Vectors), batchSize)
		}

		mu.Lock()
		calls++
		for _, v := range req.Vectors {
			seen[v.ID]++
		}
		mu.Unlock()

		fmt.Fprintf(w, `{"upsertedCount": %d}`, len(req.Vectors))
	})

	idx := newTestIndex(t, s)

	err := idx.UpsertBatch(context.Background(), makeVectors(total),
		pinecone.WithBatchSize(batchSize))
	if err != nil {
		t.Fatalf("UpsertBatch: %v", err)
	}

	// ceil(1050/100) = 11 calls, every vector exactly once.
	if calls != 11 {
		t.Errorf("calls = %d, want 11", calls)
	}
	if len(seen) != total {
		t.Errorf("distinct ids = %d, want %d", len(seen), total)
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("id %s upserted %d times, want 1", id, n)
		}
	}
}

func TestUpsertBatch_ConcurrencyBound(t *testing.T) {
	const maxConcurrency = 3

	var inflight, peak atomic.Int32

	s := newTestIndexServer(t)
	s.mux.HandleFunc("POST /vectors/upsert", func(w http.ResponseWriter, r *http.Request) {
		n := inflight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)
		inflight.Add(-1)

		w.Write([]byte(`{"upsertedCount": 10}`))
	})

	idx := newTestIndex(t, s)

	err := idx.UpsertBatch(context.Background(), makeVectors(200),
		pinecone.WithBatchSize(10),
		pinecone.WithMaxConcurrency(maxConcurrency))
	if err != nil {
		t.Fatalf("UpsertBatch: %v", err)
	}

	if p := peak.Load(); p > maxConcurrency {
		t.Errorf("peak concurrent upserts = %d, want <= %d", p, maxConcurrency)
	}
}

func TestUpsertBatch_PartialFailure(t *testing.T) {
	var calls atomic.Int32

	s := newTestIndexServer(t)
	s.mux.HandleFunc("POST /vectors/upsert", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)

		var req pinecone.UpsertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode upsert request: %v", err)
		}
		// Fail only the chunk starting at vec-200.
		if len(req.Vectors) > 0 && req.Vectors[0].ID == "vec-200" {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
			return
		}
		fmt.Fprintf(w, `{"upsertedCount": %d}`, len(req.Vectors))
	})

	idx := newTestIndex(t, s)

	err := idx.UpsertBatch(context.Background(), makeVectors(400),
		pinecone.WithBatchSize(100))

	var batchErr *pinecone.BatchError
	if !errors.As(err, &batchErr) {
		t.Fatalf("UpsertBatch error = %v, want *BatchError", err)
	}

	// All four chunks were attempted despite the failure.
	if n := calls.Load(); n != 4 {
		t.Errorf("calls = %d, want 4", n)
	}

	if len(batchErr.Failures) != 1 {
		t.Fatalf("len(failures) = %d, want 1", len(batchErr.Failures))
	}
	f := batchErr.Failures[0]
	if f.Batch != 2 || f.Start != 200 || f.End != 300 {
		t.Errorf("failure = batch %d [%d, %d), want batch 2 [200, 300)", f.Batch, f.Start, f.End)
	}
	apiErr, ok := pinecone.AsAPIError(f.Err)
	if !ok {
		t.Fatalf("failure cause = %v, want *APIError", f.Err)
	}
	if !apiErr.IsRateLimit() {
		t.Errorf("IsRateLimit() = false for status %d", apiErr.StatusCode)
	}
}

func TestUpsertBatch_Empty(t *testing.T) {
	var calls atomic.Int32

	s := newTestIndexServer(t)
	s.mux.HandleFunc("POST /vectors/upsert", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"upsertedCount": 0}`))
	})

	idx := newTestIndex(t, s)

	if err := idx.UpsertBatch(context.Background(), nil); err != nil {
		t.Fatalf("UpsertBatch(nil) = %v, want nil", err)
	}
	if n := calls.Load(); n != 0 {
		t.Errorf("calls = %d, want 0", n)
	}
}

func TestUpsertBatch_ShortFinalChunk(t *testing.T) {
	var sizes []int
	var mu sync.Mutex

	s := newTestIndexServer(t)
	s.mux.HandleFunc("POST /vectors/upsert", func(w http.ResponseWriter, r *http.Request) {
		var req pinecone.UpsertRequest
		json.NewDecoder(r.Body).Decode(&req)

		mu.Lock()
		sizes = append(sizes, len(req.Vectors))
		mu.Unlock()

		fmt.Fprintf(w, `{"upsertedCount": %d}`, len(req.Vectors))
	})

	idx := newTestIndex(t, s)

	if err := idx.UpsertBatch(context.Background(), makeVectors(250), pinecone.WithBatchSize(100)); err != nil {
		t.Fatalf("UpsertBatch: %v", err)
	}

	if len(sizes) != 3 {
		t.Fatalf("calls = %d, want 3", len(sizes))
	}
	full, short := 0, 0
	for _, n := range sizes {
		switch n {
		case 100:
			full++
		case 50:
			short++
		default:
			t.Errorf("unexpected chunk size %d", n)
		}
	}
	if full != 2 || short != 1 {
		t.Errorf("chunk sizes = %v, want two of 100 and one of 50", sizes)
	}
}
