package pinecone

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

// defaultTopK is applied when a query does not set top_k.
const defaultTopK = 5

// deleteFilterTopK caps the id-resolution query behind Delete with a filter.
// Namespaces holding more matching vectors than this get truncated; delete by
// explicit ids to go past the cap.
const deleteFilterTopK = 10000

// IndexConfig configures an index handle. Dimension, Metric, Cloud, Region
// and DeletionProtection are only used when the index does not exist yet and
// must be created.
type IndexConfig struct {
	// Name is the index name. Required.
	Name string

	// Dimension is the vector dimension.
	Dimension int

	// Metric is the similarity metric.
	Metric Metric

	// Cloud and Region select serverless placement for a created index.
	Cloud  string
	Region string

	// Namespace scopes every data-plane operation made through the handle.
	// Empty means the default namespace.
	Namespace string

	// DeletionProtection is applied to a created index.
	DeletionProtection DeletionProtection
}

// Index is a data-plane handle bound to one index and namespace. Its host is
// resolved once at construction and read-only afterwards; handles are safe
// for concurrent use.
type Index struct {
	client *Client

	name      string
	dimension int
	namespace string
	hostURL   string
}

// Index returns a data-plane handle for the named index.
//
// The index host is resolved here, exactly once: the index is described, and
// if it does not exist it is created with the configured dimension, metric
// and serverless placement. The returned handle is always fully initialized;
// a handle with an unresolved host is never exposed.
func (c *Client) Index(ctx context.Context, cfg IndexConfig) (*Index, error) {
	if cfg.Name == "" {
		return nil, &ArgumentError{Msg: "index name is required"}
	}

	desc, err := c.Indexes.Describe(ctx, cfg.Name)
	if err != nil {
		var notFound *IndexNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		desc, err = c.Indexes.Create(ctx, &CreateIndexRequest{
			Name:      cfg.Name,
			Dimension: cfg.Dimension,
			Metric:    cfg.Metric,
			Spec: IndexSpec{
				Serverless: &ServerlessSpec{
					Cloud:  cfg.Cloud,
					Region: cfg.Region,
				},
			},
			DeletionProtection: cfg.DeletionProtection,
		})
		if err != nil {
			return nil, err
		}
	}

	dim := desc.Dimension
	if dim == 0 {
		dim = cfg.Dimension
	}

	return &Index{
		client:    c,
		name:      cfg.Name,
		dimension: dim,
		namespace: cfg.Namespace,
		hostURL:   hostURL(desc.Host),
	}, nil
}

// Name returns the index name the handle is bound to.
func (idx *Index) Name() string {
	return idx.name
}

// Host returns the resolved data-plane base URL.
func (idx *Index) Host() string {
	return idx.hostURL
}

// Namespace returns the namespace the handle operates in.
func (idx *Index) Namespace() string {
	return idx.namespace
}

// Upsert writes vectors into the handle's namespace in one request and
// returns the number of vectors written.
func (idx *Index) Upsert(ctx context.Context, vectors []Vector) (int, error) {
	req := &UpsertRequest{
		Vectors:   vectors,
		Namespace: idx.namespace,
	}

	var out UpsertResponse
	if err := idx.client.http.do(ctx, http.MethodPost, idx.hostURL+"/vectors/upsert", apiVersion, req, &out); err != nil {
		return 0, err
	}
	return out.UpsertedCount, nil
}

// Query searches the handle's namespace for similar vectors. Matches come
// back in the service's order, highest score first; they are not re-sorted
// client-side.
//
// Exactly one of req.Vector or req.ID should be set; the combination is
// forwarded as-is and the service rejects invalid ones. TopK defaults to 5
// and the handle's namespace is injected when the request leaves it empty.
func (idx *Index) Query(ctx context.Context, req *QueryRequest) (*QueryResponse, error) {
	r := *req
	if r.Namespace == "" {
		r.Namespace = idx.namespace
	}
	if r.TopK == 0 {
		r.TopK = defaultTopK
	}

	var out QueryResponse
	if err := idx.client.http.do(ctx, http.MethodPost, idx.hostURL+"/query", apiVersion, &r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Fetch returns the vectors for the given ids, keyed by id. Ids that do not
// exist are simply absent from the result; fetching only missing ids is not
// an error.
func (idx *Index) Fetch(ctx context.Context, ids []string) (map[string]Vector, error) {
	q := url.Values{}
	for _, id := range ids {
		q.Add("ids", id)
	}
	if idx.namespace != "" {
		q.Set("namespace", idx.namespace)
	}

	var out FetchResponse
	if err := idx.client.http.do(ctx, http.MethodGet, idx.hostURL+"/vectors/fetch?"+q.Encode(), apiVersion, nil, &out); err != nil {
		return nil, err
	}
	return out.Vectors, nil
}

// Delete removes vectors from the handle's namespace.
//
// When req.Filter is set without explicit ids, the matching ids are first
// resolved with a zero-vector query capped at 10000 results (see
// deleteFilterTopK), run in the same namespace the delete targets; if nothing
// matches, Delete returns immediately without issuing a delete request.
func (idx *Index) Delete(ctx context.Context, req *DeleteRequest) error {
	r := *req
	if r.Filter != nil && len(r.IDs) == 0 {
		res, err := idx.Query(ctx, &QueryRequest{
			Vector:    make([]float32, idx.dimension),
			Filter:    r.Filter,
			Namespace: r.Namespace,
			TopK:      deleteFilterTopK,
		})
		if err != nil {
			return err
		}
		if len(res.Matches) == 0 {
			return nil
		}
		r.IDs = make([]string, len(res.Matches))
		for i, m := range res.Matches {
			r.IDs[i] = m.ID
		}
	}

	if r.Namespace == "" {
		r.Namespace = idx.namespace
	}

	return idx.client.http.do(ctx, http.MethodPost, idx.hostURL+"/vectors/delete", apiVersion, &r, nil)
}
