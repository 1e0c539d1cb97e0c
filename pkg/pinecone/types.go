package pinecone

import "encoding/json"

// Metric is the similarity function an index uses to score query matches.
type Metric string

const (
	MetricCosine     Metric = "cosine"
	MetricEuclidean  Metric = "euclidean"
	MetricDotProduct Metric = "dotproduct"
)

// DeletionProtection controls whether an index can be deleted.
type DeletionProtection string

const (
	DeletionProtectionEnabled  DeletionProtection = "enabled"
	DeletionProtectionDisabled DeletionProtection = "disabled"
)

// ServerlessSpec describes serverless index placement.
type ServerlessSpec struct {
	// Cloud is the provider, e.g. "aws".
	Cloud string `json:"cloud,omitempty" yaml:"cloud,omitempty"`

	// Region is the provider region, e.g. "us-east-1".
	Region string `json:"region,omitempty" yaml:"region,omitempty"`
}

// PodSpec describes pod-based index deployment.
type PodSpec struct {
	// Environment is the pod environment, e.g. "us-east1-gcp".
	Environment string `json:"environment" yaml:"environment"`

	Replicas int    `json:"replicas,omitempty" yaml:"replicas,omitempty"`
	Shards   int    `json:"shards,omitempty" yaml:"shards,omitempty"`
	PodType  string `json:"pod_type,omitempty" yaml:"pod_type,omitempty"`
}

// IndexSpec is the deployment topology requested for a new index. Exactly
// one of Serverless or Pod must be set; the populated variant determines the
// wire tag ("serverless" or "pod").
type IndexSpec struct {
	Serverless *ServerlessSpec `json:"serverless,omitempty" yaml:"serverless,omitempty"`
	Pod        *PodSpec        `json:"pod,omitempty" yaml:"pod,omitempty"`
}

// validate enforces the exactly-one-variant contract.
func (s IndexSpec) validate() error {
	switch {
	case s.Serverless == nil && s.Pod == nil:
		return &ArgumentError{Msg: "index spec must set one of serverless or pod"}
	case s.Serverless != nil && s.Pod != nil:
		return &ArgumentError{Msg: "index spec must set exactly one of serverless or pod, not both"}
	}
	return nil
}

// IndexStatus reports index readiness.
type IndexStatus struct {
	Ready bool   `json:"ready" yaml:"ready"`
	State string `json:"state" yaml:"state"`
}

// IndexDescription is the control-plane metadata for an index. Host is
// non-empty once the index exists and is fixed for the index's lifetime, as
// is Dimension.
type IndexDescription struct {
	Name               string             `json:"name" yaml:"name"`
	Dimension          int                `json:"dimension" yaml:"dimension"`
	Metric             Metric             `json:"metric" yaml:"metric"`
	Host               string             `json:"host" yaml:"host"`
	Spec               *IndexSpec         `json:"spec,omitempty" yaml:"spec,omitempty"`
	Status             *IndexStatus       `json:"status,omitempty" yaml:"status,omitempty"`
	DeletionProtection DeletionProtection `json:"deletion_protection,omitempty" yaml:"deletion_protection,omitempty"`
}

// CreateIndexRequest is the control-plane request to create an index.
type CreateIndexRequest struct {
	Name      string `json:"name" yaml:"name"`
	Dimension int    `json:"dimension" yaml:"dimension"`
	Metric    Metric `json:"metric" yaml:"metric"`

	// Spec selects the deployment topology. Exactly one variant must be set.
	Spec IndexSpec `json:"spec" yaml:"spec"`

	// DeletionProtection defaults to disabled when empty.
	DeletionProtection DeletionProtection `json:"deletion_protection,omitempty" yaml:"deletion_protection,omitempty"`
}

// Metadata is the string-keyed scalar metadata attached to a vector.
type Metadata map[string]any

// SparseValues is a sparse vector as parallel index/value sequences. Indices
// and Values must have equal length.
type SparseValues struct {
	Indices []uint32  `json:"indices" yaml:"indices"`
	Values  []float32 `json:"values" yaml:"values"`
}

// Vector is one embedding plus optional sparse component and metadata. IDs
// are unique within a namespace; the values length must match the owning
// index's dimension (validated by the service, not client-side).
type Vector struct {
	ID           string        `json:"id" yaml:"id"`
	Values       []float32     `json:"values" yaml:"values"`
	SparseValues *SparseValues `json:"sparse_values,omitempty" yaml:"sparse_values,omitempty"`
	Metadata     Metadata      `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// UpsertRequest is the data-plane upsert body.
type UpsertRequest struct {
	Vectors   []Vector `json:"vectors" yaml:"vectors"`
	Namespace string   `json:"namespace,omitempty" yaml:"namespace,omitempty"`
}

// UpsertResponse reports the number of vectors written.
type UpsertResponse struct {
	UpsertedCount int `json:"upsertedCount" yaml:"upsertedCount"`
}

// QueryRequest is a similarity search. Exactly one of Vector or ID should be
// set as the query anchor; the client forwards whatever is given and the
// service rejects invalid combinations.
type QueryRequest struct {
	// Vector is a dense query anchor.
	Vector []float32 `json:"vector,omitempty" yaml:"vector,omitempty"`

	// ID anchors the query on an existing vector instead of a dense vector.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	SparseVector *SparseValues  `json:"sparse_vector,omitempty" yaml:"sparse_vector,omitempty"`
	Filter       map[string]any `json:"filter,omitempty" yaml:"filter,omitempty"`
	Namespace    string         `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	TopK         int            `json:"top_k" yaml:"top_k"`

	IncludeValues   bool `json:"include_values,omitempty" yaml:"include_values,omitempty"`
	IncludeMetadata bool `json:"include_metadata,omitempty" yaml:"include_metadata,omitempty"`
}

// Match is one query hit.
type Match struct {
	ID           string        `json:"id" yaml:"id"`
	Score        float32       `json:"score" yaml:"score"`
	Values       []float32     `json:"values,omitempty" yaml:"values,omitempty"`
	SparseValues *SparseValues `json:"sparse_values,omitempty" yaml:"sparse_values,omitempty"`
	Metadata     Metadata      `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// QueryResponse holds query hits in the service's order, highest score
// first. The order is not recomputed client-side.
type QueryResponse struct {
	Matches   []Match `json:"matches" yaml:"matches"`
	Namespace string  `json:"namespace" yaml:"namespace"`
}

// FetchResponse maps vector id to vector for the ids that were found. Ids
// that do not exist are simply absent.
type FetchResponse struct {
	Vectors   map[string]Vector `json:"vectors" yaml:"vectors"`
	Namespace string            `json:"namespace" yaml:"namespace"`
}

// DeleteRequest selects vectors to delete.
type DeleteRequest struct {
	IDs       []string `json:"ids,omitempty" yaml:"ids,omitempty"`
	DeleteAll bool     `json:"delete_all,omitempty" yaml:"delete_all,omitempty"`
	Namespace string   `json:"namespace,omitempty" yaml:"namespace,omitempty"`

	// Filter selects vectors by metadata. It is resolved to explicit ids
	// client-side before the delete request is sent (see Index.Delete) and
	// never travels on the delete wire body.
	Filter map[string]any `json:"-" yaml:"-"`
}

// Document is one rerank candidate. ID and Text are the common fields; Extra
// holds any additional fields referenced via rank_fields. On the wire all
// fields are flattened into a single JSON object; YAML request files use the
// same flat shape.
type Document struct {
	ID    string         `yaml:"id,omitempty"`
	Text  string         `yaml:"text,omitempty"`
	Extra map[string]any `yaml:",inline"`
}

// MarshalJSON implements json.Marshaler.
func (d Document) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(d.Extra)+2)
	for k, v := range d.Extra {
		m[k] = v
	}
	if d.ID != "" {
		m["id"] = d.ID
	}
	if d.Text != "" {
		m["text"] = d.Text
	}
	return json.Marshal(m)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Document) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	if v, ok := m["id"].(string); ok {
		d.ID = v
		delete(m, "id")
	}
	if v, ok := m["text"].(string); ok {
		d.Text = v
		delete(m, "text")
	}
	if len(m) > 0 {
		d.Extra = m
	} else {
		d.Extra = nil
	}
	return nil
}

// RerankRequest scores documents against a query.
type RerankRequest struct {
	// Model defaults to the client's configured rerank model when empty.
	Model string `json:"model" yaml:"model"`

	Query     string     `json:"query" yaml:"query"`
	Documents []Document `json:"documents" yaml:"documents"`

	// TopN limits the number of results. Nil returns all documents ranked.
	TopN *int `json:"top_n,omitempty" yaml:"top_n,omitempty"`

	// ReturnDocuments defaults to true when nil.
	ReturnDocuments *bool `json:"return_documents,omitempty" yaml:"return_documents,omitempty"`

	// RankFields names the document fields to rank on.
	RankFields []string `json:"rank_fields,omitempty" yaml:"rank_fields,omitempty"`

	// Parameters carries model-specific options, e.g. {"truncate": "END"}.
	Parameters map[string]any `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// RerankResult is one reranked document. Index refers to the document's
// position in the request's document list.
type RerankResult struct {
	Index    int       `json:"index" yaml:"index"`
	Score    float64   `json:"score" yaml:"score"`
	Document *Document `json:"document,omitempty" yaml:"document,omitempty"`
}

// RerankUsage reports billed rerank units.
type RerankUsage struct {
	RerankUnits int `json:"rerank_units" yaml:"rerank_units"`
}

// RerankResponse holds results ordered by descending relevance score.
type RerankResponse struct {
	Model string         `json:"model,omitempty" yaml:"model,omitempty"`
	Data  []RerankResult `json:"data" yaml:"data"`
	Usage RerankUsage    `json:"usage" yaml:"usage"`
}
