package pinecone

import (
	"context"
	"net/http"
)

// InferenceService provides inference operations that are independent of any
// index. Currently this is document reranking.
type InferenceService struct {
	client *Client
}

// SupportedRerankModels lists the rerank models known to this package.
//
// The list is informational only: model names are forwarded to the service
// unchecked, so newer models work without a client upgrade.
func SupportedRerankModels() []string {
	return []string{
		"cohere-rerank-3.5",
		"bge-reranker-v2-m3",
		"pinecone-rerank-v0",
	}
}

// Rerank scores documents against a query and returns them ordered by
// descending relevance, together with billed usage. Each result's Index
// refers to the document's position in the request list.
//
// Documents must be non-empty; an empty list fails with *ArgumentError
// before any request is sent. Model defaults to the client's configured
// rerank model and return_documents defaults to true.
func (s *InferenceService) Rerank(ctx context.Context, req *RerankRequest) (*RerankResponse, error) {
	if len(req.Documents) == 0 {
		return nil, &ArgumentError{Msg: "rerank documents cannot be empty"}
	}

	r := *req
	if r.Model == "" {
		r.Model = s.client.config.rerankModel
	}
	if r.ReturnDocuments == nil {
		t := true
		r.ReturnDocuments = &t
	}

	var out RerankResponse
	if err := s.client.http.do(ctx, http.MethodPost, s.client.config.baseURL+"/rerank", rerankAPIVersion, &r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
