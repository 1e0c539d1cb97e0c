package pinecone

import (
	"context"
	"net/http"
	"net/url"
)

// IndexService provides control-plane index lifecycle operations against the
// service root endpoint. Transient failures are not retried; callers needing
// retry wrap the calls themselves.
type IndexService struct {
	client *Client
}

// List returns summaries of every index in the project.
func (s *IndexService) List(ctx context.Context) ([]IndexDescription, error) {
	var out []IndexDescription
	if err := s.client.http.control(ctx, http.MethodGet, "/indexes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Describe returns the metadata for a named index, including its data-plane
// host. A 404 from the service is reported as *IndexNotFoundError carrying
// the name.
func (s *IndexService) Describe(ctx context.Context, name string) (*IndexDescription, error) {
	var out IndexDescription
	err := s.client.http.control(ctx, http.MethodGet, "/indexes/"+url.PathEscape(name), nil, &out)
	if err != nil {
		if apiErr, ok := AsAPIError(err); ok && apiErr.StatusCode == http.StatusNotFound {
			return nil, &IndexNotFoundError{Name: name}
		}
		return nil, err
	}
	return &out, nil
}

// Create creates a new index and returns its metadata.
//
// The spec must set exactly one of its serverless/pod variants; anything else
// fails with *ArgumentError before a request is sent. DeletionProtection
// defaults to disabled.
func (s *IndexService) Create(ctx context.Context, req *CreateIndexRequest) (*IndexDescription, error) {
	if err := req.Spec.validate(); err != nil {
		return nil, err
	}

	r := *req
	if r.DeletionProtection == "" {
		r.DeletionProtection = DeletionProtectionDisabled
	}

	var out IndexDescription
	if err := s.client.http.control(ctx, http.MethodPost, "/indexes", &r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
