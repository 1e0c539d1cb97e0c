package pinecone

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// httpClient handles HTTP communication with the Pinecone API.
type httpClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// newHTTPClient creates a new HTTP client.
func newHTTPClient(cfg *clientConfig) *httpClient {
	return &httpClient{
		client:  cfg.httpClient,
		baseURL: cfg.baseURL,
		apiKey:  cfg.apiKey,
	}
}

// do performs a single request against an absolute URL and decodes the
// response into result.
//
// Any non-2xx status yields an *APIError carrying the status code and raw
// body. A 2xx body that fails to decode yields a *DecodeError. Transport
// failures (including context cancellation) propagate as wrapped errors.
func (h *httpClient) do(ctx context.Context, method, url, version string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Api-Key", h.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Pinecone-API-Version", version)

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	if result != nil {
		if err := json.Unmarshal(data, result); err != nil {
			return &DecodeError{Err: err, Body: data}
		}
	}

	return nil
}

// control issues a request against the control-plane root.
func (h *httpClient) control(ctx context.Context, method, path string, body, result any) error {
	return h.do(ctx, method, h.baseURL+path, apiVersion, body, result)
}

// hostURL normalizes an index host to a base URL. Hosts reported by the
// control plane are bare DNS names; a host that already carries a scheme is
// used verbatim.
func hostURL(host string) string {
	if strings.Contains(host, "://") {
		return strings.TrimSuffix(host, "/")
	}
	return "https://" + host
}
