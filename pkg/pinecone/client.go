package pinecone

import (
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the Pinecone control-plane root endpoint.
	DefaultBaseURL = "https://api.pinecone.io"

	// DefaultTimeout is the default request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRerankModel is used when a rerank request does not name a model.
	DefaultRerankModel = "cohere-rerank-3.5"
)

// API version headers. The rerank endpoint is versioned separately from the
// control and data planes.
const (
	apiVersion       = "2024-07"
	rerankAPIVersion = "2024-10"
)

// Client is the Pinecone API client.
type Client struct {
	// Indexes provides control-plane index lifecycle operations.
	Indexes *IndexService

	// Inference provides index-independent inference operations (rerank).
	Inference *InferenceService

	config *clientConfig
	http   *httpClient
}

// clientConfig holds the client configuration.
type clientConfig struct {
	apiKey      string
	baseURL     string
	httpClient  *http.Client
	ownsHTTP    bool
	timeout     time.Duration
	rerankModel string
}

// Option is a function that configures the client.
type Option func(*clientConfig)

// WithBaseURL sets a custom control-plane base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client. The caller keeps ownership of
// the transport; Close will not touch it.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithRerankModel sets the default model for rerank requests.
func WithRerankModel(model string) Option {
	return func(c *clientConfig) {
		c.rerankModel = model
	}
}

// NewClient creates a new Pinecone API client.
//
// The apiKey is required; an empty key fails with *ArgumentError before any
// request is made.
//
// Example:
//
//	client, err := pinecone.NewClient("your-api-key")
//	client, err := pinecone.NewClient("your-api-key", pinecone.WithTimeout(60*time.Second))
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, &ArgumentError{Msg: "api key is required"}
	}

	cfg := &clientConfig{
		apiKey:      apiKey,
		baseURL:     DefaultBaseURL,
		timeout:     DefaultTimeout,
		rerankModel: DefaultRerankModel,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.httpClient == nil {
		cfg.httpClient = &http.Client{
			Timeout: cfg.timeout,
		}
		cfg.ownsHTTP = true
	}

	c := &Client{
		config: cfg,
		http:   newHTTPClient(cfg),
	}

	c.Indexes = &IndexService{client: c}
	c.Inference = &InferenceService{client: c}

	return c, nil
}

// BaseURL returns the configured control-plane base URL.
func (c *Client) BaseURL() string {
	return c.config.baseURL
}

// Close releases idle connections held by the client's transport. Transports
// injected via WithHTTPClient stay under the caller's control and are left
// alone.
func (c *Client) Close() {
	if c.config.ownsHTTP {
		c.config.httpClient.CloseIdleConnections()
	}
}
