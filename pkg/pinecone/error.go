package pinecone

import (
	"errors"
	"fmt"
	"strings"
)

// ArgumentError reports a caller contract violation detected locally.
// No request has been sent when one of these is returned.
type ArgumentError struct {
	// Msg describes the violated contract.
	Msg string
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return "pinecone: invalid argument: " + e.Msg
}

// IndexNotFoundError reports a 404 from the control plane for a named index.
type IndexNotFoundError struct {
	// Name is the index that was not found.
	Name string
}

// Error implements the error interface.
func (e *IndexNotFoundError) Error() string {
	return fmt.Sprintf("pinecone: index %q not found", e.Name)
}

// APIError represents a non-2xx response from the Pinecone API.
type APIError struct {
	// StatusCode is the HTTP status code.
	StatusCode int

	// Body is the raw response body, kept for diagnostics.
	Body string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("pinecone: API error (status=%d): %s", e.StatusCode, e.Body)
}

// IsAuth returns true if the request was rejected for credentials.
func (e *APIError) IsAuth() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsRateLimit returns true if this is a rate limit error.
func (e *APIError) IsRateLimit() bool {
	return e.StatusCode == 429
}

// IsServerError returns true if this is a server-side error.
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}

// AsAPIError extracts *APIError from an error.
//
// Example:
//
//	if apiErr, ok := pinecone.AsAPIError(err); ok {
//	    if apiErr.IsRateLimit() {
//	        // back off at the call site
//	    }
//	}
func AsAPIError(err error) (*APIError, bool) {
	var e *APIError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// DecodeError reports a 2xx response whose body does not match the expected
// shape. Distinct from *APIError: the service accepted the request but the
// response could not be interpreted.
type DecodeError struct {
	// Err is the underlying unmarshal error.
	Err error

	// Body is the response body that failed to decode.
	Body []byte
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("pinecone: decode response: %v", e.Err)
}

// Unwrap returns the underlying unmarshal error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// BatchFailure records one failed chunk of a batched upsert.
type BatchFailure struct {
	// Batch is the zero-based chunk number.
	Batch int

	// Start and End bound the chunk within the original vector slice,
	// as [Start, End).
	Start int
	End   int

	// Err is the underlying failure for this chunk.
	Err error
}

// BatchError aggregates per-chunk failures from UpsertBatch. Only failed
// chunks are listed; every chunk was attempted exactly once regardless.
type BatchError struct {
	// Failures holds one entry per failed chunk, ordered by chunk number.
	Failures []BatchFailure
}

// Error implements the error interface.
func (e *BatchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "pinecone: batch upsert: %d batch(es) failed:", len(e.Failures))
	for _, f := range e.Failures {
		fmt.Fprintf(&b, " [batch %d, vectors %d-%d: %v]", f.Batch, f.Start, f.End, f.Err)
	}
	return b.String()
}
