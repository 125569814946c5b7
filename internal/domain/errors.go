package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrAuthFailed indicates bad credentials or an unreachable server during login
	ErrAuthFailed = errors.New("authentication failed")

	// ErrUnauthenticated indicates a protected call was attempted on a
	// client built from a session without a user ID and access token
	ErrUnauthenticated = errors.New("session is not authenticated")

	// ErrItemNotFound indicates the requested media item does not exist
	ErrItemNotFound = errors.New("media item not found")
)

// RequestError reports a non-2xx response from an authenticated call.
// An expired token and a server error are indistinguishable at this
// layer, so all statuses are treated uniformly.
type RequestError struct {
	StatusCode int
	Status     string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed: %s", e.Status)
}

// AggregationError wraps the first fetch failure inside a multi-fetch
// view. No partial view is ever returned alongside it.
type AggregationError struct {
	View ViewKind
	Err  error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("aggregating %s view: %v", e.View, e.Err)
}

func (e *AggregationError) Unwrap() error {
	return e.Err
}
