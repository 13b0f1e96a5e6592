package fetcher

import (
	"errors"
	"fmt"
)

// ErrEmptyClient is returned when attempting to create a session without providing a Client.
// The client is the only way a session reaches the network, so construction fails if it is missing.
var ErrEmptyClient = errors.New("fetch client is empty")

// ErrEmptyURL is returned when a session is created without a resource identifier.
var ErrEmptyURL = errors.New("resource url is empty")

// ErrEmptyRedisClient is returned when attempting to create a journal without providing a Redis client.
// The Redis client is mandatory for all journal operations, construction fails if it is missing.
var ErrEmptyRedisClient = errors.New("redis client is empty")

// ErrAlreadyStarted is returned by Start when the session has already issued its first request.
// Starting twice is a caller error; re-issuing a failed request goes through Retry instead.
var ErrAlreadyStarted = errors.New("fetch session already started")

// ErrNotStarted is returned by Wait when the session has never been started.
var ErrNotStarted = errors.New("fetch session not started")

// ErrRetryNotAllowed is returned by Retry when the session is not in the Failed state.
// The call leaves the session untouched.
var ErrRetryNotAllowed = errors.New("retry is only allowed after a failed fetch")

// ErrDetached is returned by any lifecycle operation invoked after the session was detached.
var ErrDetached = errors.New("fetch session detached")

// ErrUnknownStatus is returned when a FetchStatus value cannot be encoded or decoded.
var ErrUnknownStatus = errors.New("unknown fetch status")

// ResponseError describes a completed HTTP exchange whose status code was outside the 2xx range.
// Detail carries the server supplied "detail" string when the body contained one.
type ResponseError struct {
	URL        string
	StatusCode int
	Detail     string
	Body       []byte
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("GET %s: status %d: %s", e.URL, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("GET %s: status %d", e.URL, e.StatusCode)
}

// TransportError describes a request that never produced a response, such as an unreachable host
// or a connection reset while reading the body.
type TransportError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("GET %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError is reported when a 2xx response body cannot be decoded into the payload type.
type DecodeError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying cause.
func (e *DecodeError) Unwrap() error {
	return e.Err
}
