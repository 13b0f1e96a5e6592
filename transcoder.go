package fetcher

import (
	"github.com/goccy/go-json"
)

// Transcoder defines the contract for bidirectional conversion between a value of type T
// and its wire representation. Sessions use Decode to turn a response body into a payload,
// and the journal uses both directions to store transitions in Redis.
// Users may implement custom transcoders to accept formats other than JSON.
type Transcoder[T any] interface {
	// Encode converts a value of type T into bytes suitable for transport or storage.
	Encode(T) ([]byte, error)

	// Decode reconstructs a value of type T from bytes previously produced by Encode
	// or received from the backend.
	Decode([]byte) (T, error)
}

// defaultTranscoder is the built-in transcoder used when the caller does not provide a custom one.
// It performs straightforward JSON serialization. Instantiated with T = any it passes the backend's
// JSON value through opaquely as maps, slices and scalars.
type defaultTranscoder[T any] struct{}

// Encode method converts the provided value into its JSON representation.
// Any error produced during serialization is returned to the caller for handling.
func (defaultTranscoder[T]) Encode(src T) ([]byte, error) {
	return json.Marshal(src)
}

// Decode method reconstructs a value of type T from its JSON representation.
// An empty or malformed body is reported as an error so that a session never
// reaches Success without a payload.
func (defaultTranscoder[T]) Decode(src []byte) (T, error) {
	var entry T

	if err := json.Unmarshal(src, &entry); err != nil {
		return entry, err
	}

	return entry, nil
}

// NewJSONTranscoder returns the default JSON transcoder for type T.
func NewJSONTranscoder[T any]() Transcoder[T] {
	return defaultTranscoder[T]{}
}
