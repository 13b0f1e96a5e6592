package fetcher

import (
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// options type defines the functional options pattern used to configure a Session instance.
type options[T any] func(s *Session[T])

// WithLoadingMessage option sets the text carried by the loading view while the session is Pending.
// Without this option the loading view carries an empty message and hosts choose their own spinner text.
func WithLoadingMessage[T any](message string) options[T] {
	return func(s *Session[T]) {
		s.loadingMessage = message
	}
}

// WithGenericErrorMessage option sets the text shown on failure when no specific message can be
// derived from the error. It outranks only the built-in default text.
func WithGenericErrorMessage[T any](message string) options[T] {
	return func(s *Session[T]) {
		s.genericErrorMessage = message
	}
}

// WithTranscoder option configures the transcoder used to decode a successful response body into T.
// Providing a custom transcoder allows callers to control deserialization behavior.
func WithTranscoder[T any](t Transcoder[T]) options[T] {
	return func(s *Session[T]) {
		s.transcoder = t
	}
}

// WithObserver option registers an observer notified of every applied transition.
// Calling it several times registers several observers, notified in registration order.
func WithObserver[T any](o Observer) options[T] {
	return func(s *Session[T]) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

// WithLogger option sets the logger used to trace attempts and ignored completions.
// Sessions are silent by default.
func WithLogger[T any](logger zerolog.Logger) options[T] {
	return func(s *Session[T]) {
		s.logger = logger
	}
}

// clientOptions type defines the functional options pattern used to configure an HTTPClient instance.
type clientOptions func(c *HTTPClient)

// WithHTTPClient option replaces the underlying *http.Client. The client is used as given;
// its transport is not wrapped with tracing, which lets tests plug in httptest clients directly.
func WithHTTPClient(hc *http.Client) clientOptions {
	return func(c *HTTPClient) {
		c.httpClient = hc
	}
}

// WithSettings option installs the ambient connection settings shared by every request:
// the base URL that host-relative identifiers are resolved against and the session token.
func WithSettings(settings Settings) clientOptions {
	return func(c *HTTPClient) {
		c.settings = settings
	}
}

// WithTimeout option bounds each request, including reading the body.
// It only applies to the default client built by NewHTTPClient.
func WithTimeout(timeout time.Duration) clientOptions {
	return func(c *HTTPClient) {
		c.timeout = timeout
	}
}

// WithClientLogger option sets the logger used to trace outbound requests.
func WithClientLogger(logger zerolog.Logger) clientOptions {
	return func(c *HTTPClient) {
		c.logger = logger
	}
}

// journalOptions type defines the functional options pattern used to configure a RedisJournal instance.
type journalOptions func(j *RedisJournal)

// WithRedisClient option assigns the redis client used by the RedisJournal to store transitions.
// Providing a valid redis client is required for the journal to function.
func WithRedisClient(rdb redis.UniversalClient) journalOptions {
	return func(j *RedisJournal) {
		j.rdb = rdb
	}
}

// WithJournalKey option sets the Redis list that transitions are appended to and drained from.
func WithJournalKey(key string) journalOptions {
	return func(j *RedisJournal) {
		j.key = key
	}
}

// WithDrainScript option specifies the Lua script used to pop journal entries from redis.
// If no script is provided the journal falls back to its default LPOP loop.
func WithDrainScript(src *redis.Script) journalOptions {
	return func(j *RedisJournal) {
		j.drainCommand = src
	}
}

// WithBatchSize option configures the maximum number of entries popped by a single Drain call.
// If this option is not provided the journal uses its internal default of 1000.
func WithBatchSize(size int) journalOptions {
	return func(j *RedisJournal) {
		j.size = size
	}
}

// WithJournalLogger option sets the logger used to report entries that could not be stored or decoded.
func WithJournalLogger(logger zerolog.Logger) journalOptions {
	return func(j *RedisJournal) {
		j.logger = logger
	}
}
