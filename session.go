package fetcher

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Session runs the fetch lifecycle of one remote resource for one mounted view.
// It issues at most one request at a time, tracks the resulting status, keeps either the decoded
// payload or a normalized error message, and renders itself through a caller supplied Renderer.
// The resource URL is fixed at construction; fetching a different resource needs a new Session.
type Session[T any] struct {
	client     Client
	transcoder Transcoder[T]
	observers  Observers
	logger     zerolog.Logger

	url                 string
	loadingMessage      string
	genericErrorMessage string

	// mu guards every field below it.
	mu           sync.Mutex
	status       FetchStatus
	payload      T
	errorMessage string
	started      bool
	detached     bool
	attempt      int
	ctx          context.Context
	cancel       context.CancelFunc
	done         chan struct{}

	// notifyMu keeps observer notifications in the order transitions were applied.
	// Code that notifies takes it before mu and holds it while observers run, after mu has been
	// released, so readers of the state never wait on an observer.
	notifyMu sync.Mutex
}

// State is a consistent copy of a session's state taken under its lock.
type State[T any] struct {
	URL          string
	Status       FetchStatus
	Payload      T
	ErrorMessage string
	Attempt      int
}

// NewSession function constructs a Session for the resource identified by url.
// It applies all provided functional options, validates required dependencies,
// and initializes defaults for optional configuration not explicitly set.
// The returned session is Pending and has not issued any request yet.
func NewSession[T any](client Client, url string, opts ...options[T]) (*Session[T], error) {
	if client == nil {
		return nil, ErrEmptyClient
	}

	if url == "" {
		return nil, ErrEmptyURL
	}

	session := &Session[T]{
		client: client,
		url:    url,
		logger: zerolog.Nop(),
		status: Pending,
	}

	for _, opt := range opts {
		opt(session)
	}

	if session.transcoder == nil {
		session.transcoder = &defaultTranscoder[T]{}
	}

	return session, nil
}

// URL returns the resource identifier the session fetches.
func (s *Session[T]) URL() string {
	return s.url
}

// Start issues the first request of the session. The request runs in the background; its
// completion moves the session to Success or Failed. Start may be called only once per session:
// a second call returns ErrAlreadyStarted and leaves the session untouched.
// The context bounds every request the session issues, including retries.
func (s *Session[T]) Start(ctx context.Context) error {
	s.mu.Lock()

	if s.detached {
		s.mu.Unlock()
		return ErrDetached
	}

	if s.started {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}

	s.started = true
	s.ctx, s.cancel = context.WithCancel(ctx)
	attempt, done := s.launchLocked()
	runCtx := s.ctx

	s.mu.Unlock()

	go s.run(runCtx, attempt, done)

	return nil
}

// Attach mounts the session into its hosting view. It is the explicit lifecycle
// counterpart of Start and shares its preconditions.
func (s *Session[T]) Attach(ctx context.Context) error {
	return s.Start(ctx)
}

// Detach unmounts the session. The in-flight request, if any, is cancelled and its
// completion is ignored; afterwards the session state never changes again and
// lifecycle operations return ErrDetached. Detach is idempotent.
func (s *Session[T]) Detach() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.detached {
		return
	}

	s.detached = true

	if s.cancel != nil {
		s.cancel()
	}

	s.logger.Debug().Str("url", s.url).Str("status", s.status.String()).Msg("fetch session detached")
}

// Retry re-issues the request of a Failed session. The error message is cleared and the
// session becomes Pending before the new request is sent. Called in any other state it is a
// no-op that returns ErrRetryNotAllowed, which keeps at most one request in flight.
func (s *Session[T]) Retry() error {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()

	if s.detached {
		s.mu.Unlock()
		return ErrDetached
	}

	if !s.started || s.status != Failed {
		s.mu.Unlock()
		return ErrRetryNotAllowed
	}

	s.status = Pending
	s.errorMessage = ""
	attempt, done := s.launchLocked()
	ctx := s.ctx

	transition := Transition{
		URL:     s.url,
		From:    Failed,
		To:      Pending,
		Attempt: attempt,
		At:      time.Now(),
	}

	s.mu.Unlock()
	s.observers.Observe(transition)

	go s.run(ctx, attempt, done)

	return nil
}

// Wait blocks until the current attempt completes or ctx is done. It returns ErrNotStarted for a
// session that was never started. A completion ignored because of Detach still releases waiters.
func (s *Session[T]) Wait(ctx context.Context) error {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	if done == nil {
		return ErrNotStarted
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Status returns the current status.
func (s *Session[T]) Status() FetchStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.status
}

// Payload returns the decoded payload and true when the session is Success.
func (s *Session[T]) Payload() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != Success {
		var zero T
		return zero, false
	}

	return s.payload, true
}

// ErrorMessage returns the normalized error message and true when the session is Failed.
// The message may be empty when the failure carried no usable detail.
func (s *Session[T]) ErrorMessage() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != Failed {
		return "", false
	}

	return s.errorMessage, true
}

// Snapshot returns a consistent copy of the session state.
func (s *Session[T]) Snapshot() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	return State[T]{
		URL:          s.url,
		Status:       s.status,
		Payload:      s.payload,
		ErrorMessage: s.errorMessage,
		Attempt:      s.attempt,
	}
}

// Render produces the view for the current state. It has no side effects and may be called
// as often as the host likes: Pending yields a LoadingView, Failed an ErrorView wired to Retry,
// and Success whatever the renderer builds from the payload.
func (s *Session[T]) Render(renderer Renderer[T]) View {
	state := s.Snapshot()

	switch state.Status {
	case Success:
		return renderer.RenderWithData(state.Payload)
	case Failed:
		return ErrorView{
			Message:    DisplayMessage(state.ErrorMessage, s.genericErrorMessage),
			RetryLabel: RetryLabel,
			Retry:      s.Retry,
		}
	default:
		return LoadingView{Message: s.loadingMessage}
	}
}

// launchLocked opens a new attempt and returns its number and completion channel.
// The caller must hold s.mu.
func (s *Session[T]) launchLocked() (int, chan struct{}) {
	s.attempt++
	s.done = make(chan struct{})

	s.logger.Debug().Str("url", s.url).Int("attempt", s.attempt).Msg("fetch attempt started")

	return s.attempt, s.done
}

// run performs one attempt and applies its outcome. It always closes done, even when the
// outcome is discarded, so that Wait never blocks on an abandoned attempt.
func (s *Session[T]) run(ctx context.Context, attempt int, done chan struct{}) {
	defer close(done)

	started := time.Now()

	body, err := s.client.Get(ctx, s.url)

	var payload T
	if err == nil {
		payload, err = s.transcoder.Decode(body)
		if err != nil {
			err = &DecodeError{URL: s.url, Err: err}
		}
	}

	s.complete(attempt, payload, err, time.Since(started))
}

// complete applies the outcome of an attempt unless the session was detached or the attempt
// is no longer the current one.
func (s *Session[T]) complete(attempt int, payload T, err error, elapsed time.Duration) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()

	if s.detached || attempt != s.attempt {
		s.mu.Unlock()
		s.logger.Debug().Str("url", s.url).Int("attempt", attempt).Msg("ignoring late fetch completion")
		return
	}

	transition := Transition{
		URL:     s.url,
		From:    s.status,
		Attempt: attempt,
		Elapsed: elapsed,
		At:      time.Now(),
	}

	if err != nil {
		var zero T
		s.status = Failed
		s.payload = zero
		s.errorMessage = ErrorMessage(err)
		transition.Message = s.errorMessage

		s.logger.Warn().Err(err).Str("url", s.url).Int("attempt", attempt).Msg("fetch failed")
	} else {
		s.status = Success
		s.payload = payload
		s.errorMessage = ""

		s.logger.Debug().Str("url", s.url).Int("attempt", attempt).Dur("elapsed", elapsed).Msg("fetch succeeded")
	}

	transition.To = s.status

	s.mu.Unlock()
	s.observers.Observe(transition)
}
