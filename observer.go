package fetcher

import "time"

// Transition records one applied status change of a session.
// Late completions that arrive after a session was detached, or that belong to a superseded
// attempt, are never turned into transitions.
type Transition struct {
	URL     string        `json:"url"`
	From    FetchStatus   `json:"from"`
	To      FetchStatus   `json:"to"`
	Attempt int           `json:"attempt"`
	Message string        `json:"message,omitempty"`
	Elapsed time.Duration `json:"elapsed,omitempty"`
	At      time.Time     `json:"at"`
}

// Observer receives every transition a session applies, in the order they were applied.
// Observe runs synchronously on the goroutine that performed the transition. Implementations may
// read the session's state, but must not call Retry on the same session from inside Observe.
// A slow observer delays the next transition, never Render.
type Observer interface {
	Observe(Transition)
}

// ObserverFunc adapts an ordinary function to the Observer interface.
type ObserverFunc func(Transition)

// Observe calls f(t).
func (f ObserverFunc) Observe(t Transition) {
	f(t)
}

// Observers fans a transition out to every observer in the slice, in order.
type Observers []Observer

// Observe forwards t to each non-nil observer.
func (o Observers) Observe(t Transition) {
	for _, observer := range o {
		if observer != nil {
			observer.Observe(t)
		}
	}
}

// Notifier is a coalescing wake-up signal for hosts that re-render on change.
// It holds at most one pending notification; hosts read the current state when woken,
// so dropping intermediate signals never loses the latest state.
type Notifier chan struct{}

// NewNotifier returns a Notifier ready to be passed as an Observer.
func NewNotifier() Notifier {
	return make(Notifier, 1)
}

// Observe signals the host without ever blocking the session.
func (n Notifier) Observe(Transition) {
	select {
	case n <- struct{}{}:
	default:
	}
}
