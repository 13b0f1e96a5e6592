package fetcher

import "fmt"

// FetchStatus represents the lifecycle state of a fetch session.
// A session holds exactly one status at a time and moves between states only through
// request completion or an explicit retry, never through direct assignment by callers.
type FetchStatus int

const (
	// Pending indicates a request is in flight or the session has not been started yet.
	// Every session begins in this state and returns to it when a retry is issued.
	Pending FetchStatus = iota
	// Success indicates the request completed and the decoded payload is available.
	// It is terminal: a successful session stays immutable until it is discarded.
	Success
	// Failed indicates the request completed with an error and the payload is absent.
	// The only way out of this state is a user initiated retry.
	Failed
)

// String returns the lowercase name of the status as used in logs, metrics and journal entries.
func (s FetchStatus) String() string {
	switch s {
	case Pending:
		return "pending"
	case Success:
		return "success"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("FetchStatus(%d)", int(s))
	}
}

// MarshalText encodes the status as its name so journal entries stay human-readable.
func (s FetchStatus) MarshalText() ([]byte, error) {
	switch s {
	case Pending, Success, Failed:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStatus, int(s))
	}
}

// UnmarshalText decodes a status previously produced by MarshalText.
func (s *FetchStatus) UnmarshalText(text []byte) error {
	switch string(text) {
	case "pending":
		*s = Pending
	case "success":
		*s = Success
	case "failed":
		*s = Failed
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStatus, string(text))
	}

	return nil
}
