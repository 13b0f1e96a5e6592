package fetcher

// View is the output of rendering a session. Concrete views are plain values; hosts decide how
// to draw them by switching on the concrete type and may fall back to String for plain text.
type View interface {
	String() string
}

// LoadingView is produced while a session is Pending.
type LoadingView struct {
	Message string
}

// String returns the loading message.
func (v LoadingView) String() string {
	return v.Message
}

// ErrorView is produced while a session is Failed. Message is already resolved through the
// fallback chain, and Retry re-enters the session's state machine when invoked.
type ErrorView struct {
	Message    string
	RetryLabel string
	Retry      func() error
}

// String returns the error message followed by the retry caption.
func (v ErrorView) String() string {
	if v.RetryLabel == "" {
		return v.Message
	}
	return v.Message + " [" + v.RetryLabel + "]"
}

// TextView is a minimal success view for renderers that only need to show text.
type TextView string

// String returns the text.
func (v TextView) String() string {
	return string(v)
}
