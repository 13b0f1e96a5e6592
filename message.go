package fetcher

import (
	"errors"
	"net/http"
)

// DefaultErrorMessage is the last-resort text shown for a failed fetch when neither the
// normalized error nor the caller's generic message yields anything.
const DefaultErrorMessage = "Error occurred while fetching data"

// RetryLabel is the caption of the retry affordance attached to every error view.
const RetryLabel = "Try again"

// statusMessages maps HTTP status codes to fixed human-readable messages.
// Only codes listed here produce a message; every other status falls through to an empty string.
var statusMessages = map[int]string{
	http.StatusUnauthorized: "Unauthorized API request. Please login",
}

// ErrorMessage normalizes a failed fetch into the message shown to the user.
// A structured detail supplied by the server wins over the status code mapping, which in turn
// wins over nothing at all. Transport and decode failures carry neither and yield an empty string,
// leaving the choice of fallback text to DisplayMessage.
func ErrorMessage(err error) string {
	var respErr *ResponseError
	if !errors.As(err, &respErr) {
		return ""
	}

	if respErr.Detail != "" {
		return respErr.Detail
	}

	return statusMessages[respErr.StatusCode]
}

// DisplayMessage picks the text rendered for a failed session: the normalized message first,
// then the caller's generic message, then DefaultErrorMessage.
func DisplayMessage(message, genericMessage string) string {
	if message != "" {
		return message
	}

	if genericMessage != "" {
		return genericMessage
	}

	return DefaultErrorMessage
}
