// Package panels defines the console panels backed by registry API resources. Each panel pairs a
// resource URL and its user-facing messages with a renderer for the decoded payload.
package panels

import (
	"github.com/rs/zerolog"

	fetcher "github.com/spacemagneto/panel-fetcher"
)

// Panel describes one view that fetches a single resource of type T.
type Panel[T any] struct {
	Title               string
	URL                 string
	LoadingMessage      string
	GenericErrorMessage string
	Renderer            fetcher.Renderer[T]
}

// NewSession creates a fetch session for the panel's resource.
func (p Panel[T]) NewSession(client fetcher.Client, logger zerolog.Logger, observers ...fetcher.Observer) (*fetcher.Session[T], error) {
	return fetcher.NewSession[T](client, p.URL,
		fetcher.WithLoadingMessage[T](p.LoadingMessage),
		fetcher.WithGenericErrorMessage[T](p.GenericErrorMessage),
		fetcher.WithLogger[T](logger),
		fetcher.WithObserver[T](fetcher.Observers(observers)),
	)
}
