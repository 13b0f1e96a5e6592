package fetcher

import "context"

// Client is the outbound collaborator a session uses to reach the backend.
// It issues a single GET for the given resource identifier and returns the raw response body.
// Implementations report non-2xx responses as *ResponseError and unreachable hosts as *TransportError,
// so that sessions can normalize failures without knowing anything about the transport.
type Client interface {
	// Get retrieves the body of the resource identified by url. The context bounds the request and
	// is cancelled when the owning session is detached.
	Get(ctx context.Context, url string) ([]byte, error)
}

// Renderer is the capability a hosting view hands to a session to describe its success state.
// The session never knows how the payload is displayed; it only calls RenderWithData once the
// payload is available and returns whatever view the renderer produced.
type Renderer[T any] interface {
	// RenderWithData builds the view for a successfully fetched payload.
	RenderWithData(payload T) View
}

// RendererFunc adapts an ordinary function to the Renderer interface.
type RendererFunc[T any] func(payload T) View

// RenderWithData calls f(payload).
func (f RendererFunc[T]) RenderWithData(payload T) View {
	return f(payload)
}
