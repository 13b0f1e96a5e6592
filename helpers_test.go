package fetcher

import (
	"context"
	"sync"
)

// stubResponse is one scripted answer of stubClient.
type stubResponse struct {
	body []byte
	err  error
}

// stubClient is a Client whose Get blocks until the test scripts a response.
// It deliberately ignores the request context so tests control exactly when a completion lands.
type stubClient struct {
	responses chan stubResponse

	mu          sync.Mutex
	calls       int
	inFlight    int
	maxInFlight int
	urls        []string
}

func newStubClient() *stubClient {
	return &stubClient{responses: make(chan stubResponse)}
}

func (c *stubClient) Get(_ context.Context, url string) ([]byte, error) {
	c.mu.Lock()
	c.calls++
	c.inFlight++
	c.urls = append(c.urls, url)
	if c.inFlight > c.maxInFlight {
		c.maxInFlight = c.inFlight
	}
	c.mu.Unlock()

	resp := <-c.responses

	c.mu.Lock()
	c.inFlight--
	c.mu.Unlock()

	return resp.body, resp.err
}

func (c *stubClient) stats() (calls, maxInFlight int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.calls, c.maxInFlight
}

// transitionRecorder collects transitions for later inspection.
type transitionRecorder struct {
	mu          sync.Mutex
	transitions []Transition
}

func (r *transitionRecorder) Observe(t Transition) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.transitions = append(r.transitions, t)
}

func (r *transitionRecorder) steps() [][2]FetchStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	steps := make([][2]FetchStatus, 0, len(r.transitions))
	for _, t := range r.transitions {
		steps = append(steps, [2]FetchStatus{t.From, t.To})
	}

	return steps
}

// countingRenderer records every payload it is asked to render.
type countingRenderer[T any] struct {
	mu       sync.Mutex
	payloads []T
}

func (r *countingRenderer[T]) RenderWithData(payload T) View {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.payloads = append(r.payloads, payload)

	return TextView("rendered")
}
