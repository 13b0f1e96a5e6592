package fetcher

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// defaultTimeout bounds a single request made by the default HTTP client.
const defaultTimeout = 30 * time.Second

// Settings holds the connection settings shared by every request of an application.
// They are resolved once at startup and handed to the client explicitly.
type Settings struct {
	// BaseURL is joined with host-relative identifiers such as "/api/me".
	BaseURL string
	// Token, when set, is sent as "Authorization: token <Token>".
	Token string
}

// HTTPClient is the default Client. It issues plain GET requests, adds nothing but the ambient
// authorization header, and classifies failures into *ResponseError and *TransportError.
type HTTPClient struct {
	httpClient *http.Client
	settings   Settings
	timeout    time.Duration
	logger     zerolog.Logger
}

// NewHTTPClient function constructs an HTTPClient with the provided options applied.
// When no *http.Client is supplied, it builds one whose transport is instrumented with
// OpenTelemetry so that every fetch attempt shows up as a client span.
func NewHTTPClient(opts ...clientOptions) *HTTPClient {
	client := &HTTPClient{logger: zerolog.Nop()}

	for _, opt := range opts {
		opt(client)
	}

	if client.timeout <= 0 {
		client.timeout = defaultTimeout
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   client.timeout,
		}
	}

	return client
}

// Get performs one GET request against rawURL and returns the response body for 2xx responses.
func (c *HTTPClient) Get(ctx context.Context, rawURL string) ([]byte, error) {
	target := c.Resolve(rawURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &TransportError{URL: target, Err: err}
	}

	if c.settings.Token != "" {
		req.Header.Set("Authorization", "token "+c.settings.Token)
	}

	c.logger.Debug().Str("url", target).Msg("sending request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: target, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: target, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Debug().Str("url", target).Int("status", resp.StatusCode).Msg("request rejected")

		return nil, &ResponseError{
			URL:        target,
			StatusCode: resp.StatusCode,
			Detail:     parseDetail(body),
			Body:       body,
		}
	}

	return body, nil
}

// Resolve returns the absolute URL a request for rawURL is sent to.
// Absolute URLs are used unchanged and scheme-relative ones ("//host/x") take the base URL's
// scheme. Anything else is joined onto the base URL with exactly one slash between the two
// parts, keeping any path prefix of the base. Without a base URL the identifier is returned as is.
func (c *HTTPClient) Resolve(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err == nil && parsed.IsAbs() {
		return rawURL
	}

	if c.settings.BaseURL == "" {
		return rawURL
	}

	if err == nil && parsed.Host != "" {
		if base, err := url.Parse(c.settings.BaseURL); err == nil {
			return base.ResolveReference(parsed).String()
		}
	}

	return strings.TrimRight(c.settings.BaseURL, "/") + "/" + strings.TrimLeft(rawURL, "/")
}

// parseDetail extracts the "detail" field of an error body. Only a non-empty string counts;
// structured details such as validation error lists are left to the status code mapping.
func parseDetail(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var payload struct {
		Detail any `json:"detail"`
	}

	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	detail, _ := payload.Detail.(string)

	return detail
}
