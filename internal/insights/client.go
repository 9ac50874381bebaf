package insights

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/aadhaar-sanket/sanket/internal/errors"
)

// Path is the insights endpoint relative to the backend base URL.
const Path = "/api/insights"

// Client loads the insights payload with a single GET. It never retries and
// sends no custom headers.
type Client struct {
	url        string
	httpClient *http.Client
	strict     bool
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithStrictSchema enables row validation after decoding.
func WithStrictSchema(strict bool) ClientOption {
	return func(c *Client) {
		c.strict = strict
	}
}

// NewClient returns a Client for baseURL. Path is joined onto the base
// path; trailing slashes, a query and a fragment on baseURL are dropped.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		url:        endpoint(baseURL),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func endpoint(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return strings.TrimRight(baseURL, "/") + Path
	}
	u.RawQuery, u.Fragment, u.RawFragment = "", "", ""
	return u.JoinPath(Path).String()
}

// URL returns the endpoint the client requests.
func (c *Client) URL() string {
	return c.url
}

// Fetch performs GET {base_url}/api/insights and decodes the body.
//
// Every failure is an *errors.FetchError naming the stage that failed:
// transport (including context cancellation and deadline), status for any
// non-2xx response, decode for malformed JSON, and validate for strict-mode
// row violations.
func (c *Client) Fetch(ctx context.Context) (*Payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, errors.NewFetchError(c.url, errors.StageTransport, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		fetchErr := errors.NewFetchError(c.url, errors.StageTransport, classifyTransport(ctx, err))
		if errors.Is(ctx.Err(), context.Canceled) {
			fetchErr = fetchErr.WithSeverity(errors.SeverityInfo)
		}
		return nil, fetchErr
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewFetchError(c.url, errors.StageStatus,
			fmt.Errorf("%w: %s", errors.ErrUnexpectedStatus, resp.Status)).
			WithStatusCode(resp.StatusCode)
	}

	payload, err := Decode(resp.Body, DecodeOptions{Strict: c.strict})
	if err != nil {
		stage := errors.StageDecode
		if errors.Is(err, errors.ErrInvalidInput) {
			stage = errors.StageValidate
		}
		return nil, errors.NewFetchError(c.url, stage, err).WithStatusCode(resp.StatusCode)
	}

	return payload, nil
}

// classifyTransport tags context endings so callers can tell a timeout or
// a disposed view apart from a refused connection.
func classifyTransport(ctx context.Context, err error) error {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", errors.ErrTimeout, err)
	case errors.Is(ctx.Err(), context.Canceled):
		return fmt.Errorf("%w: %w", errors.ErrCanceled, err)
	default:
		return fmt.Errorf("%w: %w", errors.ErrTransport, err)
	}
}
