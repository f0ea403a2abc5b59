package carriers

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/matzehuels/parceltrack/pkg/errors"
	"github.com/matzehuels/parceltrack/pkg/observability"
)

// maxBody bounds how much of an upstream response is read.
const maxBody = 4 << 20

// Client performs the outbound HTTP calls of markup-scraping providers.
// There are no retries: one call, one attempt.
type Client struct {
	http *http.Client
}

// NewClient returns a Client using http.DefaultTransport. Timeouts are set
// per request from the carrier configuration.
func NewClient() *Client {
	return &Client{http: &http.Client{}}
}

// NewClientWith wraps an existing http.Client, e.g. httptest's.
func NewClientWith(hc *http.Client) *Client {
	return &Client{http: hc}
}

// Request describes one outbound call.
type Request struct {
	Method    string
	URL       string
	Form      url.Values
	UserAgent string
	Timeout   time.Duration
}

// Do sends req and returns the response body. Non-2xx responses and
// transport failures come back as UPSTREAM errors.
func (c *Client) Do(ctx context.Context, req Request) ([]byte, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	var body io.Reader
	if req.Form != nil {
		body = strings.NewReader(req.Form.Encode())
	}
	hreq, err := http.NewRequestWithContext(ctx, method, req.URL, body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnexpected, err, "build request")
	}
	if req.Form != nil {
		hreq.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
	}
	if req.UserAgent != "" {
		hreq.Header.Set("User-Agent", req.UserAgent)
	}
	hreq.Header.Set("Accept", "text/html,application/json;q=0.9,*/*;q=0.8")

	hooks := observability.HTTP()
	host, path := hreq.URL.Host, hreq.URL.Path
	hooks.OnRequest(ctx, method, host, path)
	start := time.Now()

	resp, err := c.http.Do(hreq)
	if err != nil {
		hooks.OnError(ctx, method, host, path, err)
		return nil, Classify(err)
	}
	defer resp.Body.Close()
	hooks.OnResponse(ctx, method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBody+1))
	if err != nil {
		hooks.OnError(ctx, method, host, path, err)
		return nil, errors.Wrap(errors.ErrCodeUpstream, err, "carrier response was cut short")
	}
	if len(data) > maxBody {
		return nil, errors.New(errors.ErrCodeUpstream, "carrier response exceeds %d bytes", maxBody)
	}
	return data, nil
}

// PostForm is Do with a urlencoded POST body.
func (c *Client) PostForm(ctx context.Context, target string, form url.Values, userAgent string, timeout time.Duration) ([]byte, error) {
	return c.Do(ctx, Request{
		Method:    http.MethodPost,
		URL:       target,
		Form:      form,
		UserAgent: userAgent,
		Timeout:   timeout,
	})
}

func checkStatus(code int) error {
	if code >= 200 && code < 300 {
		return nil
	}
	return errors.New(errors.ErrCodeUpstream, "carrier answered with status %d", code)
}
