package seo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Fetcher defines how the engine retrieves a page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Response, error)
}

// Response is the part of an HTTP response the engine inspects. The caller
// must close Body.
type Response struct {
	StatusCode  int
	StatusText  string
	ContentType string
	Body        io.ReadCloser
}

// limitedReadCloser reads from a LimitReader but closes the original body.
type limitedReadCloser struct {
	io.Reader
	io.Closer
}

// HTTPClient implements Fetcher using a real HTTP client.
type HTTPClient struct {
	client *http.Client
}

// ClientOptions tunes NewHTTPClient.
type ClientOptions struct {
	// Timeout bounds the whole exchange including the body read.
	Timeout time.Duration
	// AllowPrivateNetworks disables the private address guard. Local
	// development only.
	AllowPrivateNetworks bool
}

const (
	maxRedirects    = 5
	maxResponseBody = 10 << 20 // 10 MB

	// UserAgent identifies the analyzer to the sites it fetches.
	UserAgent = "SEO-Analyzer-Tool/1.0"
)

var (
	errTooManyRedirects = errors.New("too many redirects")
	errBlockedRedirect  = errors.New("redirect to non-http(s) scheme blocked")
)

// NewHTTPClient returns a Fetcher backed by an http.Client with a dedicated
// transport that blocks connections to private/reserved IP ranges, and
// redirect validation that prevents SSRF via redirect chains.
func NewHTTPClient(opts ClientOptions) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				DialContext:         safeDialer(opts.AllowPrivateNetworks).DialContext,
				TLSHandshakeTimeout: 10 * time.Second,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     90 * time.Second,
			},
			CheckRedirect: safeRedirectPolicy,
		},
	}
}

// safeRedirectPolicy validates redirect targets and limits the redirect chain length.
func safeRedirectPolicy(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return fmt.Errorf("%w: stopped after %d", errTooManyRedirects, maxRedirects)
	}
	if req.URL.Scheme != "http" && req.URL.Scheme != "https" {
		return fmt.Errorf("%w: %s", errBlockedRedirect, req.URL.Scheme)
	}
	return nil
}

// Fetch issues a GET for targetURL. A non-success status is not an error
// here; the engine decides what to do with it.
func (c *HTTPClient) Fetch(ctx context.Context, targetURL string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := c.client.Do(req) //nolint:bodyclose // body is returned to caller via limitedReadCloser
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode:  resp.StatusCode,
		StatusText:  statusText(resp),
		ContentType: resp.Header.Get("Content-Type"),
		Body: &limitedReadCloser{
			Reader: io.LimitReader(resp.Body, maxResponseBody),
			Closer: resp.Body,
		},
	}, nil
}

// statusText returns the reason phrase the server sent, falling back to the
// standard text for the code.
func statusText(resp *http.Response) string {
	if text, ok := strings.CutPrefix(resp.Status, strconv.Itoa(resp.StatusCode)+" "); ok && text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}
