// Package fetch implements the Fetcher interface.
// It performs HTTP GET requests with sensible defaults for recipe pages.
package fetch

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/gaurav-prasanna/recipegrab/core"
	"github.com/go-resty/resty/v2"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "recipegrab/1.0 (https://github.com/gaurav-prasanna/recipegrab)"
)

// HTTPFetcher fetches web pages via HTTP.
type HTTPFetcher struct {
	client *resty.Client
}

// New creates an HTTPFetcher. Zero values fall back to the defaults.
func New(timeout time.Duration, userAgent string) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "text/html,application/xhtml+xml")
	return &HTTPFetcher{client: client}
}

// ValidateURL checks that rawURL is an absolute http or https URL.
func ValidateURL(rawURL string) (*url.URL, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, fmt.Errorf("%w: %s", core.ErrInvalidURL, rawURL)
	}
	return parsed, nil
}

// Fetch retrieves the HTML content of the given URL. The result URL is the
// final URL after redirects.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) (*core.FetchResult, error) {
	if _, err := ValidateURL(rawURL); err != nil {
		return nil, err
	}

	resp, err := f.client.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode(), rawURL)
	}

	final := rawURL
	if raw := resp.RawResponse; raw != nil && raw.Request != nil && raw.Request.URL != nil {
		final = raw.Request.URL.String()
	}

	return &core.FetchResult{
		URL:        final,
		StatusCode: resp.StatusCode(),
		HTML:       string(resp.Body()),
	}, nil
}
