package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// userAgent identifies the proxy to media providers.
const userAgent = "media-finder/1.0"

// HTTPClient embeds *resty.Client, so requests are built with R() as usual.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client rooted at baseURL that gives up after
// timeout and asks for JSON. A non-positive timeout leaves resty's default
// (no timeout) in place. Every call creates an independent connection pool.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
