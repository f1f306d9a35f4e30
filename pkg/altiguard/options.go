package altiguard

import "net/http"

type Option func(*Client)

// WithURL overrides the default ingestion endpoint.
func WithURL(url string) Option {
	return func(c *Client) {
		c.apiURL = url
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithBufferSize sets the send buffer capacity. Default: 256.
func WithBufferSize(n int) Option {
	return func(c *Client) {
		c.bufSize = n
	}
}
