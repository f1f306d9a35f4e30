// Package altiguard is the client SDK for shipping request/response
// pairs to an AltiGuard ingestion endpoint. Delivery is best-effort:
// Log never blocks the caller and confirms nothing.
package altiguard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	DefaultURL = "http://127.0.0.1:8000/api/v1/log"

	defaultBufferSize   = 256
	defaultDrainTimeout = 5 * time.Second
	defaultHTTPTimeout  = 10 * time.Second
)

type payload struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// Client ships logs from a background goroutine fed by a buffered
// channel. When the buffer is full the log is dropped with a warning.
type Client struct {
	apiURL string
	apiKey string
	client *http.Client

	bufSize   int
	ch        chan payload
	done      chan struct{}
	closeOnce sync.Once
}

func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiURL:  DefaultURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: defaultHTTPTimeout},
		bufSize: defaultBufferSize,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.ch = make(chan payload, c.bufSize)
	c.done = make(chan struct{})
	go c.drain()

	return c
}

// Log enqueues one interaction for delivery and returns immediately.
func (c *Client) Log(input, output string) {
	select {
	case c.ch <- payload{Input: input, Output: output}:
	default:
		log.Warn("altiguard: send buffer full, dropping log")
	}
}

// Close stops accepting logs and waits for the pending buffer to
// drain, bounded by a timeout.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.ch)
		select {
		case <-c.done:
		case <-time.After(defaultDrainTimeout):
			log.Warn("altiguard: drain timed out on close")
		}
	})
}

func (c *Client) drain() {
	defer close(c.done)
	for p := range c.ch {
		if err := c.send(p); err != nil {
			log.Warnf("altiguard: failed to send log: %v", err)
		}
	}
}

func (c *Client) send(p payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return nil
}
