package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/altiguard/altiguard/internal/domain"
	errorsUtils "github.com/altiguard/altiguard/pkg/errors"
)

const defaultTimeout = 10 * time.Second

type Option func(*Webhook)

func WithClient(c *http.Client) Option {
	return func(w *Webhook) {
		w.client = c
	}
}

// Webhook posts a Slack-style {"text": ...} message to a configured URL.
type Webhook struct {
	url    string
	client *http.Client
}

func NewWebhook(url string, opts ...Option) *Webhook {
	w := &Webhook{
		url:    url,
		client: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Webhook) Notify(ctx context.Context, metric *domain.HealthMetric) error {
	payload := map[string]string{
		"text": fmt.Sprintf("AltiGuard Alert: tenant %s status is %s (score: %.2f)",
			metric.ApiKey, strings.ToUpper(string(metric.Status)), metric.Score),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook: HTTP %d", resp.StatusCode)
	}
	return nil
}
