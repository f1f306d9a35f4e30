package notifier_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/altiguard/altiguard/internal/domain"
	"github.com/altiguard/altiguard/internal/notifier"
	"github.com/stretchr/testify/assert"
)

func criticalMetric() *domain.HealthMetric {
	return &domain.HealthMetric{
		ApiKey:     "sk_test_123",
		MetricType: domain.MetricTypeRefusalScore,
		Score:      0.6,
		Status:     domain.StatusCritical,
	}
}

func TestWebhook_Notify(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	w := notifier.NewWebhook(srv.URL)

	err := w.Notify(context.Background(), criticalMetric())

	assert.NoError(t, err)
	assert.Contains(t, got["text"], "sk_test_123")
	assert.Contains(t, got["text"], "CRITICAL")
	assert.Contains(t, got["text"], "0.60")
}

func TestWebhook_Notify_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	w := notifier.NewWebhook(srv.URL)

	assert.Error(t, w.Notify(context.Background(), criticalMetric()))
}

func TestNop_Notify(t *testing.T) {
	assert.NoError(t, notifier.Nop{}.Notify(context.Background(), criticalMetric()))
}
