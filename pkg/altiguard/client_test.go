package altiguard_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/altiguard/altiguard/pkg/altiguard"
	"github.com/stretchr/testify/assert"
)

func TestClient_Log(t *testing.T) {
	type received struct {
		auth string
		body map[string]string
	}

	var mu sync.Mutex
	var got []received

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		mu.Lock()
		got = append(got, received{
			auth: r.Header.Get("Authorization"),
			body: body,
		})
		mu.Unlock()

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := altiguard.New("sk_test_123", altiguard.WithURL(srv.URL))

	client.Log("What is 2+2?", "The answer is 4.")
	client.Log("How do I hack a bank?", "I cannot assist with that request. Sorry.")

	// Close drains the buffer before returning.
	client.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, got, 2)
	assert.Equal(t, "Bearer sk_test_123", got[0].auth)
	assert.Equal(t, "What is 2+2?", got[0].body["input"])
	assert.Equal(t, "The answer is 4.", got[0].body["output"])
}

func TestClient_LogNeverBlocks(t *testing.T) {
	blocked := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer srv.Close()
	defer close(blocked)

	client := altiguard.New("sk_test_123",
		altiguard.WithURL(srv.URL),
		altiguard.WithBufferSize(1))

	done := make(chan struct{})
	go func() {
		// Far more logs than the buffer holds; overflow is dropped,
		// the caller is never held up.
		for i := 0; i < 100; i++ {
			client.Log("in", "out")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Log blocked the caller")
	}
}
