package pixhost

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/matchdayhq/leaguedesk/internal/platform/resilience"
)

func TestClient_StoreAndDelete(t *testing.T) {
	t.Parallel()

	var deleted atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			if r.Header.Get("Authorization") != "Bearer test-key" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			if err := r.ParseMultipartForm(1 << 20); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			file, header, err := r.FormFile(uploadFieldName)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			defer file.Close()
			if header.Filename != "team-logo-1.png" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"url":"https://img.example.com/abc123.png"}`))
		case http.MethodDelete:
			deleted.Store(true)
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, APIKey: "test-key"})

	url, err := client.Store(context.Background(), "team-logo-1.png", []byte{0x89, 0x50, 0x4e, 0x47})
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if url != "https://img.example.com/abc123.png" {
		t.Fatalf("unexpected url: %s", url)
	}

	if err := client.Delete(context.Background(), url); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !deleted.Load() {
		t.Fatal("delete request never reached the host")
	}
}

func TestClient_Store_NonRetryableStatusFailsFast(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{BaseURL: server.URL, MaxRetries: 3})

	if _, err := client.Store(context.Background(), "photo", []byte{0x01}); err == nil {
		t.Fatal("expected error for 422 response")
	}
	if calls.Load() != 1 {
		t.Fatalf("non-retryable status must not be retried, got %d calls", calls.Load())
	}
}

func TestClient_CircuitBreakerRejectsAfterFailures(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL: server.URL,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 1,
		},
	})

	if _, err := client.Store(context.Background(), "photo", []byte{0x01}); err == nil {
		t.Fatal("expected error for 503 response")
	}

	_, err := client.Store(context.Background(), "photo", []byte{0x01})
	if err == nil {
		t.Fatal("expected circuit breaker rejection")
	}
	if state := client.breaker.State(); state != resilience.CircuitStateOpen {
		t.Fatalf("expected open breaker, got %s", state)
	}
}

func TestSanitizeName(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"":                   "upload",
		"  team logo.png  ":  "team-logo.png",
		"player/photo?1.jpg": "player-photo-1.jpg",
		"plain-name_01.webp": "plain-name_01.webp",
	}
	for in, want := range cases {
		if got := sanitizeName(in); got != want {
			t.Fatalf("sanitizeName(%q) = %q, want %q", in, got, want)
		}
	}
}
