package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDo(t *testing.T) {
	t.Run("retries transient 5xx then succeeds", func(t *testing.T) {
		var calls int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			if calls == 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.Write([]byte(`{"ok":true}`))
		}))
		defer srv.Close()

		c := NewClient(ClientConfig{Timeout: time.Second, Retries: 2, RetryWait: time.Millisecond})
		body, status, err := c.Get(context.Background(), srv.URL, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != http.StatusOK {
			t.Errorf("status = %d, want 200", status)
		}
		if string(body) != `{"ok":true}` {
			t.Errorf("body = %q", body)
		}
		if calls != 2 {
			t.Errorf("calls = %d, want 2", calls)
		}
	})

	t.Run("exhausted retries return the last 5xx body", func(t *testing.T) {
		var calls int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":"upstream down"}`))
		}))
		defer srv.Close()

		c := NewClient(ClientConfig{Timeout: time.Second, Retries: 1, RetryWait: time.Millisecond})
		body, status, err := c.Get(context.Background(), srv.URL, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", status)
		}
		if string(body) != `{"error":"upstream down"}` {
			t.Errorf("body = %q", body)
		}
		if calls != 2 {
			t.Errorf("calls = %d, want 2 (initial + 1 retry)", calls)
		}
	})

	t.Run("posts JSON payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ct := r.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
			w.WriteHeader(http.StatusCreated)
		}))
		defer srv.Close()

		c := NewClient(ClientConfig{Timeout: time.Second, Retries: 0, RetryWait: time.Millisecond})
		_, status, err := c.Post(context.Background(), srv.URL, map[string]string{"k": "v"}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != http.StatusCreated {
			t.Errorf("status = %d, want 201", status)
		}
	})
}
