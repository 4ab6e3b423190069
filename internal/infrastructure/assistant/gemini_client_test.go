package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mixto_gestao/internal/config"
)

func newTestClient(url, key string) *GeminiClient {
	return NewGeminiClient(config.AssistantConfig{APIKey: key, Model: "test-model", BaseURL: url, TimeoutSeconds: 5})
}

func TestGeminiClient_Ask(t *testing.T) {
	t.Run("missing credential fails at call time", func(t *testing.T) {
		c := newTestClient("http://unused", "")
		if _, err := c.Ask(context.Background(), "sys", "q"); !errors.Is(err, ErrMissingAssistantCredential) {
			t.Fatalf("expected ErrMissingAssistantCredential, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/models/test-model:generateContent" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if r.Header.Get("x-goog-api-key") != "secret" {
				t.Errorf("missing api key header")
			}
			var body generateRequest
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body.SystemInstruction == nil || !strings.Contains(body.SystemInstruction.Parts[0].Text, "faturamento") {
				t.Errorf("expected system prompt, got %+v", body.SystemInstruction)
			}
			_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Faturamento total: "},{"text":"R$ 300,00"}]}}]}`))
		}))
		defer srv.Close()

		got, err := newTestClient(srv.URL, "secret").Ask(context.Background(), "faturamento", "Quanto faturei?")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "Faturamento total: R$ 300,00" {
			t.Fatalf("unexpected answer %q", got)
		}
	})

	cases := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{name: "unauthorized", status: http.StatusForbidden, want: ErrUnauthorized},
		{name: "rate limited", status: http.StatusTooManyRequests, want: ErrRateLimited},
		{name: "empty answer", status: http.StatusOK, body: `{"candidates":[]}`, want: ErrEmptyAnswer},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := newTestClient(srv.URL, "secret").Ask(context.Background(), "", "q")
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()
		if _, err := newTestClient(srv.URL, "secret").Ask(context.Background(), "", "q"); err == nil {
			t.Fatalf("expected error")
		}
	})
}
