package feedback

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"chat-render/internal/domain"
)

func TestHTTPSenderSend(t *testing.T) {
	t.Run("payload en el wire", func(t *testing.T) {
		var got map[string]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("unexpected method: %s", r.Method)
			}
			if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
				t.Errorf("decode body: %v", err)
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		s, err := NewHTTPSender(srv.URL)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		fb := domain.Feedback{UQuery: "que es go", KQuery: "Go es un lenguaje...", Sentiment: domain.SentimentPositive}
		if err := s.Send(context.Background(), fb); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got["uquery"] != "que es go" || got["kquery"] != "Go es un lenguaje..." || got["sentiment"] != "positive" {
			t.Fatalf("unexpected wire payload: %v", got)
		}
	})

	t.Run("status de error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		s, _ := NewHTTPSender(srv.URL)
		fb := domain.Feedback{UQuery: "a", KQuery: "b", Sentiment: domain.SentimentNegative}
		if err := s.Send(context.Background(), fb); err == nil {
			t.Fatal("expected error on 500")
		}
	})

	t.Run("sentiment invalido no sale al wire", func(t *testing.T) {
		called := false
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer srv.Close()

		s, _ := NewHTTPSender(srv.URL)
		if err := s.Send(context.Background(), domain.Feedback{Sentiment: "meh"}); err == nil {
			t.Fatal("expected error for invalid sentiment")
		}
		if called {
			t.Fatal("upstream should not be called")
		}
	})

	t.Run("url vacia falla el constructor", func(t *testing.T) {
		if _, err := NewHTTPSender("  "); err == nil {
			t.Fatal("expected error for empty url")
		}
	})
}
