package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chat-render/internal/domain"
	"chat-render/internal/feedback"
	"chat-render/internal/render"
	"chat-render/internal/service"
)

func newTestRouter(sender feedback.Sender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	renderSvc := service.NewRenderService(logger, render.NewRenderer(""), nil, render.RelativeTime)
	chatH := NewChatHandler(logger, renderSvc, sender)
	searchH := NewSearchHandler(logger, nil)
	return NewRouter(logger, chatH, searchH)
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRenderMessageEndpoint(t *testing.T) {
	router := newTestRouter(&feedback.MockSender{})

	t.Run("mensaje markdown", func(t *testing.T) {
		w := postJSON(t, router, "/api/chat/render", map[string]interface{}{
			"sender":     "assistant",
			"text":       "Hola **mundo**",
			"created_at": time.Now().UTC().Add(-2 * time.Minute),
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp struct {
			Message domain.MessageView `json:"message"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if !strings.Contains(resp.Message.HTML, "<strong>mundo</strong>") {
			t.Fatalf("expected rendered html, got: %s", resp.Message.HTML)
		}
		if resp.Message.TimeDisplay != "2m ago" {
			t.Fatalf("expected relative time, got %q", resp.Message.TimeDisplay)
		}
	})

	t.Run("texto requerido", func(t *testing.T) {
		w := postJSON(t, router, "/api/chat/render", map[string]interface{}{"sender": "you"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("sender vacio usa assistant", func(t *testing.T) {
		w := postJSON(t, router, "/api/chat/render", map[string]interface{}{"text": "hola"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Message domain.MessageView `json:"message"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Message.Sender != domain.SenderAssistant {
			t.Fatalf("expected default sender, got %q", resp.Message.Sender)
		}
	})
}

func TestPostFeedbackEndpoint(t *testing.T) {
	t.Run("feedback valido se acepta y reenvia", func(t *testing.T) {
		sender := &feedback.MockSender{}
		router := newTestRouter(sender)

		w := postJSON(t, router, "/api/chat/feedback", map[string]string{
			"uquery":    "que es go",
			"kquery":    "Go es...",
			"sentiment": "positive",
		})
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d: %s", w.Code, w.Body.String())
		}

		// El reenvio es asincrono.
		deadline := time.Now().Add(2 * time.Second)
		for {
			if fb, ok := sender.LastSent(); ok {
				if fb.UQuery != "que es go" || fb.Sentiment != domain.SentimentPositive {
					t.Fatalf("unexpected relayed feedback: %+v", fb)
				}
				break
			}
			if time.Now().After(deadline) {
				t.Fatal("feedback never relayed")
			}
			time.Sleep(10 * time.Millisecond)
		}
	})

	t.Run("sentiment invalido es 400", func(t *testing.T) {
		sender := &feedback.MockSender{}
		router := newTestRouter(sender)

		w := postJSON(t, router, "/api/chat/feedback", map[string]string{
			"uquery":    "a",
			"kquery":    "b",
			"sentiment": "meh",
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("campos faltantes es 400", func(t *testing.T) {
		router := newTestRouter(&feedback.MockSender{})
		w := postJSON(t, router, "/api/chat/feedback", map[string]string{"sentiment": "positive"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("falla del upstream no cambia la respuesta", func(t *testing.T) {
		sender := &feedback.MockSender{Err: errors.New("upstream down")}
		router := newTestRouter(sender)

		w := postJSON(t, router, "/api/chat/feedback", map[string]string{
			"uquery":    "a",
			"kquery":    "b",
			"sentiment": "negative",
		})
		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202 despite upstream failure, got %d", w.Code)
		}
	})
}
