package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"chat-render/internal/domain"
	"chat-render/internal/render"
)

type mockRenderer struct {
	html  string
	err   error
	calls int
}

func (m *mockRenderer) Render(_ domain.ChatMessage) (string, error) {
	m.calls++
	return m.html, m.err
}

type mapCache struct {
	data map[string]string
	sets int
}

func newMapCache() *mapCache {
	return &mapCache{data: make(map[string]string)}
}

func (c *mapCache) Get(_ context.Context, key string) (string, bool) {
	v, ok := c.data[key]
	return v, ok
}

func (c *mapCache) Set(_ context.Context, key, html string) {
	c.sets++
	c.data[key] = html
}

func TestRenderServiceRenderMessage(t *testing.T) {
	logger := zap.NewNop()

	t.Run("arma la vista completa", func(t *testing.T) {
		renderer := &mockRenderer{html: "<p>hola</p>"}
		svc := NewRenderService(logger, renderer, nil, render.RelativeTime)

		createdAt := time.Now().UTC().Add(-5 * time.Minute)
		msg := domain.ChatMessage{
			Sender:    domain.SenderAssistant,
			Text:      "hola",
			CreatedAt: createdAt,
			Context:   []domain.ContextSnippet{{Compiled: "# Nota", File: "a.md"}},
		}

		view, err := svc.RenderMessage(context.Background(), msg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.HTML != "<p>hola</p>" || view.Sender != domain.SenderAssistant {
			t.Fatalf("unexpected view: %+v", view)
		}
		if view.TimeDisplay != "5m ago" {
			t.Fatalf("expected relative time, got %q", view.TimeDisplay)
		}
		if len(view.Context) != 1 {
			t.Fatalf("references should pass through, got: %+v", view.Context)
		}
	})

	t.Run("hit de cache evita el renderer", func(t *testing.T) {
		renderer := &mockRenderer{html: "<p>uno</p>"}
		cache := newMapCache()
		svc := NewRenderService(logger, renderer, cache, render.RelativeTime)

		msg := domain.ChatMessage{Sender: domain.SenderUser, Text: "igual"}

		if _, err := svc.RenderMessage(context.Background(), msg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := svc.RenderMessage(context.Background(), msg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if renderer.calls != 1 {
			t.Fatalf("expected 1 render call, got %d", renderer.calls)
		}
		if cache.sets != 1 {
			t.Fatalf("expected 1 cache set, got %d", cache.sets)
		}
	})

	t.Run("intent distinto cambia la clave", func(t *testing.T) {
		renderer := &mockRenderer{html: "<p>x</p>"}
		cache := newMapCache()
		svc := NewRenderService(logger, renderer, cache, render.RelativeTime)

		plain := domain.ChatMessage{Text: "mismo texto"}
		image := domain.ChatMessage{Text: "mismo texto", Intent: &domain.Intent{Type: domain.IntentImagePNG}}

		_, _ = svc.RenderMessage(context.Background(), plain)
		_, _ = svc.RenderMessage(context.Background(), image)

		if renderer.calls != 2 {
			t.Fatalf("expected 2 render calls, got %d", renderer.calls)
		}
	})

	t.Run("timestamp cero usa ahora", func(t *testing.T) {
		renderer := &mockRenderer{html: "<p>x</p>"}
		svc := NewRenderService(logger, renderer, nil, render.RelativeTime)

		view, err := svc.RenderMessage(context.Background(), domain.ChatMessage{Text: "x"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.CreatedAt.IsZero() || view.TimeDisplay != "Just now" {
			t.Fatalf("expected fresh timestamp, got: %+v", view)
		}
	})

	t.Run("error del renderer se propaga", func(t *testing.T) {
		renderer := &mockRenderer{err: errors.New("boom")}
		svc := NewRenderService(logger, renderer, nil, render.RelativeTime)

		if _, err := svc.RenderMessage(context.Background(), domain.ChatMessage{Text: "x"}); err == nil {
			t.Fatal("expected error")
		}
	})
}
