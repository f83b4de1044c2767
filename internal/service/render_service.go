package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"go.uber.org/zap"

	"chat-render/internal/domain"
)

// messageRenderer es lo minimo que el servicio necesita del pipeline.
type messageRenderer interface {
	Render(msg domain.ChatMessage) (string, error)
}

// RenderCache guarda HTML ya renderizado por clave de contenido. Un miss se
// reporta con ok=false; los errores del backend de cache no son fatales.
type RenderCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, html string)
}

type relativeTimeFunc func(t, now time.Time) string

// RenderService arma la vista final de un mensaje: HTML sanitizado,
// timestamp relativo y las referencias que el mensaje ya trae.
type RenderService struct {
	logger   *zap.Logger
	renderer messageRenderer
	cache    RenderCache
	relTime  relativeTimeFunc
	now      func() time.Time
}

func NewRenderService(logger *zap.Logger, renderer messageRenderer, cache RenderCache, relTime relativeTimeFunc) *RenderService {
	return &RenderService{
		logger:   logger,
		renderer: renderer,
		cache:    cache,
		relTime:  relTime,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// RenderMessage renderiza el mensaje, pasando por cache cuando hay una.
func (s *RenderService) RenderMessage(ctx context.Context, msg domain.ChatMessage) (domain.MessageView, error) {
	key := cacheKey(msg)

	html, hit := "", false
	if s.cache != nil {
		html, hit = s.cache.Get(ctx, key)
	}
	if !hit {
		var err error
		html, err = s.renderer.Render(msg)
		if err != nil {
			return domain.MessageView{}, fmt.Errorf("render message: %w", err)
		}
		if s.cache != nil {
			s.cache.Set(ctx, key, html)
		}
	}

	createdAt := msg.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now()
	}

	return domain.MessageView{
		Sender:        msg.Sender,
		HTML:          html,
		CreatedAt:     createdAt,
		TimeDisplay:   s.relTime(createdAt, s.now()),
		Context:       msg.Context,
		OnlineContext: msg.OnlineContext,
	}, nil
}

// cacheKey identifica el HTML por lo unico que lo determina: texto e intent.
func cacheKey(msg domain.ChatMessage) string {
	h := sha256.New()
	h.Write([]byte(msg.Text))
	if msg.Intent != nil {
		h.Write([]byte{0})
		h.Write([]byte(msg.Intent.Type))
		for _, q := range msg.Intent.InferredQueries {
			h.Write([]byte{0})
			h.Write([]byte(q))
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}
