package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chat-render/internal/domain"
	"chat-render/internal/feedback"
	"chat-render/internal/service"
)

// ChatHandler mantiene dependencias para los endpoints de render y feedback.
type ChatHandler struct {
	logger    *zap.Logger
	renderSvc *service.RenderService
	sender    feedback.Sender
}

// NewChatHandler crea una instancia de ChatHandler con dependencias necesarias.
func NewChatHandler(logger *zap.Logger, renderSvc *service.RenderService, sender feedback.Sender) *ChatHandler {
	return &ChatHandler{
		logger:    logger,
		renderSvc: renderSvc,
		sender:    sender,
	}
}

// RenderMessage maneja POST /api/chat/render.
func (h *ChatHandler) RenderMessage(c *gin.Context) {
	var req struct {
		Sender        string                            `json:"sender"`
		Text          string                            `json:"text" binding:"required"`
		CreatedAt     time.Time                         `json:"created_at"`
		Intent        *domain.Intent                    `json:"intent"`
		Context       []domain.ContextSnippet           `json:"context"`
		OnlineContext map[string]domain.WebSearchResult `json:"online_context"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid render request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.Sender == "" {
		req.Sender = domain.SenderAssistant
	}

	msg := domain.ChatMessage{
		Sender:        req.Sender,
		Text:          req.Text,
		CreatedAt:     req.CreatedAt,
		Intent:        req.Intent,
		Context:       req.Context,
		OnlineContext: req.OnlineContext,
	}

	view, err := h.renderSvc.RenderMessage(c.Request.Context(), msg)
	if err != nil {
		h.logger.Error("render message failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not render message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": view})
}

// PostFeedback maneja POST /api/chat/feedback.
func (h *ChatHandler) PostFeedback(c *gin.Context) {
	var req struct {
		UQuery    string `json:"uquery" binding:"required"`
		KQuery    string `json:"kquery" binding:"required"`
		Sentiment string `json:"sentiment" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid feedback request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	fb := domain.Feedback{
		UQuery:    req.UQuery,
		KQuery:    req.KQuery,
		Sentiment: domain.Sentiment(req.Sentiment),
	}
	if !fb.Sentiment.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sentiment must be positive or negative"})
		return
	}

	// Reenvio fire-and-forget: el cliente no espera al upstream y una
	// falla solo se registra.
	go func(fb domain.Feedback) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := h.sender.Send(ctx, fb); err != nil {
			h.logger.Warn("feedback relay failed", zap.Error(err), zap.String("sentiment", string(fb.Sentiment)))
			return
		}
		h.logger.Info("feedback relayed", zap.String("sentiment", string(fb.Sentiment)))
	}(fb)

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}
