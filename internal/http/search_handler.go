package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chat-render/internal/service"
)

// SearchHandler mantiene dependencias para el endpoint de contexto.
type SearchHandler struct {
	logger    *zap.Logger
	searchSvc *service.TextSearchService
}

func NewSearchHandler(logger *zap.Logger, searchSvc *service.TextSearchService) *SearchHandler {
	return &SearchHandler{logger: logger, searchSvc: searchSvc}
}

// GetContext maneja GET /api/chat/context.
func (h *SearchHandler) GetContext(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	n := 5
	if raw := c.Query("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "n must be a positive integer"})
			return
		}
		n = parsed
	}

	results, err := h.searchSvc.Search(c.Request.Context(), query, n)
	if err != nil {
		h.logger.Error("context search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not search context"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"query": query, "results": results})
}
