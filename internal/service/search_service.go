package service

import (
	"context"
	"fmt"
	"strings"

	pgvector "github.com/pgvector/pgvector-go"
	"go.uber.org/zap"

	"chat-render/internal/domain"
	"chat-render/internal/llm"
	"chat-render/internal/repository"
)

// TextSearchService busca entries que respondan la query y las colapsa en
// los snippets de contexto que acompañan al mensaje.
type TextSearchService struct {
	logger   *zap.Logger
	embedder llm.Embedder
	entries  repository.EntryRepository
	filters  []QueryFilter
	topK     int
}

func NewTextSearchService(
	logger *zap.Logger,
	embedder llm.Embedder,
	entries repository.EntryRepository,
	filters []QueryFilter,
	topK int,
) *TextSearchService {
	if topK <= 0 {
		topK = 15
	}
	return &TextSearchService{
		logger:   logger,
		embedder: embedder,
		entries:  entries,
		filters:  filters,
		topK:     topK,
	}
}

// Search aplica los filtros de query, embebe lo que queda y devuelve hasta
// n resultados puntuados (score mas alto = mas cercano).
func (s *TextSearchService) Search(ctx context.Context, rawQuery string, n int) ([]domain.SearchResult, error) {
	query := strings.TrimSpace(rawQuery)
	if query == "" {
		return nil, nil
	}
	if n <= 0 || n > s.topK {
		n = s.topK
	}

	var filter repository.SearchFilter
	for _, f := range s.filters {
		if f.CanFilter(query) {
			query = f.Apply(query, &filter)
		}
	}

	// Query hecha solo de terminos de filtro: no hay nada que embeber.
	if query == "" {
		return nil, nil
	}

	vectors, err := s.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(vectors) != 1 {
		return nil, fmt.Errorf("embed query: expected 1 vector, got %d", len(vectors))
	}

	scored, err := s.entries.Search(ctx, pgvector.NewVector(vectors[0]), filter, n)
	if err != nil {
		return nil, fmt.Errorf("search entries: %w", err)
	}

	results := make([]domain.SearchResult, 0, len(scored))
	for _, e := range scored {
		results = append(results, domain.SearchResult{
			Entry: e.Entry.Raw,
			File:  e.Entry.File,
			Score: 1 - e.Distance,
		})
	}

	s.logger.Debug("context search",
		zap.String("query", query),
		zap.Int("results", len(results)),
	)

	return results, nil
}
