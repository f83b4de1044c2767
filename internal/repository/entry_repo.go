package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"chat-render/internal/domain"
)

// SearchFilter acota el universo de entries antes del orden por distancia.
type SearchFilter struct {
	// FilePattern es un patron SQL LIKE sobre la columna file; vacio = todas.
	FilePattern string
	// RequiredWords deben aparecer todas en el texto compilado.
	RequiredWords []string
	// ExcludedWords no pueden aparecer en el texto compilado.
	ExcludedWords []string
}

// ScoredEntry es una entry con su distancia coseno a la query.
type ScoredEntry struct {
	Entry    domain.Entry
	Distance float64
}

type EntryRepository interface {
	ReplaceForFile(ctx context.Context, file string, entries []domain.Entry, embeddings []pgvector.Vector) error
	Search(ctx context.Context, queryEmbedding pgvector.Vector, filter SearchFilter, k int) ([]ScoredEntry, error)
	Count(ctx context.Context) (int64, error)
}

type PgEntryRepository struct {
	pool *pgxpool.Pool
}

func NewPgEntryRepository(pool *pgxpool.Pool) *PgEntryRepository {
	return &PgEntryRepository{pool: pool}
}

// ReplaceForFile reemplaza atomicamente las entries indexadas de un archivo.
func (r *PgEntryRepository) ReplaceForFile(ctx context.Context, file string, entries []domain.Entry, embeddings []pgvector.Vector) error {
	if len(entries) != len(embeddings) {
		return fmt.Errorf("entries/embeddings mismatch: %d vs %d", len(entries), len(embeddings))
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM entries WHERE file = $1`, file); err != nil {
		return fmt.Errorf("delete stale entries: %w", err)
	}

	const insert = `
		INSERT INTO entries (id, raw, compiled, file, embedding, indexed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	now := time.Now().UTC()
	for i, e := range entries {
		if _, err := tx.Exec(ctx, insert,
			uuid.NewString(),
			e.Raw,
			e.Compiled,
			file,
			embeddings[i],
			now,
		); err != nil {
			return fmt.Errorf("insert entry: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// Search ordena por distancia coseno aplicando el filtro en SQL, antes del
// LIMIT, para que las palabras requeridas/excluidas acoten el universo y no
// solo el top-k.
func (r *PgEntryRepository) Search(ctx context.Context, queryEmbedding pgvector.Vector, filter SearchFilter, k int) ([]ScoredEntry, error) {
	if k <= 0 {
		k = 5
	}

	query := `SELECT raw, compiled, file, embedding <=> $1 AS distance FROM entries`
	args := []interface{}{queryEmbedding}

	var conds []string
	if filter.FilePattern != "" {
		args = append(args, filter.FilePattern)
		conds = append(conds, fmt.Sprintf("file ILIKE $%d", len(args)))
	}
	for _, w := range filter.RequiredWords {
		args = append(args, "%"+w+"%")
		conds = append(conds, fmt.Sprintf("compiled ILIKE $%d", len(args)))
	}
	for _, w := range filter.ExcludedWords {
		args = append(args, "%"+w+"%")
		conds = append(conds, fmt.Sprintf("compiled NOT ILIKE $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, k)
	query += fmt.Sprintf(" ORDER BY embedding <=> $1 LIMIT $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []ScoredEntry
	for rows.Next() {
		var s ScoredEntry
		if err := rows.Scan(&s.Entry.Raw, &s.Entry.Compiled, &s.Entry.File, &s.Distance); err != nil {
			return nil, err
		}
		results = append(results, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *PgEntryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM entries`).Scan(&count)
	return count, err
}
