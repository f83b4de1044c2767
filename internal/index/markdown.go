package index

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"chat-render/internal/domain"
)

// CollectMarkdownFiles junta los archivos a indexar desde rutas explicitas
// y/o un glob. Advierte sobre extensiones que no parecen markdown pero no
// las descarta.
func CollectMarkdownFiles(paths []string, pattern string, logger *zap.Logger) ([]string, error) {
	if len(paths) == 0 && pattern == "" {
		return nil, fmt.Errorf("at least one input file or an input filter is required")
	}

	seen := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("resolve path %s: %w", p, err)
		}
		seen[abs] = struct{}{}
	}

	if pattern != "" {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("expand filter %s: %w", pattern, err)
		}
		for _, m := range matches {
			abs, err := filepath.Abs(m)
			if err != nil {
				return nil, fmt.Errorf("resolve path %s: %w", m, err)
			}
			seen[abs] = struct{}{}
		}
	}

	files := make([]string, 0, len(seen))
	for f := range seen {
		files = append(files, f)
		if !strings.HasSuffix(f, ".md") && !strings.HasSuffix(f, ".markdown") {
			logger.Warn("file without markdown extension in input set", zap.String("file", f))
		}
	}
	sort.Strings(files)

	return files, nil
}

// ExtractEntries parte cada archivo markdown en entries por heading. El
// contenido previo al primer heading queda como entry propia.
func ExtractEntries(files []string) ([]domain.Entry, error) {
	var entries []domain.Entry
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		for _, text := range splitByHeading(string(content)) {
			entries = append(entries, domain.Entry{
				Raw:      text,
				Compiled: text,
				File:     file,
			})
		}
	}
	return entries, nil
}

// splitByHeading corta el texto en cada linea que abre con '#', conservando
// el heading al frente de su entry y descartando segmentos vacios.
func splitByHeading(content string) []string {
	var segments []string
	var current strings.Builder

	flush := func() {
		if text := strings.TrimSpace(current.String()); text != "" {
			segments = append(segments, text)
		}
		current.Reset()
	}

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "#") {
			flush()
		}
		current.WriteString(line)
		current.WriteString("\n")
	}
	flush()

	return segments
}
