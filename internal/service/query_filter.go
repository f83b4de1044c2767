package service

import (
	"regexp"
	"strings"

	"chat-render/internal/repository"
)

// QueryFilter define el protocolo de filtros aplicados antes de la busqueda
// semantica: detectan sus terminos en la query, los quitan y vuelcan las
// restricciones sobre el SearchFilter.
type QueryFilter interface {
	CanFilter(query string) bool
	Apply(query string, filter *repository.SearchFilter) string
}

// DefaultQueryFilters devuelve los filtros en su orden de aplicacion.
func DefaultQueryFilters() []QueryFilter {
	return []QueryFilter{wordFilter{}, fileFilter{}}
}

// wordFilter interpreta terminos +"palabra" (requerida) y -"palabra"
// (excluida) en la query.
type wordFilter struct{}

var wordFilterRegex = regexp.MustCompile(`([+-])"([^"]+)"`)

func (wordFilter) CanFilter(query string) bool {
	return wordFilterRegex.MatchString(query)
}

func (wordFilter) Apply(query string, filter *repository.SearchFilter) string {
	for _, m := range wordFilterRegex.FindAllStringSubmatch(query, -1) {
		word := strings.ToLower(strings.TrimSpace(m[2]))
		if word == "" {
			continue
		}
		if m[1] == "+" {
			filter.RequiredWords = append(filter.RequiredWords, word)
		} else {
			filter.ExcludedWords = append(filter.ExcludedWords, word)
		}
	}
	return collapseSpaces(wordFilterRegex.ReplaceAllString(query, ""))
}

// fileFilter interpreta el termino file:"glob" y lo convierte en un patron
// LIKE sobre la columna file.
type fileFilter struct{}

var fileFilterRegex = regexp.MustCompile(`file:"([^"]+)"`)

func (fileFilter) CanFilter(query string) bool {
	return fileFilterRegex.MatchString(query)
}

func (fileFilter) Apply(query string, filter *repository.SearchFilter) string {
	if m := fileFilterRegex.FindStringSubmatch(query); m != nil {
		filter.FilePattern = globToLike(m[1])
	}
	return collapseSpaces(fileFilterRegex.ReplaceAllString(query, ""))
}

// globToLike traduce un glob de shell (*, ?) al patron LIKE equivalente,
// escapando los comodines propios de LIKE.
func globToLike(glob string) string {
	var b strings.Builder
	for _, r := range glob {
		switch r {
		case '*':
			b.WriteByte('%')
		case '?':
			b.WriteByte('_')
		case '%':
			b.WriteString(`\%`)
		case '_':
			b.WriteString(`\_`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
