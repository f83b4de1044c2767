package domain

// Entry es una nota extraida de un archivo markdown, delimitada por heading.
type Entry struct {
	Raw      string `json:"raw"`
	Compiled string `json:"compiled"`
	File     string `json:"file"`
}

// SearchResult es una entry puntuada devuelta por la busqueda semantica.
type SearchResult struct {
	Entry string  `json:"entry"`
	File  string  `json:"file"`
	Score float64 `json:"score"`
}
