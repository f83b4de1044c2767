package render

import (
	"fmt"
	"html"
	"strings"
)

// Delimitadores LaTeX que el parser de markdown rompería (backslashes,
// guiones bajos y asteriscos dentro de math tienen otro significado ahí).
var latexDelimiters = []struct {
	open  string
	close string
}{
	{`\(`, `\)`},
	{`\[`, `\]`},
	{"$$", "$$"},
}

const latexSentinel = "@@LATEX-%d@@"

// protectLaTeX reemplaza cada span matematico por un sentinel opaco sin
// caracteres significativos para markdown ni HTML, y devuelve los spans
// originales en orden para restaurarlos despues del render.
func protectLaTeX(text string) (string, []string) {
	var spans []string
	var b strings.Builder
	b.Grow(len(text))

	rest := text
	for {
		open, delim := nextOpener(rest)
		if open == -1 {
			b.WriteString(rest)
			break
		}
		contentStart := open + len(delim.open)
		closeIdx := strings.Index(rest[contentStart:], delim.close)
		if closeIdx == -1 {
			// Sin cierre: se deja tal cual y no se sigue buscando
			// ese span, pero si los que vengan despues.
			b.WriteString(rest[:contentStart])
			rest = rest[contentStart:]
			continue
		}
		end := contentStart + closeIdx + len(delim.close)
		b.WriteString(rest[:open])
		b.WriteString(fmt.Sprintf(latexSentinel, len(spans)))
		spans = append(spans, rest[open:end])
		rest = rest[end:]
	}

	return b.String(), spans
}

// restoreLaTeX vuelve a poner los spans protegidos, escapados para HTML de
// modo que el typesetting del lado cliente los vea intactos como texto.
func restoreLaTeX(rendered string, spans []string) string {
	for i, span := range spans {
		sentinel := fmt.Sprintf(latexSentinel, i)
		rendered = strings.Replace(rendered, sentinel, html.EscapeString(span), 1)
	}
	return rendered
}

// nextOpener encuentra el delimitador de apertura mas temprano en el texto.
func nextOpener(text string) (int, struct{ open, close string }) {
	best := -1
	var bestDelim struct{ open, close string }
	for _, d := range latexDelimiters {
		idx := strings.Index(text, d.open)
		if idx != -1 && (best == -1 || idx < best) {
			best = idx
			bestDelim = struct{ open, close string }{d.open, d.close}
		}
	}
	return best, bestDelim
}
