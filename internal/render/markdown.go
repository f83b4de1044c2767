package render

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"

	"chat-render/internal/domain"
)

// Renderer convierte el texto crudo de un mensaje en HTML sanitizado con
// bloques de codigo resaltados y botones de copiado inyectados.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewRenderer construye el pipeline con el estilo de resaltado indicado.
func NewRenderer(highlightStyle string) *Renderer {
	if highlightStyle == "" {
		highlightStyle = "monokai"
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(highlightStyle),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithHardWraps(),
		),
	)

	return &Renderer{
		md:     md,
		policy: newPolicy(),
	}
}

// Render ejecuta el pipeline completo: reescritura por intent de imagen,
// proteccion de LaTeX, markdown, sanitizado, inyeccion de botones de
// copiado y restauracion de los spans protegidos.
func (r *Renderer) Render(msg domain.ChatMessage) (string, error) {
	if img, ok := imageHTML(msg); ok {
		return r.policy.Sanitize(img), nil
	}

	protected, spans := protectLaTeX(msg.Text)

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(protected), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}

	sanitized := r.policy.Sanitize(buf.String())

	withButtons, err := injectCopyButtons(sanitized)
	if err != nil {
		return "", fmt.Errorf("inject copy buttons: %w", err)
	}

	return restoreLaTeX(withButtons, spans), nil
}

// newPolicy arma la policy de sanitizado: UGC mas las clases que emite el
// highlighter y las imagenes inline que produce la reescritura por intent.
func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").OnElements("span", "pre", "code", "div", "p", "img", "table")
	p.AllowAttrs("src", "alt").OnElements("img")
	p.AllowDataURIImages()
	return p
}
