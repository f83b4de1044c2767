package render

import (
	"fmt"
	"html"
	"strings"

	"chat-render/internal/domain"
)

// imageHTML reescribe el cuerpo del mensaje como un tag <img> cuando el
// intent lo marca como media generada. El payload puede ser base64 o URL
// segun el tipo de intent. Devuelve false si el mensaje no es imagen.
func imageHTML(msg domain.ChatMessage) (string, bool) {
	if !msg.Intent.HasImage() {
		return "", false
	}

	body := strings.TrimSpace(msg.Text)
	var src string
	switch msg.Intent.Type {
	case domain.IntentImagePNG:
		src = "data:image/png;base64," + body
	case domain.IntentImageWebP:
		src = "data:image/webp;base64," + body
	default:
		src = body
	}

	alt := "generated image"
	if len(msg.Intent.InferredQueries) > 0 {
		alt = msg.Intent.InferredQueries[0]
	}

	img := fmt.Sprintf(`<img src="%s" alt="%s" class="chat-image">`,
		html.EscapeString(src), html.EscapeString(alt))
	if alt != "generated image" {
		img += fmt.Sprintf(`<p class="chat-image-caption">%s</p>`, html.EscapeString(alt))
	}
	return img, true
}
