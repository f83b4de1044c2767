package domain

import "time"

// Remitentes conocidos de un mensaje de chat.
const (
	SenderUser      = "you"
	SenderAssistant = "assistant"
)

// Tipos de intent que marcan el cuerpo del mensaje como media generada.
const (
	IntentRemember  = "remember"
	IntentSummarize = "summarize"
	IntentImagePNG  = "text-to-image"
	IntentImageURL  = "text-to-image2"
	IntentImageWebP = "text-to-image-v3"
)

// ChatMessage es el registro de display que recibe el pipeline de render.
// Llega completo por request y nunca se muta ni se persiste.
type ChatMessage struct {
	Sender        string                     `json:"sender"`
	Text          string                     `json:"text"`
	CreatedAt     time.Time                  `json:"created_at"`
	Intent        *Intent                    `json:"intent,omitempty"`
	Context       []ContextSnippet           `json:"context,omitempty"`
	OnlineContext map[string]WebSearchResult `json:"online_context,omitempty"`
}

// Intent describe el tipo de generacion y las sub-queries inferidas.
type Intent struct {
	Type            string   `json:"type"`
	Query           string   `json:"query,omitempty"`
	InferredQueries []string `json:"inferred_queries,omitempty"`
}

// HasImage indica si el intent marca el cuerpo como imagen generada.
func (i *Intent) HasImage() bool {
	if i == nil {
		return false
	}
	switch i.Type {
	case IntentImagePNG, IntentImageURL, IntentImageWebP:
		return true
	}
	return false
}

// ContextSnippet es una referencia respaldada por archivo que acompaña al mensaje.
type ContextSnippet struct {
	Compiled string `json:"compiled"`
	File     string `json:"file"`
}

// WebSearchResult agrupa resultados web asociados a una sub-query.
type WebSearchResult struct {
	Organic   []WebResult `json:"organic,omitempty"`
	AnswerBox string      `json:"answer_box,omitempty"`
}

// WebResult es un resultado organico individual.
type WebResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// MessageView es el mensaje ya renderizado, listo para mostrar.
type MessageView struct {
	Sender        string                     `json:"sender"`
	HTML          string                     `json:"html"`
	CreatedAt     time.Time                  `json:"created_at"`
	TimeDisplay   string                     `json:"time_display"`
	Context       []ContextSnippet           `json:"context,omitempty"`
	OnlineContext map[string]WebSearchResult `json:"online_context,omitempty"`
}
