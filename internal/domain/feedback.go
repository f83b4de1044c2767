package domain

// Sentiment es la valoracion del usuario sobre una respuesta.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
)

// Valid reporta si el sentiment es uno de los valores aceptados.
func (s Sentiment) Valid() bool {
	return s == SentimentPositive || s == SentimentNegative
}

// Feedback es el payload que viaja al colaborador upstream tal cual.
type Feedback struct {
	UQuery    string    `json:"uquery"`
	KQuery    string    `json:"kquery"`
	Sentiment Sentiment `json:"sentiment"`
}
