package config

import "github.com/caarlos0/env/v10"

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	EmbedAPIKey  string `env:"EMBED_API_KEY"`
	EmbedBaseURL string `env:"EMBED_BASE_URL" envDefault:"https://api.openai.com/v1"`
	EmbedModel   string `env:"EMBED_MODEL" envDefault:"text-embedding-3-small"`

	FeedbackUpstreamURL string `env:"FEEDBACK_UPSTREAM_URL"`

	SearchTopK int `env:"SEARCH_TOP_K" envDefault:"15"`

	HighlightStyle        string `env:"HIGHLIGHT_STYLE" envDefault:"monokai"`
	RenderCacheTTLMinutes int    `env:"RENDER_CACHE_TTL_MINUTES" envDefault:"60"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
