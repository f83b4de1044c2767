package feedback

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"chat-render/internal/domain"
)

// HTTPSender reenvia el feedback por HTTP. El body de la respuesta no se
// inspecciona; solo el status decide si hubo error.
type HTTPSender struct {
	upstreamURL string
	client      *http.Client
}

func NewHTTPSender(upstreamURL string) (*HTTPSender, error) {
	if strings.TrimSpace(upstreamURL) == "" {
		return nil, fmt.Errorf("feedback upstream url is required")
	}
	return &HTTPSender{
		upstreamURL: upstreamURL,
		client:      &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (s *HTTPSender) Send(ctx context.Context, fb domain.Feedback) error {
	if !fb.Sentiment.Valid() {
		return fmt.Errorf("invalid sentiment: %q", fb.Sentiment)
	}

	bodyBytes, err := json.Marshal(fb)
	if err != nil {
		return fmt.Errorf("marshal feedback: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.upstreamURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("feedback http error: status=%d", resp.StatusCode)
	}
	return nil
}
