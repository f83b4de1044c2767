package feedback

import (
	"context"
	"errors"

	"chat-render/internal/domain"
)

// Sender define la interfaz para reenviar feedback al colaborador upstream.
type Sender interface {
	Send(ctx context.Context, fb domain.Feedback) error
}

type disabledSender struct {
	reason string
}

func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) Send(_ context.Context, _ domain.Feedback) error {
	if s.reason == "" {
		return errors.New("feedback sender disabled")
	}
	return errors.New(s.reason)
}
