package feedback

import (
	"context"
	"sync"

	"chat-render/internal/domain"
)

// MockSender permite tests sin colaborador upstream real.
type MockSender struct {
	Err error

	mu   sync.Mutex
	Sent []domain.Feedback
}

func (m *MockSender) Send(_ context.Context, fb domain.Feedback) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, fb)
	return m.Err
}

// LastSent devuelve el ultimo feedback enviado, si hay alguno.
func (m *MockSender) LastSent() (domain.Feedback, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Sent) == 0 {
		return domain.Feedback{}, false
	}
	return m.Sent[len(m.Sent)-1], true
}
