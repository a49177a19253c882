package llm

import (
	"context"

	"github.com/masanaritanaka/line-gpt-bot/internal/domain"
)

// MockClient permite tests sin llamar a un LLM real.
type MockClient struct {
	Response string
	Err      error

	Calls       int
	LastSystem  string
	LastHistory []domain.Turn
	LastUser    string
}

func (m *MockClient) Complete(_ context.Context, system string, history []domain.Turn, userText string) (string, error) {
	m.Calls++
	m.LastSystem = system
	m.LastHistory = history
	m.LastUser = userText
	return m.Response, m.Err
}
