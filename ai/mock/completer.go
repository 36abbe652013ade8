package mock

import (
	"context"
	"sync"
)

// CompleterCall records the prompts of one Complete invocation.
type CompleterCall struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float64
}

// MockCompleter is a test double for ai.Completer.
// It replays queued responses in order and records every call.
type MockCompleter struct {
	// CompleteFunc is called by Complete if set.
	// If nil, queued responses are replayed in order.
	CompleteFunc func(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error)

	mu        sync.Mutex
	responses []string
	err       error
	calls     []CompleterCall
}

// NewMockCompleter creates a mock completer.
// Note: Returns concrete type to allow test assertions.
func NewMockCompleter(responses ...string) *MockCompleter {
	return &MockCompleter{responses: responses}
}

// Enqueue appends responses to the replay queue.
func (m *MockCompleter) Enqueue(responses ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, responses...)
}

// FailWith makes every subsequent call return err instead of a response.
func (m *MockCompleter) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Complete replays the next queued response. When the queue is exhausted
// it returns an empty string, which call sites must treat as a
// recoverable malformed answer.
func (m *MockCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, CompleterCall{
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
		Temperature:  temperature,
	})
	fn := m.CompleteFunc
	err := m.err
	var next string
	if fn == nil && err == nil && len(m.responses) > 0 {
		next = m.responses[0]
		m.responses = m.responses[1:]
	}
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, systemPrompt, userPrompt, temperature)
	}
	if err != nil {
		return "", err
	}
	return next, nil
}

// CallCount returns the number of Complete invocations.
func (m *MockCompleter) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Calls returns a copy of the recorded invocations.
func (m *MockCompleter) Calls() []CompleterCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]CompleterCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// Reset clears the queue, error and recorded calls.
func (m *MockCompleter) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = nil
	m.err = nil
	m.calls = nil
	m.CompleteFunc = nil
}
