package notify

import (
	"context"
	"sync"
)

// MockAdapter is an in-memory Adapter for tests. It records every send and
// can be told to fail or to block until released.
type MockAdapter struct {
	mu      sync.Mutex
	name    string
	sent    []string
	sendErr error
	blockCh chan struct{}
}

// NewMockAdapter creates a mock adapter named "mock".
func NewMockAdapter() *MockAdapter {
	return &MockAdapter{name: "mock"}
}

// Name implements Adapter.
func (m *MockAdapter) Name() string { return m.name }

// Send implements Adapter. It blocks on the configured channel (if any),
// then records text and returns the configured error.
func (m *MockAdapter) Send(ctx context.Context, text string) error {
	m.mu.Lock()
	blockCh := m.blockCh
	m.mu.Unlock()

	if blockCh != nil {
		select {
		case <-blockCh:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, text)
	return nil
}

// Sent returns a copy of everything successfully sent so far.
func (m *MockAdapter) Sent() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.sent))
	copy(out, m.sent)
	return out
}

// SetError makes subsequent sends fail with err.
func (m *MockAdapter) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sendErr = err
}

// Block makes subsequent sends wait until the returned channel is closed.
func (m *MockAdapter) Block() chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blockCh = make(chan struct{})
	return m.blockCh
}
