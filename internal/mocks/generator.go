package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/seobrief-api/internal/generation"
)

// MockGenerator implements service.Generator for testing.
type MockGenerator struct {
	// GenerateFn allows test cases to mock the Generate behavior
	GenerateFn func(ctx context.Context, prompt string) (interface{}, error)

	// Default response values
	Response interface{}
	Err      error

	mu       sync.Mutex
	prompts  []string
	contexts []context.Context
}

// Generate records the call and returns GenerateFn's result, or the defaults.
func (m *MockGenerator) Generate(ctx context.Context, prompt string) (interface{}, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.contexts = append(m.contexts, ctx)
	m.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, prompt)
	}
	return m.Response, m.Err
}

// CallCount returns how many times Generate was called.
func (m *MockGenerator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

// Prompts returns the prompts passed to Generate, in call order.
func (m *MockGenerator) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}

// Contexts returns the contexts passed to Generate, in call order.
func (m *MockGenerator) Contexts() []context.Context {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]context.Context(nil), m.contexts...)
}

// Reset clears the call tracking state.
func (m *MockGenerator) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = nil
	m.contexts = nil
}

// NewMockGeneratorWithText creates a MockGenerator whose response is the
// plain string text.
func NewMockGeneratorWithText(text string) *MockGenerator {
	return &MockGenerator{Response: text}
}

// NewMockGeneratorWithError creates a MockGenerator that returns err.
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{Err: err}
}

// MockGeneratorWithContentBlocked simulates a safety-filtered response.
func MockGeneratorWithContentBlocked() *MockGenerator {
	return &MockGenerator{
		Err: &generation.InvocationError{
			Strategy: "positional",
			Kind:     generation.KindTransport,
			Attempts: 1,
			Err:      generation.ErrContentBlocked,
		},
	}
}

// MockGeneratorWithExhaustedStrategies simulates every call shape being
// rejected by the client.
func MockGeneratorWithExhaustedStrategies() *MockGenerator {
	return &MockGenerator{
		Err: &generation.InvocationError{
			Strategy: "fallback_model",
			Kind:     generation.KindSignatureMismatch,
			Attempts: 6,
			Err:      generation.ErrSignatureMismatch,
		},
	}
}

// MockStrategy returns a generation.Strategy that counts its calls and
// returns resp and err.
func MockStrategy(name string, resp interface{}, err error, calls *int) generation.Strategy {
	return generation.Strategy{
		Name: name,
		Call: func(ctx context.Context, prompt string) (interface{}, error) {
			if calls != nil {
				*calls++
			}
			return resp, err
		},
	}
}
