package generation

import (
	"context"
	"fmt"
)

// Model is the process-wide handle to the language model. It is either
// configured, wrapping an Invoker, or unconfigured, remembering why.
// The zero value is unconfigured.
type Model struct {
	invoker *Invoker
	cause   error
}

// Configured returns a Model that generates through inv.
func Configured(inv *Invoker) Model {
	if inv == nil {
		return Unconfigured(nil)
	}
	return Model{invoker: inv}
}

// Unconfigured returns a Model that fails every call. cause, when non-nil,
// is the client construction error and stays reachable through errors.Is/As.
func Unconfigured(cause error) Model {
	return Model{cause: cause}
}

// IsConfigured reports whether the model can generate.
func (m Model) IsConfigured() bool {
	return m.invoker != nil
}

// Cause returns the construction error of an unconfigured model, if any.
func (m Model) Cause() error {
	return m.cause
}

// Generate submits prompt through the model's invoker.
func (m Model) Generate(ctx context.Context, prompt string) (interface{}, error) {
	if m.invoker == nil {
		return nil, m.notConfigured()
	}
	return m.invoker.Invoke(ctx, prompt)
}

func (m Model) notConfigured() error {
	if m.cause == nil {
		return ErrNotConfigured
	}
	return fmt.Errorf("%w: %w", ErrNotConfigured, m.cause)
}
