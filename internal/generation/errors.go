package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation package
var (
	// ErrSignatureMismatch marks a strategy whose call shape the client
	// rejected. Invoke treats it as non-fatal and moves to the next strategy.
	ErrSignatureMismatch = errors.New("incompatible call shape")

	// ErrTransport is matched by invocation failures other than call shape
	// mismatches: network, authentication and quota errors.
	ErrTransport = errors.New("generation request failed")

	// ErrContentBlocked is returned when the model refuses to answer due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidResponse is returned when the model answers without any text
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrNotConfigured is returned when no model client could be built at startup
	ErrNotConfigured = errors.New("gemini model not configured")

	// ErrInvalidConfig is returned when the client configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrNoStrategies is returned by Invoke when the invoker has nothing to try
	ErrNoStrategies = errors.New("no invocation strategies available")
)

// Kind classifies how an invocation failed.
type Kind int

const (
	// KindTransport is a fatal failure reported by a strategy.
	KindTransport Kind = iota
	// KindSignatureMismatch means every strategy rejected its call shape.
	KindSignatureMismatch
)

func (k Kind) String() string {
	switch k {
	case KindSignatureMismatch:
		return "signature_mismatch"
	default:
		return "transport"
	}
}

// InvocationError annotates the error of the strategy that ended an
// invocation. Unwrap yields that strategy's error unchanged.
type InvocationError struct {
	Strategy string
	Kind     Kind
	// Attempts is the number of strategies called, including the last one.
	Attempts int
	Err      error
}

func (e *InvocationError) Error() string {
	if e.Kind == KindSignatureMismatch {
		return fmt.Sprintf("all %d invocation strategies rejected the request, last %s: %v",
			e.Attempts, e.Strategy, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Strategy, e.Err)
}

// Unwrap returns the underlying strategy error.
func (e *InvocationError) Unwrap() error {
	return e.Err
}

// Is makes transport failures match ErrTransport.
func (e *InvocationError) Is(target error) bool {
	return target == ErrTransport && e.Kind == KindTransport
}
