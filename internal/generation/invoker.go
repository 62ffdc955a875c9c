package generation

import (
	"context"
	"errors"
	"log/slog"
)

// CallFunc submits a prompt using one particular call convention and returns
// the client's raw response, whose concrete shape is client specific.
type CallFunc func(ctx context.Context, prompt string) (interface{}, error)

// Strategy is a named call convention.
type Strategy struct {
	Name string
	Call CallFunc
}

// Invoker tries its strategies in order until one succeeds.
// It holds no mutable state and is safe for concurrent use.
type Invoker struct {
	strategies []Strategy
	logger     *slog.Logger
}

// NewInvoker creates an Invoker over a copy of strategies.
func NewInvoker(logger *slog.Logger, strategies ...Strategy) *Invoker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Invoker{
		strategies: append([]Strategy(nil), strategies...),
		logger:     logger,
	}
}

// Strategies returns the strategy names in invocation order.
func (i *Invoker) Strategies() []string {
	names := make([]string, len(i.strategies))
	for idx, s := range i.strategies {
		names[idx] = s.Name
	}
	return names
}

// Invoke submits prompt through each strategy in order.
//
// The first successful response is returned and no later strategy runs.
// A strategy error matching ErrSignatureMismatch moves on to the next
// strategy; any other error stops the invocation and is returned wrapped in
// an *InvocationError with KindTransport. If every strategy mismatches, the
// last mismatch is returned with KindSignatureMismatch.
func (i *Invoker) Invoke(ctx context.Context, prompt string) (interface{}, error) {
	if len(i.strategies) == 0 {
		return nil, ErrNoStrategies
	}

	var lastMismatch *InvocationError
	for idx, s := range i.strategies {
		attempt := idx + 1
		i.logger.DebugContext(ctx, "invoking model",
			"strategy", s.Name,
			"attempt", attempt,
			"max_attempts", len(i.strategies))

		resp, err := s.Call(ctx, prompt)
		if err == nil {
			i.logger.InfoContext(ctx, "model invocation succeeded",
				"strategy", s.Name,
				"attempt", attempt)
			return resp, nil
		}

		if !errors.Is(err, ErrSignatureMismatch) {
			i.logger.ErrorContext(ctx, "model invocation failed",
				"strategy", s.Name,
				"attempt", attempt,
				"error", err)
			return nil, &InvocationError{
				Strategy: s.Name,
				Kind:     KindTransport,
				Attempts: attempt,
				Err:      err,
			}
		}

		i.logger.WarnContext(ctx, "strategy rejected, trying next",
			"strategy", s.Name,
			"attempt", attempt,
			"error", err)
		lastMismatch = &InvocationError{
			Strategy: s.Name,
			Kind:     KindSignatureMismatch,
			Attempts: attempt,
			Err:      err,
		}
	}

	return nil, lastMismatch
}
