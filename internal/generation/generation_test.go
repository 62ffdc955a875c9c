package generation_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/seobrief-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder builds strategies that log their names when called.
type recorder struct {
	calls []string
}

func (r *recorder) strategy(name string, resp interface{}, err error) generation.Strategy {
	return generation.Strategy{
		Name: name,
		Call: func(ctx context.Context, prompt string) (interface{}, error) {
			r.calls = append(r.calls, name)
			return resp, err
		},
	}
}

func mismatch(msg string) error {
	return fmt.Errorf("%w: %s", generation.ErrSignatureMismatch, msg)
}

func TestInvoke_FirstStrategySucceeds(t *testing.T) {
	rec := &recorder{}
	inv := generation.NewInvoker(nil,
		rec.strategy("first", "one", nil),
		rec.strategy("second", "two", nil),
	)

	resp, err := inv.Invoke(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, "one", resp)
	assert.Equal(t, []string{"first"}, rec.calls)
}

func TestInvoke_MismatchFallsThroughToNextStrategy(t *testing.T) {
	rec := &recorder{}
	inv := generation.NewInvoker(nil,
		rec.strategy("positional", nil, mismatch("unexpected argument")),
		rec.strategy("user_message", "from k+1", nil),
		rec.strategy("never", "too late", nil),
	)

	resp, err := inv.Invoke(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, "from k+1", resp)
	assert.Equal(t, []string{"positional", "user_message"}, rec.calls,
		"no strategy after the successful one may run")
}

func TestInvoke_FatalErrorStopsImmediately(t *testing.T) {
	boom := errors.New("quota exceeded")
	rec := &recorder{}
	inv := generation.NewInvoker(nil,
		rec.strategy("positional", nil, mismatch("bad shape")),
		rec.strategy("user_message", nil, boom),
		rec.strategy("never", "unreachable", nil),
	)

	resp, err := inv.Invoke(context.Background(), "prompt")

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, []string{"positional", "user_message"}, rec.calls)

	var invErr *generation.InvocationError
	require.True(t, errors.As(err, &invErr))
	assert.Same(t, boom, invErr.Err, "the strategy error must propagate unchanged")
	assert.Same(t, boom, errors.Unwrap(err))
	assert.Equal(t, generation.KindTransport, invErr.Kind)
	assert.Equal(t, "user_message", invErr.Strategy)
	assert.Equal(t, 2, invErr.Attempts)
	assert.True(t, errors.Is(err, boom))
	assert.True(t, errors.Is(err, generation.ErrTransport))
	assert.False(t, errors.Is(err, generation.ErrSignatureMismatch))
}

func TestInvoke_AllMismatchReturnsLast(t *testing.T) {
	first := mismatch("first")
	last := mismatch("last")
	rec := &recorder{}
	inv := generation.NewInvoker(nil,
		rec.strategy("a", nil, first),
		rec.strategy("b", nil, mismatch("middle")),
		rec.strategy("c", nil, last),
	)

	_, err := inv.Invoke(context.Background(), "prompt")

	require.Error(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, rec.calls)

	var invErr *generation.InvocationError
	require.True(t, errors.As(err, &invErr))
	assert.Same(t, last, invErr.Err)
	assert.Equal(t, generation.KindSignatureMismatch, invErr.Kind)
	assert.Equal(t, "c", invErr.Strategy)
	assert.Equal(t, 3, invErr.Attempts)
	assert.True(t, errors.Is(err, generation.ErrSignatureMismatch))
	assert.False(t, errors.Is(err, generation.ErrTransport))
	assert.Contains(t, err.Error(), "all 3 invocation strategies rejected the request")
}

func TestInvoke_PassesPromptAndContext(t *testing.T) {
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "marker")

	var gotPrompt string
	var gotMarker interface{}
	inv := generation.NewInvoker(nil, generation.Strategy{
		Name: "only",
		Call: func(ctx context.Context, prompt string) (interface{}, error) {
			gotPrompt = prompt
			gotMarker = ctx.Value(ctxKey{})
			return "ok", nil
		},
	})

	_, err := inv.Invoke(ctx, "the prompt")

	require.NoError(t, err)
	assert.Equal(t, "the prompt", gotPrompt)
	assert.Equal(t, "marker", gotMarker)
}

func TestInvoke_NoStrategies(t *testing.T) {
	_, err := generation.NewInvoker(nil).Invoke(context.Background(), "p")
	assert.ErrorIs(t, err, generation.ErrNoStrategies)
}

func TestInvoker_StrategiesAreCopied(t *testing.T) {
	rec := &recorder{}
	list := []generation.Strategy{rec.strategy("a", "x", nil), rec.strategy("b", "y", nil)}
	inv := generation.NewInvoker(nil, list...)

	list[0] = rec.strategy("mutated", "z", nil)

	assert.Equal(t, []string{"a", "b"}, inv.Strategies())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "transport", generation.KindTransport.String())
	assert.Equal(t, "signature_mismatch", generation.KindSignatureMismatch.String())
}

func TestModel_Unconfigured(t *testing.T) {
	var zero generation.Model
	assert.False(t, zero.IsConfigured())

	_, err := zero.Generate(context.Background(), "p")
	assert.ErrorIs(t, err, generation.ErrNotConfigured)

	cause := errors.New("failed to create Gemini client")
	m := generation.Unconfigured(cause)
	assert.False(t, m.IsConfigured())
	assert.Same(t, cause, m.Cause())

	_, err = m.Generate(context.Background(), "p")
	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrNotConfigured)
	assert.ErrorIs(t, err, cause, "the construction error must stay reachable")
	assert.Contains(t, err.Error(), "not configured")
}

func TestModel_Configured(t *testing.T) {
	rec := &recorder{}
	m := generation.Configured(generation.NewInvoker(nil, rec.strategy("only", "text", nil)))
	require.True(t, m.IsConfigured())
	assert.Nil(t, m.Cause())

	resp, err := m.Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Equal(t, "text", resp)

	assert.False(t, generation.Configured(nil).IsConfigured())
}
