package mocks_test

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/seobrief-api/internal/generation"
	"github.com/phrazzld/seobrief-api/internal/mocks"
	"github.com/stretchr/testify/assert"
)

func TestMockGenerator(t *testing.T) {
	t.Parallel()

	t.Run("default response", func(t *testing.T) {
		t.Parallel()

		gen := mocks.NewMockGeneratorWithText("hello")
		resp, err := gen.Generate(context.Background(), "prompt one")

		assert.NoError(t, err)
		assert.Equal(t, "hello", resp)
		assert.Equal(t, 1, gen.CallCount())
		assert.Equal(t, []string{"prompt one"}, gen.Prompts())
	})

	t.Run("function override wins", func(t *testing.T) {
		t.Parallel()

		gen := &mocks.MockGenerator{
			Response: "ignored",
			GenerateFn: func(ctx context.Context, prompt string) (interface{}, error) {
				return "echo: " + prompt, nil
			},
		}
		resp, err := gen.Generate(context.Background(), "x")

		assert.NoError(t, err)
		assert.Equal(t, "echo: x", resp)
	})

	t.Run("canned failures", func(t *testing.T) {
		t.Parallel()

		_, err := mocks.MockGeneratorWithContentBlocked().Generate(context.Background(), "p")
		assert.ErrorIs(t, err, generation.ErrContentBlocked)
		assert.ErrorIs(t, err, generation.ErrTransport)

		_, err = mocks.MockGeneratorWithExhaustedStrategies().Generate(context.Background(), "p")
		var invErr *generation.InvocationError
		assert.True(t, errors.As(err, &invErr))
		assert.Equal(t, generation.KindSignatureMismatch, invErr.Kind)
	})

	t.Run("reset", func(t *testing.T) {
		t.Parallel()

		gen := mocks.NewMockGeneratorWithError(errors.New("boom"))
		_, _ = gen.Generate(context.Background(), "p")
		gen.Reset()

		assert.Equal(t, 0, gen.CallCount())
		assert.Empty(t, gen.Contexts())
	})
}

func TestMockStrategy(t *testing.T) {
	calls := 0
	s := mocks.MockStrategy("only", "resp", nil, &calls)

	resp, err := s.Call(context.Background(), "p")

	assert.NoError(t, err)
	assert.Equal(t, "resp", resp)
	assert.Equal(t, "only", s.Name)
	assert.Equal(t, 1, calls)
}
