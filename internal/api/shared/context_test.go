package shared

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTraceID(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))

	ctx := SetTraceID(context.Background())
	id := GetTraceID(ctx)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)

	other := GetTraceID(SetTraceID(context.Background()))
	assert.NotEqual(t, id, other)

	assert.Equal(t, "fixed", GetTraceID(WithTraceID(context.Background(), "fixed")))
}
