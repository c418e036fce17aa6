package contextkeys

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKeys_Distinct(t *testing.T) {
	ctx := context.Background()
	ctx = context.WithValue(ctx, RunIDKey, "run1")
	ctx = context.WithValue(ctx, ComponentKey, "binary-scanner")

	assert.Equal(t, "run1", ctx.Value(RunIDKey))
	assert.Equal(t, "binary-scanner", ctx.Value(ComponentKey))
	assert.Nil(t, ctx.Value(OperationKey))

	// A plain string key must not collide with the typed key.
	assert.Nil(t, ctx.Value("runID"))
}

func TestContextKey_String(t *testing.T) {
	assert.Contains(t, RunIDKey.String(), "runID")
}
