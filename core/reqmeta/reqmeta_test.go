package reqmeta

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithFrom(t *testing.T) {
	_, ok := From(context.Background())
	assert.False(t, ok)

	ctx := With(context.Background(), &Meta{RequestID: "r-1", Adapter: "Hello", Operation: "sayHello"})
	m, ok := From(ctx)
	require.True(t, ok)
	assert.Equal(t, "r-1", m.RequestID)
	assert.Equal(t, "Hello", m.Adapter)
	assert.Equal(t, "sayHello", m.Operation)
}

func TestFrom_NilMeta(t *testing.T) {
	ctx := With(context.Background(), nil)
	_, ok := From(ctx)
	assert.False(t, ok)
}

func TestEnsure_GeneratesID(t *testing.T) {
	ctx, m := Ensure(context.Background(), Meta{Adapter: "Hello"})
	_, err := uuid.Parse(m.RequestID)
	require.NoError(t, err)

	got, ok := From(ctx)
	require.True(t, ok)
	assert.Equal(t, m, got)
}

func TestEnsure_KeepsExisting(t *testing.T) {
	ctx := With(context.Background(), &Meta{RequestID: "keep"})
	ctx2, m := Ensure(ctx, Meta{Adapter: "Other"})
	assert.Equal(t, ctx, ctx2)
	assert.Equal(t, "keep", m.RequestID)
}
