package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_RoundTrip(t *testing.T) {
	m := NewManager()

	ctx := m.SetUserIDToContext(context.Background(), 42)

	userID, ok := m.GetUserIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, uint(42), userID)
}

func TestManager_Missing(t *testing.T) {
	m := NewManager()

	_, ok := m.GetUserIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestManager_ZeroID(t *testing.T) {
	m := NewManager()

	ctx := m.SetUserIDToContext(context.Background(), 0)

	_, ok := m.GetUserIDFromContext(ctx)
	assert.False(t, ok)
}
