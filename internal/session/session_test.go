package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/storefront-service/internal/store"
)

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemoryStore())

	current, err := m.Current(ctx)
	require.NoError(t, err)
	assert.Empty(t, current)

	require.NoError(t, m.Start(ctx, "dave@mail.com"))
	current, err = m.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dave@mail.com", current)

	// a new login replaces the single active session
	require.NoError(t, m.Start(ctx, "eve@mail.com"))
	current, err = m.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "eve@mail.com", current)

	require.NoError(t, m.End(ctx))
	current, err = m.Current(ctx)
	require.NoError(t, err)
	assert.Empty(t, current)
}

func TestSelectedServiceOverwrites(t *testing.T) {
	ctx := context.Background()
	m := NewManager(store.NewMemoryStore())

	selected, err := m.SelectedService(ctx)
	require.NoError(t, err)
	assert.Empty(t, selected)

	require.NoError(t, m.SelectService(ctx, "100 Gems"))
	require.NoError(t, m.SelectService(ctx, "500 Gems"))

	selected, err = m.SelectedService(ctx)
	require.NoError(t, err)
	assert.Equal(t, "500 Gems", selected)
}
