package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterPropertyIfNew(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	first, err := store.RegisterPropertyIfNew(ctx, "123 Main St")
	require.NoError(t, err)

	// A different casing of the same address must resolve to the existing
	// record, not create a second one.
	second, err := store.RegisterPropertyIfNew(ctx, "123 MAIN ST")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	props, err := store.ListProperties(ctx)
	require.NoError(t, err)
	require.Len(t, props, 1)
	assert.Equal(t, "123 Main St", props[0].Address, "first-seen casing wins")

	third, err := store.RegisterPropertyIfNew(ctx, "456 Oak Ave")
	require.NoError(t, err)
	assert.NotEqual(t, first, third)

	props, err = store.ListProperties(ctx)
	require.NoError(t, err)
	assert.Len(t, props, 2)
}

func TestRegisterPropertyIfNewRejectsBlank(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	_, err := store.RegisterPropertyIfNew(ctx, "   ")
	assert.Error(t, err)
}
