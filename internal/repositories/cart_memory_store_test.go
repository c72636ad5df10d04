package repositories

import (
	"context"
	"testing"

	"renewkart/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCartStore_RoundTrip(t *testing.T) {
	store := NewMemoryCartStore()
	ctx := context.Background()

	items := []models.CartItem{
		{Product: models.Product{ID: 1, Name: "iPhone 13 Pro (Refurbished)", Price: 45999}, Quantity: 1},
		{Product: models.Product{ID: 6, Name: "Sony WH-1000XM4", Price: 14999}, Quantity: 2},
	}
	require.NoError(t, store.Save(ctx, 7, items))

	loaded, err := store.Get(ctx, 7)
	assert.NoError(t, err)
	assert.Equal(t, items, loaded)
}

func TestMemoryCartStore_MissingUserYieldsEmptyCart(t *testing.T) {
	store := NewMemoryCartStore()

	items, err := store.Get(context.Background(), 42)
	assert.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestMemoryCartStore_CorruptPayloadYieldsEmptyCart(t *testing.T) {
	store := NewMemoryCartStore()
	store.carts[7] = []byte("{this is not json")

	items, err := store.Get(context.Background(), 7)
	assert.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestMemoryCartStore_Clear(t *testing.T) {
	store := NewMemoryCartStore()
	ctx := context.Background()

	items := []models.CartItem{{Product: models.Product{ID: 1, Price: 100}, Quantity: 1}}
	require.NoError(t, store.Save(ctx, 7, items))
	require.NoError(t, store.Clear(ctx, 7))

	loaded, err := store.Get(ctx, 7)
	assert.NoError(t, err)
	assert.Empty(t, loaded)
}
