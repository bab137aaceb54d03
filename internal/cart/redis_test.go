package cart

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/models"
)

func setupTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client, 30*time.Minute), mr
}

func TestLoadMissingCart(t *testing.T) {
	store, _ := setupTestStore(t)

	_, err := store.Load(context.Background(), "session-1")
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	cart := &models.Cart{Items: []models.CartItem{
		{ProductID: 1, Name: "Royal Truffle Collection", Price: 1299, Quantity: 2, Image: "truffles.jpg"},
		{ProductID: 5, Name: "Caramel Almonds", Price: 650, Quantity: 1},
	}}

	require.NoError(t, store.Save(ctx, "session-1", cart))

	loaded, err := store.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, cart.Items, loaded.Items)
	assert.Equal(t, float64(1299*2+650), loaded.Subtotal())
}

func TestSaveSetsTTL(t *testing.T) {
	store, mr := setupTestStore(t)

	require.NoError(t, store.Save(context.Background(), "session-1", &models.Cart{}))
	assert.Equal(t, 30*time.Minute, mr.TTL(cartKey("session-1")))
}

func TestLoadMalformedBlob(t *testing.T) {
	store, mr := setupTestStore(t)

	require.NoError(t, mr.Set(cartKey("session-1"), "{not json"))

	_, err := store.Load(context.Background(), "session-1")
	assert.ErrorIs(t, err, ErrMalformedCart)
}

func TestLoadRepairsInvalidItems(t *testing.T) {
	store, mr := setupTestStore(t)

	blob := `{"items":[
		{"id":1,"name":"Good","price":450,"quantity":2},
		{"id":0,"name":"NoID","price":100,"quantity":1},
		{"id":2,"name":"","price":100,"quantity":1},
		{"id":3,"name":"ZeroQty","price":100,"quantity":0},
		{"id":4,"name":"NegPrice","price":-5,"quantity":1},
		{"id":1,"name":"Dup","price":450,"quantity":9}
	]}`
	require.NoError(t, mr.Set(cartKey("session-1"), blob))

	cart, err := store.Load(context.Background(), "session-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(1), cart.Items[0].ProductID)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestClear(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	cart := &models.Cart{Items: []models.CartItem{{ProductID: 1, Name: "A", Price: 10, Quantity: 1}}}
	require.NoError(t, store.Save(ctx, "session-1", cart))
	require.NoError(t, store.Clear(ctx, "session-1"))

	_, err := store.Load(ctx, "session-1")
	assert.ErrorIs(t, err, ErrCartNotFound)

	// Clearing an absent cart is fine.
	assert.NoError(t, store.Clear(ctx, "session-2"))
}
