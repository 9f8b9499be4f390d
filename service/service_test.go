package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "github.com/Dawood573189/simple-online-shop/model"
	"github.com/Dawood573189/simple-online-shop/store"
)

func newTestService() *Service {
	return NewService(store.NewMemoryCatalog([]models.Product{
		{ID: 1, Name: "Laptop", Price: 120000},
		{ID: 2, Name: "Smartphone", Price: 60000},
		{ID: 3, Name: "Headphones", Price: 5000},
	}))
}

func TestAddToCartNewLine(t *testing.T) {
	svc := newTestService()
	cart := &models.Cart{}

	require.NoError(t, svc.AddToCart(cart, 1, 2))

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, models.CartLine{ProductID: 1, Quantity: 2}, cart.Lines[0])
}

func TestAddToCartMergesExistingLine(t *testing.T) {
	svc := newTestService()
	cart := &models.Cart{}

	require.NoError(t, svc.AddToCart(cart, 1, 2))
	require.NoError(t, svc.AddToCart(cart, 1, 3))

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 5, cart.Lines[0].Quantity)
}

func TestAddToCartInvalidQuantity(t *testing.T) {
	svc := newTestService()
	cart := &models.Cart{}

	assert.ErrorIs(t, svc.AddToCart(cart, 1, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, svc.AddToCart(cart, 1, -3), ErrInvalidQuantity)
	assert.Empty(t, cart.Lines)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	svc := newTestService()
	cart := &models.Cart{}

	assert.ErrorIs(t, svc.AddToCart(cart, 99, 1), ErrInvalidProduct)
	assert.Empty(t, cart.Lines)
}

func TestRemoveFromCart(t *testing.T) {
	svc := newTestService()

	t.Run("decrements when removing less than held", func(t *testing.T) {
		cart := &models.Cart{}
		require.NoError(t, svc.AddToCart(cart, 1, 5))

		require.NoError(t, svc.RemoveFromCart(cart, 1, 2))

		require.Len(t, cart.Lines, 1)
		assert.Equal(t, 3, cart.Lines[0].Quantity)
	})

	t.Run("deletes line when removing exactly the held quantity", func(t *testing.T) {
		cart := &models.Cart{}
		require.NoError(t, svc.AddToCart(cart, 1, 2))

		require.NoError(t, svc.RemoveFromCart(cart, 1, 2))
		assert.Empty(t, cart.Lines)
	})

	t.Run("deletes line when removing more than held", func(t *testing.T) {
		cart := &models.Cart{}
		require.NoError(t, svc.AddToCart(cart, 1, 2))

		require.NoError(t, svc.RemoveFromCart(cart, 1, 10))
		assert.Empty(t, cart.Lines)
	})

	t.Run("fails when product has no line", func(t *testing.T) {
		cart := &models.Cart{}
		assert.ErrorIs(t, svc.RemoveFromCart(cart, 2, 1), ErrItemNotFound)
	})

	t.Run("fails on quantity <= 0 and leaves cart unchanged", func(t *testing.T) {
		cart := &models.Cart{}
		require.NoError(t, svc.AddToCart(cart, 1, 2))

		assert.ErrorIs(t, svc.RemoveFromCart(cart, 1, 0), ErrInvalidQuantity)
		require.Len(t, cart.Lines, 1)
		assert.Equal(t, 2, cart.Lines[0].Quantity)
	})

	t.Run("keeps order of remaining lines", func(t *testing.T) {
		cart := &models.Cart{}
		require.NoError(t, svc.AddToCart(cart, 1, 1))
		require.NoError(t, svc.AddToCart(cart, 2, 1))
		require.NoError(t, svc.AddToCart(cart, 3, 1))

		require.NoError(t, svc.RemoveFromCart(cart, 2, 1))

		require.Len(t, cart.Lines, 2)
		assert.Equal(t, int64(1), cart.Lines[0].ProductID)
		assert.Equal(t, int64(3), cart.Lines[1].ProductID)
	})
}

func TestCalculateTotal(t *testing.T) {
	svc := newTestService()
	cart := &models.Cart{}

	assert.Equal(t, int64(0), svc.CalculateTotal(cart))

	require.NoError(t, svc.AddToCart(cart, 1, 2))
	require.NoError(t, svc.AddToCart(cart, 3, 1))

	assert.Equal(t, int64(245000), svc.CalculateTotal(cart))
}

func TestCheckoutClearsCart(t *testing.T) {
	svc := newTestService()
	cart := &models.Cart{}
	require.NoError(t, svc.AddToCart(cart, 1, 2))
	require.NoError(t, svc.AddToCart(cart, 3, 1))

	assert.Equal(t, int64(245000), svc.Checkout(cart))
	assert.Empty(t, cart.Lines)

	// immediate second checkout on the now-empty cart
	assert.Equal(t, int64(0), svc.Checkout(cart))
}

func TestAddThenRemoveRoundTrip(t *testing.T) {
	svc := newTestService()
	cart := &models.Cart{}
	require.NoError(t, svc.AddToCart(cart, 2, 4))

	// new product: add then remove the same quantity restores the cart
	require.NoError(t, svc.AddToCart(cart, 1, 3))
	require.NoError(t, svc.RemoveFromCart(cart, 1, 3))
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, models.CartLine{ProductID: 2, Quantity: 4}, cart.Lines[0])

	// existing product: increment then decrement leaves it unchanged
	require.NoError(t, svc.AddToCart(cart, 2, 2))
	require.NoError(t, svc.RemoveFromCart(cart, 2, 2))
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, models.CartLine{ProductID: 2, Quantity: 4}, cart.Lines[0])
}

func TestViewCartPreservesInsertionOrder(t *testing.T) {
	svc := newTestService()
	cart := &models.Cart{}
	for _, id := range []int64{3, 1, 2} {
		require.NoError(t, svc.AddToCart(cart, id, 1))
	}
	// incrementing an existing line must not reorder it
	require.NoError(t, svc.AddToCart(cart, 1, 1))

	details := svc.ViewCart(cart)
	require.Len(t, details, 3)
	assert.Equal(t, int64(3), details[0].ProductID)
	assert.Equal(t, int64(1), details[1].ProductID)
	assert.Equal(t, int64(2), details[2].ProductID)
	assert.Equal(t, 2, details[1].Quantity)
}

func TestViewCartDetails(t *testing.T) {
	svc := newTestService()
	cart := &models.Cart{}
	require.NoError(t, svc.AddToCart(cart, 1, 2))

	details := svc.ViewCart(cart)
	require.Len(t, details, 1)
	assert.Equal(t, LineDetail{
		ProductID: 1,
		Name:      "Laptop",
		Price:     120000,
		Quantity:  2,
		Subtotal:  240000,
	}, details[0])
}

func TestUnresolvableLinesAreSkipped(t *testing.T) {
	svc := newTestService()
	// cannot occur through the service, but tolerated defensively
	cart := &models.Cart{Lines: []models.CartLine{
		{ProductID: 1, Quantity: 1},
		{ProductID: 42, Quantity: 7},
	}}

	details := svc.ViewCart(cart)
	require.Len(t, details, 1)
	assert.Equal(t, int64(1), details[0].ProductID)

	assert.Equal(t, int64(120000), svc.CalculateTotal(cart))
}

func TestListProductsAscendingByID(t *testing.T) {
	svc := NewService(store.NewMemoryCatalog([]models.Product{
		{ID: 5, Name: "Mouse", Price: 1500},
		{ID: 1, Name: "Laptop", Price: 120000},
		{ID: 3, Name: "Headphones", Price: 5000},
	}))

	ps := svc.ListProducts()
	require.Len(t, ps, 3)
	assert.Equal(t, int64(1), ps[0].ID)
	assert.Equal(t, int64(3), ps[1].ID)
	assert.Equal(t, int64(5), ps[2].ID)
}
