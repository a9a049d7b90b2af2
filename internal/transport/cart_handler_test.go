package transport

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartFlow(t *testing.T) {
	c := newClient(t, newTestRouter(t))

	// Empty cart to start
	w := c.do(http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var cart CartResponse
	decodeInto(t, w, &cart)
	assert.Empty(t, cart.Lines)
	assert.Equal(t, "0.00", cart.Totals.Total.StringFixed(2))

	// Add 2x headphones and 1x mug
	w = c.do(http.MethodPost, "/api/cart/items", AddItemRequest{ProductID: 101, Quantity: 2})
	require.Equal(t, http.StatusOK, w.Code)
	w = c.do(http.MethodPost, "/api/cart/items", AddItemRequest{ProductID: 102, Quantity: 1})
	require.Equal(t, http.StatusOK, w.Code)

	decodeInto(t, w, &cart)
	require.Len(t, cart.Lines, 2)
	assert.Equal(t, "25.00", cart.Totals.Subtotal.StringFixed(2))
	assert.Equal(t, "2.50", cart.Totals.Tax.StringFixed(2))
	assert.Equal(t, "27.50", cart.Totals.Total.StringFixed(2))
	assert.Equal(t, "22.00", cart.Lines[0].LineTotal.StringFixed(2))

	// Adding the same product again merges into one line
	w = c.do(http.MethodPost, "/api/cart/items", AddItemRequest{ProductID: 101, Quantity: 1})
	decodeInto(t, w, &cart)
	require.Len(t, cart.Lines, 2)
	assert.Equal(t, 3, cart.Lines[0].Quantity)

	// Setting a quantity to zero removes the line
	w = c.do(http.MethodPut, "/api/cart", UpdateCartRequest{Quantities: map[int]int{101: 0, 102: 4}})
	decodeInto(t, w, &cart)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 102, cart.Lines[0].ProductID)
	assert.Equal(t, 4, cart.Lines[0].Quantity)

	// Clearing empties the cart; clearing again is a no-op
	w = c.do(http.MethodDelete, "/api/cart", nil)
	decodeInto(t, w, &cart)
	assert.Empty(t, cart.Lines)

	w = c.do(http.MethodDelete, "/api/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeInto(t, w, &cart)
	assert.Empty(t, cart.Lines)
}

func TestAddItemUnknownProductLeavesCartUnchanged(t *testing.T) {
	c := newClient(t, newTestRouter(t))

	w := c.do(http.MethodPost, "/api/cart/items", AddItemRequest{ProductID: 999, Quantity: 3})
	require.Equal(t, http.StatusOK, w.Code)

	var cart CartResponse
	decodeInto(t, w, &cart)
	assert.Empty(t, cart.Lines)
}

func TestAddItemClampsQuantity(t *testing.T) {
	c := newClient(t, newTestRouter(t))

	w := c.do(http.MethodPost, "/api/cart/items", AddItemRequest{ProductID: 101, Quantity: 0})
	require.Equal(t, http.StatusOK, w.Code)

	var cart CartResponse
	decodeInto(t, w, &cart)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
}

func TestAddItemMissingProductIDFailsValidation(t *testing.T) {
	c := newClient(t, newTestRouter(t))

	w := c.do(http.MethodPost, "/api/cart/items", map[string]interface{}{"quantity": 2})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartIsIsolatedPerSession(t *testing.T) {
	router := newTestRouter(t)

	first := newClient(t, router)
	first.do(http.MethodPost, "/api/cart/items", AddItemRequest{ProductID: 101, Quantity: 2})

	second := newClient(t, router)
	w := second.do(http.MethodGet, "/api/cart", nil)

	var cart CartResponse
	decodeInto(t, w, &cart)
	assert.Empty(t, cart.Lines, "second visitor sees the first visitor's cart")
}
