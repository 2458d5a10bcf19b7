package storefront

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/menzofashion/menzo/internal/models"
)

func completeAddress() models.Address {
	return models.Address{
		FullName:   "Priya Sharma",
		Phone:      "9876543210",
		Line1:      "14 MG Road",
		City:       "Bengaluru",
		State:      "Karnataka",
		PostalCode: "560001",
	}
}

func signedInCheckout(t *testing.T, baseURL string) (*Checkout, *Cart) {
	t.Helper()
	cart := NewCart(nil)
	auth := NewAuth(nil)
	auth.SignIn(models.Identity{Subject: "123", Name: "Priya", Email: "priya@example.com"})
	return NewCheckout(NewClient(baseURL), cart, auth), cart
}

func TestCheckoutStepsAdvanceOneAtATime(t *testing.T) {
	co, _ := signedInCheckout(t, "http://unused")

	assert.Equal(t, StepAddress, co.Step())
	require.NoError(t, co.Advance())
	assert.Equal(t, StepShipping, co.Step())
	require.NoError(t, co.Advance())
	require.NoError(t, co.Advance())
	assert.Equal(t, StepReview, co.Step())

	assert.Error(t, co.Advance(), "success is only reached through PlaceOrder")
	assert.Equal(t, StepReview, co.Step())
}

func TestCheckoutBackKeepsData(t *testing.T) {
	co, _ := signedInCheckout(t, "http://unused")
	co.SetAddress(completeAddress())
	require.NoError(t, co.Advance())
	require.NoError(t, co.Advance())

	require.NoError(t, co.Back(StepAddress))
	assert.Equal(t, StepAddress, co.Step())

	assert.ErrorIs(t, co.Back(StepPayment), ErrInvalidTransition, "back only goes to earlier steps")
}

func TestShippingCost(t *testing.T) {
	co, cart := signedInCheckout(t, "http://unused")

	assert.Zero(t, co.ShippingCost(), "empty cart ships for free because nothing ships")

	cart.Add(models.CartItem{ProductID: "p1", Price: 1000})
	assert.Equal(t, 99.0, co.ShippingCost())
	assert.Equal(t, 1099.0, co.Total())

	co.SetShipping(ShippingExpress)
	assert.Equal(t, 199.0, co.ShippingCost())
	assert.Equal(t, 1199.0, co.Total())
}

func TestPlaceOrderPreconditions(t *testing.T) {
	// Preconditions fail before any network call, so a dead URL is fine.
	cart := NewCart(nil)
	auth := NewAuth(nil)
	co := NewCheckout(NewClient("http://127.0.0.1:1"), cart, auth)

	_, err := co.PlaceOrder()
	assert.ErrorIs(t, err, ErrNotSignedIn)

	auth.SignIn(models.Identity{Email: "priya@example.com"})
	_, err = co.PlaceOrder()
	assert.ErrorIs(t, err, ErrIncompleteAddress)

	co.SetAddress(completeAddress())
	_, err = co.PlaceOrder()
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderHappyPath(t *testing.T) {
	srv, mem := newTestBackend(t)
	co, cart := signedInCheckout(t, srv.URL)

	cart.Add(models.CartItem{ProductID: "p1", Name: "Bomber Jacket", Price: 1999, Size: "M", Color: "black"})
	cart.Add(models.CartItem{ProductID: "p1", Name: "Bomber Jacket", Price: 1999, Size: "M", Color: "black"})
	co.SetAddress(completeAddress())

	order, err := co.PlaceOrder()
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.True(t, strings.HasPrefix(order.ID, "ORD-"), "order id is ORD-<millis>")
	assert.Equal(t, "priya@example.com", order.UserID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 3998.0+99.0, order.Total)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Contains(t, order.ShippingAddress, "Bengaluru")

	assert.Zero(t, cart.Len(), "success clears the cart")
	assert.Equal(t, StepSuccess, co.Step())

	orders, err := mem.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)

	_, err = co.PlaceOrder()
	assert.Error(t, err, "a completed checkout cannot place again")
}
