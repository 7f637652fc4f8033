package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marcel-MD/gourmet-avenue/domain"
)

func TestNewOrder(t *testing.T) {
	items := []domain.CartItem{
		{Id: 1, Name: "Grilled Ribeye Steak", Price: 599, Quantity: 1},
		{Id: 2, Name: "Mediterranean Salad", Price: 699, Quantity: 2},
	}
	form := domain.CheckoutForm{FirstName: "John", LastName: "Doe"}

	order := domain.NewOrder(items, 1997, form, domain.PaymentCash)

	assert.Regexp(t, `^ORD-\d+$`, order.OrderId)
	assert.Equal(t, items, order.Items)
	assert.Equal(t, 1997.0, order.TotalPrice)
	assert.Equal(t, form, order.FormData)
	assert.Equal(t, domain.PaymentCash, order.PaymentMethod)
	assert.Equal(t, domain.StatusPreparing, order.Status)
	assert.Equal(t, "30-45 minutes", order.EstimatedDelivery)
}

func TestPaymentMethodIsValid(t *testing.T) {
	assert.True(t, domain.PaymentCard.IsValid())
	assert.True(t, domain.PaymentCash.IsValid())
	assert.False(t, domain.PaymentMethod("crypto").IsValid())
	assert.False(t, domain.PaymentMethod("").IsValid())
}

func TestOrderStages(t *testing.T) {
	stages := domain.OrderStages()
	require.Len(t, stages, 4)

	assert.Equal(t, "Order Confirmed", stages[0].Label)
	assert.Equal(t, "completed", stages[0].Status)
	assert.Equal(t, "Preparing", stages[1].Label)
	assert.Equal(t, "current", stages[1].Status)
	assert.Equal(t, "Ready for Delivery", stages[2].Label)
	assert.Equal(t, "pending", stages[2].Status)
	assert.Equal(t, "Out for Delivery", stages[3].Label)
	assert.Equal(t, "pending", stages[3].Status)
}

func TestSessionsIsolateCarts(t *testing.T) {
	sessions := domain.NewSessions()

	a := sessions.Cart("session-a")
	b := sessions.Cart("session-b")

	a.AddItem(domain.MenuItem{Id: 1, Name: "Grilled Ribeye Steak", Price: 599}, 2)

	assert.Equal(t, 2, a.TotalItems())
	assert.Equal(t, 0, b.TotalItems())
	assert.Same(t, a, sessions.Cart("session-a"))
}
