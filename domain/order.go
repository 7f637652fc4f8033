package domain

import (
	"fmt"
	"time"
)

type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentCash PaymentMethod = "cash"
)

func (p PaymentMethod) IsValid() bool {
	return p == PaymentCard || p == PaymentCash
}

const StatusPreparing = "preparing"

type CheckoutForm struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	CardNumber string `json:"cardNumber"`
	CardExpiry string `json:"cardExpiry"`
	CardCvc    string `json:"cardCvc"`
	Notes      string `json:"notes"`
}

// Order is an immutable snapshot of the cart and checkout form, built
// exactly once per checkout submission. TotalPrice is the subtotal and
// excludes the delivery fee.
type Order struct {
	OrderId           string        `json:"orderId"`
	Items             []CartItem    `json:"items"`
	TotalPrice        float64       `json:"totalPrice"`
	FormData          CheckoutForm  `json:"formData"`
	PaymentMethod     PaymentMethod `json:"paymentMethod"`
	Status            string        `json:"status"`
	EstimatedDelivery string        `json:"estimatedDelivery"`
}

func NewOrder(items []CartItem, totalPrice float64, form CheckoutForm, method PaymentMethod) Order {
	return Order{
		OrderId:           fmt.Sprintf("ORD-%d", time.Now().UnixMilli()),
		Items:             items,
		TotalPrice:        totalPrice,
		FormData:          form,
		PaymentMethod:     method,
		Status:            StatusPreparing,
		EstimatedDelivery: cfg.EstimatedDelivery,
	}
}

type OrderStage struct {
	Label  string `json:"label"`
	Status string `json:"status"`
}

// TrackingProgress is the fixed percentage shown on the confirmation
// page. There is no live status engine behind it.
const TrackingProgress = 30

func OrderStages() []OrderStage {
	return []OrderStage{
		{Label: "Order Confirmed", Status: "completed"},
		{Label: "Preparing", Status: "current"},
		{Label: "Ready for Delivery", Status: "pending"},
		{Label: "Out for Delivery", Status: "pending"},
	}
}
