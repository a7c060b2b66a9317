package domain

import (
	"errors"
	"time"
)

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
)

// CartItem couples a product snapshot with the quantity in the cart.
type CartItem struct {
	Product  Product
	Quantity int
}

// CartView is the cart as presented to the client.
type CartView struct {
	Items      []CartItem
	TotalPrice float64
	ItemCount  int
}

// Payment method tags are descriptive only, there is no gateway behind them.
const (
	PaymentCreditCard     = "credit-card"
	PaymentUPI            = "upi"
	PaymentCashOnDelivery = "cash-on-delivery"
)

func ValidPaymentMethod(s string) bool {
	switch s {
	case PaymentCreditCard, PaymentUPI, PaymentCashOnDelivery:
		return true
	}
	return false
}

type (
	OrderItem struct {
		ProductID string
		Name      string
		Price     float64
		Quantity  int
		Category  string
	}

	// Order is the transfer representation of a cart snapshot
	// submitted for recording.
	Order struct {
		Items         []OrderItem
		TotalPrice    float64
		PaymentMethod string
	}

	OrderConfirmation struct {
		OrderID string
		Message string
	}

	// PlacedOrder is a recorded order enriched for event emission.
	PlacedOrder struct {
		OrderID  string
		Order    Order
		PlacedAt time.Time
	}
)
