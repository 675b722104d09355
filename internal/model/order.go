package model

import "time"

type OrderStatus string

const (
	OrderStatusPending         OrderStatus = "Pending"
	OrderStatusPaymentReceived OrderStatus = "PaymentReceived"
	OrderStatusPaymentFailed   OrderStatus = "PaymentFailed"
)

const (
	// Orders at or above this subtotal ship for free.
	FreeDeliveryThreshold int64 = 10000
	StandardDeliveryFee   int64 = 500
)

type ShippingAddress struct {
	FullName string
	Address1 string
	Address2 string
	City     string
	State    string
	Zip      string
	Country  string
}

type OrderItem struct {
	ProductID  int64
	Name       string
	PictureURL string
	// Unit price in cents at the time of purchase.
	Price    int64
	Quantity int64
}

type Order struct {
	ID              int64
	BuyerID         string
	ShippingAddress ShippingAddress
	OrderDate       time.Time
	Items           []OrderItem
	// Totals as reported by the backend, in cents.
	Subtotal    int64
	DeliveryFee int64
	Total       int64
	Status      OrderStatus
}

// OrderSummary is recomputed from the order lines, never taken from the backend totals.
type OrderSummary struct {
	Subtotal    int64
	DeliveryFee int64
	Total       int64
}

type OrderDetails struct {
	Order   Order
	Summary OrderSummary
}
