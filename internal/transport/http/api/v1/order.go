package apiv1

import "time"

type ShippingAddress struct {
	FullName string `json:"fullName"`
	Address1 string `json:"address1"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
	Country  string `json:"country"`
}

type OrderItem struct {
	ProductID  int64  `json:"productId"`
	Name       string `json:"name"`
	PictureURL string `json:"pictureUrl"`
	Price      int64  `json:"price"`
	Quantity   int64  `json:"quantity"`
}

type OrderSummary struct {
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	Total       int64 `json:"total"`
}

type Order struct {
	ID              int64           `json:"id"`
	BuyerID         string          `json:"buyerId"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	OrderDate       time.Time       `json:"orderDate"`
	OrderItems      []OrderItem     `json:"orderItems"`
	OrderStatus     string          `json:"orderStatus"`
	Summary         OrderSummary    `json:"summary"`
}
