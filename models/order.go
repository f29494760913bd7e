package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusFailed    OrderStatus = "failed"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusFulfilled OrderStatus = "fulfilled"
)

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusFailed,
		OrderStatusCancelled, OrderStatusFulfilled:
		return true
	}
	return false
}

const DefaultCurrency = "NGN"

// OrderCollection is the Data Store collection orders are persisted in.
const OrderCollection = "order"

type OrderItem struct {
	Name      string  `json:"name" bson:"name" validate:"required"`
	UnitPrice float64 `json:"unit_price" bson:"unit_price" validate:"gte=0"`
	Quantity  int     `json:"quantity" bson:"quantity" validate:"gte=1"`
}

type CustomerInfo struct {
	Name    string `json:"name" bson:"name" validate:"required"`
	Email   string `json:"email" bson:"email" validate:"required,email"`
	Phone   string `json:"phone" bson:"phone" validate:"required"`
	Address string `json:"address" bson:"address" validate:"required"`
	City    string `json:"city" bson:"city" validate:"required"`
}

// OrderCreate is the client-submitted order candidate.
type OrderCreate struct {
	Items       []OrderItem  `json:"items" validate:"required,min=1,dive"`
	Customer    CustomerInfo `json:"customer"`
	Subtotal    float64      `json:"subtotal" validate:"gte=0"`
	DeliveryFee float64      `json:"delivery_fee" validate:"gte=0"`
	Total       float64      `json:"total" validate:"gte=0"`
}

type Order struct {
	ID               string       `json:"id,omitempty" bson:"-"`
	Items            []OrderItem  `json:"items" bson:"items"`
	Customer         CustomerInfo `json:"customer" bson:"customer"`
	Subtotal         float64      `json:"subtotal" bson:"subtotal"`
	DeliveryFee      float64      `json:"delivery_fee" bson:"delivery_fee"`
	Total            float64      `json:"total" bson:"total"`
	Currency         string       `json:"currency" bson:"currency"`
	Status           OrderStatus  `json:"status" bson:"status"`
	PaymentReference *string      `json:"payment_reference" bson:"payment_reference"`
	CreatedAt        time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at" bson:"updated_at"`
}

type OrderCreated struct {
	OrderID string      `json:"order_id"`
	Status  OrderStatus `json:"status"`
}
