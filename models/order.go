package models

import "time"

// OrderStatusEvent is one entry in an order's fulfilment timeline.
// The timeline is append-only and timestamp-ascending.
type OrderStatusEvent struct {
	Status      string    `json:"status" bson:"status"`
	Timestamp   time.Time `json:"timestamp" bson:"timestamp"`
	Description string    `json:"description" bson:"description"`
}

// Order is an immutable record created at checkout from a cart snapshot.
// After creation only the timeline grows; lines and total never change.
type Order struct {
	OrderID       string             `json:"orderId" bson:"orderid"`
	UserID        string             `json:"userId" bson:"userid"`
	Lines         []CartLine         `json:"lines" bson:"lines"`
	Total         float64            `json:"total" bson:"total"`
	PaymentMethod string             `json:"paymentMethod" bson:"paymentmethod"`
	Status        string             `json:"status" bson:"status"` // "placed", "confirmed", "shipped", "delivered"
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	Timeline      []OrderStatusEvent `json:"timeline" bson:"timeline"`
}

// OrderEvent is what gets published to the order-events channel.
type OrderEvent struct {
	Type    string `json:"type"` // e.g. "order.placed", "order.status"
	OrderID string `json:"orderId"`
	UserID  string `json:"userId"`
	Status  string `json:"status"`
}
