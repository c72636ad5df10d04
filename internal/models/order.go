package models

import "time"

// Statuses a fulfillment process moves an order through.
const (
	StatusPending        = "Pending"
	StatusShipped        = "Shipped"
	StatusOutForDelivery = "Out for delivery"
	StatusDelivered      = "Delivered"
)

// OrderItem is a snapshot of a product at purchase time. Orders keep their
// own copy of name and price so history survives later catalog changes.
type OrderItem struct {
	ProductID int    `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     int    `json:"price"`
}

// Order is a customer purchase.
type Order struct {
	ID        int         `json:"id" gorm:"primaryKey"`
	UserID    int         `json:"userId" gorm:"index"`
	Items     []OrderItem `json:"items" gorm:"serializer:json"`
	Total     int         `json:"total"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
	Address   string      `json:"address"`
}
