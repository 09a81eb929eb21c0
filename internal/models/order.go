package models

import "time"

// Order lifecycle statuses.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatuses is the set of allowed order lifecycle states.
var ValidOrderStatuses = map[string]bool{
	OrderStatusPending:    true,
	OrderStatusProcessing: true,
	OrderStatusCompleted:  true,
	OrderStatusCancelled:  true,
}

// CustomerInfo is the contact and shipping data entered at checkout.
type CustomerInfo struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	City    string `json:"city,omitempty"`
	Address string `json:"address" validate:"required"`
	Comment string `json:"comment,omitempty"`
}

// OrderItem is an immutable snapshot of a cart line taken at submission
// time. It copies the values as they were at that instant; later edits
// to the underlying product never change it.
type OrderItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Storage   string `json:"storage"`
	Color     string `json:"color"`
	Price     Price  `json:"price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image,omitempty"`
}

// Order represents a customer order.
type Order struct {
	ID           string       `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID       string       `json:"userId" gorm:"index;type:varchar(36)"`
	UserEmail    string       `json:"userEmail"`
	CustomerInfo CustomerInfo `json:"customerInfo" gorm:"embedded;embeddedPrefix:customer_"`
	Items        []OrderItem  `json:"items" gorm:"serializer:json"`
	TotalItems   int          `json:"totalItems"`
	TotalPrice   float64      `json:"totalPrice"`
	Status       string       `json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
