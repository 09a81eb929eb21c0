package models

import "time"

// CartLine is one cart entry for a specific product, color and storage
// combination. Lines with the same (ProductID, Color, Storage) key are
// merged by incrementing Quantity, never duplicated.
type CartLine struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Color     string `json:"color,omitempty"`
	Storage   string `json:"storage"`
	UnitPrice Price  `json:"price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image,omitempty"`
}

// SameVariant reports whether the line refers to the same product
// variant as the given key.
func (l *CartLine) SameVariant(productID, color, storage string) bool {
	return l.ProductID == productID && l.Color == color && l.Storage == storage
}

// Subtotal is the line's unit price times its quantity.
func (l *CartLine) Subtotal() float64 {
	return l.UnitPrice.Float64() * float64(l.Quantity)
}

// Cart is the persisted per-user cart: one row per user holding the
// full line list. The UserID key is what keeps one identity's lines
// from ever surfacing in another's session.
type Cart struct {
	UserID    string     `json:"userId" gorm:"primaryKey;type:varchar(36)"`
	Lines     []CartLine `json:"lines" gorm:"serializer:json"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TotalItems is the sum of quantities across all lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice is the sum of unit price times quantity across all lines.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, line := range c.Lines {
		total += line.Subtotal()
	}
	return total
}
