package models

import "time"

// Repair request lifecycle statuses.
const (
	RepairStatusNew        = "new"
	RepairStatusInProgress = "in-progress"
	RepairStatusCompleted  = "completed"
	RepairStatusCancelled  = "cancelled"
)

// ValidRepairStatuses is the set of allowed repair request states.
var ValidRepairStatuses = map[string]bool{
	RepairStatusNew:        true,
	RepairStatusInProgress: true,
	RepairStatusCompleted:  true,
	RepairStatusCancelled:  true,
}

// ModelAll is the wildcard device-model filter. Prices are indexed by
// concrete model keys only, so a request must never be submitted with
// this value.
const ModelAll = "all"

// RepairService is one offered repair (screen replacement, battery,
// etc.) with per-device-model pricing keyed by model key
// (e.g. "iphone-15").
type RepairService struct {
	ID           string           `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title        string           `json:"title" validate:"required,min=2,max=100"`
	Description  string           `json:"description,omitempty" validate:"omitempty,max=500"`
	Time         string           `json:"time,omitempty"`
	Models       map[string]Price `json:"models" gorm:"serializer:json"`
	DisplayOrder int              `json:"order"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// PriceFor returns the exact price for the given model key.
func (s *RepairService) PriceFor(model string) (Price, bool) {
	price, ok := s.Models[model]
	return price, ok
}

// MinPrice is the lowest per-model price, used for the "from ..."
// display when no concrete model is selected. Returns false when the
// service has no per-model prices at all.
func (s *RepairService) MinPrice() (Price, bool) {
	found := false
	var min Price
	for _, price := range s.Models {
		if !found || price < min {
			min = price
			found = true
		}
	}
	return min, found
}

// RepairContactInfo is the contact data entered on the request form.
type RepairContactInfo struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Comment string `json:"comment,omitempty"`
}

// RepairRequest is a booking for one service at one concrete device
// model. Price and time estimate are frozen from the service at
// submission time.
type RepairRequest struct {
	ID           string            `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID       string            `json:"userId" gorm:"index;type:varchar(36)"`
	UserEmail    string            `json:"userEmail"`
	ServiceID    string            `json:"serviceId"`
	ServiceTitle string            `json:"serviceTitle"`
	Model        string            `json:"model"`
	Price        Price             `json:"price"`
	Time         string            `json:"time,omitempty"`
	CustomerInfo RepairContactInfo `json:"customerInfo" gorm:"embedded;embeddedPrefix:customer_"`
	Status       string            `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}
