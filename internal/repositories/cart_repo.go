package repositories

import (
	"github.com/davidparhut/iBoss/internal/models"
)

// CartRepository defines the interface for per-user cart persistence.
// Get returns an empty cart (not an error) when the user has none yet.
type CartRepository interface {
	Get(userID string) (*models.Cart, error)
	Save(cart *models.Cart) error
	Delete(userID string) error
}
