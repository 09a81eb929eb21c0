package repositories

import (
	"errors"

	"github.com/davidparhut/iBoss/internal/models"
)

// ErrUserNotFound signals that no profile row exists for the requested
// identity, as opposed to a transport failure reaching the store.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for user profile data access.
type UserRepository interface {
	Create(user *models.User) error
	GetAll() ([]models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	UpdateRole(id string, role string) error
}
