package repositories

import (
	"github.com/davidparhut/iBoss/internal/models"
)

// RepairRequestRepository defines the interface for repair request
// data access.
type RepairRequestRepository interface {
	GetAll() ([]models.RepairRequest, error)
	GetByUser(userID string) ([]models.RepairRequest, error)
	GetByID(id string) (*models.RepairRequest, error)
	Create(request *models.RepairRequest) error
	UpdateStatus(id string, status string) error
}
