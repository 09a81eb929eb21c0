package repositories

import (
	"github.com/davidparhut/iBoss/internal/models"
)

// RepairServiceRepository defines the interface for repair service
// catalog access.
type RepairServiceRepository interface {
	GetAll() ([]models.RepairService, error)
	GetByID(id string) (*models.RepairService, error)
	Create(service *models.RepairService) error
	Update(service *models.RepairService) error
	Delete(id string) error
}
