package repositories

import (
	"fmt"

	"github.com/davidparhut/iBoss/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMRepairServiceRepository is a GORM implementation of
// RepairServiceRepository.
type GORMRepairServiceRepository struct {
	db *gorm.DB
}

// NewGORMRepairServiceRepository creates a new instance of
// GORMRepairServiceRepository.
func NewGORMRepairServiceRepository(db *gorm.DB) *GORMRepairServiceRepository {
	return &GORMRepairServiceRepository{
		db: db,
	}
}

// GetAll retrieves all repair services ordered by their display order.
func (r *GORMRepairServiceRepository) GetAll() ([]models.RepairService, error) {
	var services []models.RepairService
	if err := r.db.Order("display_order asc").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("failed to get all repair services: %w", err)
	}
	return services, nil
}

// GetByID retrieves a single repair service by its ID.
func (r *GORMRepairServiceRepository) GetByID(id string) (*models.RepairService, error) {
	var service models.RepairService
	if err := r.db.First(&service, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("repair service with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get repair service by ID %s: %w", id, err)
	}
	return &service, nil
}

// Create creates a new repair service in the database.
func (r *GORMRepairServiceRepository) Create(service *models.RepairService) error {
	if service.ID == "" {
		service.ID = uuid.New().String()
	}
	if err := r.db.Create(service).Error; err != nil {
		return fmt.Errorf("failed to create repair service: %w", err)
	}
	return nil
}

// Update updates an existing repair service in the database.
func (r *GORMRepairServiceRepository) Update(service *models.RepairService) error {
	res := r.db.Save(service)
	if res.Error != nil {
		return fmt.Errorf("failed to update repair service: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("repair service with ID %s not found for update", service.ID)
	}
	return nil
}

// Delete deletes a repair service by its ID.
func (r *GORMRepairServiceRepository) Delete(id string) error {
	res := r.db.Delete(&models.RepairService{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete repair service: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("repair service with ID %s not found for deletion", id)
	}
	return nil
}
