package repositories

import (
	"fmt"
	"time"

	"github.com/davidparhut/iBoss/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMRepairRequestRepository is a GORM implementation of
// RepairRequestRepository.
type GORMRepairRequestRepository struct {
	db *gorm.DB
}

// NewGORMRepairRequestRepository creates a new instance of
// GORMRepairRequestRepository.
func NewGORMRepairRequestRepository(db *gorm.DB) *GORMRepairRequestRepository {
	return &GORMRepairRequestRepository{
		db: db,
	}
}

// GetAll retrieves all repair requests, newest first.
func (r *GORMRepairRequestRepository) GetAll() ([]models.RepairRequest, error) {
	var requests []models.RepairRequest
	if err := r.db.Order("created_at desc").Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("failed to get all repair requests: %w", err)
	}
	return requests, nil
}

// GetByUser retrieves one user's repair requests, newest first.
func (r *GORMRepairRequestRepository) GetByUser(userID string) ([]models.RepairRequest, error) {
	var requests []models.RepairRequest
	if err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("failed to get repair requests for user %s: %w", userID, err)
	}
	return requests, nil
}

// GetByID retrieves a single repair request by its ID.
func (r *GORMRepairRequestRepository) GetByID(id string) (*models.RepairRequest, error) {
	var request models.RepairRequest
	if err := r.db.First(&request, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("repair request with ID %s not found", id)
		}
		return nil, fmt.Errorf("failed to get repair request by ID %s: %w", id, err)
	}
	return &request, nil
}

// Create creates a new repair request in the database.
func (r *GORMRepairRequestRepository) Create(request *models.RepairRequest) error {
	if request.ID == "" {
		request.ID = uuid.New().String()
	}
	if err := r.db.Create(request).Error; err != nil {
		return fmt.Errorf("failed to create repair request: %w", err)
	}
	return nil
}

// UpdateStatus updates the status of a repair request.
func (r *GORMRepairRequestRepository) UpdateStatus(id string, status string) error {
	res := r.db.Model(&models.RepairRequest{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()})
	if res.Error != nil {
		return fmt.Errorf("failed to update repair request status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("repair request with ID %s not found for status update", id)
	}
	return nil
}
