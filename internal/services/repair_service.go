package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/davidparhut/iBoss/internal/models"
	"github.com/davidparhut/iBoss/internal/repositories"
	"github.com/davidparhut/iBoss/pkg/rabbitmq"

	"github.com/google/uuid"
)

// Repair booking precondition errors.
var (
	// ErrModelRequired rejects the wildcard "all" model: service
	// prices are indexed by concrete model key only, so no price
	// exists for the wildcard.
	ErrModelRequired = errors.New("a concrete device model must be selected")

	// ErrNoPriceForModel means the service has no price for the
	// chosen model (the "ask us" case in the catalog).
	ErrNoPriceForModel = errors.New("no price for the selected model")
)

// RepairService handles the repair-service catalog and repair request
// bookings.
type RepairService struct {
	serviceRepo repositories.RepairServiceRepository
	requestRepo repositories.RepairRequestRepository
	events      EventPublisher
}

// NewRepairService creates a new RepairService. The event publisher
// may be nil; repair events are then skipped.
func NewRepairService(serviceRepo repositories.RepairServiceRepository, requestRepo repositories.RepairRequestRepository, events EventPublisher) *RepairService {
	return &RepairService{
		serviceRepo: serviceRepo,
		requestRepo: requestRepo,
		events:      events,
	}
}

// GetAllServices retrieves all repair services in display order.
func (s *RepairService) GetAllServices() ([]models.RepairService, error) {
	return s.serviceRepo.GetAll()
}

// GetServiceByID retrieves a single repair service by its ID.
func (s *RepairService) GetServiceByID(id string) (*models.RepairService, error) {
	return s.serviceRepo.GetByID(id)
}

// QuotePrice returns the exact price of a service for a concrete
// device model. The wildcard model only ever shows a "from ..." range
// in the catalog and is rejected here.
func (s *RepairService) QuotePrice(serviceID, model string) (models.Price, error) {
	if model == "" || model == models.ModelAll {
		return 0, ErrModelRequired
	}

	service, err := s.serviceRepo.GetByID(serviceID)
	if err != nil {
		return 0, err
	}

	price, ok := service.PriceFor(model)
	if !ok {
		return 0, ErrNoPriceForModel
	}
	return price, nil
}

// SubmitRequest books a repair: one service at one concrete model. The
// price and time estimate are frozen from the service as they are
// right now; later catalog edits never change the request. Nothing is
// persisted when any precondition fails.
func (s *RepairService) SubmitRequest(userID, userEmail, serviceID, model string, contact models.RepairContactInfo) (*models.RepairRequest, error) {
	if userID == "" {
		return nil, ErrNotSignedIn
	}
	if model == "" || model == models.ModelAll {
		return nil, ErrModelRequired
	}
	if strings.TrimSpace(contact.Name) == "" || strings.TrimSpace(contact.Phone) == "" {
		return nil, ErrMissingContactFields
	}

	service, err := s.serviceRepo.GetByID(serviceID)
	if err != nil {
		return nil, err
	}
	price, ok := service.PriceFor(model)
	if !ok {
		return nil, ErrNoPriceForModel
	}

	request := &models.RepairRequest{
		ID:           uuid.New().String(),
		UserID:       userID,
		UserEmail:    userEmail,
		ServiceID:    service.ID,
		ServiceTitle: service.Title,
		Model:        model,
		Price:        price,
		Time:         service.Time,
		CustomerInfo: contact,
		Status:       models.RepairStatusNew,
	}

	if err := s.requestRepo.Create(request); err != nil {
		return nil, fmt.Errorf("failed to create repair request: %w", err)
	}

	if s.events != nil {
		event := map[string]interface{}{
			"requestID": request.ID,
			"userID":    request.UserID,
			"serviceID": request.ServiceID,
			"model":     request.Model,
			"status":    request.Status,
		}
		if err := s.events.Publish(rabbitmq.RepairQueue, event); err != nil {
			log.Printf("Warning: failed to publish repair created event for request %s: %v", request.ID, err)
		}
	}

	return request, nil
}

// GetUserRequests retrieves one user's repair requests, newest first.
func (s *RepairService) GetUserRequests(userID string) ([]models.RepairRequest, error) {
	if userID == "" {
		return nil, ErrNotSignedIn
	}
	return s.requestRepo.GetByUser(userID)
}

// GetAllRequests retrieves all repair requests, newest first.
func (s *RepairService) GetAllRequests() ([]models.RepairRequest, error) {
	return s.requestRepo.GetAll()
}

// UpdateRequestStatus transitions a repair request to another
// lifecycle state.
func (s *RepairService) UpdateRequestStatus(id string, status string) error {
	if !models.ValidRepairStatuses[status] {
		return fmt.Errorf("invalid repair request status: %s", status)
	}

	if err := s.requestRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update repair request status for request %s: %w", id, err)
	}
	return nil
}

// CreateService creates a new repair service.
func (s *RepairService) CreateService(service *models.RepairService) error {
	return s.serviceRepo.Create(service)
}

// UpdateService updates an existing repair service.
func (s *RepairService) UpdateService(service *models.RepairService) error {
	return s.serviceRepo.Update(service)
}

// DeleteService deletes a repair service by its ID.
func (s *RepairService) DeleteService(id string) error {
	return s.serviceRepo.Delete(id)
}
