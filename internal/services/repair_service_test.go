package services_test

import (
	"fmt"
	"testing"

	"github.com/davidparhut/iBoss/internal/models"
	"github.com/davidparhut/iBoss/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepairServiceRepository is a mock implementation of
// repositories.RepairServiceRepository
type MockRepairServiceRepository struct {
	mock.Mock
}

func (m *MockRepairServiceRepository) GetAll() ([]models.RepairService, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RepairService), args.Error(1)
}

func (m *MockRepairServiceRepository) GetByID(id string) (*models.RepairService, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RepairService), args.Error(1)
}

func (m *MockRepairServiceRepository) Create(service *models.RepairService) error {
	args := m.Called(service)
	return args.Error(0)
}

func (m *MockRepairServiceRepository) Update(service *models.RepairService) error {
	args := m.Called(service)
	return args.Error(0)
}

func (m *MockRepairServiceRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockRepairRequestRepository is a mock implementation of
// repositories.RepairRequestRepository
type MockRepairRequestRepository struct {
	mock.Mock
}

func (m *MockRepairRequestRepository) GetAll() ([]models.RepairRequest, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RepairRequest), args.Error(1)
}

func (m *MockRepairRequestRepository) GetByUser(userID string) ([]models.RepairRequest, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RepairRequest), args.Error(1)
}

func (m *MockRepairRequestRepository) GetByID(id string) (*models.RepairRequest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RepairRequest), args.Error(1)
}

func (m *MockRepairRequestRepository) Create(request *models.RepairRequest) error {
	args := m.Called(request)
	return args.Error(0)
}

func (m *MockRepairRequestRepository) UpdateStatus(id string, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func screenReplacement() *models.RepairService {
	return &models.RepairService{
		ID:          "svc-screen",
		Title:       "Заміна екрану",
		Description: "Заміна розбитого екрану",
		Time:        "1 година",
		Models: map[string]models.Price{
			"iphone-16": 8500,
			"iphone-15": 6500,
			"iphone-11": 3000,
		},
	}
}

func repairContact() models.RepairContactInfo {
	return models.RepairContactInfo{
		Name:  "Леся Українка",
		Phone: "+380671112233",
	}
}

func TestRepairService_QuotePrice(t *testing.T) {
	serviceRepo := new(MockRepairServiceRepository)
	requestRepo := new(MockRepairRequestRepository)
	service := services.NewRepairService(serviceRepo, requestRepo, nil)

	serviceRepo.On("GetByID", "svc-screen").Return(screenReplacement(), nil)

	price, err := service.QuotePrice("svc-screen", "iphone-15")
	assert.NoError(t, err)
	assert.Equal(t, models.Price(6500), price)

	_, err = service.QuotePrice("svc-screen", "iphone-3g")
	assert.ErrorIs(t, err, services.ErrNoPriceForModel)
}

func TestRepairService_QuoteRejectsWildcardModel(t *testing.T) {
	serviceRepo := new(MockRepairServiceRepository)
	requestRepo := new(MockRepairRequestRepository)
	service := services.NewRepairService(serviceRepo, requestRepo, nil)

	// The wildcard is rejected before any store lookup happens.
	_, err := service.QuotePrice("svc-screen", models.ModelAll)
	assert.ErrorIs(t, err, services.ErrModelRequired)
	_, err = service.QuotePrice("svc-screen", "")
	assert.ErrorIs(t, err, services.ErrModelRequired)
	serviceRepo.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestRepairService_SubmitRequestFreezesExactModelPrice(t *testing.T) {
	serviceRepo := new(MockRepairServiceRepository)
	requestRepo := new(MockRepairRequestRepository)
	service := services.NewRepairService(serviceRepo, requestRepo, nil)

	serviceRepo.On("GetByID", "svc-screen").Return(screenReplacement(), nil)
	requestRepo.On("Create", mock.AnythingOfType("*models.RepairRequest")).Return(nil).Once()

	request, err := service.SubmitRequest("user-1", "user@example.com", "svc-screen", "iphone-15", repairContact())
	assert.NoError(t, err)
	// The submitted price is the exact per-model price, never the
	// "from" range shown for the wildcard filter.
	assert.Equal(t, models.Price(6500), request.Price)
	assert.Equal(t, "iphone-15", request.Model)
	assert.Equal(t, "Заміна екрану", request.ServiceTitle)
	assert.Equal(t, "1 година", request.Time)
	assert.Equal(t, models.RepairStatusNew, request.Status)
	assert.NotEmpty(t, request.ID)
	requestRepo.AssertExpectations(t)
}

func TestRepairService_SubmitRequestPreconditions(t *testing.T) {
	serviceRepo := new(MockRepairServiceRepository)
	requestRepo := new(MockRepairRequestRepository)
	service := services.NewRepairService(serviceRepo, requestRepo, nil)

	_, err := service.SubmitRequest("", "", "svc-screen", "iphone-15", repairContact())
	assert.ErrorIs(t, err, services.ErrNotSignedIn)

	_, err = service.SubmitRequest("user-1", "user@example.com", "svc-screen", models.ModelAll, repairContact())
	assert.ErrorIs(t, err, services.ErrModelRequired)

	contact := repairContact()
	contact.Phone = ""
	_, err = service.SubmitRequest("user-1", "user@example.com", "svc-screen", "iphone-15", contact)
	assert.ErrorIs(t, err, services.ErrMissingContactFields)

	// None of the precondition failures touched the store.
	serviceRepo.AssertNotCalled(t, "GetByID", mock.Anything)
	requestRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRepairService_SubmitRequestStoreFailure(t *testing.T) {
	serviceRepo := new(MockRepairServiceRepository)
	requestRepo := new(MockRepairRequestRepository)
	service := services.NewRepairService(serviceRepo, requestRepo, nil)

	serviceRepo.On("GetByID", "svc-screen").Return(screenReplacement(), nil)
	requestRepo.On("Create", mock.AnythingOfType("*models.RepairRequest")).Return(fmt.Errorf("transport failure")).Once()

	_, err := service.SubmitRequest("user-1", "user@example.com", "svc-screen", "iphone-15", repairContact())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "transport failure")
	requestRepo.AssertExpectations(t)
}

func TestRepairService_UpdateRequestStatus(t *testing.T) {
	serviceRepo := new(MockRepairServiceRepository)
	requestRepo := new(MockRepairRequestRepository)
	service := services.NewRepairService(serviceRepo, requestRepo, nil)

	requestRepo.On("UpdateStatus", "req-1", models.RepairStatusInProgress).Return(nil).Once()
	assert.NoError(t, service.UpdateRequestStatus("req-1", models.RepairStatusInProgress))
	requestRepo.AssertExpectations(t)

	err := service.UpdateRequestStatus("req-1", "shipped")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid repair request status")
	requestRepo.AssertNotCalled(t, "UpdateStatus", "req-1", "shipped")
}
