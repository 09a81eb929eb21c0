package handlers

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/davidparhut/iBoss/internal/middleware"
	"github.com/davidparhut/iBoss/internal/models"
	"github.com/davidparhut/iBoss/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// RepairHandler handles HTTP requests for the repair-service catalog
// and repair request bookings.
type RepairHandler struct {
	service  *services.RepairService
	validate *validator.Validate
}

// NewRepairHandler creates a new RepairHandler.
func NewRepairHandler(service *services.RepairService) *RepairHandler {
	return &RepairHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the public repair catalog routes.
func (h *RepairHandler) RegisterRoutes(router fiber.Router) {
	serviceRoutes := router.Group("/repair-services")
	serviceRoutes.Get("/", h.HandleGetServices)
	serviceRoutes.Get("/:id", h.HandleGetServiceByID)
	serviceRoutes.Get("/:id/quote", h.HandleQuotePrice)
}

// RegisterRequestRoutes registers the authenticated booking routes.
func (h *RepairHandler) RegisterRequestRoutes(router fiber.Router) {
	requestRoutes := router.Group("/repair-requests")
	requestRoutes.Get("/", h.HandleGetMyRequests)
	requestRoutes.Post("/", h.HandleSubmitRequest)
}

// RegisterAdminRoutes registers the admin repair routes.
func (h *RepairHandler) RegisterAdminRoutes(router fiber.Router) {
	serviceRoutes := router.Group("/repair-services")
	serviceRoutes.Post("/", h.HandleCreateService)
	serviceRoutes.Put("/:id", h.HandleUpdateService)
	serviceRoutes.Delete("/:id", h.HandleDeleteService)

	requestRoutes := router.Group("/repair-requests")
	requestRoutes.Get("/", h.HandleGetAllRequests)
	requestRoutes.Patch("/:id/status", h.HandleUpdateRequestStatus)
}

// HandleGetServices lists the repair-service catalog in display order.
func (h *RepairHandler) HandleGetServices(c *fiber.Ctx) error {
	catalog, err := h.service.GetAllServices()
	if err != nil {
		log.Printf("Error getting repair services: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve repair services",
			"error":   err.Error(),
		})
	}
	return c.JSON(catalog)
}

// HandleGetServiceByID retrieves a single repair service.
func (h *RepairHandler) HandleGetServiceByID(c *fiber.Ctx) error {
	serviceID := c.Params("id")
	service, err := h.service.GetServiceByID(serviceID)
	if err != nil {
		log.Printf("Error getting repair service %s: %v", serviceID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Repair service not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve repair service",
			"error":   err.Error(),
		})
	}
	return c.JSON(service)
}

// HandleQuotePrice returns the exact price of a service at a concrete
// device model (query parameter "model").
func (h *RepairHandler) HandleQuotePrice(c *fiber.Ctx) error {
	serviceID := c.Params("id")
	model := c.Query("model")

	price, err := h.service.QuotePrice(serviceID, model)
	if err != nil {
		return h.repairError(c, err)
	}
	return c.JSON(fiber.Map{
		"serviceId": serviceID,
		"model":     model,
		"price":     price,
	})
}

// RepairRequestBody is the booking request payload.
type RepairRequestBody struct {
	ServiceID string `json:"serviceId" validate:"required"`
	Model     string `json:"model" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Comment   string `json:"comment"`
}

// HandleSubmitRequest books a repair for the signed-in user.
func (h *RepairHandler) HandleSubmitRequest(c *fiber.Ctx) error {
	var body RepairRequestBody
	if err := c.BodyParser(&body); err != nil {
		log.Printf("Error parsing repair request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(body); err != nil {
		return validationFailed(c, err)
	}

	request, err := h.service.SubmitRequest(
		middleware.UserID(c),
		middleware.UserEmail(c),
		body.ServiceID,
		body.Model,
		models.RepairContactInfo{
			Name:    body.Name,
			Phone:   body.Phone,
			Comment: body.Comment,
		},
	)
	if err != nil {
		return h.repairError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Заявку прийнято! Ми зв'яжемось з вами найближчим часом.",
		"request": request,
	})
}

// repairError maps repair booking errors onto HTTP statuses.
func (h *RepairHandler) repairError(c *fiber.Ctx, err error) error {
	log.Printf("Repair request error: %v", err)
	switch {
	case errors.Is(err, services.ErrNotSignedIn):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Будь ласка, увійдіть для запису на ремонт",
		})
	case errors.Is(err, services.ErrModelRequired):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Оберіть конкретну модель пристрою",
		})
	case errors.Is(err, services.ErrNoPriceForModel):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Ціну для цієї моделі уточнюйте",
		})
	case errors.Is(err, services.ErrMissingContactFields):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Будь ласка, заповніть всі обов'язкові поля",
		})
	case strings.Contains(err.Error(), "not found"):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Repair service not found",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Помилка при створенні заявки. Спробуйте ще раз.",
			"error":   err.Error(),
		})
	}
}

// HandleGetMyRequests lists the signed-in user's repair requests.
func (h *RepairHandler) HandleGetMyRequests(c *fiber.Ctx) error {
	requests, err := h.service.GetUserRequests(middleware.UserID(c))
	if err != nil {
		log.Printf("Error getting user repair requests: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve repair requests",
			"error":   err.Error(),
		})
	}
	return c.JSON(requests)
}

// HandleGetAllRequests lists every repair request, admin only.
func (h *RepairHandler) HandleGetAllRequests(c *fiber.Ctx) error {
	requests, err := h.service.GetAllRequests()
	if err != nil {
		log.Printf("Error getting all repair requests: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve repair requests",
			"error":   err.Error(),
		})
	}
	return c.JSON(requests)
}

// HandleUpdateRequestStatus transitions a repair request's lifecycle
// status, admin only.
func (h *RepairHandler) HandleUpdateRequestStatus(c *fiber.Ctx) error {
	requestID := c.Params("id")
	var updateData struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&updateData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for status update",
			"error":   err.Error(),
		})
	}
	if updateData.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status is required for repair request status update.",
		})
	}

	if err := h.service.UpdateRequestStatus(requestID, updateData.Status); err != nil {
		log.Printf("Error updating repair request status for %s: %v", requestID, err)
		if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "invalid repair request status") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": fmt.Sprintf("Repair request update failed: %v", err),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update repair request status",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Repair request %s status updated successfully to %s", requestID, updateData.Status),
	})
}

// HandleCreateService creates a repair service, admin only.
func (h *RepairHandler) HandleCreateService(c *fiber.Ctx) error {
	var service models.RepairService
	if err := c.BodyParser(&service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(service); err != nil {
		return validationFailed(c, err)
	}

	if err := h.service.CreateService(&service); err != nil {
		log.Printf("Error creating repair service: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create repair service",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

// HandleUpdateService updates a repair service, admin only.
func (h *RepairHandler) HandleUpdateService(c *fiber.Ctx) error {
	var service models.RepairService
	if err := c.BodyParser(&service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	service.ID = c.Params("id")

	if err := h.validate.Struct(service); err != nil {
		return validationFailed(c, err)
	}

	if err := h.service.UpdateService(&service); err != nil {
		log.Printf("Error updating repair service %s: %v", service.ID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Repair service not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update repair service",
			"error":   err.Error(),
		})
	}
	return c.JSON(service)
}

// HandleDeleteService deletes a repair service, admin only.
func (h *RepairHandler) HandleDeleteService(c *fiber.Ctx) error {
	serviceID := c.Params("id")
	if err := h.service.DeleteService(serviceID); err != nil {
		log.Printf("Error deleting repair service %s: %v", serviceID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Repair service not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete repair service",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Repair service deleted successfully",
	})
}
