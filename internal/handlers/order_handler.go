package handlers

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/davidparhut/iBoss/internal/middleware"
	"github.com/davidparhut/iBoss/internal/models"
	"github.com/davidparhut/iBoss/internal/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for checkout and orders.
type OrderHandler struct {
	checkout *services.CheckoutService
	orders   *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(checkout *services.CheckoutService, orders *services.OrderService) *OrderHandler {
	return &OrderHandler{
		checkout: checkout,
		orders:   orders,
	}
}

// RegisterRoutes registers the authenticated order routes.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetMyOrders)
	orderRoutes.Post("/", h.HandleCheckout)
}

// RegisterAdminRoutes registers the admin order routes.
func (h *OrderHandler) RegisterAdminRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetAllOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Patch("/:id/status", h.HandleUpdateOrderStatus)
}

// HandleCheckout runs the full checkout: opens a session over the
// current cart, then submits the contact form. Precondition failures
// (empty cart, missing contact fields) come back before anything is
// persisted; a store failure leaves the cart untouched for retry.
func (h *OrderHandler) HandleCheckout(c *fiber.Ctx) error {
	var contact models.CustomerInfo
	if err := c.BodyParser(&contact); err != nil {
		log.Printf("Error parsing checkout body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	session, err := h.checkout.Open(middleware.UserID(c), middleware.UserEmail(c))
	if err != nil {
		return h.checkoutError(c, err)
	}

	order, err := h.checkout.Submit(session, contact)
	if err != nil {
		return h.checkoutError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": fmt.Sprintf("Дякуємо за замовлення! Номер замовлення: %s. Ми зв'яжемось з вами за номером %s", order.ID, contact.Phone),
		"order":   order,
	})
}

// checkoutError maps checkout errors to HTTP statuses: preconditions
// are 4xx with no retry needed, everything else is a retryable 500.
func (h *OrderHandler) checkoutError(c *fiber.Ctx, err error) error {
	log.Printf("Checkout error: %v", err)
	switch {
	case errors.Is(err, services.ErrNotSignedIn):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Будь ласка, увійдіть для оформлення замовлення",
		})
	case errors.Is(err, services.ErrEmptyCart):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Ваш кошик порожній",
		})
	case errors.Is(err, services.ErrMissingContactFields):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Будь ласка, заповніть всі обов'язкові поля",
		})
	case errors.Is(err, services.ErrSubmitInProgress):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Замовлення вже оформлюється",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Помилка при оформленні замовлення. Спробуйте ще раз.",
			"error":   err.Error(),
		})
	}
}

// HandleGetMyOrders lists the signed-in user's orders, newest first.
func (h *OrderHandler) HandleGetMyOrders(c *fiber.Ctx) error {
	orders, err := h.orders.GetUserOrders(middleware.UserID(c))
	if err != nil {
		log.Printf("Error getting user orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(orders)
}

// HandleGetAllOrders lists every order, admin only.
func (h *OrderHandler) HandleGetAllOrders(c *fiber.Ctx) error {
	orders, err := h.orders.GetAllOrders()
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves a single order, admin only.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, err := h.orders.GetOrderByID(orderID)
	if err != nil {
		log.Printf("Error getting order by ID %s: %v", orderID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Order with ID %s not found", orderID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve order",
			"error":   err.Error(),
		})
	}
	return c.JSON(order)
}

// HandleUpdateOrderStatus transitions an order's lifecycle status,
// admin only.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")
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
			"message": "Status is required for order status update.",
		})
	}

	if err := h.orders.UpdateOrderStatus(orderID, updateData.Status); err != nil {
		log.Printf("Error updating order status for order %s: %v", orderID, err)
		if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "invalid order status") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": fmt.Sprintf("Order update failed: %v", err),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update order status",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Order %s status updated successfully to %s", orderID, updateData.Status),
	})
}
