package handlers

import (
	"log"
	"strings"

	"github.com/davidparhut/iBoss/internal/middleware"
	"github.com/davidparhut/iBoss/internal/models"
	"github.com/davidparhut/iBoss/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the signed-in user's cart.
type CartHandler struct {
	service *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service: service,
	}
}

// RegisterRoutes registers the cart routes. All of them require an
// authenticated identity.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Delete("/items", h.HandleRemoveItem)
	cartRoutes.Patch("/items/quantity", h.HandleSetQuantity)
	cartRoutes.Delete("/", h.HandleClearCart)
}

// cartResponse renders the cart with its derived totals.
func cartResponse(cart *models.Cart) fiber.Map {
	return fiber.Map{
		"lines":      cart.Lines,
		"totalItems": cart.TotalItems(),
		"totalPrice": cart.TotalPrice(),
	}
}

// CartItemRequest identifies one product variant in the cart.
type CartItemRequest struct {
	ProductID string `json:"productId"`
	Color     string `json:"color"`
	Storage   string `json:"storage"`
	Quantity  int    `json:"quantity"`
}

// HandleGetCart returns the user's cart with totals.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	cart, err := h.service.Get(middleware.UserID(c))
	if err != nil {
		log.Printf("Error getting cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(cartResponse(cart))
}

// HandleAddItem adds one unit of a product variant to the cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req CartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "productId is required",
		})
	}

	cart, err := h.service.AddLine(middleware.UserID(c), req.ProductID, req.Color, req.Storage)
	if err != nil {
		log.Printf("Error adding to cart: %v", err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add item to cart",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(cartResponse(cart))
}

// HandleRemoveItem removes the exact matching line from the cart.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	var req CartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	cart, err := h.service.RemoveLine(middleware.UserID(c), req.ProductID, req.Color, req.Storage)
	if err != nil {
		log.Printf("Error removing from cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not remove item from cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(cartResponse(cart))
}

// HandleSetQuantity overwrites the quantity of the matching line; a
// quantity of zero removes it.
func (h *CartHandler) HandleSetQuantity(c *fiber.Ctx) error {
	var req CartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	cart, err := h.service.SetQuantity(middleware.UserID(c), req.ProductID, req.Quantity, req.Color, req.Storage)
	if err != nil {
		log.Printf("Error updating cart quantity: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update quantity",
			"error":   err.Error(),
		})
	}
	return c.JSON(cartResponse(cart))
}

// HandleClearCart empties the cart and erases its persisted state.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	if err := h.service.Clear(middleware.UserID(c)); err != nil {
		log.Printf("Error clearing cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not clear cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Cart cleared",
	})
}
