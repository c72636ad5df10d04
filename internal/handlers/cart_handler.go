package handlers

import (
	"errors"
	"log"
	"strconv"

	"renewkart/internal/repositories"
	"renewkart/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the per-user cart. All routes
// require authentication.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cart := router.Group("/cart")
	cart.Get("/", h.HandleGetCart)
	cart.Post("/items", h.HandleAddItem)
	cart.Patch("/items/:productId", h.HandleUpdateQuantity)
	cart.Delete("/items/:productId", h.HandleRemoveItem)
	cart.Delete("/", h.HandleClearCart)
}

// HandleGetCart returns the caller's cart with derived totals.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(int)

	view, err := h.service.Get(c.Context(), userID)
	if err != nil {
		log.Printf("Error loading cart for user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve cart",
		})
	}
	return c.JSON(view)
}

// AddItemRequest is the request body for adding a product to the cart.
type AddItemRequest struct {
	ProductID int `json:"productId" validate:"required,gt=0"`
}

// HandleAddItem puts one unit of a product into the caller's cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(int)

	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	view, err := h.service.Add(c.Context(), userID, req.ProductID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error adding product %d to cart for user %d: %v", req.ProductID, userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update cart",
		})
	}
	return c.JSON(view)
}

// HandleUpdateQuantity sets the quantity of a cart line. Quantities below 1
// leave the cart unchanged.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(int)

	productID, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Product not found",
		})
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	view, err := h.service.UpdateQuantity(c.Context(), userID, productID, req.Quantity)
	if err != nil {
		log.Printf("Error updating cart quantity for user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update cart",
		})
	}
	return c.JSON(view)
}

// HandleRemoveItem drops a product from the caller's cart.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(int)

	productID, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Product not found",
		})
	}

	view, err := h.service.Remove(c.Context(), userID, productID)
	if err != nil {
		log.Printf("Error removing product %d from cart for user %d: %v", productID, userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update cart",
		})
	}
	return c.JSON(view)
}

// HandleClearCart empties the caller's cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(int)

	if err := h.service.Clear(c.Context(), userID); err != nil {
		log.Printf("Error clearing cart for user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not clear cart",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Cart cleared",
	})
}
