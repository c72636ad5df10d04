package handlers

import (
	"errors"
	"log"
	"strconv"

	"renewkart/internal/models"
	"renewkart/internal/repositories"
	"renewkart/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders. All routes require
// authentication; orders are scoped to the calling user.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orders := router.Group("/orders")
	orders.Get("/", h.HandleListOrders)
	orders.Post("/", h.HandleCreateOrder)
	orders.Patch("/:id/status", h.HandleUpdateOrderStatus)
}

// HandleListOrders returns the calling user's orders.
func (h *OrderHandler) HandleListOrders(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(int)

	orders, err := h.service.ListOrders(userID)
	if err != nil {
		log.Printf("Error listing orders for user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
		})
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return c.JSON(orders)
}

// CreateOrderRequest is the checkout request body.
type CreateOrderRequest struct {
	Items   []services.OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Address string                      `json:"address" validate:"required"`
}

// HandleCreateOrder creates an order for the calling user.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(int)

	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	order, err := h.service.CreateOrder(userID, req.Items, req.Address)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Order references an unknown product",
				"field":   "items",
			})
		}
		if errors.Is(err, services.ErrInsufficientStock) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
				"field":   "items",
			})
		}
		log.Printf("Error creating order for user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create order",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleUpdateOrderStatus moves one of the caller's orders to a new
// fulfillment status. Orders owned by other users read as not found.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(int)

	orderID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Order not found",
		})
	}

	var req struct {
		Status string `json:"status" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	order, err := h.service.GetOrder(orderID)
	if err != nil || order.UserID != userID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Order not found",
		})
	}

	if err := h.service.UpdateStatus(orderID, req.Status); err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid order status",
				"field":   "status",
			})
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Order not found",
			})
		}
		log.Printf("Error updating status for order %d: %v", orderID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update order status",
		})
	}

	updated, err := h.service.GetOrder(orderID)
	if err != nil {
		log.Printf("Error reloading order %d: %v", orderID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update order status",
		})
	}
	return c.JSON(updated)
}
