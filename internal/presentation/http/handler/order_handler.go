package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storekeep/backoffice-api/internal/application/service"
	"github.com/storekeep/backoffice-api/internal/domain/enum"
	"github.com/storekeep/backoffice-api/internal/presentation/http/dto/response"
)

// OrderHandler handles order HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List handles listing orders
func (h *OrderHandler) List(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	params := getPaginationParams(c)
	pointOfSaleID := getOptionalUUIDQuery(c, "point_of_sale_id")
	customerID := getOptionalUUIDQuery(c, "customer_id")

	result, err := h.orderService.ListOrders(c.Request.Context(), *actor, params, pointOfSaleID, customerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Get handles getting a single order with its items
func (h *OrderHandler) Get(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), *actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// Create handles creating an order
func (h *OrderHandler) Create(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		CustomerID    *uuid.UUID `json:"customer_id"`
		PointOfSaleID *uuid.UUID `json:"point_of_sale_id"`
		DiscountType  string     `json:"discount_type"`
		DiscountValue float64    `json:"discount_value"`
		DeliveryNotes *string    `json:"delivery_notes"`
		Items         []struct {
			ProductID   uuid.UUID  `json:"product_id" binding:"required"`
			VariationID *uuid.UUID `json:"variation_id"`
			Quantity    int        `json:"quantity" binding:"required"`
		} `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.OrderInput{
		CustomerID:    req.CustomerID,
		PointOfSaleID: req.PointOfSaleID,
		DiscountType:  enum.DiscountType(req.DiscountType),
		DiscountValue: decimal.NewFromFloat(req.DiscountValue),
		DeliveryNotes: req.DeliveryNotes,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.OrderItemInput{
			ProductID:   item.ProductID,
			VariationID: item.VariationID,
			Quantity:    item.Quantity,
		})
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), *actor, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}
