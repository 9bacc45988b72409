package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/storekeep/backoffice-api/internal/application/service"
	"github.com/storekeep/backoffice-api/internal/domain/enum"
	"github.com/storekeep/backoffice-api/internal/presentation/http/dto/response"
)

// PointOfSaleHandler handles point of sale HTTP requests
type PointOfSaleHandler struct {
	posService *service.PointOfSaleService
}

// NewPointOfSaleHandler creates a new point of sale handler
func NewPointOfSaleHandler(posService *service.PointOfSaleService) *PointOfSaleHandler {
	return &PointOfSaleHandler{posService: posService}
}

// List handles listing points of sale
func (h *PointOfSaleHandler) List(c *gin.Context) {
	points, err := h.posService.ListPointsOfSale(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Points of sale retrieved successfully", points)
}

// Get handles getting a single point of sale
func (h *PointOfSaleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid point of sale ID")
		return
	}

	pos, err := h.posService.GetPointOfSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Point of sale retrieved successfully", pos)
}

type pointOfSaleRequest struct {
	Name      string     `json:"name" binding:"required"`
	Address   *string    `json:"address"`
	Phone     *string    `json:"phone"`
	Logo      *string    `json:"logo"`
	Status    string     `json:"status"`
	ManagerID *uuid.UUID `json:"manager_id"`
}

func (r *pointOfSaleRequest) toInput() *service.PointOfSaleInput {
	return &service.PointOfSaleInput{
		Name:      r.Name,
		Address:   r.Address,
		Phone:     r.Phone,
		Logo:      r.Logo,
		Status:    enum.Status(r.Status),
		ManagerID: r.ManagerID,
	}
}

// Create handles creating a point of sale
func (h *PointOfSaleHandler) Create(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req pointOfSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	pos, err := h.posService.CreatePointOfSale(c.Request.Context(), *actor, req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Point of sale created successfully", pos)
}

// Update handles updating a point of sale
func (h *PointOfSaleHandler) Update(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid point of sale ID")
		return
	}

	var req pointOfSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	pos, err := h.posService.UpdatePointOfSale(c.Request.Context(), *actor, id, req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Point of sale updated successfully", pos)
}

// Delete handles deleting a point of sale
func (h *PointOfSaleHandler) Delete(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid point of sale ID")
		return
	}

	if err := h.posService.DeletePointOfSale(c.Request.Context(), *actor, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
