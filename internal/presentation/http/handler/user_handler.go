package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/storekeep/backoffice-api/internal/application/service"
	"github.com/storekeep/backoffice-api/internal/domain/enum"
	"github.com/storekeep/backoffice-api/internal/presentation/http/dto/response"
)

// UserHandler handles user management HTTP requests
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List handles listing users
func (h *UserHandler) List(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	params := getPaginationParams(c)
	search := c.Query("search")
	pointOfSaleID := getOptionalUUIDQuery(c, "point_of_sale_id")

	result, err := h.userService.ListUsers(c.Request.Context(), *actor, params, search, pointOfSaleID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Users retrieved successfully", result)
}

// Get handles getting a single user
func (h *UserHandler) Get(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), *actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User retrieved successfully", user)
}

// Create handles creating a user
func (h *UserHandler) Create(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		Name          string     `json:"name" binding:"required"`
		Email         string     `json:"email" binding:"required,email"`
		Password      string     `json:"password" binding:"required,min=8"`
		Role          string     `json:"role" binding:"required"`
		Status        string     `json:"status"`
		PointOfSaleID *uuid.UUID `json:"point_of_sale_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), *actor, &service.CreateUserInput{
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		Role:          enum.Role(req.Role),
		Status:        enum.Status(req.Status),
		PointOfSaleID: req.PointOfSaleID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "User created successfully", user)
}

// Update handles updating a user
func (h *UserHandler) Update(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	var req struct {
		Name          *string    `json:"name"`
		Email         *string    `json:"email"`
		Password      *string    `json:"password"`
		Role          *string    `json:"role"`
		Status        *string    `json:"status"`
		PointOfSaleID *uuid.UUID `json:"point_of_sale_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateUserInput{
		ID:            id,
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		PointOfSaleID: req.PointOfSaleID,
	}
	if req.Role != nil {
		role := enum.Role(*req.Role)
		input.Role = &role
	}
	if req.Status != nil {
		status := enum.Status(*req.Status)
		input.Status = &status
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), *actor, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User updated successfully", user)
}

// Delete handles deleting a user
func (h *UserHandler) Delete(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), *actor, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// SelectPointOfSale sets the authenticated user's current point of sale
func (h *UserHandler) SelectPointOfSale(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		PointOfSaleID uuid.UUID `json:"point_of_sale_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.userService.SelectPointOfSale(c.Request.Context(), *userID, req.PointOfSaleID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Point of sale selected successfully", nil)
}
