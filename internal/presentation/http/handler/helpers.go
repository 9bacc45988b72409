package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/storekeep/backoffice-api/internal/domain/access"
	"github.com/storekeep/backoffice-api/internal/domain/enum"
	"github.com/storekeep/backoffice-api/pkg/pagination"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserRole extracts the user role from the Gin context
func GetUserRole(c *gin.Context) enum.Role {
	role, exists := c.Get("user_role")
	if !exists {
		return ""
	}
	s, ok := role.(string)
	if !ok {
		return ""
	}
	return enum.Role(s)
}

// GetActor builds the access snapshot of the authenticated user from the Gin
// context. Returns nil when the request is not authenticated.
func GetActor(c *gin.Context) *access.Actor {
	userID := GetUserID(c)
	if userID == nil {
		return nil
	}

	actor := &access.Actor{
		ID:   *userID,
		Role: GetUserRole(c),
	}
	if posVal, exists := c.Get("user_pos_id"); exists {
		if posID, ok := posVal.(uuid.UUID); ok {
			actor.PointOfSaleID = &posID
		}
	}
	return actor
}

// getPaginationParams reads page-based pagination from the query string
func getPaginationParams(c *gin.Context) *pagination.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
	params.Validate()
	return params
}

// getOptionalUUIDQuery parses an optional UUID query parameter
func getOptionalUUIDQuery(c *gin.Context, name string) *uuid.UUID {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}
