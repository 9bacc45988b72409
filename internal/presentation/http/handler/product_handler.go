package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storekeep/backoffice-api/internal/application/service"
	"github.com/storekeep/backoffice-api/internal/presentation/http/dto/response"
)

// ProductHandler handles product HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles listing products
func (h *ProductHandler) List(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	params := getPaginationParams(c)
	search := c.Query("search")
	pointOfSaleID := getOptionalUUIDQuery(c, "point_of_sale_id")

	result, err := h.productService.ListProducts(c.Request.Context(), *actor, params, search, pointOfSaleID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// Get handles getting a single product
func (h *ProductHandler) Get(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), *actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

type productRequest struct {
	Name          string     `json:"name" binding:"required"`
	SKU           string     `json:"sku" binding:"required"`
	Price         float64    `json:"price"`
	Quantity      int        `json:"quantity"`
	Image         *string    `json:"image"`
	PointOfSaleID *uuid.UUID `json:"point_of_sale_id"`
	Variations    []struct {
		Name     string `json:"name" binding:"required"`
		SKU      string `json:"sku" binding:"required"`
		Quantity int    `json:"quantity"`
	} `json:"variations"`
}

func (r *productRequest) toInput() *service.ProductInput {
	input := &service.ProductInput{
		Name:          r.Name,
		SKU:           r.SKU,
		Price:         decimal.NewFromFloat(r.Price),
		Quantity:      r.Quantity,
		Image:         r.Image,
		PointOfSaleID: r.PointOfSaleID,
	}
	for _, v := range r.Variations {
		input.Variations = append(input.Variations, service.VariationInput{
			Name:     v.Name,
			SKU:      v.SKU,
			Quantity: v.Quantity,
		})
	}
	return input
}

// Create handles creating a product
func (h *ProductHandler) Create(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), *actor, req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// Update handles updating a product
func (h *ProductHandler) Update(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), *actor, id, req.toInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// Delete handles deleting a product
func (h *ProductHandler) Delete(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), *actor, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
