package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storekeep/backoffice-api/internal/domain/access"
	"github.com/storekeep/backoffice-api/internal/domain/entity"
	"github.com/storekeep/backoffice-api/internal/domain/enum"
	"github.com/storekeep/backoffice-api/internal/domain/pricing"
	"github.com/storekeep/backoffice-api/internal/domain/repository"
	"github.com/storekeep/backoffice-api/pkg/apperror"
	"github.com/storekeep/backoffice-api/pkg/pagination"
	"github.com/storekeep/backoffice-api/pkg/utils"
)

// OrderService handles order creation and retrieval. Order totals are computed
// once at creation time and persisted as a snapshot.
type OrderService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	settingsRepo repository.SettingsRepository
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	settingsRepo repository.SettingsRepository,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		settingsRepo: settingsRepo,
	}
}

// OrderItemInput represents one requested order line
type OrderItemInput struct {
	ProductID   uuid.UUID
	VariationID *uuid.UUID
	Quantity    int
}

// OrderInput represents the create order payload
type OrderInput struct {
	CustomerID    *uuid.UUID
	PointOfSaleID *uuid.UUID
	DiscountType  enum.DiscountType
	DiscountValue decimal.Decimal
	DeliveryNotes *string
	Items         []OrderItemInput
}

// ListOrders lists orders visible to the actor
func (s *OrderService) ListOrders(ctx context.Context, actor access.Actor, params *pagination.PaginationParams, pointOfSaleID, customerID *uuid.UUID) (*pagination.PaginatedResult[entity.Order], error) {
	filter := &repository.OrderFilterParams{
		Pagination: *params,
		CustomerID: customerID,
	}
	if actor.Role == enum.RoleAdmin {
		filter.PointOfSaleID = pointOfSaleID
	} else {
		if actor.PointOfSaleID == nil {
			return nil, apperror.ErrForbidden
		}
		filter.PointOfSaleID = actor.PointOfSaleID
	}

	orders, total, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// GetOrder retrieves an order with its line items
func (s *OrderService) GetOrder(ctx context.Context, actor access.Actor, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	posID := order.PointOfSaleID
	decision := access.Decide(access.Request{
		Actor:  actor,
		Action: access.ActionRead,
		Resource: access.Resource{
			Kind:          access.KindOrder,
			ID:            order.ID,
			PointOfSaleID: &posID,
		},
	})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	return order, nil
}

// CreateOrder creates a new order. Lines referencing the same product
// variation are merged, totals are derived from the current product prices and
// the configured tax rate, and the whole order is persisted atomically.
// Product stock is not adjusted here.
func (s *OrderService) CreateOrder(ctx context.Context, actor access.Actor, input *OrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewInvalidInputError("Order must contain at least one item")
	}

	// Non-admins create orders for their own point of sale only
	pointOfSaleID := input.PointOfSaleID
	if actor.Role != enum.RoleAdmin {
		pointOfSaleID = actor.PointOfSaleID
	}
	if pointOfSaleID == nil {
		return nil, apperror.NewBadRequestError("Point of sale is required")
	}

	decision := access.Decide(access.Request{
		Actor:  actor,
		Action: access.ActionCreate,
		Resource: access.Resource{
			Kind:          access.KindOrder,
			PointOfSaleID: pointOfSaleID,
		},
	})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	lines, err := s.buildLineItems(ctx, *pointOfSaleID, input.Items)
	if err != nil {
		return nil, err
	}

	taxRate, err := s.taxRate(ctx)
	if err != nil {
		return nil, err
	}

	var discount *pricing.Discount
	if input.DiscountType != "" || !input.DiscountValue.IsZero() {
		discountType := input.DiscountType
		if discountType == "" {
			discountType = enum.DiscountFixed
		}
		discount = &pricing.Discount{Type: discountType, Value: input.DiscountValue}
	}

	totals, err := pricing.ComputeTotals(lines, discount, taxRate)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		OrderNo:        utils.GenerateOrderNo("ORD-"),
		UserID:         actor.ID,
		CustomerID:     input.CustomerID,
		PointOfSaleID:  *pointOfSaleID,
		OrderDate:      time.Now().UTC(),
		DiscountType:   enum.DiscountFixed,
		DeliveryNotes:  input.DeliveryNotes,
		SubTotal:       pricing.Cents(totals.Subtotal),
		DiscountAmount: pricing.Cents(totals.DiscountAmount),
		Tax:            pricing.Cents(totals.Tax),
		Total:          pricing.Cents(totals.Total),
	}
	if discount != nil {
		order.DiscountType = discount.Type
		order.DiscountValue = pricing.Cents(discount.Value)
	}

	items := make([]entity.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, entity.OrderItem{
			ProductID:   line.ProductID,
			VariationID: line.VariationID,
			Quantity:    line.Quantity,
			UnitPrice:   pricing.Cents(line.UnitPrice),
			Total:       pricing.Cents(line.LineTotal()),
		})
	}

	if err := s.orderRepo.Create(ctx, order, items); err != nil {
		return nil, err
	}

	return s.orderRepo.GetWithItems(ctx, order.ID)
}

// buildLineItems resolves requested items against the product catalog and
// merges duplicate variation lines.
func (s *OrderService) buildLineItems(ctx context.Context, pointOfSaleID uuid.UUID, inputs []OrderItemInput) ([]pricing.LineItem, error) {
	ids := make([]uuid.UUID, 0, len(inputs))
	for _, item := range inputs {
		ids = append(ids, item.ProductID)
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	var lines []pricing.LineItem
	for _, item := range inputs {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, apperror.NewNotFoundError("Product")
		}
		if product.PointOfSaleID != pointOfSaleID {
			return nil, apperror.NewBadRequestError("Product does not belong to this point of sale")
		}
		if item.VariationID != nil && !hasVariation(product, *item.VariationID) {
			return nil, apperror.NewNotFoundError("Product variation")
		}

		lines = pricing.MergeItem(lines, pricing.LineItem{
			ProductID:   product.ID,
			VariationID: item.VariationID,
			Quantity:    item.Quantity,
			UnitPrice:   pricing.FromCents(product.Price),
		})
	}

	return lines, nil
}

func (s *OrderService) taxRate(ctx context.Context) (decimal.Decimal, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	if settings == nil {
		settings = entity.DefaultSystemSettings()
	}
	return decimal.NewFromFloat(settings.TaxRate), nil
}

func hasVariation(product *entity.Product, variationID uuid.UUID) bool {
	for _, v := range product.Variations {
		if v.ID == variationID {
			return true
		}
	}
	return false
}
