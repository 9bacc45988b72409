package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storekeep/backoffice-api/internal/application/service"
	"github.com/storekeep/backoffice-api/internal/domain/access"
	"github.com/storekeep/backoffice-api/internal/domain/entity"
	"github.com/storekeep/backoffice-api/internal/domain/enum"
	"github.com/storekeep/backoffice-api/internal/domain/repository"
	"github.com/storekeep/backoffice-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error { return nil }
func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error { return nil }
func (r *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error      { return nil }

func (r *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	var out []entity.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) List(_ context.Context, _ *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	return nil, 0, nil
}

func (r *fakeProductRepo) ReplaceVariations(_ context.Context, _ uuid.UUID, _ []entity.ProductVariation) error {
	return nil
}

type fakeOrderRepo struct {
	created *entity.Order
	items   []entity.OrderItem
}

func (r *fakeOrderRepo) Create(_ context.Context, order *entity.Order, items []entity.OrderItem) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	r.created = order
	r.items = items
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	if r.created != nil && r.created.ID == id {
		return r.created, nil
	}
	return nil, nil
}

func (r *fakeOrderRepo) GetWithItems(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	if r.created != nil && r.created.ID == id {
		order := *r.created
		order.Items = r.items
		return &order, nil
	}
	return nil, nil
}

func (r *fakeOrderRepo) List(_ context.Context, _ *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	return nil, 0, nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error { return nil }
func (r *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error { return nil }
func (r *fakeCustomerRepo) Delete(_ context.Context, id uuid.UUID) error       { return nil }

func (r *fakeCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	return r.customers[id], nil
}

func (r *fakeCustomerRepo) GetByEmail(_ context.Context, _ string) (*entity.Customer, error) {
	return nil, nil
}

func (r *fakeCustomerRepo) List(_ context.Context, _ *pagination.PaginationParams, _ string) ([]entity.Customer, int64, error) {
	return nil, 0, nil
}

type fakeSettingsRepo struct {
	settings *entity.SystemSettings
}

func (r *fakeSettingsRepo) Get(_ context.Context) (*entity.SystemSettings, error) {
	return r.settings, nil
}

func (r *fakeSettingsRepo) Create(_ context.Context, s *entity.SystemSettings) error {
	r.settings = s
	return nil
}

func (r *fakeSettingsRepo) Update(_ context.Context, s *entity.SystemSettings) error {
	r.settings = s
	return nil
}

func newOrderFixture() (*service.OrderService, *fakeOrderRepo, *fakeProductRepo, uuid.UUID, *entity.Product, *entity.Product) {
	posID := uuid.New()
	productA := &entity.Product{ID: uuid.New(), Name: "Espresso Beans", SKU: "ESP-01", Price: 2499, Quantity: 10, PointOfSaleID: posID}
	productB := &entity.Product{ID: uuid.New(), Name: "Grinder", SKU: "GRD-01", Price: 4996, Quantity: 5, PointOfSaleID: posID}

	productRepo := &fakeProductRepo{products: map[uuid.UUID]*entity.Product{
		productA.ID: productA,
		productB.ID: productB,
	}}
	orderRepo := &fakeOrderRepo{}
	customerRepo := &fakeCustomerRepo{customers: map[uuid.UUID]*entity.Customer{}}
	settingsRepo := &fakeSettingsRepo{settings: &entity.SystemSettings{Currency: "USD", TaxRate: 0.05}}

	svc := service.NewOrderService(orderRepo, productRepo, customerRepo, settingsRepo)
	return svc, orderRepo, productRepo, posID, productA, productB
}

func TestCreateOrder_SnapshotsTotals(t *testing.T) {
	svc, orderRepo, _, posID, productA, productB := newOrderFixture()
	manager := access.Actor{ID: uuid.New(), Role: enum.RoleManager, PointOfSaleID: &posID}

	order, err := svc.CreateOrder(context.Background(), manager, &service.OrderInput{
		DiscountType:  enum.DiscountFixed,
		DiscountValue: decimal.NewFromInt(10),
		Items: []service.OrderItemInput{
			{ProductID: productA.ID, Quantity: 2},
			{ProductID: productB.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, order)

	// 2 x 24.99 + 49.96 = 99.94; discount 10.00; 5% tax on 89.94 = 4.50
	assert.Equal(t, int64(9994), order.SubTotal)
	assert.Equal(t, int64(1000), order.DiscountAmount)
	assert.Equal(t, int64(450), order.Tax)
	assert.Equal(t, int64(9444), order.Total)

	assert.Equal(t, posID, order.PointOfSaleID)
	assert.Equal(t, manager.ID, order.UserID)
	assert.NotEmpty(t, order.OrderNo)
	require.Len(t, orderRepo.items, 2)
	assert.Equal(t, int64(4998), orderRepo.items[0].Total)
	assert.Equal(t, int64(4996), orderRepo.items[1].Total)
}

func TestCreateOrder_MergesDuplicateLines(t *testing.T) {
	svc, orderRepo, _, posID, productA, _ := newOrderFixture()
	manager := access.Actor{ID: uuid.New(), Role: enum.RoleManager, PointOfSaleID: &posID}

	_, err := svc.CreateOrder(context.Background(), manager, &service.OrderInput{
		Items: []service.OrderItemInput{
			{ProductID: productA.ID, Quantity: 2},
			{ProductID: productA.ID, Quantity: 3},
		},
	})
	require.NoError(t, err)

	require.Len(t, orderRepo.items, 1)
	assert.Equal(t, 5, orderRepo.items[0].Quantity)
}

func TestCreateOrder_DoesNotTouchStock(t *testing.T) {
	svc, _, productRepo, posID, productA, _ := newOrderFixture()
	manager := access.Actor{ID: uuid.New(), Role: enum.RoleManager, PointOfSaleID: &posID}

	_, err := svc.CreateOrder(context.Background(), manager, &service.OrderInput{
		Items: []service.OrderItemInput{{ProductID: productA.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, 10, productRepo.products[productA.ID].Quantity)
}

func TestCreateOrder_StaffDenied(t *testing.T) {
	svc, _, _, posID, productA, _ := newOrderFixture()
	staff := access.Actor{ID: uuid.New(), Role: enum.RoleStaff, PointOfSaleID: &posID}

	_, err := svc.CreateOrder(context.Background(), staff, &service.OrderInput{
		Items: []service.OrderItemInput{{ProductID: productA.ID, Quantity: 1}},
	})
	assert.Error(t, err)
}

func TestCreateOrder_RejectsEmptyItems(t *testing.T) {
	svc, _, _, posID, _, _ := newOrderFixture()
	manager := access.Actor{ID: uuid.New(), Role: enum.RoleManager, PointOfSaleID: &posID}

	_, err := svc.CreateOrder(context.Background(), manager, &service.OrderInput{})
	assert.Error(t, err)
}

func TestCreateOrder_RejectsForeignProduct(t *testing.T) {
	svc, _, productRepo, posID, _, _ := newOrderFixture()
	manager := access.Actor{ID: uuid.New(), Role: enum.RoleManager, PointOfSaleID: &posID}

	foreign := &entity.Product{ID: uuid.New(), Name: "Other", SKU: "OTH-01", Price: 100, PointOfSaleID: uuid.New()}
	productRepo.products[foreign.ID] = foreign

	_, err := svc.CreateOrder(context.Background(), manager, &service.OrderInput{
		Items: []service.OrderItemInput{{ProductID: foreign.ID, Quantity: 1}},
	})
	assert.Error(t, err)
}
