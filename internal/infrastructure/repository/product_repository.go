package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storekeep/backoffice-api/internal/domain/entity"
	domainRepo "github.com/storekeep/backoffice-api/internal/domain/repository"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).Preload("Variations").First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *productRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.WithContext(ctx).Preload("Variations").Where("id IN ?", ids).Find(&products).Error
	return products, err
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.ProductVariation{}, "product_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Product{}, "id = ?", id).Error
	})
}

func (r *productRepository) List(ctx context.Context, params *domainRepo.ProductFilterParams) ([]entity.Product, int64, error) {
	var products []entity.Product
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Product{})
	if params.PointOfSaleID != nil {
		query = query.Where("point_of_sale_id = ?", *params.PointOfSaleID)
	}
	if params.Search != "" {
		query = query.Where("name ILIKE ? OR sku ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Preload("Variations").
		Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("name ASC").
		Find(&products).Error

	return products, total, err
}

// ReplaceVariations swaps a product's variation set inside one transaction.
func (r *productRepository) ReplaceVariations(ctx context.Context, productID uuid.UUID, variations []entity.ProductVariation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.ProductVariation{}, "product_id = ?", productID).Error; err != nil {
			return err
		}
		if len(variations) == 0 {
			return nil
		}
		for i := range variations {
			variations[i].ProductID = productID
		}
		return tx.Create(&variations).Error
	})
}
