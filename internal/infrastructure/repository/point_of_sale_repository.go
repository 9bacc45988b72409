package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storekeep/backoffice-api/internal/domain/entity"
	domainRepo "github.com/storekeep/backoffice-api/internal/domain/repository"
	"gorm.io/gorm"
)

type pointOfSaleRepository struct {
	db *gorm.DB
}

// NewPointOfSaleRepository creates a new point-of-sale repository
func NewPointOfSaleRepository(db *gorm.DB) domainRepo.PointOfSaleRepository {
	return &pointOfSaleRepository{db: db}
}

func (r *pointOfSaleRepository) Create(ctx context.Context, pos *entity.PointOfSale) error {
	return r.db.WithContext(ctx).Create(pos).Error
}

func (r *pointOfSaleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PointOfSale, error) {
	var pos entity.PointOfSale
	err := r.db.WithContext(ctx).Preload("Manager").First(&pos, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &pos, err
}

func (r *pointOfSaleRepository) Update(ctx context.Context, pos *entity.PointOfSale) error {
	return r.db.WithContext(ctx).Save(pos).Error
}

func (r *pointOfSaleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.PointOfSale{}, "id = ?", id).Error
}

func (r *pointOfSaleRepository) List(ctx context.Context) ([]entity.PointOfSale, error) {
	var points []entity.PointOfSale
	err := r.db.WithContext(ctx).Preload("Manager").Order("name ASC").Find(&points).Error
	return points, err
}

func (r *pointOfSaleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.PointOfSale{}).Count(&count).Error
	return count, err
}
