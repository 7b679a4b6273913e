package clothesrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"rental/internal/core/domain/model/clothes"
	"rental/internal/pkg/errs"
)

// GormClothesRepository implements ports.ClothesRepository using GORM.
type GormClothesRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormClothesRepository creates a new GORM clothes repository.
func NewGormClothesRepository(db *gorm.DB, tracker aggregateTracker) *GormClothesRepository {
	return &GormClothesRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new item and writes the generated id back.
func (r *GormClothesRepository) Add(ctx context.Context, item *clothes.Clothes) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	item.SetID(dto.ID)
	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Update saves an existing item.
func (r *GormClothesRepository) Update(ctx context.Context, item *clothes.Clothes) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).Model(&ClothesDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

// Get retrieves an item by ID.
func (r *GormClothesRepository) Get(ctx context.Context, id int64) (*clothes.Clothes, error) {
	var dto ClothesDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("clothes", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCode retrieves an item by its human-assigned code.
func (r *GormClothesRepository) GetByCode(ctx context.Context, code string) (*clothes.Clothes, error) {
	var dto ClothesDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("clothes", code)
		}
		return nil, err
	}

	return toDomain(dto)
}
