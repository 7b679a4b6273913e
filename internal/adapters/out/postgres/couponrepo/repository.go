package couponrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"rental/internal/core/domain/model/coupon"
	"rental/internal/pkg/errs"
)

// GormCouponRepository implements ports.CouponRepository using GORM.
type GormCouponRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormCouponRepository creates a new GORM coupon repository.
func NewGormCouponRepository(db *gorm.DB, tracker aggregateTracker) *GormCouponRepository {
	return &GormCouponRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new coupon and writes the generated id back.
func (r *GormCouponRepository) Add(ctx context.Context, c *coupon.Coupon) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	c.SetID(dto.ID)
	r.tracker.TrackAggregate(c.ID(), c)
	return nil
}

// Update saves an existing coupon.
func (r *GormCouponRepository) Update(ctx context.Context, c *coupon.Coupon) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	result := r.db.WithContext(ctx).Model(&CouponDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(c.ID(), c)
	return nil
}

// Get retrieves a coupon by ID.
func (r *GormCouponRepository) Get(ctx context.Context, id int64) (*coupon.Coupon, error) {
	var dto CouponDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("coupon", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// CountUsedByEvent counts the used coupons of a campaign event.
func (r *GormCouponRepository) CountUsedByEvent(ctx context.Context, event string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&CouponDTO{}).
		Where("event = ? AND status = ?", event, int(coupon.Used)).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}
