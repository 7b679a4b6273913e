package orderrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"rental/internal/core/domain/model/order"
	"rental/internal/pkg/errs"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its line items and writes the generated ids
// back onto the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	aggregate.SetID(dto.ID)
	for i, li := range aggregate.LineItems() {
		li.SetID(dto.LineItems[i].ID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order. The line item rows are replaced wholesale:
// transitions append and drop lines freely, so diffing them is not worth the
// bookkeeping.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "LineItems").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).Delete(&LineItemDTO{}).Error; err != nil {
		return err
	}
	for i := range dto.LineItems {
		dto.LineItems[i].ID = 0
		dto.LineItems[i].OrderID = dto.ID
	}
	if len(dto.LineItems) > 0 {
		if err := r.db.WithContext(ctx).Create(&dto.LineItems).Error; err != nil {
			return err
		}
		for i, li := range aggregate.LineItems() {
			li.SetID(dto.LineItems[i].ID)
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its line items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("LineItems", func(db *gorm.DB) *gorm.DB { return db.Order("order_line_items.id") }).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a cancelled reservation with its line items.
func (r *GormOrderRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", id).Delete(&LineItemDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id)
	}
	return nil
}

// CountRentalsByUser counts the user's orders that reached Rental status or
// beyond.
func (r *GormOrderRepository) CountRentalsByUser(ctx context.Context, userID int64) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("user_id = ? AND status IN ?", userID,
			[]int{int(order.Rental), int(order.Returned), int(order.Payback)}).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// FindHoldersOfCoupon retrieves the orders currently referencing the coupon.
func (r *GormOrderRepository) FindHoldersOfCoupon(ctx context.Context, couponID int64) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("LineItems", func(db *gorm.DB) *gorm.DB { return db.Order("order_line_items.id") }).
		Find(&dtos, "coupon_id = ?", couponID).Error
	if err != nil {
		return nil, err
	}

	holders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		holder, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		holders = append(holders, holder)
	}
	return holders, nil
}
