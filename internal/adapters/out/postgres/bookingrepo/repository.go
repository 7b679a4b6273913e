package bookingrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rental/internal/core/domain/model/booking"
	"rental/internal/core/domain/model/user"
	"rental/internal/pkg/errs"
)

// GormBookingRepository implements ports.BookingRepository using GORM.
type GormBookingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormBookingRepository creates a new GORM booking repository.
func NewGormBookingRepository(db *gorm.DB, tracker aggregateTracker) *GormBookingRepository {
	return &GormBookingRepository{
		db:      db,
		tracker: tracker,
	}
}

// GetForUpdate retrieves the pool for a visit datetime and gender with a
// SELECT ... FOR UPDATE row lock, so concurrent reservations on the same
// pool serialize until the transaction ends.
func (r *GormBookingRepository) GetForUpdate(
	ctx context.Context, at string, gender user.Gender,
) (*booking.Slot, error) {
	var dto SlotDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "at = ? AND gender = ?", at, int(gender)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("booking slot", at)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update saves a pool's capacity and reservation count.
func (r *GormBookingRepository) Update(ctx context.Context, slot *booking.Slot) error {
	if err := slot.Validate(); err != nil {
		return err
	}

	dto := fromDomain(slot)
	result := r.db.WithContext(ctx).Model(&SlotDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(slot.ID(), slot)
	return nil
}
