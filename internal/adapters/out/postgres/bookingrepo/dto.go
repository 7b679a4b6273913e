// Package bookingrepo persists the visit slot pools.
package bookingrepo

import (
	"rental/internal/core/domain/model/booking"
	"rental/internal/core/domain/model/user"
)

// SlotDTO represents the database structure for persisting slot pools.
// One row exists per visit datetime and gender.
type SlotDTO struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	At       string `gorm:"uniqueIndex:idx_slot_at_gender"`
	Gender   int    `gorm:"uniqueIndex:idx_slot_at_gender"`
	Capacity int
	Reserved int
}

// TableName specifies the database table name for slot pools.
func (SlotDTO) TableName() string {
	return "booking_slots"
}

// fromDomain converts a slot pool to its database representation.
func fromDomain(s *booking.Slot) SlotDTO {
	return SlotDTO{
		ID:       s.ID(),
		At:       s.At(),
		Gender:   int(s.Gender()),
		Capacity: s.Capacity(),
		Reserved: s.Reserved(),
	}
}

// toDomain converts a database DTO to a slot pool using RestoreSlot.
func toDomain(dto SlotDTO) (*booking.Slot, error) {
	return booking.RestoreSlot(dto.ID, dto.At, user.Gender(dto.Gender), dto.Capacity, dto.Reserved)
}
