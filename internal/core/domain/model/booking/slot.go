// Package booking contains the visit slot pools. Capacity is tracked per
// visit datetime and gender; when one pool is exhausted a slot may be
// borrowed from the opposite pool as long as the lender keeps a buffer.
package booking

import (
	"errors"
	"fmt"

	"rental/internal/core/domain/model/user"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

var (
	// ErrSlotIsNotConstructed is returned when a Slot instance was not created
	// through NewSlot or RestoreSlot.
	ErrSlotIsNotConstructed = errors.New("Slot must be created via NewSlot constructor")

	// ErrNoSlotAvailable is returned when neither the pool itself nor the
	// opposite pool can supply a slot.
	ErrNoSlotAvailable = errors.New("no visit slot available")
)

// borrowBuffer is the number of free slots the lending pool must retain
// after lending one.
const borrowBuffer = 1

// Slot is the capacity pool for one visit datetime and gender.
type Slot struct {
	id       int64
	at       string
	gender   user.Gender
	capacity int
	reserved int

	guard guard.ConstructorGuard
}

// NewSlot creates a pool with the given capacity. The at key is the visit
// datetime in the store's canonical string form.
func NewSlot(at string, gender user.Gender, capacity int) (*Slot, error) {
	if at == "" {
		return nil, errs.NewValueIsRequiredError("slot datetime")
	}
	if err := gender.Validate(); err != nil {
		return nil, err
	}
	if capacity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("slot capacity",
			fmt.Errorf("%d is negative", capacity))
	}
	return &Slot{
		at:       at,
		gender:   gender,
		capacity: capacity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// RestoreSlot reconstructs a pool from persistence.
func RestoreSlot(id int64, at string, gender user.Gender, capacity, reserved int) (*Slot, error) {
	s, err := NewSlot(at, gender, capacity)
	if err != nil {
		return nil, err
	}
	s.id = id
	s.reserved = reserved
	return s, nil
}

// Validate ensures the pool was created through a constructor.
func (s *Slot) Validate() error {
	if s == nil {
		return ErrSlotIsNotConstructed
	}
	return s.guard.Validate(ErrSlotIsNotConstructed)
}

// ID returns the pool identifier (zero before first save).
func (s *Slot) ID() int64 { return s.id }

// SetID is called by persistence after the first insert.
func (s *Slot) SetID(id int64) { s.id = id }

// At returns the visit datetime key.
func (s *Slot) At() string { return s.at }

// Gender returns the pool's gender.
func (s *Slot) Gender() user.Gender { return s.gender }

// Capacity returns the pool's total capacity.
func (s *Slot) Capacity() int { return s.capacity }

// Reserved returns the number of taken slots.
func (s *Slot) Reserved() int { return s.reserved }

// Free returns the number of open slots.
func (s *Slot) Free() int { return s.capacity - s.reserved }

// Take reserves one slot from this pool.
func (s *Slot) Take() error {
	if s.Free() <= 0 {
		return ErrNoSlotAvailable
	}
	s.reserved++
	return nil
}

// TakeOrBorrow reserves one slot, borrowing capacity from the opposite pool
// when this one is exhausted. The lender must retain more than borrowBuffer
// free slots after lending; both pools' capacities are adjusted so the move
// is visible to later reservations in the same transaction.
func (s *Slot) TakeOrBorrow(opposite *Slot) error {
	if err := s.Take(); err == nil {
		return nil
	}
	if opposite == nil {
		return ErrNoSlotAvailable
	}
	if err := opposite.Validate(); err != nil {
		return err
	}
	if opposite.Free()-1 <= borrowBuffer {
		return ErrNoSlotAvailable
	}
	opposite.capacity--
	s.capacity++
	s.reserved++
	return nil
}

// Release frees one reserved slot, used when a visit is rescheduled away
// from this pool.
func (s *Slot) Release() {
	if s.reserved > 0 {
		s.reserved--
	}
}
