// Package user contains the renter profile: contact data, body measurements
// and the foot size that shoe fittings write back onto the profile.
package user

import (
	"errors"
	"fmt"
	"time"

	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when a UserInfo instance was not
// created through NewUserInfo or RestoreUserInfo.
var ErrUserIsNotConstructed = errors.New("UserInfo must be created via NewUserInfo constructor")

// Gender of the renter, used to pick the visit slot pool.
type Gender int

const (
	Male Gender = iota
	Female
)

// String returns the gender name.
func (g Gender) String() string {
	if g == Female {
		return "Female"
	}
	return "Male"
}

// Validate checks that the value is one of the defined genders.
func (g Gender) Validate() error {
	if g != Male && g != Female {
		return errs.NewValueIsInvalidErrorWithCause("gender is invalid",
			fmt.Errorf("%d is not a valid gender", g))
	}
	return nil
}

// UserInfo is the renter profile. Measurements are in centimeters except
// foot, which is in millimeters (Korean shoe sizing).
type UserInfo struct {
	id        int64
	name      string
	phone     string
	gender    Gender
	birthYear int
	address   string

	height int
	weight int
	chest  int
	waist  int
	foot   int

	guard guard.ConstructorGuard
}

// NewUserInfo registers a renter profile.
func NewUserInfo(name, phone string, gender Gender, birthYear int, address string) (*UserInfo, error) {
	u := &UserInfo{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		u.setName(name),
		u.setPhone(phone),
		u.setGender(gender),
	); err != nil {
		return nil, err
	}
	u.birthYear = birthYear
	u.address = address
	return u, nil
}

// RestoreUserInfo reconstructs a profile from persistence.
func RestoreUserInfo(
	id int64, name, phone string, gender Gender, birthYear int, address string,
	height, weight, chest, waist, foot int,
) (*UserInfo, error) {
	u, err := NewUserInfo(name, phone, gender, birthYear, address)
	if err != nil {
		return nil, err
	}
	u.id = id
	u.height = height
	u.weight = weight
	u.chest = chest
	u.waist = waist
	u.foot = foot
	return u, nil
}

// Validate ensures the profile was created through a constructor.
func (u *UserInfo) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the user identifier (zero before first save).
func (u *UserInfo) ID() int64 { return u.id }

// SetID is called by persistence after the first insert.
func (u *UserInfo) SetID(id int64) { u.id = id }

// Name returns the renter's name.
func (u *UserInfo) Name() string { return u.name }

// Phone returns the SMS-capable phone number.
func (u *UserInfo) Phone() string { return u.phone }

// Gender returns the renter's gender.
func (u *UserInfo) Gender() Gender { return u.gender }

// BirthYear returns the renter's year of birth (zero when unknown).
func (u *UserInfo) BirthYear() int { return u.birthYear }

// Address returns the renter's address.
func (u *UserInfo) Address() string { return u.address }

// Height in centimeters.
func (u *UserInfo) Height() int { return u.height }

// Weight in kilograms.
func (u *UserInfo) Weight() int { return u.weight }

// Chest in centimeters.
func (u *UserInfo) Chest() int { return u.chest }

// Waist in centimeters.
func (u *UserInfo) Waist() int { return u.waist }

// Foot returns the stored shoe length in millimeters.
func (u *UserInfo) Foot() int { return u.foot }

// Age returns the renter's age in years at the given time, or zero when the
// birth year is unknown.
func (u *UserInfo) Age(at time.Time) int {
	if u.birthYear == 0 {
		return 0
	}
	return at.Year() - u.birthYear
}

// SetMeasurements stores the fitted body measurements on the profile.
func (u *UserInfo) SetMeasurements(height, weight, chest, waist int) {
	u.height = height
	u.weight = weight
	u.chest = chest
	u.waist = waist
}

// SetFoot overwrites the stored shoe length, e.g. when a fitted pair of
// shoes shows the profile value was wrong.
func (u *UserInfo) SetFoot(length int) {
	u.foot = length
}

func (u *UserInfo) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("user name")
	}
	u.name = name
	return nil
}

func (u *UserInfo) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("user phone")
	}
	u.phone = phone
	return nil
}

func (u *UserInfo) setGender(g Gender) error {
	if err := g.Validate(); err != nil {
		return err
	}
	u.gender = g
	return nil
}
