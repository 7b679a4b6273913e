package services

import (
	"strings"
	"time"

	"rental/internal/core/domain/model/user"
)

// ProgramWindow describes the regional employment-support program: renters in
// the age range, with the stated purpose, living at an address under the
// program's prefix, reserving inside the campaign window and holding no
// coupon yet, are invited by message after reserving.
type ProgramWindow struct {
	MinAge        int
	MaxAge        int
	Purpose       string
	AddressPrefix string
	Start         time.Time
	End           time.Time
}

// Enabled reports whether a campaign window is configured at all.
func (w ProgramWindow) Enabled() bool {
	return !w.Start.IsZero() && !w.End.IsZero()
}

// Matches reports whether the renter qualifies for the program invitation.
func (w ProgramWindow) Matches(renter *user.UserInfo, purpose string, hasCoupon bool, at time.Time) bool {
	if !w.Enabled() || hasCoupon {
		return false
	}
	if at.Before(w.Start) || at.After(w.End) {
		return false
	}
	age := renter.Age(at)
	if age < w.MinAge || age > w.MaxAge {
		return false
	}
	if w.Purpose != "" && purpose != w.Purpose {
		return false
	}
	if w.AddressPrefix != "" && !strings.HasPrefix(renter.Address(), w.AddressPrefix) {
		return false
	}
	return true
}
