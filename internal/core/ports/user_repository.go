package ports

import (
	"context"

	"rental/internal/core/domain/model/user"
)

// UserRepository persists renter profiles.
type UserRepository interface {
	// Add saves a new profile and assigns its identity.
	Add(ctx context.Context, u *user.UserInfo) error

	// Update saves an existing profile.
	Update(ctx context.Context, u *user.UserInfo) error

	// Get retrieves a profile by identity.
	Get(ctx context.Context, id int64) (*user.UserInfo, error)
}
