// Package userrepo persists renter profiles.
package userrepo

import (
	"rental/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting renter profiles.
type UserDTO struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	Name      string
	Phone     string `gorm:"index"`
	Gender    int
	BirthYear int
	Address   string

	Height int
	Weight int
	Chest  int
	Waist  int
	Foot   int
}

// TableName specifies the database table name for renter profiles.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a profile to its database representation.
func fromDomain(u *user.UserInfo) UserDTO {
	return UserDTO{
		ID:        u.ID(),
		Name:      u.Name(),
		Phone:     u.Phone(),
		Gender:    int(u.Gender()),
		BirthYear: u.BirthYear(),
		Address:   u.Address(),
		Height:    u.Height(),
		Weight:    u.Weight(),
		Chest:     u.Chest(),
		Waist:     u.Waist(),
		Foot:      u.Foot(),
	}
}

// toDomain converts a database DTO to a profile using RestoreUserInfo.
func toDomain(dto UserDTO) (*user.UserInfo, error) {
	return user.RestoreUserInfo(
		dto.ID, dto.Name, dto.Phone, user.Gender(dto.Gender), dto.BirthYear, dto.Address,
		dto.Height, dto.Weight, dto.Chest, dto.Waist, dto.Foot,
	)
}
