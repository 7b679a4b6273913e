// Package clothesrepo persists the clothing inventory.
package clothesrepo

import (
	"rental/internal/core/domain/model/clothes"
	"rental/internal/core/domain/model/order"
)

// ClothesDTO represents the database structure for persisting clothing items.
type ClothesDTO struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Code       string `gorm:"uniqueIndex"`
	Category   int
	Price      int
	Length     int
	DonorName  string
	DonorStory string
	Status     int `gorm:"index"`
}

// TableName specifies the database table name for clothing items.
func (ClothesDTO) TableName() string {
	return "clothes"
}

// fromDomain converts a clothing item to its database representation.
func fromDomain(item *clothes.Clothes) ClothesDTO {
	return ClothesDTO{
		ID:         item.ID(),
		Code:       item.Code(),
		Category:   int(item.Category()),
		Price:      item.Price(),
		Length:     item.Length(),
		DonorName:  item.DonorName(),
		DonorStory: item.DonorStory(),
		Status:     int(item.Status()),
	}
}

// toDomain converts a database DTO to a clothing item using RestoreClothes.
func toDomain(dto ClothesDTO) (*clothes.Clothes, error) {
	return clothes.RestoreClothes(
		dto.ID, dto.Code, clothes.Category(dto.Category),
		dto.Price, dto.Length, dto.DonorName, dto.DonorStory, order.Status(dto.Status),
	)
}
