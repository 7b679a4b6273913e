package ports

import (
	"context"

	"rental/internal/core/domain/model/clothes"
)

// ClothesRepository persists clothing items.
type ClothesRepository interface {
	// Add saves a new item and assigns its identity.
	Add(ctx context.Context, item *clothes.Clothes) error

	// Update saves an existing item.
	Update(ctx context.Context, item *clothes.Clothes) error

	// Get retrieves an item by identity.
	Get(ctx context.Context, id int64) (*clothes.Clothes, error)

	// GetByCode retrieves an item by its human-assigned code.
	GetByCode(ctx context.Context, code string) (*clothes.Clothes, error)
}
