package repository

import (
	"context"

	"paytrack/internal/domain/entity"
)

// AssetRepository defines the interface for asset data operations.
type AssetRepository interface {
	// FindByID retrieves an asset by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Asset, error)
	// FindByUserID retrieves all assets for a specific user.
	FindByUserID(ctx context.Context, userID string) ([]*entity.Asset, error)
	// Create creates a new asset. Returns the ID of the created asset.
	Create(ctx context.Context, asset *entity.Asset) (uint, error)
	// Update updates an existing asset.
	Update(ctx context.Context, asset *entity.Asset) error
	// Delete deletes an asset by its ID.
	Delete(ctx context.Context, id uint) error
}
