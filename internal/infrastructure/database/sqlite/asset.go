package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"paytrack/internal/domain/entity"
	"paytrack/internal/domain/repository"
)

type assetRepository struct {
	db *gorm.DB
}

// NewAssetRepository creates a new instance of AssetRepository.
func NewAssetRepository(db *gorm.DB) repository.AssetRepository {
	return &assetRepository{db: db}
}

// FindByID retrieves an asset by its ID.
func (r *assetRepository) FindByID(ctx context.Context, id uint) (*entity.Asset, error) {
	var asset entity.Asset
	if err := r.db.WithContext(ctx).First(&asset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("asset %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to find asset %d: %w", id, err)
	}
	return &asset, nil
}

// FindByUserID retrieves all assets for a specific user.
func (r *assetRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Asset, error) {
	var assets []*entity.Asset
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at asc").Find(&assets).Error; err != nil {
		return nil, fmt.Errorf("failed to find assets for user %s: %w", userID, err)
	}
	return assets, nil
}

// Create creates a new asset. Returns the ID of the created asset.
func (r *assetRepository) Create(ctx context.Context, asset *entity.Asset) (uint, error) {
	if err := r.db.WithContext(ctx).Create(asset).Error; err != nil {
		return 0, fmt.Errorf("failed to create asset for user %s: %w", asset.UserID, err)
	}
	return asset.ID, nil
}

// Update updates an existing asset.
func (r *assetRepository) Update(ctx context.Context, asset *entity.Asset) error {
	if err := r.db.WithContext(ctx).Save(asset).Error; err != nil {
		return fmt.Errorf("failed to update asset %d: %w", asset.ID, err)
	}
	return nil
}

// Delete deletes an asset by its ID.
func (r *assetRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&entity.Asset{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete asset %d: %w", id, err)
	}
	return nil
}
