package service

import (
	"context"

	"paytrack/internal/application/dto"
)

// AssetService defines the interface for asset tracking.
type AssetService interface {
	// CreateAsset stores a new asset.
	CreateAsset(ctx context.Context, req dto.CreateAssetRequest) (*dto.AssetResponse, error)
	// UpdateAsset updates an existing asset.
	UpdateAsset(ctx context.Context, id uint, req dto.UpdateAssetRequest) (*dto.AssetResponse, error)
	// DeleteAsset removes an asset.
	DeleteAsset(ctx context.Context, id uint, userID string) error
	// ListAssets retrieves a user's assets with their combined balance.
	ListAssets(ctx context.Context, userID string) (*dto.AssetListResponse, error)
}
