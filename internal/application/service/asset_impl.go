package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"paytrack/internal/application/dto"
	"paytrack/internal/domain/constant"
	"paytrack/internal/domain/entity"
	"paytrack/internal/domain/repository"
	appErrors "paytrack/internal/pkg/errors"
	"paytrack/internal/pkg/logger"
)

type assetService struct {
	assetRepo repository.AssetRepository
	log       logger.Logger
}

// NewAssetService creates a new instance of AssetService implementation.
func NewAssetService(assetRepo repository.AssetRepository, log logger.Logger) AssetService {
	return &assetService{assetRepo: assetRepo, log: log}
}

// CreateAsset stores a new asset.
func (s *assetService) CreateAsset(ctx context.Context, req dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, appErrors.ErrInvalidTitle
	}
	assetType := constant.AssetType(req.Type)
	if !assetType.Valid() {
		assetType = constant.AssetCash
	}

	asset := &entity.Asset{
		UserID:  req.UserID,
		Name:    strings.TrimSpace(req.Name),
		Type:    assetType,
		Balance: req.Balance,
	}
	if _, err := s.assetRepo.Create(ctx, asset); err != nil {
		s.log.Error(fmt.Sprintf("Failed to create asset for user %s", req.UserID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	resp := dto.ToAssetResponse(asset)
	return &resp, nil
}

// UpdateAsset updates an existing asset.
func (s *assetService) UpdateAsset(ctx context.Context, id uint, req dto.UpdateAssetRequest) (*dto.AssetResponse, error) {
	asset, err := s.assetRepo.FindByID(ctx, id)
	if err != nil || asset.UserID != req.UserID {
		return nil, appErrors.ErrAssetNotFound
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		asset.Name = name
	}
	if assetType := constant.AssetType(req.Type); assetType.Valid() {
		asset.Type = assetType
	}
	asset.Balance = req.Balance

	if err := s.assetRepo.Update(ctx, asset); err != nil {
		s.log.Error(fmt.Sprintf("Failed to update asset %d", id), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	resp := dto.ToAssetResponse(asset)
	return &resp, nil
}

// DeleteAsset removes an asset.
func (s *assetService) DeleteAsset(ctx context.Context, id uint, userID string) error {
	asset, err := s.assetRepo.FindByID(ctx, id)
	if err != nil || asset.UserID != userID {
		return appErrors.ErrAssetNotFound
	}

	if err := s.assetRepo.Delete(ctx, id); err != nil {
		s.log.Error(fmt.Sprintf("Failed to delete asset %d", id), err)
		return fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}
	return nil
}

// ListAssets retrieves a user's assets with their combined balance.
func (s *assetService) ListAssets(ctx context.Context, userID string) (*dto.AssetListResponse, error) {
	assets, err := s.assetRepo.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to list assets for user %s", userID), err)
		return nil, fmt.Errorf("%w: %v", appErrors.ErrDatabaseOperation, err)
	}

	total := decimal.Zero
	list := make([]dto.AssetResponse, len(assets))
	for i, a := range assets {
		list[i] = dto.ToAssetResponse(a)
		total = total.Add(a.Balance)
	}
	return &dto.AssetListResponse{Assets: list, TotalBalance: total}, nil
}
