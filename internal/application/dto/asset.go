package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"paytrack/internal/domain/entity"
)

// CreateAssetRequest is the DTO for creating a new asset.
type CreateAssetRequest struct {
	UserID  string          `json:"user_id"`
	Name    string          `json:"name"`
	Type    string          `json:"type"`
	Balance decimal.Decimal `json:"balance"`
}

// UpdateAssetRequest is the DTO for updating an existing asset.
type UpdateAssetRequest struct {
	UserID  string          `json:"user_id"`
	Name    string          `json:"name"`
	Type    string          `json:"type"`
	Balance decimal.Decimal `json:"balance"`
}

// AssetResponse is the DTO for sending asset information to the client.
type AssetResponse struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}

// AssetListResponse bundles a user's assets with their combined balance.
type AssetListResponse struct {
	Assets       []AssetResponse `json:"assets"`
	TotalBalance decimal.Decimal `json:"total_balance"`
}

// ToAssetResponse converts an entity.Asset to an AssetResponse DTO.
func ToAssetResponse(a *entity.Asset) AssetResponse {
	return AssetResponse{
		ID:        a.ID,
		Name:      a.Name,
		Type:      string(a.Type),
		Balance:   a.Balance,
		CreatedAt: a.CreatedAt,
	}
}
