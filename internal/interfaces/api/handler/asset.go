package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"paytrack/internal/application/dto"
	"paytrack/internal/application/service"
	"paytrack/internal/pkg/logger"
)

// AssetHandler handles asset tracking endpoints.
type AssetHandler struct {
	assetService service.AssetService
	log          logger.Logger
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetService service.AssetService, log logger.Logger) *AssetHandler {
	return &AssetHandler{assetService: assetService, log: log}
}

// Create stores a new asset.
func (h *AssetHandler) Create(c echo.Context) error {
	var req dto.CreateAssetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}
	if req.UserID == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "user_id is required"})
	}

	asset, err := h.assetService.CreateAsset(c.Request().Context(), req)
	if err != nil {
		h.log.Error("Failed to create asset", err)
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, asset)
}

// Update replaces an asset's fields.
func (h *AssetHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid asset id"})
	}
	var req dto.UpdateAssetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
	}

	asset, err := h.assetService.UpdateAsset(c.Request().Context(), id, req)
	if err != nil {
		h.log.Error("Failed to update asset", err)
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, asset)
}

// Delete removes an asset.
func (h *AssetHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid asset id"})
	}

	if err := h.assetService.DeleteAsset(c.Request().Context(), id, c.QueryParam("user_id")); err != nil {
		h.log.Error("Failed to delete asset", err)
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// List returns a user's assets with their combined balance.
func (h *AssetHandler) List(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "user_id is required"})
	}

	assets, err := h.assetService.ListAssets(c.Request().Context(), userID)
	if err != nil {
		h.log.Error("Failed to list assets", err)
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, assets)
}
