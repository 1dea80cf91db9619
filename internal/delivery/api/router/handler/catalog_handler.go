package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the read-only catalog of specials
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// SpecialResponse is the display shape of a catalog entry
type SpecialResponse struct {
	ID                 int64           `json:"id"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	BasePrice          decimal.Decimal `json:"base_price"`
	FormattedBasePrice string          `json:"formatted_base_price"`
	ImageRef           string          `json:"image_ref"`
}

func newSpecialResponse(entry *entity.CatalogEntry) SpecialResponse {
	return SpecialResponse{
		ID:                 entry.ID,
		Name:               entry.Name,
		Description:        entry.Description,
		BasePrice:          entry.BasePrice,
		FormattedBasePrice: entry.FormattedBasePrice(),
		ImageRef:           entry.ImageRef,
	}
}

// ListSpecials returns every special, highest base price first
func (h *CatalogHandler) ListSpecials(c echo.Context) error {
	entries, err := h.catalogUC.ListSpecials(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	specials := make([]SpecialResponse, 0, len(entries))
	for _, entry := range entries {
		specials = append(specials, newSpecialResponse(entry))
	}

	return response.Success(c, http.StatusOK, specials)
}

// GetSpecial returns a single special
func (h *CatalogHandler) GetSpecial(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return response.BadRequest(c, "INVALID_SPECIAL_ID", "Invalid special ID format")
	}

	entry, err := h.catalogUC.GetSpecial(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSpecialResponse(entry))
}
