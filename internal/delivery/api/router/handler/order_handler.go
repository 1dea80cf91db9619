package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/validator"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// SubmitOrderRequest is the body of POST /orders.
// OwnerID, CreatedAt and any embedded catalog data are accepted for client
// compatibility but never trusted.
type SubmitOrderRequest struct {
	OwnerID         *uuid.UUID        `json:"owner_id,omitempty"`
	CreatedAt       *time.Time        `json:"created_at,omitempty"`
	DeliveryAddress AddressRequest    `json:"delivery_address"`
	LineItems       []LineItemRequest `json:"line_items" validate:"max=100,dive"`
}

// AddressRequest is the delivery address of an order
type AddressRequest struct {
	Name       string `json:"name" validate:"required,max=255"`
	Line1      string `json:"line1" validate:"required,max=255"`
	Line2      string `json:"line2" validate:"max=255"`
	City       string `json:"city" validate:"required,max=128"`
	Region     string `json:"region" validate:"max=128"`
	PostalCode string `json:"postal_code" validate:"required,max=32"`
}

// LineItemRequest is one selection of the order
type LineItemRequest struct {
	CatalogEntryID int64                `json:"catalog_entry_id" validate:"gte=0"`
	Quantity       *int                 `json:"quantity,omitempty"`
	CatalogEntry   *CatalogEntryPayload `json:"catalog_entry,omitempty"`
}

// CatalogEntryPayload is a catalog entry echoed back by the client
type CatalogEntryPayload struct {
	ID        int64           `json:"id" validate:"gte=0"`
	Name      string          `json:"name,omitempty"`
	BasePrice decimal.Decimal `json:"base_price"`
}

func (r *SubmitOrderRequest) toDraft() *usecase.DraftOrderInput {
	draft := &usecase.DraftOrderInput{
		OwnerID:   r.OwnerID,
		CreatedAt: r.CreatedAt,
		DeliveryAddress: entity.Address{
			Name:       r.DeliveryAddress.Name,
			Line1:      r.DeliveryAddress.Line1,
			Line2:      r.DeliveryAddress.Line2,
			City:       r.DeliveryAddress.City,
			Region:     r.DeliveryAddress.Region,
			PostalCode: r.DeliveryAddress.PostalCode,
		},
		LineItems: make([]usecase.DraftLineItemInput, 0, len(r.LineItems)),
	}

	for _, item := range r.LineItems {
		draftItem := usecase.DraftLineItemInput{
			CatalogEntryID: item.CatalogEntryID,
			Quantity:       item.Quantity,
		}
		if item.CatalogEntry != nil {
			draftItem.CatalogEntry = &usecase.DraftCatalogEntry{
				ID:        item.CatalogEntry.ID,
				Name:      item.CatalogEntry.Name,
				BasePrice: item.CatalogEntry.BasePrice,
			}
		}
		draft.LineItems = append(draft.LineItems, draftItem)
	}

	return draft
}

// SubmitOrderResponse carries the ID of the created order
type SubmitOrderResponse struct {
	OrderID int64 `json:"order_id"`
}

// SubmitOrder handles order placement
func (h *OrderHandler) SubmitOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SubmitOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Input validation failed", validator.FieldErrors(err))
	}

	order, err := h.orderUC.SubmitOrder(c.Request().Context(), userID, req.toDraft())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderLocation, "/orders/"+strconv.FormatInt(order.ID, 10))

	return response.Success(c, http.StatusCreated, SubmitOrderResponse{OrderID: order.ID})
}

// ListOrders returns the caller's orders, most recent first
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// GetOrder returns one of the caller's orders
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || orderID <= 0 {
		return response.BadRequest(c, "INVALID_ORDER_ID", "Invalid order ID format")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}
