package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupOrderRoutes(t *testing.T) (*testServer, *mockUsecase.MockOrderUsecase) {
	srv := newTestServer(t)
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{
		OrderUC: orderUC,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	group := srv.echo.Group("/orders", srv.auth.Authenticate)
	group.POST("", h.SubmitOrder)
	group.GET("", h.ListOrders)
	group.GET("/:id", h.GetOrder)

	return srv, orderUC
}

const submitBody = `{
	"owner_id": "00000000-0000-0000-0000-000000000001",
	"delivery_address": {"name": "Ada", "line1": "1 Main St", "city": "London", "region": "LDN", "postal_code": "SW1A"},
	"line_items": [
		{"catalog_entry_id": 1, "quantity": 2},
		{"catalog_entry": {"id": 2, "name": "Family Feast", "base_price": "0.01"}}
	]
}`

func TestOrderHandler_SubmitOrder(t *testing.T) {
	srv, orderUC := setupOrderRoutes(t)
	srv.expectAuthenticated()

	orderUC.EXPECT().SubmitOrder(mock.Anything, srv.userID, mock.MatchedBy(func(draft *usecase.DraftOrderInput) bool {
		if len(draft.LineItems) != 2 || draft.DeliveryAddress.City != "London" {
			return false
		}
		first, second := draft.LineItems[0], draft.LineItems[1]

		return first.CatalogEntryID == 1 && first.Quantity != nil && *first.Quantity == 2 &&
			second.Quantity == nil && second.CatalogEntry != nil && second.CatalogEntry.ID == 2
	})).Return(&entity.Order{ID: 42, OwnerID: srv.userID}, nil)

	rec, env := srv.do(t, http.MethodPost, "/orders", submitBody, true)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/orders/42", rec.Header().Get("Location"))
	assert.JSONEq(t, `{"order_id": 42}`, string(env.Data))
}

func TestOrderHandler_SubmitOrder_Rejections(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		srv, _ := setupOrderRoutes(t)

		rec, env := srv.do(t, http.MethodPost, "/orders", submitBody, false)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "MISSING_TOKEN", env.Error.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		srv, _ := setupOrderRoutes(t)
		srv.expectAuthenticated()

		rec, env := srv.do(t, http.MethodPost, "/orders", `{"line_items": [`, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("address too long", func(t *testing.T) {
		srv, _ := setupOrderRoutes(t)
		srv.expectAuthenticated()

		body := `{"delivery_address": {"name": "` + strings.Repeat("a", 256) +
			`", "line1": "1 Main St", "city": "London", "postal_code": "SW1A"}, "line_items": [{"catalog_entry_id": 1}]}`
		rec, env := srv.do(t, http.MethodPost, "/orders", body, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Equal(t, map[string]any{"delivery_address.name": "max=255"}, env.Error.Details)
	})

	t.Run("missing address", func(t *testing.T) {
		srv, _ := setupOrderRoutes(t)
		srv.expectAuthenticated()

		rec, env := srv.do(t, http.MethodPost, "/orders", `{"line_items": [{"catalog_entry_id": 1}]}`, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, env.Error.Details, "delivery_address.city")
	})

	t.Run("line items without a delivery address", func(t *testing.T) {
		srv, _ := setupOrderRoutes(t)
		srv.expectAuthenticated()

		body := `{"line_items": [{"catalog_entry_id": 2, "quantity": 1}, {"catalog_entry_id": 1, "quantity": 2}]}`
		rec, env := srv.do(t, http.MethodPost, "/orders", body, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		for _, field := range []string{"name", "line1", "city", "postal_code"} {
			assert.Contains(t, env.Error.Details, "delivery_address."+field)
		}
	})

	t.Run("unknown catalog entry", func(t *testing.T) {
		srv, orderUC := setupOrderRoutes(t)
		srv.expectAuthenticated()

		orderUC.EXPECT().SubmitOrder(mock.Anything, srv.userID, mock.Anything).
			Return(nil, domainerrors.NewUnknownCatalogEntryError(99))

		rec, env := srv.do(t, http.MethodPost, "/orders", submitBody, true)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "UNKNOWN_CATALOG_ENTRY", env.Error.Code)
		assert.Equal(t, "catalog_entry_id=99", env.Error.Details)
	})

	t.Run("invalid quantity", func(t *testing.T) {
		srv, orderUC := setupOrderRoutes(t)
		srv.expectAuthenticated()

		orderUC.EXPECT().SubmitOrder(mock.Anything, srv.userID, mock.Anything).
			Return(nil, domainerrors.NewInvalidQuantityError(1, 11, 1, 10))

		rec, env := srv.do(t, http.MethodPost, "/orders", submitBody, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_QUANTITY", env.Error.Code)
	})

	t.Run("submission timeout", func(t *testing.T) {
		srv, orderUC := setupOrderRoutes(t)
		srv.expectAuthenticated()

		orderUC.EXPECT().SubmitOrder(mock.Anything, srv.userID, mock.Anything).
			Return(nil, domainerrors.ErrSubmissionTimeout.WithDetails("exceeded 5s"))

		rec, env := srv.do(t, http.MethodPost, "/orders", submitBody, true)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "SUBMISSION_TIMEOUT", env.Error.Code)
		assert.Nil(t, env.Error.Details)
	})

	t.Run("unexpected error", func(t *testing.T) {
		srv, orderUC := setupOrderRoutes(t)
		srv.expectAuthenticated()

		orderUC.EXPECT().SubmitOrder(mock.Anything, srv.userID, mock.Anything).
			Return(nil, errors.New("boom"))

		rec, env := srv.do(t, http.MethodPost, "/orders", submitBody, true)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
		assert.NotContains(t, rec.Body.String(), "boom")
	})
}

func TestOrderHandler_ListOrders(t *testing.T) {
	srv, orderUC := setupOrderRoutes(t)
	srv.expectAuthenticated()

	total := decimal.RequireFromString("139.99")
	orderUC.EXPECT().ListOrders(mock.Anything, srv.userID).Return([]*entity.OrderView{
		{
			OrderID:             7,
			OwnerID:             srv.userID,
			CreatedAt:           time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
			TotalPrice:          total,
			FormattedTotalPrice: entity.FormatPrice(total),
		},
	}, nil)

	rec, env := srv.do(t, http.MethodGet, "/orders", "", true)

	require.Equal(t, http.StatusOK, rec.Code)

	var views []entity.OrderView
	require.NoError(t, json.Unmarshal(env.Data, &views))
	require.Len(t, views, 1)
	assert.Equal(t, int64(7), views[0].OrderID)
	assert.Equal(t, "139.99", views[0].FormattedTotalPrice)
}

func TestOrderHandler_GetOrder(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		srv, orderUC := setupOrderRoutes(t)
		srv.expectAuthenticated()

		orderUC.EXPECT().GetOrder(mock.Anything, srv.userID, int64(7)).
			Return(&entity.OrderView{OrderID: 7, OwnerID: srv.userID}, nil)

		rec, env := srv.do(t, http.MethodGet, "/orders/7", "", true)

		require.Equal(t, http.StatusOK, rec.Code)

		var view entity.OrderView
		require.NoError(t, json.Unmarshal(env.Data, &view))
		assert.Equal(t, int64(7), view.OrderID)
	})

	t.Run("invalid id", func(t *testing.T) {
		srv, _ := setupOrderRoutes(t)
		srv.expectAuthenticated()

		rec, env := srv.do(t, http.MethodGet, "/orders/seven", "", true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_ORDER_ID", env.Error.Code)
	})

	t.Run("not owned", func(t *testing.T) {
		srv, orderUC := setupOrderRoutes(t)
		srv.expectAuthenticated()

		orderUC.EXPECT().GetOrder(mock.Anything, srv.userID, int64(8)).Return(nil, domainerrors.ErrOrderNotFound)

		rec, env := srv.do(t, http.MethodGet, "/orders/8", "", true)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "ORDER_NOT_FOUND", env.Error.Code)
	})
}
