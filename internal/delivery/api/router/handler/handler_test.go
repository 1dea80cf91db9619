package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/validator"
	"storefront/internal/domain/service"
	mockService "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testToken = "valid-token"

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

type testServer struct {
	echo     *echo.Echo
	auth     *apimiddleware.AuthMiddleware
	tokenSvc *mockService.MockTokenService
	userID   uuid.UUID
}

func newTestServer(t *testing.T) *testServer {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokenSvc := mockService.NewMockTokenService(t)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	return &testServer{
		echo:     e,
		auth:     apimiddleware.NewAuthMiddleware(tokenSvc, logger),
		tokenSvc: tokenSvc,
		userID:   uuid.New(),
	}
}

// expectAuthenticated makes testToken resolve to the server's principal.
func (s *testServer) expectAuthenticated() {
	s.tokenSvc.EXPECT().ValidateToken(testToken).Return(&service.Claims{UserID: s.userID, Type: "access"}, nil)
}

func (s *testServer) do(t *testing.T, method, target, body string, authenticated bool) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authenticated {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	}

	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}
