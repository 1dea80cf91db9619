// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler *handler.CatalogHandler
	OrderHandler   *handler.OrderHandler
	TestHandler    *handler.TestHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
	MetricsHandler http.Handler `name:"metricsHandler" optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler *handler.CatalogHandler
	orderHandler   *handler.OrderHandler
	testHandler    *handler.TestHandler
	authMiddleware *middleware.AuthMiddleware
	metricsHandler http.Handler
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler: params.CatalogHandler,
		orderHandler:   params.OrderHandler,
		testHandler:    params.TestHandler,
		authMiddleware: params.AuthMiddleware,
		metricsHandler: params.MetricsHandler,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.metricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(r.metricsHandler))
	}

	// Catalog routes are public; /deals is the alternate listing of the same entries
	e.GET("/specials", r.catalogHandler.ListSpecials)
	e.GET("/specials/:id", r.catalogHandler.GetSpecial)
	e.GET("/deals", r.catalogHandler.ListSpecials)

	ordersGroup := e.Group("/orders")
	ordersGroup.Use(r.authMiddleware.Authenticate)
	{
		ordersGroup.POST("", r.orderHandler.SubmitOrder)
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
		testGroup.POST("/token", r.testHandler.IssueToken)

		// Group middleware only wraps routes registered after Use
		testGroup.Use(r.authMiddleware.Authenticate)
		{
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware)
		}
	}
}
