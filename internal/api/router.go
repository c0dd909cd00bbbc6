package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/minimarket/storefront-system/docs" // swagger spec registration

	"github.com/minimarket/storefront-system/internal/api/handler"
	"github.com/minimarket/storefront-system/internal/api/middleware"
	"github.com/minimarket/storefront-system/internal/core/ports"
	"github.com/minimarket/storefront-system/internal/core/service"
)

// Dependencies carries everything the router needs to register routes.
type Dependencies struct {
	Store         ports.StoreService
	Auth          ports.AuthService
	KV            ports.KeyValueStore
	Notifications handler.NotificationSource
	JWTSecret     string
	Logger        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Handlers ---
	catalogHandler := handler.NewCatalogHandler(deps.Store)
	cartHandler := handler.NewCartHandler(deps.Store)
	adminHandler := handler.NewAdminHandler(deps.Store)
	authHandler := handler.NewAuthHandler(deps.Auth)
	notificationsHandler := handler.NewNotificationsHandler(deps.Notifications)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Public storefront routes ---
	v1 := e.Group("/v1")
	v1.GET("/products", catalogHandler.Grid)
	v1.GET("/products/:id", catalogHandler.Detail)
	v1.GET("/cart", cartHandler.Get)
	v1.POST("/cart/items", cartHandler.AddItem)
	v1.DELETE("/cart/items/:id", cartHandler.RemoveItem)
	v1.GET("/notifications", notificationsHandler.Stream)

	// --- Admin panel (owner only) ---
	admin := v1.Group("/admin", middleware.Auth(deps.JWTSecret), middleware.RBAC(service.OwnerRole))
	admin.GET("/products", adminHandler.List)
	admin.POST("/products", adminHandler.Create)
	admin.DELETE("/products/:id", adminHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.KV)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is storage up?

	// --- Operability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
