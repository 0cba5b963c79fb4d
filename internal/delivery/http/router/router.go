// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"
	"bazaar/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProductHandler *handler.ProductHandler
	StoreHandler   *handler.StoreHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	productHandler *handler.ProductHandler
	storeHandler   *handler.StoreHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		productHandler: params.ProductHandler,
		storeHandler:   params.StoreHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Catalog routes. Browsing is public; mutations and the own-store listing
	// require a resolved identity, with fine-grained ownership checks left to
	// the policy engine.
	productGroup := api.Group("/products")
	{
		productGroup.GET("", r.productHandler.List)

		authed := productGroup.Group("")
		authed.Use(r.authMiddleware.Authenticate)
		{
			authed.GET("/store-products", r.productHandler.StoreProducts)
			authed.POST("/create-product", r.productHandler.Create)
			authed.PUT("/update-product/:productId", r.productHandler.Update)
			authed.DELETE("/delete-product/:productId", r.productHandler.Delete)
		}

		// Registered after the fixed paths so those never match as an :id.
		productGroup.GET("/:id", r.productHandler.Get)
	}

	// Store management routes, admin-only.
	storeGroup := api.Group("/stores")
	storeGroup.Use(r.authMiddleware.Authenticate)
	storeGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		storeGroup.GET("", r.storeHandler.List)
		storeGroup.POST("", r.storeHandler.Create)
		storeGroup.POST("/assign-seller", r.storeHandler.AssignSeller)
		storeGroup.GET("/:id", r.storeHandler.Get)
		storeGroup.PUT("/:id", r.storeHandler.Update)
		storeGroup.PATCH("/:id/deactivate", r.storeHandler.Deactivate)
		storeGroup.DELETE("/:id", r.storeHandler.Delete)
	}
}
