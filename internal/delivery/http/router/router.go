// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"promofinder/internal/delivery/http/middleware"
	"promofinder/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	BusinessHandler  *handler.BusinessHandler
	OfferHandler     *handler.OfferHandler
	DiscoveryHandler *handler.DiscoveryHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	businessHandler  *handler.BusinessHandler
	offerHandler     *handler.OfferHandler
	discoveryHandler *handler.DiscoveryHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		businessHandler:  params.BusinessHandler,
		offerHandler:     params.OfferHandler,
		discoveryHandler: params.DiscoveryHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.businessHandler.Register)
		authGroup.POST("/login", r.businessHandler.Login)
	}

	// Business routes that require authentication
	businessGroup := e.Group("/business")
	businessGroup.Use(r.authMiddleware.Authenticate)
	{
		businessGroup.GET("/profile", r.businessHandler.GetProfile)
		businessGroup.POST("/offers", r.offerHandler.Create)
		businessGroup.GET("/offers", r.offerHandler.List)
		businessGroup.GET("/offers/:id", r.offerHandler.Get)
		businessGroup.PUT("/offers/:id", r.offerHandler.Update)
		businessGroup.DELETE("/offers/:id", r.offerHandler.Delete)
	}

	// Public discovery routes, no authentication required
	apiGroup := e.Group("/api")
	{
		apiGroup.GET("/nearby_offers", r.discoveryHandler.NearbyOffers)
		apiGroup.GET("/businesses", r.discoveryHandler.ListBusinesses)
		apiGroup.GET("/businesses/:id/proximity", r.discoveryHandler.Proximity)
	}
}
