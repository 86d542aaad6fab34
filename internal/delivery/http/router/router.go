// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"weightwise/internal/delivery/http/middleware"
	"weightwise/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler           *handler.AuthHandler
	WeightHandler         *handler.WeightHandler
	ActivityHandler       *handler.ActivityHandler
	BusinessHandler       *handler.BusinessHandler
	ReviewHandler         *handler.ReviewHandler
	PreferencesHandler    *handler.PreferencesHandler
	RecommendationHandler *handler.RecommendationHandler
	SessionMiddleware     *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	auth := r.params.SessionMiddleware.Authenticate

	// OAuth login round-trip, all public
	api.GET("/login", r.params.AuthHandler.Login)
	api.GET("/callback", r.params.AuthHandler.Callback)
	api.GET("/logout", r.params.AuthHandler.Logout)
	api.GET("/auth/user", r.params.AuthHandler.CurrentUser, auth)

	// Weight tracking, always owner-scoped
	weights := api.Group("/weights", auth)
	{
		weights.GET("", r.params.WeightHandler.List)
		weights.POST("", r.params.WeightHandler.Create)
		weights.POST("/photo", r.params.WeightHandler.UploadPhoto)
		weights.GET("/:id", r.params.WeightHandler.Get)
		weights.DELETE("/:id", r.params.WeightHandler.Delete)
	}

	// Audit trail, read side
	api.GET("/activity", r.params.ActivityHandler.List, auth)

	// Business profiles: reads public, writes authenticated
	businesses := api.Group("/businesses")
	{
		businesses.GET("", r.params.BusinessHandler.Search)
		businesses.GET("/nearby", r.params.BusinessHandler.Nearby)
		businesses.GET("/:id", r.params.BusinessHandler.Get)
		businesses.GET("/:id/qrcode", r.params.BusinessHandler.QRCode)
		businesses.GET("/:id/reviews", r.params.ReviewHandler.List)
		businesses.POST("", r.params.BusinessHandler.Create, auth)
		businesses.PUT("/:id", r.params.BusinessHandler.Update, auth)
		businesses.POST("/:id/reviews", r.params.ReviewHandler.Create, auth)
	}

	// Recommendation preferences and serving
	api.GET("/preferences", r.params.PreferencesHandler.Get, auth)
	api.PUT("/preferences", r.params.PreferencesHandler.Update, auth)
	api.GET("/recommendations", r.params.RecommendationHandler.List, auth)
	api.POST("/recommendations/:id/viewed", r.params.RecommendationHandler.MarkViewed, auth)
}
