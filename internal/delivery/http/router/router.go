// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ratehub/internal/delivery/http/middleware"
	"ratehub/internal/delivery/http/router/handler"
	"ratehub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	StoreHandler   *handler.StoreHandler
	RatingHandler  *handler.RatingHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	storeHandler   *handler.StoreHandler
	ratingHandler  *handler.RatingHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		storeHandler:   params.StoreHandler,
		ratingHandler:  params.RatingHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes are public.
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.PUT("/update-password", r.authHandler.UpdatePassword)
	}

	// User management is admin-only.
	userGroup := api.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	userGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		userGroup.GET("", r.userHandler.List)
		userGroup.GET("/search/:name", r.userHandler.Search)
		userGroup.GET("/:id", r.userHandler.Get)
		userGroup.POST("", r.userHandler.Create)
		userGroup.DELETE("/:id", r.userHandler.Delete)
	}

	// Store browsing is open to every authenticated role; mutation and the
	// owners listing are admin-only, my-store views are owner-only.
	storeGroup := api.Group("/stores")
	storeGroup.Use(r.authMiddleware.Authenticate)
	{
		storeGroup.GET("", r.storeHandler.List)
		storeGroup.POST("", r.storeHandler.Create, r.authMiddleware.RequireRole(entity.RoleAdmin))
		storeGroup.DELETE("/:id", r.storeHandler.Delete, r.authMiddleware.RequireRole(entity.RoleAdmin))
		storeGroup.GET("/owners", r.storeHandler.Owners, r.authMiddleware.RequireRole(entity.RoleAdmin))
		storeGroup.GET("/my-store", r.storeHandler.MyStore, r.authMiddleware.RequireRole(entity.RoleStoreOwner))
		storeGroup.GET("/my-store/ratings", r.storeHandler.MyStoreRatings, r.authMiddleware.RequireRole(entity.RoleStoreOwner))
	}

	// Submitting and editing ratings belongs to normal users; the full
	// listing is an admin view.
	ratingGroup := api.Group("/ratings")
	ratingGroup.Use(r.authMiddleware.Authenticate)
	{
		ratingGroup.POST("", r.ratingHandler.Submit, r.authMiddleware.RequireRole(entity.RoleNormalUser))
		ratingGroup.PUT("/:id", r.ratingHandler.Update, r.authMiddleware.RequireRole(entity.RoleNormalUser))
		ratingGroup.GET("", r.ratingHandler.List, r.authMiddleware.RequireRole(entity.RoleAdmin))
	}

	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/dashboard", r.adminHandler.Dashboard)
	}
}
