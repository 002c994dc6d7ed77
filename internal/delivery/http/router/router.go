// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"meatly/internal/delivery/http/middleware"
	"meatly/internal/delivery/http/router/handler"
	"meatly/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RegistrationHandler *handler.RegistrationHandler
	SessionHandler      *handler.SessionHandler
	CatalogHandler      *handler.CatalogHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	registrationHandler *handler.RegistrationHandler
	sessionHandler      *handler.SessionHandler
	catalogHandler      *handler.CatalogHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		registrationHandler: params.RegistrationHandler,
		sessionHandler:      params.SessionHandler,
		catalogHandler:      params.CatalogHandler,
		adminHandler:        params.AdminHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Vendor onboarding and session routes
	vendorGroup := e.Group("/vendor")
	{
		vendorGroup.POST("/register", r.registrationHandler.Register)
		vendorGroup.POST("/login", r.sessionHandler.Login)
		vendorGroup.POST("/logout", r.sessionHandler.Logout)
	}

	// Public catalog routes; only visible shops ever leave these endpoints
	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("/shops", r.catalogHandler.ListShops)
		catalogGroup.GET("/shops/:id", r.catalogHandler.GetShop)
	}

	// Admin routes require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(constants.RoleAdmin))
	{
		adminGroup.POST("/shops/:id/approve", r.adminHandler.ApproveShop)
		adminGroup.POST("/shops/:id/reject", r.adminHandler.RejectShop)
		adminGroup.GET("/accounts/:phone/diagnosis", r.adminHandler.DiagnoseAccount)
		adminGroup.POST("/accounts/:phone/repair", r.adminHandler.RepairAccount)
	}
}
