// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"voltmart/internal/delivery/http/middleware"
	"voltmart/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CartHandler      *handler.CartHandler
	CheckoutHandler  *handler.CheckoutHandler
	OrderHandler     *handler.OrderHandler
	CatalogHandler   *handler.CatalogHandler
	DashboardHandler *handler.DashboardHandler
	AccountHandler   *handler.AccountHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cartHandler      *handler.CartHandler
	checkoutHandler  *handler.CheckoutHandler
	orderHandler     *handler.OrderHandler
	catalogHandler   *handler.CatalogHandler
	dashboardHandler *handler.DashboardHandler
	accountHandler   *handler.AccountHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cartHandler:      params.CartHandler,
		checkoutHandler:  params.CheckoutHandler,
		orderHandler:     params.OrderHandler,
		catalogHandler:   params.CatalogHandler,
		dashboardHandler: params.DashboardHandler,
		accountHandler:   params.AccountHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public storefront routes
	e.GET("/products", r.catalogHandler.ListProducts)
	e.GET("/products/:id", r.catalogHandler.GetProduct)

	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PUT("/items/:id", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem)
	}

	e.POST("/checkout", r.checkoutHandler.Checkout)

	// Order confirmation routes shared by customer and admin views
	e.GET("/orders/:id", r.orderHandler.GetOrder)
	e.GET("/orders/:id/qr", r.orderHandler.OrderQR)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/customer", r.accountHandler.RegisterCustomer)
		authGroup.POST("/register/supplier", r.accountHandler.RegisterSupplier)
		authGroup.POST("/supplier/login", r.accountHandler.SupplierLogin)
		authGroup.POST("/supplier/logout", r.accountHandler.SupplierLogout)
	}

	// Admin routes for the back-office views
	adminGroup := e.Group("/admin")
	{
		adminGroup.GET("/dashboard", r.dashboardHandler.DashboardStats)
		adminGroup.GET("/orders", r.orderHandler.ListOrders)
		adminGroup.GET("/orders/recent", r.dashboardHandler.RecentOrders)
		adminGroup.PUT("/orders/:id/status", r.orderHandler.SetStatus)
		adminGroup.PUT("/orders/:id/supplier", r.orderHandler.AssignSupplier)
		adminGroup.GET("/customers", r.dashboardHandler.CustomerSummaries)
		adminGroup.GET("/suppliers", r.accountHandler.ListSuppliers)
		adminGroup.POST("/products", r.catalogHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.catalogHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.catalogHandler.DeleteProduct)
	}

	// Supplier routes that require an authenticated session
	supplierGroup := e.Group("/supplier")
	supplierGroup.Use(r.authMiddleware.Authenticate)
	{
		supplierGroup.GET("/me", r.accountHandler.CurrentSupplier)
		supplierGroup.GET("/orders", r.dashboardHandler.SupplierQueue)
		supplierGroup.PUT("/orders/:id/status", r.orderHandler.SupplierSetStatus)
	}
}
