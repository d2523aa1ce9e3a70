// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"salepoint/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CustomerHandler  *handler.CustomerHandler
	InventoryHandler *handler.InventoryHandler
	SalesHandler     *handler.SalesHandler
	VoucherHandler   *handler.VoucherHandler
	SessionHandler   *handler.SessionHandler
	WorkspaceHandler *handler.WorkspaceHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	customerHandler  *handler.CustomerHandler
	inventoryHandler *handler.InventoryHandler
	salesHandler     *handler.SalesHandler
	voucherHandler   *handler.VoucherHandler
	sessionHandler   *handler.SessionHandler
	workspaceHandler *handler.WorkspaceHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		customerHandler:  params.CustomerHandler,
		inventoryHandler: params.InventoryHandler,
		salesHandler:     params.SalesHandler,
		voucherHandler:   params.VoucherHandler,
		sessionHandler:   params.SessionHandler,
		workspaceHandler: params.WorkspaceHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	sessionGroup := e.Group("/session")
	{
		sessionGroup.POST("/login", r.sessionHandler.Login)
		sessionGroup.POST("/logout", r.sessionHandler.Logout)
		sessionGroup.GET("/current", r.sessionHandler.Current)
		sessionGroup.GET("/check", r.sessionHandler.Check)
	}

	workspaceGroup := e.Group("/workspace")
	{
		workspaceGroup.GET("/businesses", r.workspaceHandler.Businesses)
		workspaceGroup.GET("/selected", r.workspaceHandler.Selected)
		workspaceGroup.PUT("/select/:id", r.workspaceHandler.Select)
	}

	customerGroup := e.Group("/customers")
	{
		customerGroup.GET("", r.customerHandler.List)
		customerGroup.POST("", r.customerHandler.Create)
		customerGroup.POST("/search", r.customerHandler.Search)
		customerGroup.GET("/:id", r.customerHandler.Get)
		customerGroup.PATCH("/:id", r.customerHandler.Update)
		customerGroup.DELETE("/:id", r.customerHandler.Delete)
		customerGroup.POST("/:id/debt", r.customerHandler.AdjustDebt)
	}

	inventoryGroup := e.Group("/inventory")
	{
		inventoryGroup.GET("", r.inventoryHandler.List)
		inventoryGroup.POST("", r.inventoryHandler.Create)
		inventoryGroup.POST("/search", r.inventoryHandler.Search)
		inventoryGroup.GET("/low-stock", r.inventoryHandler.LowStock)
		inventoryGroup.GET("/:id", r.inventoryHandler.Get)
		inventoryGroup.PATCH("/:id", r.inventoryHandler.Update)
		inventoryGroup.DELETE("/:id", r.inventoryHandler.Delete)
		inventoryGroup.POST("/:id/stock", r.inventoryHandler.AdjustStock)
	}

	salesGroup := e.Group("/sales")
	{
		salesGroup.GET("", r.salesHandler.List)
		salesGroup.POST("", r.salesHandler.Create)
		salesGroup.GET("/:id", r.salesHandler.Get)
		salesGroup.DELETE("/:id", r.salesHandler.Delete)
	}

	voucherGroup := e.Group("/vouchers")
	{
		voucherGroup.GET("", r.voucherHandler.List)
		voucherGroup.POST("", r.voucherHandler.Create)
		voucherGroup.GET("/expired", r.voucherHandler.Expired)
		voucherGroup.GET("/:id", r.voucherHandler.Get)
		voucherGroup.DELETE("/:id", r.voucherHandler.Delete)
		voucherGroup.POST("/:id/use", r.voucherHandler.Use)
		voucherGroup.POST("/:id/cancel", r.voucherHandler.Cancel)
		voucherGroup.GET("/:id/qr", r.voucherHandler.QR)
	}
}
