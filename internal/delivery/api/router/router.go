// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"farmlease/internal/delivery/api/middleware"
	"farmlease/internal/delivery/api/router/handler"
	"farmlease/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	PlotHandler      *handler.PlotHandler
	CropHandler      *handler.CropHandler
	DashboardHandler *handler.DashboardHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Metrics          *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	plotHandler      *handler.PlotHandler
	cropHandler      *handler.CropHandler
	dashboardHandler *handler.DashboardHandler
	authMiddleware   *middleware.AuthMiddleware
	metrics          *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		plotHandler:      params.PlotHandler,
		cropHandler:      params.CropHandler,
		dashboardHandler: params.DashboardHandler,
		authMiddleware:   params.AuthMiddleware,
		metrics:          params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil && r.metrics.Enabled() {
		e.GET(r.metrics.Path(), echo.WrapHandler(r.metrics.Handler()))
	}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// Anonymous requests pass Identify with no caller; the usecases reject them
	// after the same checks every caller goes through.
	farm := e.Group("", r.authMiddleware.Identify)
	{
		farm.GET("/plots", r.plotHandler.ListPlots)
		farm.POST("/plots", r.plotHandler.CreatePlot)
		farm.POST("/plots/scan", r.plotHandler.ScanPlotQR)
		farm.GET("/plots/:id", r.plotHandler.GetPlot)
		farm.GET("/plots/:id/qrcode", r.plotHandler.GetPlotQRCode)
		farm.POST("/plots/:id/leases", r.plotHandler.GrantLease)

		farm.POST("/crops", r.cropHandler.CreateCrop)
		farm.POST("/yields", r.cropHandler.CreateYield)

		farm.GET("/dashboard", r.dashboardHandler.GetDashboard)
	}
}
