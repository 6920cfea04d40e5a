package handler

import (
	"net/http"

	"farmlease/internal/delivery/api/middleware"
	"farmlease/internal/delivery/api/response"
	"farmlease/internal/errors"
	"farmlease/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the caller-scoped overview.
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(dashboardUC usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC}
}

// GetDashboard returns totals, the yield series, plot summaries and the plot map.
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	dashboard, err := h.dashboardUC.GetDashboard(c.Request().Context(), middleware.CallerFrom(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dashboard)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
