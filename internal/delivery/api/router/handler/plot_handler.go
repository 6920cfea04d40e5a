package handler

import (
	"log/slog"
	"net/http"

	"farmlease/internal/delivery/api/middleware"
	"farmlease/internal/delivery/api/response"
	"farmlease/internal/errors"
	"farmlease/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PlotHandlerParams holds dependencies for PlotHandler, injected by Fx.
type PlotHandlerParams struct {
	fx.In

	PlotUC  usecase.PlotUsecase
	LeaseUC usecase.LeaseUsecase
	Logger  *slog.Logger
}

// PlotHandler serves plots and the leases granted on them.
type PlotHandler struct {
	plotUC  usecase.PlotUsecase
	leaseUC usecase.LeaseUsecase
	logger  *slog.Logger
}

// NewPlotHandler is the constructor for PlotHandler
func NewPlotHandler(params PlotHandlerParams) *PlotHandler {
	return &PlotHandler{
		plotUC:  params.PlotUC,
		leaseUC: params.LeaseUC,
		logger:  params.Logger,
	}
}

// ListPlots returns the plots visible to the caller.
func (h *PlotHandler) ListPlots(c echo.Context) error {
	plots, err := h.plotUC.ListPlots(c.Request().Context(), middleware.CallerFrom(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlotResponses(plots))
}

// CreatePlot creates a plot owned by the caller.
func (h *PlotHandler) CreatePlot(c echo.Context) error {
	caller := middleware.CallerFrom(c)

	var input usecase.CreatePlotInput
	if err := bindCallerBody(c, caller, &input); err != nil {
		return err
	}

	plot, err := h.plotUC.CreatePlot(c.Request().Context(), caller, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPlotResponse(plot))
}

// GetPlot returns one plot.
func (h *PlotHandler) GetPlot(c echo.Context) error {
	caller := middleware.CallerFrom(c)

	plotID, err := plotIDParam(c, caller)
	if err != nil {
		return err
	}

	plot, err := h.plotUC.GetPlot(c.Request().Context(), caller, plotID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlotResponse(plot))
}

// GetPlotQRCode returns the plot's signage QR code as a PNG.
func (h *PlotHandler) GetPlotQRCode(c echo.Context) error {
	caller := middleware.CallerFrom(c)

	plotID, err := plotIDParam(c, caller)
	if err != nil {
		return err
	}

	qr, err := h.plotUC.GetPlotQRCode(c.Request().Context(), caller, plotID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.PNG(c, qr.PNG)
}

// ScanPlotQR resolves a scanned signage QR code to its plot.
func (h *PlotHandler) ScanPlotQR(c echo.Context) error {
	caller := middleware.CallerFrom(c)

	var input usecase.ScanPlotQRInput
	if err := bindCallerBody(c, caller, &input); err != nil {
		return err
	}

	plot, err := h.plotUC.ScanPlotQR(c.Request().Context(), caller, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPlotResponse(plot))
}

// GrantLease leases the plot to a farmer.
func (h *PlotHandler) GrantLease(c echo.Context) error {
	caller := middleware.CallerFrom(c)

	plotID, err := plotIDParam(c, caller)
	if err != nil {
		return err
	}

	var input usecase.GrantLeaseInput
	if err := bindCallerBody(c, caller, &input); err != nil {
		return err
	}
	input.PlotID = plotID

	lease, err := h.leaseUC.GrantLease(c.Request().Context(), caller, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toLeaseResponse(lease))
}
