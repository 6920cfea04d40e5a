package handler

import (
	"net/http"

	"farmlease/internal/delivery/api/middleware"
	"farmlease/internal/delivery/api/response"
	"farmlease/internal/errors"
	"farmlease/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CropHandlerParams holds dependencies for CropHandler, injected by Fx.
type CropHandlerParams struct {
	fx.In

	CropUC  usecase.CropUsecase
	YieldUC usecase.YieldUsecase
}

// CropHandler serves crops and their yields.
type CropHandler struct {
	cropUC  usecase.CropUsecase
	yieldUC usecase.YieldUsecase
}

// NewCropHandler is the constructor for CropHandler
func NewCropHandler(params CropHandlerParams) *CropHandler {
	return &CropHandler{
		cropUC:  params.CropUC,
		yieldUC: params.YieldUC,
	}
}

// CreateCrop adds a crop to a plot.
func (h *CropHandler) CreateCrop(c echo.Context) error {
	caller := middleware.CallerFrom(c)

	var input usecase.CreateCropInput
	if err := bindCallerBody(c, caller, &input); err != nil {
		return err
	}

	crop, err := h.cropUC.CreateCrop(c.Request().Context(), caller, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toCropResponse(crop))
}

// CreateYield records a harvest on a crop.
func (h *CropHandler) CreateYield(c echo.Context) error {
	caller := middleware.CallerFrom(c)

	var input usecase.CreateYieldInput
	if err := bindCallerBody(c, caller, &input); err != nil {
		return err
	}

	y, err := h.yieldUC.CreateYield(c.Request().Context(), caller, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toYieldResponse(y))
}
