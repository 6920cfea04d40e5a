package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"farmlease/config"
	"farmlease/internal/delivery/api/middleware"
	"farmlease/internal/delivery/api/router"
	"farmlease/internal/delivery/api/router/handler"
	deliverycontext "farmlease/internal/delivery/context"
	"farmlease/internal/domain/access"
	"farmlease/internal/domain/entity"
	domainerrors "farmlease/internal/domain/errors"
	"farmlease/internal/domain/service"
	"farmlease/internal/errors"
	"farmlease/internal/infra/metrics"
	mockSvc "farmlease/internal/mocks/service"
	mockUC "farmlease/internal/mocks/usecase"
	"farmlease/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiFixtures struct {
	tokens    *mockSvc.MockTokenService
	users     *mockUC.MockUserUsecase
	plots     *mockUC.MockPlotUsecase
	leases    *mockUC.MockLeaseUsecase
	crops     *mockUC.MockCropUsecase
	yields    *mockUC.MockYieldUsecase
	dashboard *mockUC.MockDashboardUsecase
	echo      *echo.Echo
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

var (
	farmerID    = uuid.New()
	farmerToken = "farmer-token"
)

func newAPIFixtures(t *testing.T) *apiFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Metrics: &config.MetricsConfig{Enabled: true}}
	cfg.Env.ServiceName = "farmlease-test"

	f := &apiFixtures{
		tokens:    mockSvc.NewMockTokenService(t),
		users:     mockUC.NewMockUserUsecase(t),
		plots:     mockUC.NewMockPlotUsecase(t),
		leases:    mockUC.NewMockLeaseUsecase(t),
		crops:     mockUC.NewMockCropUsecase(t),
		yields:    mockUC.NewMockYieldUsecase(t),
		dashboard: mockUC.NewMockDashboardUsecase(t),
	}
	m := metrics.New(cfg)
	f.echo = NewEcho(cfg, logger, m, router.RouterParams{
		AuthHandler:      handler.NewAuthHandler(handler.AuthHandlerParams{UserUC: f.users, Logger: logger}),
		PlotHandler:      handler.NewPlotHandler(handler.PlotHandlerParams{PlotUC: f.plots, LeaseUC: f.leases, Logger: logger}),
		CropHandler:      handler.NewCropHandler(handler.CropHandlerParams{CropUC: f.crops, YieldUC: f.yields}),
		DashboardHandler: handler.NewDashboardHandler(f.dashboard),
		AuthMiddleware:   middleware.NewAuthMiddleware(f.tokens),
		Metrics:          m,
	})

	return f
}

func (f *apiFixtures) asFarmer() {
	f.tokens.EXPECT().ValidateToken(farmerToken).Return(&service.Claims{
		UserID: farmerID,
		Role:   entity.RoleFarmer.String(),
		Type:   service.TokenTypeAccess,
	}, nil)
}

func (f *apiFixtures) do(t *testing.T, method, path, token, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func isFarmer(c *access.Caller) bool {
	return c != nil && c.UserID == farmerID && c.Role == entity.RoleFarmer
}

func TestAPI_Health(t *testing.T) {
	f := newAPIFixtures(t)

	rec, env := f.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.Equal(t, rec.Header().Get(deliverycontext.HeaderXRequestID), env.Meta.RequestID)
}

func TestAPI_ListPlots(t *testing.T) {
	t.Run("anonymous request reaches the usecase without a caller", func(t *testing.T) {
		f := newAPIFixtures(t)
		f.plots.EXPECT().ListPlots(mock.Anything, (*access.Caller)(nil)).Return(nil, domainerrors.ErrUnauthenticated)

		rec, env := f.do(t, http.MethodGet, "/plots", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "UNAUTHENTICATED", env.Error.Code)
	})

	t.Run("invalid token is rejected before the usecase", func(t *testing.T) {
		f := newAPIFixtures(t)
		f.tokens.EXPECT().ValidateToken("junk").Return(nil, errors.New("bad signature"))

		rec, _ := f.do(t, http.MethodGet, "/plots", "junk", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("refresh token cannot authenticate", func(t *testing.T) {
		f := newAPIFixtures(t)
		f.tokens.EXPECT().ValidateToken("refresh").Return(&service.Claims{UserID: farmerID, Type: service.TokenTypeRefresh}, nil)

		rec, _ := f.do(t, http.MethodGet, "/plots", "refresh", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("caller comes from the token", func(t *testing.T) {
		f := newAPIFixtures(t)
		f.asFarmer()
		plotID := uuid.New()
		f.plots.EXPECT().ListPlots(mock.Anything, mock.MatchedBy(isFarmer)).Return([]*entity.Plot{{
			ID:     plotID,
			Name:   "Terrace",
			Leases: []*entity.Lease{{PlotID: plotID, FarmerID: farmerID}},
		}}, nil)

		rec, env := f.do(t, http.MethodGet, "/plots", farmerToken, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var plots []handler.PlotResponse
		require.NoError(t, json.Unmarshal(env.Data, &plots))
		require.Len(t, plots, 1)
		assert.Equal(t, plotID, plots[0].ID)
		assert.Equal(t, farmerID, plots[0].Leases[0].FarmerID)
	})
}

func TestAPI_GetPlot(t *testing.T) {
	t.Run("forbidden hides details", func(t *testing.T) {
		f := newAPIFixtures(t)
		f.asFarmer()
		plotID := uuid.New()
		f.plots.EXPECT().GetPlot(mock.Anything, mock.MatchedBy(isFarmer), plotID).
			Return(nil, domainerrors.ErrForbidden.WrapMessage("plot is not visible to caller"))

		rec, env := f.do(t, http.MethodGet, "/plots/"+plotID.String(), farmerToken, "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "FORBIDDEN", env.Error.Code)
		assert.Nil(t, env.Error.Details)
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		f := newAPIFixtures(t)
		f.asFarmer()

		rec, env := f.do(t, http.MethodGet, "/plots/not-a-uuid", farmerToken, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "PLOT_NOT_FOUND", env.Error.Code)
	})

	t.Run("malformed id without caller is unauthenticated", func(t *testing.T) {
		f := newAPIFixtures(t)

		rec, _ := f.do(t, http.MethodGet, "/plots/not-a-uuid", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("qr code is a png", func(t *testing.T) {
		f := newAPIFixtures(t)
		f.asFarmer()
		plotID := uuid.New()
		f.plots.EXPECT().GetPlotQRCode(mock.Anything, mock.MatchedBy(isFarmer), plotID).
			Return(&usecase.PlotQRCode{PlotID: plotID, PNG: []byte("\x89PNG")}, nil)

		rec, _ := f.do(t, http.MethodGet, "/plots/"+plotID.String()+"/qrcode", farmerToken, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "\x89PNG", rec.Body.String())
	})
}

func TestAPI_GrantLease(t *testing.T) {
	f := newAPIFixtures(t)
	f.asFarmer()
	plotID := uuid.New()
	grantee := uuid.New()
	f.leases.EXPECT().GrantLease(mock.Anything, mock.MatchedBy(isFarmer), &usecase.GrantLeaseInput{PlotID: plotID, FarmerID: grantee}).
		Return(nil, domainerrors.ErrForbidden)

	rec, _ := f.do(t, http.MethodPost, "/plots/"+plotID.String()+"/leases", farmerToken, `{"farmerId":"`+grantee.String()+`"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAPI_CreateYield(t *testing.T) {
	t.Run("broken body without caller is unauthenticated", func(t *testing.T) {
		f := newAPIFixtures(t)

		rec, _ := f.do(t, http.MethodPost, "/yields", "", `{"cropId":`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("validation details are returned", func(t *testing.T) {
		f := newAPIFixtures(t)
		f.asFarmer()
		f.yields.EXPECT().CreateYield(mock.Anything, mock.MatchedBy(isFarmer), mock.AnythingOfType("*usecase.CreateYieldInput")).
			Return(nil, domainerrors.ErrValidationFailed.WithDetails("quantityKg must be at least 0"))

		rec, env := f.do(t, http.MethodPost, "/yields", farmerToken, `{"cropId":"`+uuid.NewString()+`","quantityKg":-1}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Equal(t, "quantityKg must be at least 0", env.Error.Details)
	})

	t.Run("created", func(t *testing.T) {
		f := newAPIFixtures(t)
		f.asFarmer()
		cropID := uuid.New()
		f.yields.EXPECT().CreateYield(mock.Anything, mock.MatchedBy(isFarmer), mock.MatchedBy(func(in *usecase.CreateYieldInput) bool {
			return in.CropID == cropID && in.QuantityKg != nil && *in.QuantityKg == 12.5
		})).Return(&entity.Yield{ID: uuid.New(), CropID: cropID, QuantityKg: 12.5}, nil)

		rec, env := f.do(t, http.MethodPost, "/yields", farmerToken, `{"cropId":"`+cropID.String()+`","quantityKg":12.5}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var y handler.YieldResponse
		require.NoError(t, json.Unmarshal(env.Data, &y))
		assert.Equal(t, cropID, y.CropID)
	})
}

func TestAPI_Signup(t *testing.T) {
	f := newAPIFixtures(t)
	userID := uuid.New()
	f.users.EXPECT().RegisterUser(mock.Anything, &usecase.RegisterUserInput{
		Name:     "Sita",
		Email:    "sita@example.com",
		Password: "secret123",
		Role:     entity.RoleLandowner,
	}).Return(&usecase.RegisterOutput{User: &entity.User{ID: userID, Email: "sita@example.com", Role: entity.RoleLandowner}}, nil)

	rec, env := f.do(t, http.MethodPost, "/auth/signup", "",
		`{"name":"Sita","email":"sita@example.com","password":"secret123","role":"landowner"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var user handler.UserResponse
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, entity.RoleLandowner, user.Role)
}

func TestAPI_DuplicateSignupIsConflict(t *testing.T) {
	f := newAPIFixtures(t)
	f.users.EXPECT().RegisterUser(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "failed to execute user registration transaction"))

	rec, env := f.do(t, http.MethodPost, "/auth/signup", "", `{"name":"Sita","email":"sita@example.com","password":"secret123"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "USER_ALREADY_EXISTS", env.Error.Code)
}

func TestAPI_UnhandledErrorIsGeneric(t *testing.T) {
	f := newAPIFixtures(t)
	f.asFarmer()
	f.dashboard.EXPECT().GetDashboard(mock.Anything, mock.MatchedBy(isFarmer)).Return(nil, errors.New("connection reset"))

	rec, env := f.do(t, http.MethodGet, "/dashboard", farmerToken, "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestAPI_Metrics(t *testing.T) {
	f := newAPIFixtures(t)
	f.do(t, http.MethodGet, "/health", "", "")

	rec, _ := f.do(t, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
}

func TestAPI_UnknownRouteUsesStableCode(t *testing.T) {
	f := newAPIFixtures(t)

	rec, env := f.do(t, http.MethodGet, "/fields", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ROUTE_NOT_FOUND", env.Error.Code)
	assert.NotEmpty(t, env.Meta.RequestID)
}
