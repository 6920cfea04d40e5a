package impl

import (
	"context"
	"log/slog"
	"sort"

	deliverycontext "farmlease/internal/delivery/context"
	"farmlease/internal/domain/access"
	"farmlease/internal/domain/entity"
	"farmlease/internal/domain/repository"
	"farmlease/internal/errors"
	"farmlease/internal/usecase"

	"github.com/paulmach/orb/geojson"
	"go.uber.org/fx"
)

const seriesDateLayout = "2006-01-02"

type dashboardService struct {
	plotRepo repository.PlotRepository
	logger   *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	PlotRepo repository.PlotRepository
	Logger   *slog.Logger
}

// NewDashboardService creates a new DashboardUsecase.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		plotRepo: params.PlotRepo,
		logger:   params.Logger,
	}
}

// GetDashboard aggregates the plots visible to the caller, using the same
// scoping filter as the plot listing.
func (srv *dashboardService) GetDashboard(ctx context.Context, caller *access.Caller) (*usecase.Dashboard, error) {
	filter, err := access.ListPlots(caller)
	if err != nil {
		return nil, err
	}

	plots, err := srv.plotRepo.List(ctx, filter, repository.PlotListOptions{
		WithCrops:  true,
		WithYields: true,
		WithLeases: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list plots for dashboard")
	}

	dashboard := buildDashboard(plots)
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Dashboard built",
		slog.String("scope", filter.Scope.String()),
		slog.Int("plots", dashboard.Totals.Plots),
	)

	return dashboard, nil
}

func buildDashboard(plots []*entity.Plot) *usecase.Dashboard {
	dashboard := &usecase.Dashboard{
		YieldSeries: []usecase.YieldPoint{},
		Plots:       make([]usecase.PlotSummary, 0, len(plots)),
		Map:         geojson.NewFeatureCollection(),
	}
	series := make(map[string]*usecase.YieldPoint)

	for _, plot := range plots {
		summary := usecase.PlotSummary{
			ID:           plot.ID,
			Name:         plot.Name,
			SizeM2:       plot.SizeM2,
			CropsCount:   len(plot.Crops),
			TotalYieldKg: plot.TotalYieldKg(),
			LeaseCount:   len(plot.Leases),
		}
		dashboard.Plots = append(dashboard.Plots, summary)

		dashboard.Totals.Plots++
		dashboard.Totals.Crops += summary.CropsCount
		dashboard.Totals.YieldKg += summary.TotalYieldKg
		if plot.SizeM2 != nil {
			dashboard.Totals.TotalAreaM2 += *plot.SizeM2
		}

		for _, crop := range plot.Crops {
			for _, y := range crop.Yields {
				key := y.Date.UTC().Format(seriesDateLayout)
				point, ok := series[key]
				if !ok {
					point = &usecase.YieldPoint{Date: key}
					series[key] = point
				}
				point.QuantityKg += y.QuantityKg
				if y.RevenueNpr != nil {
					point.RevenueNpr += *y.RevenueNpr
					dashboard.Totals.RevenueNpr += *y.RevenueNpr
				}
			}
		}

		if plot.Location != nil {
			feature := geojson.NewFeature(*plot.Location)
			feature.Properties["id"] = plot.ID.String()
			feature.Properties["name"] = plot.Name
			if plot.SizeM2 != nil {
				feature.Properties["sizeM2"] = *plot.SizeM2
			}
			feature.Properties["cropsCount"] = summary.CropsCount
			feature.Properties["totalYieldKg"] = summary.TotalYieldKg
			dashboard.Map.Append(feature)
		}
	}

	for _, point := range series {
		dashboard.YieldSeries = append(dashboard.YieldSeries, *point)
	}
	// yyyy-MM-dd sorts chronologically as a string.
	sort.Slice(dashboard.YieldSeries, func(i, j int) bool {
		return dashboard.YieldSeries[i].Date < dashboard.YieldSeries[j].Date
	})

	return dashboard
}
