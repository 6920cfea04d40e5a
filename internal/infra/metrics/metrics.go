// Package metrics exposes Prometheus collectors for the HTTP surface and farm events.
package metrics

import (
	"context"
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"farmlease/config"
	"farmlease/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultPath = "/metrics"

// Metrics owns a private registry so tests and multiple apps in one process
// never collide on the global one.
type Metrics struct {
	serviceName string
	path        string
	enabled     bool
	registry    *prometheus.Registry

	requests       *prometheus.CounterVec
	duration       *prometheus.HistogramVec
	statusCategory *prometheus.CounterVec
	farmEvents     *prometheus.CounterVec
	dbQueries      *prometheus.HistogramVec
}

// New builds the collectors from configuration.
func New(cfg *config.Config) *Metrics {
	m := &Metrics{
		serviceName: cfg.Env.ServiceName,
		path:        defaultPath,
		registry:    prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "path", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path", "status"},
		),
		statusCategory: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_status_category_total",
				Help: "Total number of responses by status category (2xx, 4xx, 5xx)",
			},
			[]string{"service", "category", "method", "path"},
		),
		farmEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "farm_events_published_total",
				Help: "Farm events handed to the publisher, by type and outcome",
			},
			[]string{"service", "type", "outcome"},
		),
		dbQueries: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "db_query_duration_seconds",
				Help:    "Duration of database statements by kind and outcome",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"service", "statement", "outcome"},
		),
	}

	if cfg.Metrics != nil {
		m.enabled = cfg.Metrics.Enabled
		if cfg.Metrics.Path != "" {
			m.path = cfg.Metrics.Path
		}
	}

	m.registry.MustRegister(
		m.requests,
		m.duration,
		m.statusCategory,
		m.farmEvents,
		m.dbQueries,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Enabled reports whether the scrape endpoint should be mounted.
func (m *Metrics) Enabled() bool {
	return m.enabled
}

// Path is where the scrape endpoint is mounted.
func (m *Metrics) Path() string {
	return m.path
}

// Handler serves the private registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records request count, latency and status category per route.
// Errors are rendered before the status is read so failed requests carry
// their real code.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Path() == m.path {
				return next(c)
			}

			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			method := c.Request().Method
			path := c.Path()
			statusStr := strconv.Itoa(status)

			m.requests.WithLabelValues(m.serviceName, method, path, statusStr).Inc()
			m.duration.WithLabelValues(m.serviceName, method, path, statusStr).Observe(time.Since(start).Seconds())
			if category := statusCategory(status); category != "" {
				m.statusCategory.WithLabelValues(m.serviceName, category, method, path).Inc()
			}

			return nil
		}
	}
}

func statusCategory(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "2xx"
	case status >= 400 && status < 500:
		return "4xx"
	case status >= 500 && status < 600:
		return "5xx"
	default:
		return ""
	}
}

// ObserveQuery records one database statement.
func (m *Metrics) ObserveQuery(statement string, elapsed time.Duration, failed bool) {
	outcome := "ok"
	if failed {
		outcome = "error"
	}
	m.dbQueries.WithLabelValues(m.serviceName, statement, outcome).Observe(elapsed.Seconds())
}

// RegisterDB exports connection pool statistics for db.
func (m *Metrics) RegisterDB(db *sql.DB, dbName string) error {
	return m.registry.Register(collectors.NewDBStatsCollector(db, dbName))
}

// instrumentedPublisher counts publish outcomes around another publisher.
type instrumentedPublisher struct {
	next    service.EventPublisher
	metrics *Metrics
}

// InstrumentPublisher wraps publisher so every publish is counted.
func InstrumentPublisher(publisher service.EventPublisher, m *Metrics) service.EventPublisher {
	return &instrumentedPublisher{next: publisher, metrics: m}
}

func (p *instrumentedPublisher) PublishFarmEvent(ctx context.Context, event *service.FarmEvent) error {
	err := p.next.PublishFarmEvent(ctx, event)

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	p.metrics.farmEvents.WithLabelValues(p.metrics.serviceName, string(event.Type), outcome).Inc()

	return err
}

func (p *instrumentedPublisher) Close() error {
	return p.next.Close()
}
