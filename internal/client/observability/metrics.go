// Package observability содержит метрики Prometheus и трассировку клиента.
package observability

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/rs/zerolog"
)

const (
	namespace = "shop"
	// PushJob - job, под которым метрики уходят в Pushgateway
	PushJob = "shop_client"
)

// Metrics - коллекторы клиента, зарегистрированные в одном реестре
type Metrics struct {
	gatherer        prometheus.Gatherer
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	inFlight        prometheus.Gauge
	favoritesTotal  prometheus.Gauge
}

// NewMetrics создает коллекторы и регистрирует их в собственном реестре
func NewMetrics() (*Metrics, error) {
	reg := prometheus.NewRegistry()
	return NewMetricsWith(reg, reg)
}

// NewMetricsWith регистрирует коллекторы в reg; gatherer отдает их в Handler
func NewMetricsWith(reg prometheus.Registerer, gatherer prometheus.Gatherer) (*Metrics, error) {
	m := &Metrics{
		gatherer: gatherer,
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "client",
				Name:      "requests_total",
				Help:      "Total number of API requests by status code and method",
			},
			[]string{"code", "method"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "client",
				Name:      "request_duration_seconds",
				Help:      "Latency of API requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		inFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "client",
				Name:      "in_flight_requests",
				Help:      "Number of API requests currently in flight",
			},
		),
		favoritesTotal: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "favorites_total",
				Help:      "Number of products in the local favorites cache",
			},
		),
	}

	for _, c := range []prometheus.Collector{m.requests, m.requestDuration, m.inFlight, m.favoritesTotal} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metric: %w", err)
		}
	}

	return m, nil
}

// RoundTripper оборачивает транспорт счетчиками запросов
func (m *Metrics) RoundTripper(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	return promhttp.InstrumentRoundTripperInFlight(m.inFlight,
		promhttp.InstrumentRoundTripperCounter(m.requests,
			promhttp.InstrumentRoundTripperDuration(m.requestDuration, next),
		),
	)
}

// FavoritesGauge - gauge с числом избранных товаров
func (m *Metrics) FavoritesGauge() prometheus.Gauge {
	return m.favoritesTotal
}

// Handler отдает метрики в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Push replaces the metrics of PushJob in the Pushgateway at url.
// A CLI invocation lives shorter than a scrape interval, so the counters
// are pushed once when the command finishes.
func (m *Metrics) Push(ctx context.Context, url string) error {
	if err := push.New(url, PushJob).Gatherer(m.gatherer).PushContext(ctx); err != nil {
		return fmt.Errorf("failed to push metrics: %w", err)
	}
	return nil
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string, logger zerolog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("serving metrics")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown metrics server: %w", err)
	}
	return nil
}
