package metrics

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	walog "go.mau.fi/whatsmeow/util/log"

	"github.com/fardannozami/sparks/internal/domain"
)

// Telemetry counts app events in prometheus.
type Telemetry struct {
	events *prometheus.CounterVec
	streak prometheus.Gauge
	reg    *prometheus.Registry
	log    walog.Logger
}

func NewTelemetry(logger walog.Logger) *Telemetry {
	if logger == nil {
		logger = walog.Noop
	}
	t := &Telemetry{
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sparks_events_total",
				Help: "Total number of app events by type",
			},
			[]string{"type"},
		),
		streak: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "sparks_current_streak",
				Help: "Current streak in days",
			},
		),
		reg: prometheus.NewRegistry(),
		log: logger,
	}
	t.reg.MustRegister(t.events)
	t.reg.MustRegister(t.streak)
	return t
}

func (t *Telemetry) Registry() *prometheus.Registry {
	return t.reg
}

func (t *Telemetry) Record(ctx context.Context, event domain.TelemetryEvent) {
	t.events.WithLabelValues(string(event.Type)).Inc()

	if v, ok := event.Metadata["streak"]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			t.streak.Set(float64(n))
		}
	}
	t.log.Debugf("Event %s %v", event.Type, event.Metadata)
}

// Serve exposes /metrics on addr until ctx is done.
func (t *Telemetry) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(t.reg, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	t.log.Infof("Serving metrics on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
