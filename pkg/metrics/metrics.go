package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "retail"

// Collector expõe as métricas HTTP e de previsão em um registry próprio
type Collector struct {
	registry         *prometheus.Registry
	requestDuration  *prometheus.HistogramVec
	requestTotal     *prometheus.CounterVec
	forecastRuns     *prometheus.CounterVec
	forecastDuration prometheus.Histogram
	snapshotSyncs    *prometheus.CounterVec
}

// NewCollector registra os histogramas e contadores padrão
func NewCollector() (*Collector, error) {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Latência das requisições HTTP recebidas.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total de requisições HTTP recebidas.",
	}, []string{"method", "path", "status"})

	forecastRuns := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "forecast_runs_total",
		Help:      "Execuções do agregador de previsões por resultado.",
	}, []string{"outcome"})

	forecastDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "forecast_duration_seconds",
		Help:      "Duração de cada execução do agregador de previsões.",
		Buckets:   prometheus.DefBuckets,
	})

	snapshotSyncs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "forecast_snapshot_syncs_total",
		Help:      "Execuções da sincronização de snapshots de previsão por status.",
	}, []string{"status"})

	for _, c := range []prometheus.Collector{requestDuration, requestTotal, forecastRuns, forecastDuration, snapshotSyncs} {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}

	return &Collector{
		registry:         registry,
		requestDuration:  requestDuration,
		requestTotal:     requestTotal,
		forecastRuns:     forecastRuns,
		forecastDuration: forecastDuration,
		snapshotSyncs:    snapshotSyncs,
	}, nil
}

// Handler retorna o handler HTTP que expõe as métricas
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Middleware registra contagem e latência de cada requisição
func (c *Collector) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rw, r)

			status := strconv.Itoa(rw.status)
			c.requestTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
			c.requestDuration.WithLabelValues(r.Method, r.URL.Path, status).Observe(time.Since(start).Seconds())
		})
	}
}

// ObserveForecastRun registra uma execução do agregador de previsões
func (c *Collector) ObserveForecastRun(outcome string, duration time.Duration) {
	c.forecastRuns.WithLabelValues(outcome).Inc()
	c.forecastDuration.Observe(duration.Seconds())
}

// ObserveSnapshotSync registra uma execução da sincronização de snapshots
func (c *Collector) ObserveSnapshotSync(status string) {
	c.snapshotSyncs.WithLabelValues(status).Inc()
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (w *responseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
