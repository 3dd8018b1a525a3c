package observability

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "luxurybot", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "luxurybot", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	RemoteOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "luxurybot", Name: "remote_ops_total", Help: "Remote store operations."},
		[]string{"backend", "op", "outcome"}, // outcome: ok|error
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "luxurybot", Name: "cache_events_total", Help: "Snapshot cache hits/misses/sets/dels."},
		[]string{"cache", "event"}, // event: hit|miss|set|del|corrupt
	)
	Generations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "luxurybot", Name: "generations_total", Help: "Simulated AI generations."},
		[]string{"section"},
	)
)

func Serve() {
	addr := os.Getenv("METRICS_ADDR")
	if addr == "" {
		return // disabled
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, RemoteOps, CacheEvents, Generations)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveRemote(backend, op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	RemoteOps.WithLabelValues(backend, op, outcome).Inc()
}

func ObserveCache(cache, event string) { // event: hit|miss|set|del|corrupt
	CacheEvents.WithLabelValues(cache, event).Inc()
}

func ObserveGeneration(section string) {
	Generations.WithLabelValues(section).Inc()
}

func LabelErr(err error) string {
	if err == nil {
		return "none"
	}
	return fmt.Sprintf("%T", err)
}
