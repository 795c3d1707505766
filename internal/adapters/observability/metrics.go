package observability

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "geo", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "geo", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	HTTPRateLimited = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "geo", Name: "http_rate_limited_total", Help: "Requests rejected by the rate limiter."},
		[]string{"route"},
	)
	SeedPlaces = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "geo", Name: "seed_places_total", Help: "Fixture places seeded."},
		[]string{"kind", "result"}, // result: ok|not_found|error
	)
	SeedTranslations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "geo", Name: "seed_translations_total", Help: "Fixture translations persisted."},
		[]string{"kind", "lang"},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "geo", Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
		[]string{"cache", "event"}, // event: hit|miss|set|del
	)
)

// Serve exposes the default registry on addr in the background. An empty
// addr disables it.
func Serve(addr string) {
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

var collectors = []prometheus.Collector{HTTPRequests, HTTPLatency, HTTPRateLimited, SeedPlaces, SeedTranslations, CacheEvents}

func init() {
	// promhttp.Handler serves the default registry.
	prometheus.MustRegister(collectors...)
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors...)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveRateLimited(route string) {
	HTTPRateLimited.WithLabelValues(route).Inc()
}

func ObserveSeed(kind, result string) { // result: ok|not_found|error
	SeedPlaces.WithLabelValues(kind, result).Inc()
}

func ObserveSeedTranslation(kind, lang string) {
	SeedTranslations.WithLabelValues(kind, lang).Inc()
}

func ObserveCache(cache, event string) { // event: hit|miss|set|del
	CacheEvents.WithLabelValues(cache, event).Inc()
}

func LabelErr(err error) string {
	if err == nil {
		return "none"
	}
	return fmt.Sprintf("%T", err)
}
