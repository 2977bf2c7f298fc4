package handlers

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Vipul160305/placetrack/internal/http/metrics"
)

type MetricsHandler struct {
	inner http.Handler
}

func NewMetricsHandler(collector *metrics.Collector) *MetricsHandler {
	return &MetricsHandler{inner: promhttp.HandlerFor(collector.Registry(), promhttp.HandlerOpts{})}
}

func (h *MetricsHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.inner.ServeHTTP(w, r)
}
