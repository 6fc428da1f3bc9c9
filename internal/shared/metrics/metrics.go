package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hrm"

type Metrics struct {
	registry         *prometheus.Registry
	httpReqCnt       *prometheus.CounterVec
	httpDur          *prometheus.HistogramVec
	httpInfl         *prometheus.GaugeVec
	leaveTransitions *prometheus.CounterVec
	outboxPublished  *prometheus.CounterVec
}

func New() *Metrics {
	r := prometheus.NewRegistry()
	r.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	r.MustRegister(collectors.NewGoCollector())

	httpReqCnt := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total"}, []string{"method", "route", "status"})
	httpDur := prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: namespace, Name: "http_request_duration_seconds", Buckets: prometheus.DefBuckets}, []string{"method", "route", "status"})
	httpInfl := prometheus.NewGaugeVec(prometheus.GaugeOpts{Namespace: namespace, Name: "http_requests_inflight"}, []string{"route"})
	r.MustRegister(httpReqCnt, httpDur, httpInfl)

	leaveTransitions := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "leave_transitions_total"}, []string{"action", "result"})
	outboxPublished := prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: "outbox_events_total"}, []string{"event_type", "result"})
	r.MustRegister(leaveTransitions, outboxPublished)

	return &Metrics{
		registry:         r,
		httpReqCnt:       httpReqCnt,
		httpDur:          httpDur,
		httpInfl:         httpInfl,
		leaveTransitions: leaveTransitions,
		outboxPublished:  outboxPublished,
	}
}

// LeaveTransition records one transition attempt. result is "ok" or the error code.
func (m *Metrics) LeaveTransition(action, result string) {
	if m == nil {
		return
	}
	m.leaveTransitions.WithLabelValues(action, result).Inc()
}

func (m *Metrics) OutboxEvent(eventType, result string) {
	if m == nil {
		return
	}
	m.outboxPublished.WithLabelValues(eventType, result).Inc()
}

func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpInfl.WithLabelValues(route).Inc()
		start := time.Now()
		c.Next()
		status := strconv.Itoa(c.Writer.Status())
		m.httpReqCnt.WithLabelValues(c.Request.Method, route, status).Inc()
		m.httpDur.WithLabelValues(c.Request.Method, route, status).Observe(time.Since(start).Seconds())
		m.httpInfl.WithLabelValues(route).Dec()
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
