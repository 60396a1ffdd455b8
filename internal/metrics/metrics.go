package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics структура для метрик Prometheus
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration prometheus.Histogram
	BookingsCreated prometheus.Counter
	MailsDispatched prometheus.Counter
	MailsSent       prometheus.Counter
	MailsFailed     prometheus.Counter
}

// NewMetrics создает новые метрики
func NewMetrics() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "aircnc_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		}, []string{"route", "status"}),

		RequestDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "aircnc_http_request_duration_seconds",
			Help:    "Duration of HTTP request handling",
			Buckets: prometheus.DefBuckets,
		}),

		BookingsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "aircnc_bookings_created_total",
			Help: "Total number of bookings inserted",
		}),

		MailsDispatched: promauto.NewCounter(prometheus.CounterOpts{
			Name: "aircnc_mails_dispatched_total",
			Help: "Total number of notification emails handed to the dispatcher",
		}),

		MailsSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "aircnc_mails_sent_total",
			Help: "Total number of notification emails accepted by the SMTP server",
		}),

		MailsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "aircnc_mails_failed_total",
			Help: "Total number of notification emails that failed to send",
		}),
	}
}

// Middleware counts every request against its matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RequestsTotal.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.Observe(time.Since(start).Seconds())
	}
}
