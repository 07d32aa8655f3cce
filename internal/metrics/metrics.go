package metrics

import (
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "utube_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "utube_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "utube_http_active_requests",
			Help: "Number of HTTP requests currently being served",
		},
	)

	LoginThrottled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "utube_login_throttled_total",
			Help: "Login attempts rejected by the rate limiter",
		},
	)

	// 活动事件
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "utube_events_published_total",
			Help: "Activity events handed to the Kafka writer",
		},
		[]string{"type"},
	)

	EventsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "utube_events_failed_total",
			Help: "Activity events the Kafka writer failed to deliver",
		},
	)

	EventsIndexed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "utube_indexer_events_total",
			Help: "Activity events handled by the search indexer",
		},
		[]string{"type", "result"},
	)
)

// RecordAPIRequest 记录一次 HTTP 请求
func RecordAPIRequest(method, route string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// TrackActiveRequest 进行中的请求数
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordIndexed 记录索引器处理结果
func RecordIndexed(eventType string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	EventsIndexed.WithLabelValues(eventType, result).Inc()
}

// RegisterDB 注册连接池统计，重复注册视为成功
func RegisterDB(db *sql.DB, name string) error {
	err := prometheus.Register(collectors.NewDBStatsCollector(db, name))
	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		return nil
	}
	return err
}
