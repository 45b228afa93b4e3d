// Package metrics содержит Prometheus-метрики сервиса безопасности туристов
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LocationsRecorded считает принятые точки траектории
	LocationsRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tourist_safety_locations_recorded_total",
			Help: "Total number of recorded location points",
		},
	)

	// SafetyScores - распределение вычисленных оценок безопасности
	SafetyScores = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tourist_safety_score",
			Help:    "Distribution of computed safety scores",
			Buckets: []float64{10, 20, 30, 40, 50, 60, 70, 80, 85, 90, 95, 100},
		},
	)

	// ScoringDuration - время оценки окна траектории
	ScoringDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tourist_safety_scoring_duration_seconds",
			Help:    "Duration of safety score evaluation in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	// AlertsCreated считает созданные тревоги по типу
	AlertsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourist_safety_alerts_created_total",
			Help: "Total number of created alerts",
		},
		[]string{"alert_type"},
	)

	// AlertStatusUpdates считает переходы статусов тревог
	AlertStatusUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourist_safety_alert_status_updates_total",
			Help: "Total number of alert status transitions",
		},
		[]string{"status"},
	)

	// AlertPublishFailures считает тревоги, которые не удалось опубликовать
	AlertPublishFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tourist_safety_alert_publish_failures_total",
			Help: "Total number of alerts that could not be published",
		},
	)

	// WebSocketClients - число подключенных WebSocket клиентов
	WebSocketClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tourist_safety_websocket_clients",
			Help: "Number of connected WebSocket clients",
		},
	)

	// WebSocketDropped считает клиентов, отключенных из-за переполненного буфера
	WebSocketDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tourist_safety_websocket_dropped_total",
			Help: "Total number of slow WebSocket clients dropped",
		},
	)

	// WebhookDeliveries считает попытки доставки вебхуков по результату
	WebhookDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tourist_safety_webhook_deliveries_total",
			Help: "Total number of webhook delivery attempts",
		},
		[]string{"result"},
	)
)

// RegisterDetectorCache публикует число моделей в кэше детектора аномалий.
// count вызывается при каждом сборе метрик.
func RegisterDetectorCache(reg prometheus.Registerer, count func() int) prometheus.GaugeFunc {
	return promauto.With(reg).NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "tourist_safety_detector_cached_models",
			Help: "Number of fitted anomaly models held in the detector cache",
		},
		func() float64 { return float64(count()) },
	)
}
