// Package scoring вычисляет оценку безопасности туриста по окну траектории и зонам риска.
package scoring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shenikar/tourist_safety/internal/anomaly"
	"github.com/shenikar/tourist_safety/internal/geofence"
	"github.com/shenikar/tourist_safety/internal/metrics"
	"github.com/shenikar/tourist_safety/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	// WindowSize - максимальное число последних точек в окне
	WindowSize = 50
	// DefaultScore - оценка для холодного туриста (меньше anomaly.MinSamples точек)
	DefaultScore = 85.0
	// AnomalyWeight - вклад доли аномалий в снижение оценки
	AnomalyWeight = 50.0
	// ZonePenalty - штраф за нахождение последней точки в зоне высокого риска
	ZonePenalty = 20.0

	maxScore = 100.0
	minScore = 0.0
)

// WindowReader читает последние точки туриста, от новых к старым
type WindowReader interface {
	RecentWindow(ctx context.Context, touristID string, limit int) ([]*models.LocationPoint, error)
}

// ZoneSource возвращает зоны высокого риска
type ZoneSource interface {
	HighRiskZones(ctx context.Context) ([]*models.GeoZone, error)
}

// AnomalyDetector помечает выбросы в окне признаков
type AnomalyDetector interface {
	Detect(key string, samples [][]float64) (anomaly.Result, error)
}

// Evaluator объединяет долю аномалий и попадание в зону риска в одну оценку.
// Ничего не пишет: сохранение оценки остается за вызывающим.
type Evaluator struct {
	windows  WindowReader
	zones    ZoneSource
	detector AnomalyDetector
	logger   *logrus.Logger
}

// NewEvaluator создает Evaluator
func NewEvaluator(windows WindowReader, zones ZoneSource, detector AnomalyDetector, logger *logrus.Logger) *Evaluator {
	return &Evaluator{
		windows:  windows,
		zones:    zones,
		detector: detector,
		logger:   logger,
	}
}

// Evaluate возвращает оценку безопасности в [0, 100].
// Ошибки хранилища возвращаются как есть, нехватка данных дает DefaultScore.
func (e *Evaluator) Evaluate(ctx context.Context, touristID string) (float64, error) {
	start := time.Now()
	defer func() { metrics.ScoringDuration.Observe(time.Since(start).Seconds()) }()

	log := e.logger.WithFields(logrus.Fields{
		"service":    "scoring",
		"method":     "Evaluate",
		"tourist_id": touristID,
	})

	window, err := e.windows.RecentWindow(ctx, touristID, WindowSize)
	if err != nil {
		return 0, fmt.Errorf("scoring: could not read trajectory window: %w", err)
	}
	if len(window) < anomaly.MinSamples {
		log.WithField("points", len(window)).Debug("Cold tourist, using default score")
		return DefaultScore, nil
	}

	result, err := e.detector.Detect(touristID, anomaly.Features(window))
	if err != nil {
		if errors.Is(err, anomaly.ErrInsufficientData) {
			return DefaultScore, nil
		}
		return 0, fmt.Errorf("scoring: anomaly detection failed: %w", err)
	}

	zones, err := e.zones.HighRiskZones(ctx)
	if err != nil {
		return 0, fmt.Errorf("scoring: could not load high risk zones: %w", err)
	}

	// окно упорядочено от новых к старым; штрафуют только зоны уровня high
	latest := window[0]
	zone, inZone := geofence.FirstContaining(geofence.HighRisk(zones), latest.Latitude, latest.Longitude)

	score := Compute(result.Ratio, inZone)
	fields := logrus.Fields{
		"points":        len(window),
		"anomaly_ratio": result.Ratio,
		"score":         score,
	}
	if inZone {
		fields["zone"] = zone.Name
	}
	log.WithFields(fields).Debug("Safety score computed")
	return score, nil
}

// Compute переводит долю аномалий и попадание в зону в итоговую оценку
func Compute(anomalyRatio float64, inHighRiskZone bool) float64 {
	score := maxScore - anomalyRatio*AnomalyWeight
	if inHighRiskZone {
		score -= ZonePenalty
	}
	return Clamp(score)
}

// Clamp ограничивает оценку диапазоном [0, 100]
func Clamp(score float64) float64 {
	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
