package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety/internal/metrics"
	"github.com/shenikar/tourist_safety/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	// PanicRiskScore - фиксированный риск для тревоги по кнопке паники
	PanicRiskScore = 100.0

	anomalyReason = "Low safety score detected by AI analysis"
	panicReason   = "Emergency panic button activated by tourist"
)

// AlertEngine определяет контракт жизненного цикла тревог
type AlertEngine interface {
	TriggerAnomalyAlert(ctx context.Context, tourist *models.Tourist, score, lat, lon float64) (*models.Alert, error)
	TriggerPanicAlert(ctx context.Context, principal models.Principal, lat, lon *float64) (*models.Alert, error)
	UpdateStatus(ctx context.Context, principal models.Principal, id uuid.UUID, status models.AlertStatus, officer *string) error
	ListAlerts(ctx context.Context, principal models.Principal, touristID string) ([]*models.Alert, error)
}

type alertEngine struct {
	alerts    AlertRepository
	tourists  TouristRegistry
	publisher AlertPublisher
	logger    *logrus.Logger
	now       func() time.Time
}

func NewAlertEngine(alerts AlertRepository, tourists TouristRegistry, publisher AlertPublisher, logger *logrus.Logger) AlertEngine {
	return &alertEngine{
		alerts:    alerts,
		tourists:  tourists,
		publisher: publisher,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// TriggerAnomalyAlert создает тревогу ai_anomaly с риском, равным оценке
func (e *alertEngine) TriggerAnomalyAlert(ctx context.Context, tourist *models.Tourist, score, lat, lon float64) (*models.Alert, error) {
	if score < 0 || score > 100 {
		return nil, fmt.Errorf("%w: risk score %v out of range", ErrValidation, score)
	}
	alert := e.newAlert(tourist, models.AlertTypeAIAnomaly, score, anomalyReason)
	alert.Latitude = &lat
	alert.Longitude = &lon

	if err := e.create(ctx, alert, "TriggerAnomalyAlert"); err != nil {
		return nil, err
	}
	return alert, nil
}

// TriggerPanicAlert создает тревогу panic с риском 100 от имени туриста
func (e *alertEngine) TriggerPanicAlert(ctx context.Context, principal models.Principal, lat, lon *float64) (*models.Alert, error) {
	if err := requireTourist(principal); err != nil {
		return nil, err
	}
	if (lat == nil) != (lon == nil) {
		return nil, fmt.Errorf("%w: latitude and longitude must be provided together", ErrValidation)
	}
	if lat != nil && !models.ValidCoordinates(*lat, *lon) {
		return nil, fmt.Errorf("%w: invalid coordinates", ErrValidation)
	}

	tourist, err := e.tourists.GetByID(ctx, principal.TouristID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get tourist %s: %w", principal.TouristID, err)
	}

	alert := e.newAlert(tourist, models.AlertTypePanic, PanicRiskScore, panicReason)
	alert.Latitude = lat
	alert.Longitude = lon

	if err := e.create(ctx, alert, "TriggerPanicAlert"); err != nil {
		return nil, err
	}
	return alert, nil
}

func (e *alertEngine) newAlert(tourist *models.Tourist, alertType models.AlertType, score float64, reason string) *models.Alert {
	return &models.Alert{
		ID:          uuid.New(),
		TouristID:   tourist.TouristID,
		TouristName: tourist.Name,
		AlertType:   alertType,
		RiskScore:   score,
		Reason:      reason,
		Status:      models.AlertStatusPending,
		CreatedAt:   e.now(),
	}
}

// create сохраняет тревогу и публикует ее. Ошибка публикации не отменяет создание.
func (e *alertEngine) create(ctx context.Context, alert *models.Alert, method string) error {
	log := e.logger.WithFields(logrus.Fields{
		"service":    "alert",
		"method":     method,
		"tourist_id": alert.TouristID,
		"alert_type": alert.AlertType,
	})

	if err := e.alerts.Create(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to create alert in repository")
		return fmt.Errorf("service: could not create alert: %w", err)
	}
	metrics.AlertsCreated.WithLabelValues(string(alert.AlertType)).Inc()
	log = log.WithField("alert_id", alert.ID)
	log.Info("Alert created")

	if err := e.publisher.PublishAlert(ctx, alert); err != nil {
		metrics.AlertPublishFailures.Inc()
		log.WithError(err).Warn("Failed to publish alert")
	}
	return nil
}

// UpdateStatus переводит тревогу в новый статус
func (e *alertEngine) UpdateStatus(ctx context.Context, principal models.Principal, id uuid.UUID, status models.AlertStatus, officer *string) error {
	log := e.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "UpdateStatus",
		"alert_id": id,
		"status":   status,
	})

	if err := requirePrivileged(principal); err != nil {
		return err
	}
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	alert, err := e.alerts.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent alert")
		return fmt.Errorf("service: could not get alert %s: %w", id, err)
	}

	from := alert.Status
	if !from.CanTransitionTo(status) {
		return fmt.Errorf("%w: transition %s -> %s is not allowed", ErrValidation, from, status)
	}

	alert.Status = status
	if officer != nil {
		alert.AssignedOfficer = officer
	}
	if status == models.AlertStatusResolved {
		resolvedAt := e.now()
		alert.ResolvedAt = &resolvedAt
	}

	if err := e.alerts.UpdateStatus(ctx, alert, from); err != nil {
		log.WithError(err).Error("Failed to update alert status in repository")
		return fmt.Errorf("service: could not update alert status: %w", err)
	}
	metrics.AlertStatusUpdates.WithLabelValues(string(status)).Inc()
	log.WithField("from", from).Info("Alert status updated")
	return nil
}

// ListAlerts возвращает тревоги от новых к старым. Турист видит только свои.
func (e *alertEngine) ListAlerts(ctx context.Context, principal models.Principal, touristID string) ([]*models.Alert, error) {
	switch principal.Role {
	case models.RoleTourist:
		if principal.TouristID == "" {
			return nil, fmt.Errorf("%w: tourist identity is missing", ErrForbidden)
		}
		touristID = principal.TouristID
	case models.RolePolice, models.RoleTourismOfficer:
	default:
		return nil, fmt.Errorf("%w: unknown role %q", ErrForbidden, principal.Role)
	}

	log := e.logger.WithFields(logrus.Fields{
		"service":    "alert",
		"method":     "ListAlerts",
		"role":       principal.Role,
		"tourist_id": touristID,
	})

	alerts, err := e.alerts.List(ctx, touristID)
	if err != nil {
		log.WithError(err).Error("Failed to list alerts from repository")
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}
	log.WithField("count", len(alerts)).Debug("Alerts listed")
	return alerts, nil
}
