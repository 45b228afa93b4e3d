package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety/internal/geofence"
	"github.com/shenikar/tourist_safety/internal/metrics"
	"github.com/shenikar/tourist_safety/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// LocationHistoryLimit - сколько последних точек отдается при просмотре траектории
const LocationHistoryLimit = 100

// SafetyService определяет контракт приема координат, зон и статистики
type SafetyService interface {
	RecordLocation(ctx context.Context, principal models.Principal, lat, lon float64) (float64, error)
	ListLocations(ctx context.Context, principal models.Principal, touristID string) ([]*models.LocationPoint, error)
	ListGeoZones(ctx context.Context) ([]*models.GeoZone, error)
	CreateGeoZone(ctx context.Context, principal models.Principal, zone *models.GeoZone) error
	SeedDefaultZones(ctx context.Context) error
	GetDashboard(ctx context.Context, principal models.Principal) (*models.DashboardStats, error)
}

// SafetyOptions - настраиваемые пороги сервиса
type SafetyOptions struct {
	AlertThreshold      float64
	DashboardWindowDays int
}

type safetyService struct {
	trajectories TrajectoryRepository
	zones        GeoZoneRepository
	alerts       AlertRepository
	tourists     TouristRegistry
	evaluator    RiskEvaluator
	engine       AlertEngine
	opts         SafetyOptions
	logger       *logrus.Logger
	now          func() time.Time
}

func NewSafetyService(
	trajectories TrajectoryRepository,
	zones GeoZoneRepository,
	alerts AlertRepository,
	tourists TouristRegistry,
	evaluator RiskEvaluator,
	engine AlertEngine,
	opts SafetyOptions,
	logger *logrus.Logger,
) SafetyService {
	return &safetyService{
		trajectories: trajectories,
		zones:        zones,
		alerts:       alerts,
		tourists:     tourists,
		evaluator:    evaluator,
		engine:       engine,
		opts:         opts,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// RecordLocation сохраняет точку, пересчитывает оценку и при низкой оценке создает тревогу
func (s *safetyService) RecordLocation(ctx context.Context, principal models.Principal, lat, lon float64) (float64, error) {
	if err := requireTourist(principal); err != nil {
		return 0, err
	}
	if !models.ValidCoordinates(lat, lon) {
		return 0, fmt.Errorf("%w: invalid coordinates", ErrValidation)
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":    "safety",
		"method":     "RecordLocation",
		"tourist_id": principal.TouristID,
	})

	tourist, err := s.tourists.GetByID(ctx, principal.TouristID)
	if err != nil {
		log.WithError(err).Warn("Failed to get tourist from registry")
		return 0, fmt.Errorf("service: could not get tourist %s: %w", principal.TouristID, err)
	}

	point := &models.LocationPoint{
		TouristID: tourist.TouristID,
		Latitude:  lat,
		Longitude: lon,
		Timestamp: s.now(),
	}
	if err := s.trajectories.Append(ctx, point); err != nil {
		log.WithError(err).Error("Failed to append location point")
		return 0, fmt.Errorf("service: could not record location: %w", err)
	}
	metrics.LocationsRecorded.Inc()

	score, err := s.evaluator.Evaluate(ctx, tourist.TouristID)
	if err != nil {
		log.WithError(err).Error("Failed to evaluate safety score")
		return 0, fmt.Errorf("service: could not evaluate safety score: %w", err)
	}
	metrics.SafetyScores.Observe(score)

	if err := s.tourists.UpdateSafetyScore(ctx, tourist.TouristID, score); err != nil {
		log.WithError(err).Error("Failed to persist safety score")
		return 0, fmt.Errorf("service: could not update safety score: %w", err)
	}

	if score < s.opts.AlertThreshold {
		if _, err := s.engine.TriggerAnomalyAlert(ctx, tourist, score, lat, lon); err != nil {
			return 0, err
		}
	}

	log.WithField("safety_score", score).Info("Location recorded")
	return score, nil
}

// ListLocations возвращает последние точки туриста, от новых к старым
func (s *safetyService) ListLocations(ctx context.Context, principal models.Principal, touristID string) ([]*models.LocationPoint, error) {
	if err := canViewTourist(principal, touristID); err != nil {
		return nil, err
	}
	points, err := s.trajectories.RecentWindow(ctx, touristID, LocationHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("service: could not list locations: %w", err)
	}
	return points, nil
}

// ListGeoZones возвращает все зоны
func (s *safetyService) ListGeoZones(ctx context.Context) ([]*models.GeoZone, error) {
	zones, err := s.zones.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list geo zones: %w", err)
	}
	return zones, nil
}

// CreateGeoZone создает зону риска
func (s *safetyService) CreateGeoZone(ctx context.Context, principal models.Principal, zone *models.GeoZone) error {
	if err := requirePrivileged(principal); err != nil {
		return err
	}
	if err := validateZone(zone); err != nil {
		return err
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "safety",
		"method":  "CreateGeoZone",
		"name":    zone.Name,
	})

	zone.ID = uuid.New()
	zone.CreatedAt = s.now()
	if err := s.zones.Create(ctx, zone); err != nil {
		log.WithError(err).Error("Failed to create geo zone in repository")
		return fmt.Errorf("service: could not create geo zone: %w", err)
	}
	log.WithField("zone_id", zone.ID).Info("Geo zone created")
	return nil
}

func validateZone(zone *models.GeoZone) error {
	if strings.TrimSpace(zone.Name) == "" {
		return fmt.Errorf("%w: zone name is required", ErrValidation)
	}
	if !zone.RiskLevel.Valid() {
		return fmt.Errorf("%w: unknown risk level %q", ErrValidation, zone.RiskLevel)
	}
	if !models.ValidCoordinates(zone.CenterLat, zone.CenterLng) {
		return fmt.Errorf("%w: invalid zone center", ErrValidation)
	}
	if !(zone.Radius > 0) {
		return fmt.Errorf("%w: radius must be positive", ErrValidation)
	}
	return nil
}

// SeedDefaultZones создает зоны по умолчанию, если зон еще нет
func (s *safetyService) SeedDefaultZones(ctx context.Context) error {
	defaults := geofence.DefaultZones()
	for _, zone := range defaults {
		zone.ID = uuid.New()
		zone.CreatedAt = s.now()
	}
	inserted, err := s.zones.SeedDefaults(ctx, defaults)
	if err != nil {
		return fmt.Errorf("service: could not seed default zones: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"service":  "safety",
		"method":   "SeedDefaultZones",
		"inserted": inserted,
	}).Info("Default geo zones checked")
	return nil
}

// GetDashboard собирает статистику для панели администратора
func (s *safetyService) GetDashboard(ctx context.Context, principal models.Principal) (*models.DashboardStats, error) {
	if err := requirePrivileged(principal); err != nil {
		return nil, err
	}

	days := s.opts.DashboardWindowDays
	if days < 1 {
		days = 7
	}
	since := s.now().AddDate(0, 0, -days)
	stats := &models.DashboardStats{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.tourists.CountActive(gctx)
		stats.TotalTourists = n
		return err
	})
	g.Go(func() error {
		n, err := s.alerts.CountByStatus(gctx, models.AlertStatusPending)
		stats.ActiveAlerts = n
		return err
	})
	g.Go(func() error {
		perDay, err := s.alerts.CountPerDay(gctx, since)
		stats.AlertsPerDay = perDay
		return err
	})
	g.Go(func() error {
		zones, err := s.zones.HighRiskZones(gctx)
		stats.HighRiskZonesCount = len(zones)
		return err
	})
	g.Go(func() error {
		avg, err := s.alerts.AvgResolutionMinutes(gctx, since)
		stats.AvgResponseMinutes = avg
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "safety",
			"method":  "GetDashboard",
		}).WithError(err).Error("Failed to collect dashboard stats")
		return nil, fmt.Errorf("service: could not collect dashboard stats: %w", err)
	}
	if stats.AlertsPerDay == nil {
		stats.AlertsPerDay = map[string]int{}
	}
	return stats, nil
}
