package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// TrajectoryRepository определяет контракт хранилища траекторий (только добавление)
type TrajectoryRepository interface {
	Append(ctx context.Context, point *models.LocationPoint) error
	// RecentWindow возвращает до limit последних точек, от новых к старым
	RecentWindow(ctx context.Context, touristID string, limit int) ([]*models.LocationPoint, error)
}

// GeoZoneRepository определяет контракт для работы с зонами риска
type GeoZoneRepository interface {
	List(ctx context.Context) ([]*models.GeoZone, error)
	HighRiskZones(ctx context.Context) ([]*models.GeoZone, error)
	Create(ctx context.Context, zone *models.GeoZone) error
	// SeedDefaults вставляет зоны, только если таблица пуста, и возвращает число вставленных
	SeedDefaults(ctx context.Context, zones []*models.GeoZone) (int, error)
}

// AlertRepository определяет контракт для работы с бд тревог
type AlertRepository interface {
	Create(ctx context.Context, alert *models.Alert) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Alert, error)
	// UpdateStatus сохраняет статус, офицера и resolved_at, если тревога все еще в статусе from
	UpdateStatus(ctx context.Context, alert *models.Alert, from models.AlertStatus) error
	// List возвращает тревоги от новых к старым, пустой touristID означает все
	List(ctx context.Context, touristID string) ([]*models.Alert, error)
	CountByStatus(ctx context.Context, status models.AlertStatus) (int, error)
	CountPerDay(ctx context.Context, since time.Time) (map[string]int, error)
	AvgResolutionMinutes(ctx context.Context, since time.Time) (float64, error)
}

// TouristRegistry - внешний реестр туристов, хранит оценку безопасности
type TouristRegistry interface {
	GetByID(ctx context.Context, touristID string) (*models.Tourist, error)
	UpdateSafetyScore(ctx context.Context, touristID string, score float64) error
	CountActive(ctx context.Context) (int, error)
}

// AlertPublisher рассылает созданные тревоги подписчикам
type AlertPublisher interface {
	PublishAlert(ctx context.Context, alert *models.Alert) error
}

// RiskEvaluator вычисляет оценку безопасности туриста
type RiskEvaluator interface {
	Evaluate(ctx context.Context, touristID string) (float64, error)
}
