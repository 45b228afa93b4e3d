package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/tourist_safety/internal/models"
	"github.com/shenikar/tourist_safety/internal/service"
)

const (
	highRiskCacheKey = "geozones:high"
	highRiskCacheTTL = 5 * time.Minute
)

const zoneColumns = `id, name, risk_level, center_lat, center_lng, radius, description, created_at`

type GeoZoneRepository struct {
	db          DBTX
	redisClient *redis.Client
}

// NewGeoZoneRepository создает репозиторий зон. redisClient может быть nil, тогда кэш не используется.
func NewGeoZoneRepository(db DBTX, redisClient *redis.Client) service.GeoZoneRepository {
	return &GeoZoneRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// List возвращает все зоны, новые первыми
func (r *GeoZoneRepository) List(ctx context.Context) ([]*models.GeoZone, error) {
	query := `SELECT ` + zoneColumns + ` FROM geo_zones ORDER BY created_at DESC, id;`
	return r.query(ctx, query)
}

// HighRiskZones возвращает зоны высокого риска в порядке создания, сначала из кэша Redis
func (r *GeoZoneRepository) HighRiskZones(ctx context.Context) ([]*models.GeoZone, error) {
	if zones, err := r.getHighRiskFromCache(ctx); err == nil && zones != nil {
		return zones, nil
	}

	query := `SELECT ` + zoneColumns + ` FROM geo_zones WHERE risk_level = 'high' ORDER BY created_at, id;`
	zones, err := r.query(ctx, query)
	if err != nil {
		return nil, err
	}
	// ошибка записи в кэш не мешает ответу
	_ = r.setHighRiskCache(ctx, zones)
	return zones, nil
}

// Create создает зону и сбрасывает кэш зон высокого риска
func (r *GeoZoneRepository) Create(ctx context.Context, zone *models.GeoZone) error {
	query := `
		INSERT INTO geo_zones (id, name, risk_level, center_lat, center_lng, radius, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.db.Exec(ctx, query,
		zone.ID,
		zone.Name,
		zone.RiskLevel,
		zone.CenterLat,
		zone.CenterLng,
		zone.Radius,
		zone.Description,
		zone.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create geo zone: %w", err)
	}
	// устаревший кэш живет не дольше highRiskCacheTTL
	_ = r.invalidateHighRiskCache(ctx)
	return nil
}

// SeedDefaults вставляет зоны одним запросом, только если таблица пуста
func (r *GeoZoneRepository) SeedDefaults(ctx context.Context, zones []*models.GeoZone) (int, error) {
	if len(zones) == 0 {
		return 0, nil
	}
	ids := make([]string, len(zones))
	names := make([]string, len(zones))
	levels := make([]string, len(zones))
	lats := make([]float64, len(zones))
	lngs := make([]float64, len(zones))
	radii := make([]float64, len(zones))
	descriptions := make([]string, len(zones))
	createdAt := make([]time.Time, len(zones))
	for i, z := range zones {
		ids[i] = z.ID.String()
		names[i] = z.Name
		levels[i] = string(z.RiskLevel)
		lats[i] = z.CenterLat
		lngs[i] = z.CenterLng
		radii[i] = z.Radius
		descriptions[i] = z.Description
		createdAt[i] = z.CreatedAt
	}

	query := `
		INSERT INTO geo_zones (id, name, risk_level, center_lat, center_lng, radius, description, created_at)
		SELECT * FROM unnest($1::uuid[], $2::text[], $3::text[], $4::float8[], $5::float8[], $6::float8[], $7::text[], $8::timestamptz[])
		WHERE NOT EXISTS (SELECT 1 FROM geo_zones);
	`
	cmdTag, err := r.db.Exec(ctx, query, ids, names, levels, lats, lngs, radii, descriptions, createdAt)
	if err != nil {
		return 0, fmt.Errorf("failed to seed default geo zones: %w", err)
	}
	inserted := int(cmdTag.RowsAffected())
	if inserted > 0 {
		_ = r.invalidateHighRiskCache(ctx)
	}
	return inserted, nil
}

func (r *GeoZoneRepository) query(ctx context.Context, query string, args ...any) ([]*models.GeoZone, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list geo zones: %w", err)
	}
	defer rows.Close()

	zones := make([]*models.GeoZone, 0)
	for rows.Next() {
		zone := &models.GeoZone{}
		if err := rows.Scan(
			&zone.ID,
			&zone.Name,
			&zone.RiskLevel,
			&zone.CenterLat,
			&zone.CenterLng,
			&zone.Radius,
			&zone.Description,
			&zone.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan geo zone row: %w", err)
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error geo zone iteration: %w", err)
	}
	return zones, nil
}

// getHighRiskFromCache возвращает nil, nil при промахе кэша
func (r *GeoZoneRepository) getHighRiskFromCache(ctx context.Context) ([]*models.GeoZone, error) {
	if r.redisClient == nil {
		return nil, nil
	}
	val, err := r.redisClient.Get(ctx, highRiskCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get high risk zones from cache: %w", err)
	}

	zones := make([]*models.GeoZone, 0)
	if err := json.Unmarshal(val, &zones); err != nil {
		return nil, fmt.Errorf("failed to unmarshal high risk zones from cache: %w", err)
	}
	return zones, nil
}

func (r *GeoZoneRepository) setHighRiskCache(ctx context.Context, zones []*models.GeoZone) error {
	if r.redisClient == nil {
		return nil
	}
	val, err := json.Marshal(zones)
	if err != nil {
		return fmt.Errorf("failed to marshal high risk zones for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, highRiskCacheKey, val, highRiskCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set high risk zones in cache: %w", err)
	}
	return nil
}

func (r *GeoZoneRepository) invalidateHighRiskCache(ctx context.Context) error {
	if r.redisClient == nil {
		return nil
	}
	if err := r.redisClient.Del(ctx, highRiskCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate high risk zones cache: %w", err)
	}
	return nil
}
