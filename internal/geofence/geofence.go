// Package geofence реализует проверки попадания точки в круговые зоны риска.
//
// Расстояние считается как евклидово в градусах, без геодезии. Для малых радиусов
// (доли градуса) погрешность приемлема.
package geofence

import (
	"math"

	"github.com/shenikar/tourist_safety/internal/models"
)

// Contains возвращает true, если точка лежит строго внутри зоны
func Contains(zone *models.GeoZone, lat, lon float64) bool {
	return math.Hypot(lat-zone.CenterLat, lon-zone.CenterLng) < zone.Radius
}

// FirstContaining возвращает первую зону, содержащую точку. Штрафы зон не суммируются.
func FirstContaining(zones []*models.GeoZone, lat, lon float64) (*models.GeoZone, bool) {
	for _, zone := range zones {
		if Contains(zone, lat, lon) {
			return zone, true
		}
	}
	return nil, false
}

// HighRisk отбирает зоны с уровнем риска high
func HighRisk(zones []*models.GeoZone) []*models.GeoZone {
	high := make([]*models.GeoZone, 0, len(zones))
	for _, zone := range zones {
		if zone.RiskLevel == models.RiskLevelHigh {
			high = append(high, zone)
		}
	}
	return high
}

// DefaultZones - зоны, которые создаются при пустом наборе, чтобы окружения были воспроизводимы
func DefaultZones() []*models.GeoZone {
	return []*models.GeoZone{
		{
			Name:        "High Crime Area - Downtown",
			RiskLevel:   models.RiskLevelHigh,
			CenterLat:   28.6139,
			CenterLng:   77.2090,
			Radius:      0.05,
			Description: "Known for petty theft",
		},
		{
			Name:        "Tourist Safe Zone - Central Park",
			RiskLevel:   models.RiskLevelLow,
			CenterLat:   28.6329,
			CenterLng:   77.2195,
			Radius:      0.03,
			Description: "24/7 police patrol",
		},
	}
}
