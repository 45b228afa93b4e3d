package models

import (
	"time"

	"github.com/google/uuid"
)

type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// Valid сообщает, является ли уровень риска одним из известных значений
func (l RiskLevel) Valid() bool {
	switch l {
	case RiskLevelLow, RiskLevelMedium, RiskLevelHigh:
		return true
	}
	return false
}

// GeoZone - круговая зона риска. Радиус задается в градусах, а не в метрах.
type GeoZone struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	RiskLevel   RiskLevel `json:"risk_level"`
	CenterLat   float64   `json:"center_lat"`
	CenterLng   float64   `json:"center_lng"`
	Radius      float64   `json:"radius"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
