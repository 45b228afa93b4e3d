package v1

import (
	"time"

	"github.com/google/uuid"
)

// RecordLocationRequest DTO для передачи координат туриста
// @Description DTO для передачи координат туриста
type RecordLocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// SafetyScoreResponse DTO с пересчитанной оценкой безопасности
// @Description DTO с пересчитанной оценкой безопасности
type SafetyScoreResponse struct {
	SafetyScore float64 `json:"safety_score"`
}

// LocationPointResponse DTO точки траектории
// @Description DTO точки траектории
type LocationPointResponse struct {
	ID        int64     `json:"id"`
	TouristID string    `json:"tourist_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// PanicRequest DTO тревожной кнопки, координаты необязательны
// @Description DTO тревожной кнопки, координаты необязательны
type PanicRequest struct {
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

// UpdateAlertStatusRequest DTO для смены статуса тревоги
// @Description DTO для смены статуса тревоги
type UpdateAlertStatusRequest struct {
	Status          string  `json:"status" validate:"required,oneof=pending assigned resolved"`
	AssignedOfficer *string `json:"assigned_officer,omitempty" validate:"omitempty,min=1,max=255"`
}

// SuccessResponse DTO подтверждения операции
// @Description DTO подтверждения операции
type SuccessResponse struct {
	Success bool `json:"success"`
}

// AlertResponse DTO для ответа с информацией о тревоге
// @Description DTO для ответа с информацией о тревоге
type AlertResponse struct {
	ID              uuid.UUID  `json:"id"`
	TouristID       string     `json:"tourist_id"`
	TouristName     string     `json:"tourist_name"`
	AlertType       string     `json:"alert_type"`
	RiskScore       float64    `json:"risk_score"`
	Reason          string     `json:"reason"`
	Latitude        *float64   `json:"latitude,omitempty"`
	Longitude       *float64   `json:"longitude,omitempty"`
	Status          string     `json:"status"`
	AssignedOfficer *string    `json:"assigned_officer,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
}

// CreateGeoZoneRequest DTO для создания зоны риска, радиус в градусах
// @Description DTO для создания зоны риска, радиус в градусах
type CreateGeoZoneRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=255"`
	RiskLevel   string   `json:"risk_level" validate:"required,oneof=low medium high"`
	CenterLat   *float64 `json:"center_lat" validate:"required,latitude"`
	CenterLng   *float64 `json:"center_lng" validate:"required,longitude"`
	Radius      float64  `json:"radius" validate:"required,gt=0"`
	Description string   `json:"description,omitempty"`
}

// GeoZoneResponse DTO для ответа с информацией о зоне
// @Description DTO для ответа с информацией о зоне
type GeoZoneResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	RiskLevel   string    `json:"risk_level"`
	CenterLat   float64   `json:"center_lat"`
	CenterLng   float64   `json:"center_lng"`
	Radius      float64   `json:"radius"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// DashboardResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type DashboardResponse struct {
	TotalTourists      int            `json:"total_tourists"`
	ActiveAlerts       int            `json:"active_alerts"`
	AlertsPerDay       map[string]int `json:"alerts_per_day"`
	HighRiskZonesCount int            `json:"high_risk_zones_count"`
	AvgResponseMinutes float64        `json:"avg_response_time_minutes"`
}
