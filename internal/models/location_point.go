package models

import (
	"math"
	"time"
)

// LocationPoint представляет одну точку траектории туриста
type LocationPoint struct {
	ID        int64     `json:"id"`
	TouristID string    `json:"tourist_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// ValidCoordinates проверяет, что координаты конечны и лежат в допустимых диапазонах
func ValidCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
