package models

// Tourist - проекция записи реестра туристов, нужная ядру
type Tourist struct {
	TouristID   string  `json:"tourist_id"`
	Name        string  `json:"name"`
	Status      string  `json:"status"`
	SafetyScore float64 `json:"safety_score"`
}

// DashboardStats - агрегированная статистика для панели администратора
type DashboardStats struct {
	TotalTourists      int            `json:"total_tourists"`
	ActiveAlerts       int            `json:"active_alerts"`
	AlertsPerDay       map[string]int `json:"alerts_per_day"`
	HighRiskZonesCount int            `json:"high_risk_zones_count"`
	AvgResponseMinutes float64        `json:"avg_response_time_minutes"`
}
