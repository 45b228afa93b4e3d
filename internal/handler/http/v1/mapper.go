package v1

import "github.com/shenikar/tourist_safety/internal/models"

// ModelToAlertResponse преобразует доменную модель тревоги в DTO для ответа
func ModelToAlertResponse(model *models.Alert) *AlertResponse {
	return &AlertResponse{
		ID:              model.ID,
		TouristID:       model.TouristID,
		TouristName:     model.TouristName,
		AlertType:       string(model.AlertType),
		RiskScore:       model.RiskScore,
		Reason:          model.Reason,
		Latitude:        model.Latitude,
		Longitude:       model.Longitude,
		Status:          string(model.Status),
		AssignedOfficer: model.AssignedOfficer,
		CreatedAt:       model.CreatedAt.UTC(),
		ResolvedAt:      model.ResolvedAt,
	}
}

// ModelsToAlertResponses преобразует слайс тревог в слайс DTO
func ModelsToAlertResponses(alerts []*models.Alert) []*AlertResponse {
	responses := make([]*AlertResponse, len(alerts))
	for i, alert := range alerts {
		responses[i] = ModelToAlertResponse(alert)
	}
	return responses
}

// DTOToGeoZoneModel преобразует запрос создания зоны в доменную модель
func DTOToGeoZoneModel(dto CreateGeoZoneRequest) *models.GeoZone {
	zone := &models.GeoZone{
		Name:        dto.Name,
		RiskLevel:   models.RiskLevel(dto.RiskLevel),
		Radius:      dto.Radius,
		Description: dto.Description,
	}
	if dto.CenterLat != nil {
		zone.CenterLat = *dto.CenterLat
	}
	if dto.CenterLng != nil {
		zone.CenterLng = *dto.CenterLng
	}
	return zone
}

func ModelToGeoZoneResponse(model *models.GeoZone) *GeoZoneResponse {
	return &GeoZoneResponse{
		ID:          model.ID,
		Name:        model.Name,
		RiskLevel:   string(model.RiskLevel),
		CenterLat:   model.CenterLat,
		CenterLng:   model.CenterLng,
		Radius:      model.Radius,
		Description: model.Description,
		CreatedAt:   model.CreatedAt.UTC(),
	}
}

func ModelsToGeoZoneResponses(zones []*models.GeoZone) []*GeoZoneResponse {
	responses := make([]*GeoZoneResponse, len(zones))
	for i, zone := range zones {
		responses[i] = ModelToGeoZoneResponse(zone)
	}
	return responses
}

func ModelsToLocationResponses(points []*models.LocationPoint) []*LocationPointResponse {
	responses := make([]*LocationPointResponse, len(points))
	for i, p := range points {
		responses[i] = &LocationPointResponse{
			ID:        p.ID,
			TouristID: p.TouristID,
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
			Timestamp: p.Timestamp.UTC(),
		}
	}
	return responses
}

func ModelToDashboardResponse(stats *models.DashboardStats) *DashboardResponse {
	return &DashboardResponse{
		TotalTourists:      stats.TotalTourists,
		ActiveAlerts:       stats.ActiveAlerts,
		AlertsPerDay:       stats.AlertsPerDay,
		HighRiskZonesCount: stats.HighRiskZonesCount,
		AvgResponseMinutes: stats.AvgResponseMinutes,
	}
}
