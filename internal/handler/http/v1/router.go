package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Публичные маршруты
	api.GET("/geo-zones", h.listGeoZones)
	api.GET("/ws/alerts", h.streamAlerts)
	api.GET("/system/health", h.healthCheck)

	// Остальные маршруты требуют API-ключ и роль от шлюза
	protected := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger), IdentityMiddleware(h.logger))

	locations := protected.Group("/locations")
	{
		locations.POST("", h.recordLocation)
		locations.GET("/tourist/:touristId", h.listLocations)
	}

	alerts := protected.Group("/alerts")
	{
		alerts.POST("/panic", h.triggerPanic)
		alerts.GET("", h.listAlerts)
		alerts.PATCH("/:id", h.updateAlertStatus)
	}

	protected.POST("/geo-zones", h.createGeoZone)
	protected.GET("/analytics/dashboard", h.getDashboard)
}
