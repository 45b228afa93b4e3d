package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety/internal/config"
	"github.com/shenikar/tourist_safety/internal/models"
	"github.com/shenikar/tourist_safety/internal/service"
	"github.com/sirupsen/logrus"
)

// AlertStream обслуживает WebSocket подписку на тревоги
type AlertStream interface {
	ServeWS(w http.ResponseWriter, r *http.Request)
}

type Handler struct {
	safetyService service.SafetyService
	alertEngine   service.AlertEngine
	stream        AlertStream
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(
	safetyService service.SafetyService,
	alertEngine service.AlertEngine,
	stream AlertStream,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		safetyService: safetyService,
		alertEngine:   alertEngine,
		stream:        stream,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
	}
}

// writeError сопоставляет ошибки сервиса с HTTP статусами
func (h *Handler) writeError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		log.WithError(err).Warn("Request rejected by validation")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		log.WithError(err).Warn("Access denied")
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		log.WithError(err).Warn("Conflicting update")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// bindAndValidate разбирает JSON тело и проверяет теги validate
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary Record tourist location
// @Description Append a location point for the calling tourist and return the recomputed safety score. Requires API key and tourist role.
// @Tags Locations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-Role header string true "Caller role"
// @Param X-Tourist-ID header string true "Caller tourist ID"
// @Param location body RecordLocationRequest true "Location point"
// @Success 200 {object} SafetyScoreResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Tourist not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations [post]
func (h *Handler) recordLocation(c *gin.Context) {
	principal := principalFrom(c)
	log := h.logger.WithFields(logrus.Fields{"method": "recordLocation", "tourist_id": principal.TouristID})

	var input RecordLocationRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	score, err := h.safetyService.RecordLocation(c.Request.Context(), principal, *input.Latitude, *input.Longitude)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, SafetyScoreResponse{SafetyScore: score})
}

// @Summary List tourist locations
// @Description Get the latest location points of a tourist, newest first. Tourists may only read their own trajectory.
// @Tags Locations
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-Role header string true "Caller role"
// @Param X-Tourist-ID header string false "Caller tourist ID"
// @Param touristId path string true "Tourist ID"
// @Success 200 {array} LocationPointResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations/tourist/{touristId} [get]
func (h *Handler) listLocations(c *gin.Context) {
	touristID := c.Param("touristId")
	log := h.logger.WithFields(logrus.Fields{"method": "listLocations", "tourist_id": touristID})

	points, err := h.safetyService.ListLocations(c.Request.Context(), principalFrom(c), touristID)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToLocationResponses(points))
}

// @Summary Trigger panic alert
// @Description Raise a panic alert with risk score 100 for the calling tourist. Coordinates are optional but must come together.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-Role header string true "Caller role"
// @Param X-Tourist-ID header string true "Caller tourist ID"
// @Param panic body PanicRequest false "Optional coordinates"
// @Success 201 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Tourist not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/panic [post]
func (h *Handler) triggerPanic(c *gin.Context) {
	principal := principalFrom(c)
	log := h.logger.WithFields(logrus.Fields{"method": "triggerPanic", "tourist_id": principal.TouristID})

	var input PanicRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
			log.WithError(err).Warn("Failed to bind JSON")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if err := h.validate.Struct(input); err != nil {
			log.WithError(err).Warn("Validation failed")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	alert, err := h.alertEngine.TriggerPanicAlert(c.Request.Context(), principal, input.Latitude, input.Longitude)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToAlertResponse(alert))
}

// @Summary List alerts
// @Description List alerts newest first. Privileged roles may filter by tourist, tourists always get their own alerts.
// @Tags Alerts
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-Role header string true "Caller role"
// @Param X-Tourist-ID header string false "Caller tourist ID"
// @Param tourist_id query string false "Filter by tourist"
// @Success 200 {array} AlertResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	touristID := c.Query("tourist_id")
	log := h.logger.WithFields(logrus.Fields{"method": "listAlerts", "tourist_id": touristID})

	alerts, err := h.alertEngine.ListAlerts(c.Request.Context(), principalFrom(c), touristID)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary Update alert status
// @Description Move an alert through pending, assigned and resolved. Requires a privileged role.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-Role header string true "Caller role"
// @Param id path string true "Alert ID"
// @Param status body UpdateAlertStatusRequest true "New status"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} map[string]string "Invalid alert ID, body or transition"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 409 {object} map[string]string "Alert changed concurrently"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{id} [patch]
func (h *Handler) updateAlertStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithFields(logrus.Fields{"method": "updateAlertStatus", "alert_id": id})

	var input UpdateAlertStatusRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	status := models.AlertStatus(input.Status)
	if err := h.alertEngine.UpdateStatus(c.Request.Context(), principalFrom(c), id, status, input.AssignedOfficer); err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// @Summary List geo zones
// @Description Get all risk zones, newest first.
// @Tags GeoZones
// @Produce json
// @Success 200 {array} GeoZoneResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /geo-zones [get]
func (h *Handler) listGeoZones(c *gin.Context) {
	log := h.logger.WithField("method", "listGeoZones")

	zones, err := h.safetyService.ListGeoZones(c.Request.Context())
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToGeoZoneResponses(zones))
}

// @Summary Create geo zone
// @Description Create a circular risk zone. Radius is in degrees. Requires a privileged role.
// @Tags GeoZones
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-Role header string true "Caller role"
// @Param zone body CreateGeoZoneRequest true "Zone creation request"
// @Success 201 {object} GeoZoneResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /geo-zones [post]
func (h *Handler) createGeoZone(c *gin.Context) {
	log := h.logger.WithField("method", "createGeoZone")

	var input CreateGeoZoneRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	zone := DTOToGeoZoneModel(input)
	if err := h.safetyService.CreateGeoZone(c.Request.Context(), principalFrom(c), zone); err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToGeoZoneResponse(zone))
}

// @Summary Get dashboard statistics
// @Description Active tourists, pending alerts, alerts per day, high-risk zone count and average response time. Requires a privileged role.
// @Tags Analytics
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-Role header string true "Caller role"
// @Success 200 {object} DashboardResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /analytics/dashboard [get]
func (h *Handler) getDashboard(c *gin.Context) {
	log := h.logger.WithField("method", "getDashboard")

	stats, err := h.safetyService.GetDashboard(c.Request.Context(), principalFrom(c))
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToDashboardResponse(stats))
}

// @Summary Stream alerts
// @Description Upgrade to WebSocket and receive every new alert as a new_alert event envelope.
// @Tags Alerts
// @Success 101 "Switching Protocols"
// @Failure 403 "Origin not allowed"
// @Router /ws/alerts [get]
func (h *Handler) streamAlerts(c *gin.Context) {
	h.stream.ServeWS(c.Writer, c.Request)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
