package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/tourist_safety/internal/config"
	"github.com/shenikar/tourist_safety/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	// Заголовки, которые выставляет шлюз идентификации
	RoleHeader      = "X-User-Role"
	TouristIDHeader = "X-Tourist-ID"

	principalKey = "principal"
)

// APIKeyAuthMiddleware - middleware для аутентификации по API-ключу
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	keys := make(map[string]struct{}, len(cfg.APIKeys))
	for _, key := range cfg.APIKeys {
		keys[key] = struct{}{}
	}

	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			// Проверяем также заголовок Authorization: Bearer
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				apiKey = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if apiKey == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		if _, ok := keys[apiKey]; !ok {
			log.WithField("path", c.FullPath()).Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Next()
	}
}

// IdentityMiddleware собирает Principal из заголовков шлюза.
// Отсутствующая роль дает 401, неизвестная 403.
func IdentityMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawRole := c.GetHeader(RoleHeader)
		if rawRole == "" {
			log.Warn("User role missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user role required"})
			return
		}

		role, err := models.ParseRole(rawRole)
		if err != nil {
			log.WithError(err).Warn("Unknown user role")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}

		c.Set(principalKey, models.Principal{
			Role:      role,
			TouristID: strings.TrimSpace(c.GetHeader(TouristIDHeader)),
		})
		c.Next()
	}
}

// principalFrom возвращает Principal, сохраненный IdentityMiddleware
func principalFrom(c *gin.Context) models.Principal {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(models.Principal); ok {
			return p
		}
	}
	return models.Principal{}
}
