package api

import (
	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/smart-selector/config"
	"github.com/gcbaptista/smart-selector/services"
)

// NewRouter builds the service router: gin's default logger and recovery,
// the request middleware configured by settings, and every route.
func NewRouter(settings config.ServerSettings, associator services.Associator, tracker services.EventTracker) *gin.Engine {
	settings.ApplyDefaults()

	router := gin.Default()
	router.Use(
		RequestIDMiddleware(),
		CORSMiddleware(),
		RateLimitMiddleware(settings.RateLimit, settings.RateBurst),
		RequestSizeLimitMiddleware(settings.MaxRequestBytes),
	)

	SetupRoutes(router, associator, tracker)
	return router
}
