package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gcbaptista/smart-selector/config"
	"github.com/gcbaptista/smart-selector/internal/association"
	"github.com/gcbaptista/smart-selector/model"
	"github.com/gcbaptista/smart-selector/services"
)

// API holds dependencies for API handlers.
type API struct {
	associator services.Associator
	analytics  services.EventTracker
}

// NewAPI creates a new API handler structure.
func NewAPI(associator services.Associator, tracker services.EventTracker) *API {
	return &API{
		associator: associator,
		analytics:  tracker,
	}
}

// SetupRoutes defines all the API routes for the association service.
func SetupRoutes(router *gin.Engine, associator services.Associator, tracker services.EventTracker) {
	apiHandler := NewAPI(associator, tracker)

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Analytics route
	router.GET("/analytics", apiHandler.GetAnalyticsHandler)

	// Matcher settings in effect
	router.GET("/settings", apiHandler.GetSettingsHandler)

	// Association routes
	router.POST("/associate", apiHandler.AssociateHandler)
	router.POST("/keywords", apiHandler.KeywordsHandler)
}

// AssociateHandler handles one association request.
// Request Body: {"strings": [...], "files": [...]}
// Replies 200 with one chosen file per query string, or 400 with a format error.
func (api *API) AssociateHandler(c *gin.Context) {
	start := time.Now()

	payload, ok := ReadRawBody(c)
	if !ok {
		return
	}

	reply := api.associator.Handle(payload)
	api.trackReply(c, reply, time.Since(start))

	if !reply.OK() {
		SendFormatError(c, FormatErrorResult(reply.Err))
		return
	}

	log.Printf("Associated %d query strings against %d files", len(reply.Associations), len(reply.Request.Files))
	c.JSON(http.StatusOK, reply.Associations)
}

// KeywordsHandler returns the distinct subtokens of the given files.
// Request Body: {"files": [...]}
func (api *API) KeywordsHandler(c *gin.Context) {
	payload, ok := ReadRawBody(c)
	if !ok {
		return
	}

	req, err := association.ParseKeywordsRequest(payload)
	if err != nil {
		log.Printf("Error: Keywords request contained improper structure: %v", err)
		SendFormatError(c, FormatErrorResult(err))
		return
	}

	keywords := api.associator.Keywords(req.Files)
	c.JSON(http.StatusOK, model.KeywordsResponse{
		Keywords: keywords,
		Count:    len(keywords),
	})
}

// GetSettingsHandler returns the matcher settings in effect.
func (api *API) GetSettingsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, struct {
		Matcher config.MatcherSettings `json:"matcher"`
	}{Matcher: api.associator.Settings()})
}

// trackReply records the outcome of an association request for analytics.
func (api *API) trackReply(c *gin.Context, reply services.Reply, elapsed time.Duration) {
	event := model.MatchEvent{
		RequestID:    requestID(c),
		FormatError:  !reply.OK(),
		ResponseTime: elapsed,
		Timestamp:    time.Now(),
	}

	if reply.OK() {
		event.CandidateCount = len(reply.Request.Files)
		event.Queries = make([]string, 0, len(reply.Associations))
		for query, chosen := range reply.Associations {
			event.Queries = append(event.Queries, query)
			if chosen == model.DefaultChoice {
				event.DefaultCount++
			} else {
				event.MatchedCount++
			}
		}
	}

	if err := api.analytics.TrackMatchEvent(event); err != nil {
		log.Printf("Warning: Failed to track match event: %v", err)
	}
}

func requestID(c *gin.Context) string {
	if value, exists := c.Get(requestIDKey); exists {
		if id, ok := value.(string); ok {
			return id
		}
	}
	return uuid.New().String()
}
