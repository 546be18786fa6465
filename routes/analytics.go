package routes

import (
	"github.com/gin-gonic/gin"
	analyticscontroller "github.com/junaidrashid-git/menu-api/controllers/analytics"
	"github.com/junaidrashid-git/menu-api/middleware"
)

// SetupAnalyticsRoutes registers the ingest endpoint remote trackers post to.
func SetupAnalyticsRoutes(r *gin.Engine, deps Deps) {
	r.POST("/analytics", middleware.ValidateAPIKey(deps.APIKey), analyticscontroller.IngestEvent(deps.Ingest, deps.Logger))
}
