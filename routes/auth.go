package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/menu-api/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/google-owner", auth.GoogleOwnerLogin(deps.DB, deps.OwnerLogin))
	}
}
