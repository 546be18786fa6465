package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/junaidrashid-git/menu-api/controllers/admin"
	"github.com/junaidrashid-git/menu-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key middleware.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey(deps.APIKey))
	{
		// ─────────── Owner Approval Workflow ───────────
		owners := adminGroup.Group("/owners")
		{
			owners.GET("", adminController.GetAllOwners(deps.DB))
			owners.GET("/pending", adminController.ListPendingOwners(deps.DB))
			owners.POST("/approve", adminController.ApproveOwner(deps.DB))
			owners.POST("/reject", adminController.RejectOwner(deps.DB))
		}
	}
}
