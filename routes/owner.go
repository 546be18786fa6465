package routes

import (
	"github.com/gin-gonic/gin"
	analyticscontroller "github.com/junaidrashid-git/menu-api/controllers/analytics"
	productcontroller "github.com/junaidrashid-git/menu-api/controllers/product"
	storecontroller "github.com/junaidrashid-git/menu-api/controllers/store"
	"github.com/junaidrashid-git/menu-api/middleware"
)

// SetupOwnerRoutes registers all "/owner/*" endpoints. Requires JWT middleware.
func SetupOwnerRoutes(r *gin.Engine, deps Deps) {
	ownerGroup := r.Group("/owner")
	ownerGroup.Use(middleware.ValidateToken(deps.JWTSecret))
	{
		// ──────────────── Store Settings ────────────────
		ownerGroup.GET("/store", storecontroller.GetStore(deps.DB))
		ownerGroup.POST("/store", storecontroller.CreateStore(deps.DB))
		ownerGroup.PUT("/store", storecontroller.UpdateStore(deps.DB))

		// ──────────────── Categories ────────────────
		categories := ownerGroup.Group("/categories")
		{
			categories.GET("", productcontroller.GetAllCategories(deps.DB))
			categories.POST("", productcontroller.CreateCategory(deps.DB))
			categories.PUT("/:id", productcontroller.UpdateCategory(deps.DB))
			categories.DELETE("/:id", productcontroller.DeleteCategory(deps.DB))
		}

		// ──────────────── Items ────────────────
		items := ownerGroup.Group("/items")
		{
			items.GET("", productcontroller.GetItems(deps.DB))
			items.POST("", productcontroller.CreateItem(deps.DB))
			items.POST("/import-excel", productcontroller.ImportItemsFromExcel(deps.DB))
			items.GET("/export-excel", productcontroller.ExportItemsToExcel(deps.DB))
			items.GET("/:id", productcontroller.GetItemByID(deps.DB))
			items.PUT("/:id", productcontroller.UpdateItem(deps.DB))
			items.PUT("/:id/archive", productcontroller.ArchiveItem(deps.DB))
			items.DELETE("/:id", productcontroller.DeleteItem(deps.DB))
		}

		// ──────────────── Analytics ────────────────
		ownerGroup.GET("/analytics/summary", analyticscontroller.GetSummary(deps.DB))
		ownerGroup.GET("/analytics/live", analyticscontroller.LiveFeed(deps.DB, deps.Feed, deps.Logger))
	}
}
