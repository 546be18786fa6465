package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/menu-api/analytics"
	"github.com/junaidrashid-git/menu-api/auth"
	"github.com/junaidrashid-git/menu-api/storefront"
	"github.com/junaidrashid-git/menu-api/whatsapp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps is everything the route groups hand to their controllers.
type Deps struct {
	DB       *gorm.DB
	Logger   *zap.Logger
	Sessions *storefront.Sessions
	WhatsApp whatsapp.Dispatcher
	Location *time.Location

	// Ingest stores events posted to /analytics; Feed pushes them to owner dashboards.
	Ingest analytics.Sink
	Feed   *analytics.Feed

	JWTSecret  string
	APIKey     string
	OwnerLogin auth.OwnerLogin
}

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// 1️⃣ Public storefront (session based, no auth)
	SetupStorefrontRoutes(r, deps)

	// 2️⃣ Owner sign-in
	SetupAuthRoutes(r, deps)

	// 3️⃣ Owner dashboard (JWT-protected)
	SetupOwnerRoutes(r, deps)

	// 4️⃣ Super admin (API-Key-protected)
	SetupAdminRoutes(r, deps)

	// 5️⃣ Analytics ingest (API-Key-protected)
	SetupAnalyticsRoutes(r, deps)
}
