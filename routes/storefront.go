package routes

import (
	"github.com/gin-gonic/gin"
	storefrontcontroller "github.com/junaidrashid-git/menu-api/controllers/storefront"
)

// SetupStorefrontRoutes registers the public "/s/:slug/*" endpoints used by the menu page.
func SetupStorefrontRoutes(r *gin.Engine, deps Deps) {
	env := &storefrontcontroller.Env{
		DB:       deps.DB,
		Sessions: deps.Sessions,
		WhatsApp: deps.WhatsApp,
		Location: deps.Location,
		Logger:   deps.Logger,
	}

	store := r.Group("/s/:slug")
	{
		store.GET("", storefrontcontroller.GetStorePage(env))
		store.POST("/contact", storefrontcontroller.Contact(env))

		// Browsing sessions
		store.POST("/sessions", storefrontcontroller.OpenSession(env))
		store.POST("/sessions/:session_id/mount", storefrontcontroller.MountPage(env))
		store.DELETE("/sessions/:session_id", storefrontcontroller.CloseSession(env))

		// Cart
		store.GET("/cart", storefrontcontroller.GetCart(env))
		store.POST("/cart/items", storefrontcontroller.AddToCart(env))
		store.DELETE("/cart/items/:item_id", storefrontcontroller.RemoveFromCart(env))
		store.DELETE("/cart", storefrontcontroller.ClearCart(env))

		// WhatsApp hand-off
		store.POST("/checkout", storefrontcontroller.Checkout(env))
	}
}
