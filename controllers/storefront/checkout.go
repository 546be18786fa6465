package storefrontcontroller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/menu-api/analytics"
	"github.com/junaidrashid-git/menu-api/models"
	"github.com/junaidrashid-git/menu-api/storefront"
	"go.uber.org/zap"
)

// Checkout composes the order message from the session's cart and returns the WhatsApp
// link for it. The client opens the link; nothing is sent from here.
func Checkout(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := env.session(c, c.Query("session_id"))
		if !ok {
			return
		}

		var store models.Store
		if err := env.DB.Where("id = ?", sess.StoreID).First(&store).Error; err != nil {
			storeLookupFailed(c, env.logger(), err)
			return
		}

		draft := sess.Cart().Draft(env.now())
		message := draft.Message(store.Name)
		if message == "" {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Cart is empty"})
			return
		}

		link := env.WhatsApp.BuildDeepLink(store.WhatsApp, message)
		sess.Tracker.TrackInteraction(store.ID, analytics.EventWhatsAppClick, map[string]any{
			"type": analytics.ClickOrder,
		})

		if c.Query("clear") == "true" {
			sess.Update(func(cart storefront.Cart) storefront.Cart { return cart.Clear() })
		}

		env.logger().Info("order handed off to whatsapp",
			zap.String("store_id", store.ID),
			zap.String("session_id", sess.ID),
			zap.Int("lines", len(draft.Lines)),
			zap.String("total", draft.Total.StringFixed(2)))

		c.JSON(http.StatusOK, gin.H{
			"url":             link,
			"message":         message,
			"total":           draft.Total.StringFixed(2),
			"total_formatted": storefront.FormatMoney(draft.Total),
		})
	}
}

// Contact returns a greeting link to the store's WhatsApp without any cart content.
func Contact(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, err := loadStore(env.DB, c.Param("slug"))
		if err != nil {
			storeLookupFailed(c, env.logger(), err)
			return
		}

		message := fmt.Sprintf("Olá! Vim pelo cardápio digital da %s e gostaria de mais informações.", store.Name)
		link := env.WhatsApp.BuildDeepLink(store.WhatsApp, message)

		payload := map[string]any{"type": analytics.ClickContact}
		if sess, ok := env.Sessions.Get(c.Query("session_id")); ok && sess.StoreID == store.ID {
			sess.Tracker.TrackInteraction(store.ID, analytics.EventWhatsAppClick, payload)
		} else {
			env.Sessions.Tracking().NewTracker().TrackInteraction(store.ID, analytics.EventWhatsAppClick, payload)
		}

		c.JSON(http.StatusOK, gin.H{"url": link, "message": message})
	}
}
