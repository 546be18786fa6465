package storefrontcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OpenSession starts a browsing session on a store: an empty cart and a fresh tracker.
func OpenSession(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, err := loadStore(env.DB, c.Param("slug"))
		if err != nil {
			storeLookupFailed(c, env.logger(), err)
			return
		}

		sess := env.Sessions.Open(store.ID, store.Slug)
		env.logger().Debug("session opened",
			zap.String("store_id", store.ID),
			zap.String("session_id", sess.ID))

		c.JSON(http.StatusCreated, gin.H{
			"session_id": sess.ID,
			"store_id":   store.ID,
			"expires_at": sess.ExpiresAt,
		})
	}
}

// MountPage is called by the client once the store page is shown. Only the first call
// for a session records a visit.
func MountPage(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := env.session(c, c.Param("session_id"))
		if !ok {
			return
		}

		tracked := sess.Tracker.TrackVisit(sess.StoreID, sess.Slug)
		c.JSON(http.StatusOK, gin.H{"tracked": tracked})
	}
}

// CloseSession drops a session and its cart.
func CloseSession(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := env.session(c, c.Param("session_id"))
		if !ok {
			return
		}
		env.Sessions.Close(sess.ID)
		c.JSON(http.StatusOK, gin.H{"message": "Session closed"})
	}
}
