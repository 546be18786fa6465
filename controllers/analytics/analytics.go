package analyticscontroller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/menu-api/analytics"
	storecontroller "github.com/junaidrashid-git/menu-api/controllers/store"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultSummaryDays = 30
	maxSummaryDays     = 365
)

// IngestEvent is the receiving end of the analytics collaborator: remote trackers post
// {storeId, event, data} here and the event is stored and pushed to live dashboards.
func IngestEvent(sink analytics.Sink, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		var event analytics.Event
		if err := c.ShouldBindJSON(&event); err != nil || event.StoreID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "storeId and event are required"})
			return
		}
		if !analytics.IsKnownEvent(event.Event) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown event"})
			return
		}
		if event.Data == nil {
			event.Data = map[string]any{}
		}

		if err := sink.Send(c.Request.Context(), event); err != nil {
			logger.Error("failed to store analytics event",
				zap.String("store_id", event.StoreID),
				zap.String("event", event.Event),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store event"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Event recorded"})
	}
}

// GetSummary reports the owner's visits and WhatsApp clicks over the last ?days= days.
func GetSummary(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := storecontroller.CurrentStore(c, db)
		if !ok {
			return
		}

		days := defaultSummaryDays
		if v := c.Query("days"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 || n > maxSummaryDays {
				c.JSON(http.StatusBadRequest, gin.H{"error": "days must be between 1 and 365"})
				return
			}
			days = n
		}

		since := time.Now().AddDate(0, 0, -days)
		summary, err := analytics.Summarize(c.Request.Context(), db, store.ID, since)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to summarize analytics"})
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

// LiveFeed upgrades to a websocket that receives every event stored for the owner's store.
func LiveFeed(db *gorm.DB, feed *analytics.Feed, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		store, ok := storecontroller.CurrentStore(c, db)
		if !ok {
			return
		}
		if err := feed.Serve(c.Writer, c.Request, store.ID); err != nil {
			logger.Debug("live feed upgrade failed", zap.String("store_id", store.ID), zap.Error(err))
		}
	}
}
