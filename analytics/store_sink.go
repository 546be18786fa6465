package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/junaidrashid-git/menu-api/models"
	"gorm.io/gorm"
)

// StoreSink persists events and forwards them to the live feed. It backs both the
// in-process tracker and the POST /analytics ingest endpoint.
type StoreSink struct {
	DB   *gorm.DB
	Feed *Feed
}

func (s *StoreSink) Send(ctx context.Context, event Event) error {
	record := Record(event)
	if err := s.DB.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("store analytics event: %w", err)
	}
	if s.Feed != nil {
		s.Feed.Publish(record)
	}
	return nil
}

// Record maps a wire event onto its table row; the receiver's clock stamps CreatedAt.
func Record(event Event) models.AnalyticsEvent {
	kind, _ := event.Data["type"].(string)
	return models.AnalyticsEvent{
		StoreID:   event.StoreID,
		Event:     event.Event,
		Kind:      kind,
		Data:      event.Data,
		CreatedAt: time.Now(),
	}
}

type Summary struct {
	StoreID        string           `json:"store_id"`
	Since          time.Time        `json:"since"`
	Visits         int64            `json:"visits"`
	WhatsAppClicks int64            `json:"whatsapp_clicks"`
	ClicksByType   map[string]int64 `json:"clicks_by_type"`
}

// Summarize counts a store's visits and WhatsApp clicks recorded since the given time.
func Summarize(ctx context.Context, db *gorm.DB, storeID string, since time.Time) (Summary, error) {
	var rows []struct {
		Event string
		Kind  string
		Total int64
	}
	err := db.WithContext(ctx).
		Model(&models.AnalyticsEvent{}).
		Select("event, kind, COUNT(*) AS total").
		Where("store_id = ? AND created_at >= ?", storeID, since).
		Group("event, kind").
		Scan(&rows).Error
	if err != nil {
		return Summary{}, fmt.Errorf("summarize analytics: %w", err)
	}

	summary := Summary{StoreID: storeID, Since: since, ClicksByType: map[string]int64{}}
	for _, row := range rows {
		switch row.Event {
		case EventVisit:
			summary.Visits += row.Total
		case EventWhatsAppClick:
			summary.WhatsAppClicks += row.Total
			kind := row.Kind
			if kind == "" {
				kind = "unknown"
			}
			summary.ClicksByType[kind] += row.Total
		}
	}
	return summary, nil
}
