package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnalyticsEvent struct {
	ID      string `gorm:"primaryKey;type:VARCHAR(36)" json:"id"`
	StoreID string `gorm:"type:VARCHAR(36);index;not null" json:"store_id"`
	Event   string `gorm:"type:VARCHAR(32);index;not null" json:"event"`
	// Kind mirrors data["type"] so summaries can group without JSON operators.
	Kind      string         `gorm:"type:VARCHAR(32)" json:"kind,omitempty"`
	Data      map[string]any `gorm:"serializer:json;type:text" json:"data"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
}

func (e *AnalyticsEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
