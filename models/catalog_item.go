package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogItem is a sellable entry of a store's menu. Price, Archived and Active are
// nullable: a nil price means "price not set" and nil flags mean "not specified".
type CatalogItem struct {
	ID          string    `gorm:"primaryKey;type:VARCHAR(36)" json:"id"`
	StoreID     string    `gorm:"type:VARCHAR(36);index;not null" json:"store_id"`
	CategoryID  string    `gorm:"type:VARCHAR(36);index;not null" json:"category_id"`
	Name        string    `gorm:"not null" json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `gorm:"type:NUMERIC(12,2)" json:"price"`
	Archived    *bool     `json:"archived"`
	Active      *bool     `json:"active"`
	Position    int       `gorm:"default:0" json:"position"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (i *CatalogItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
