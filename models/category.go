package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID       string        `gorm:"primaryKey;type:VARCHAR(36)" json:"id"`
	StoreID  string        `gorm:"type:VARCHAR(36);index;not null" json:"store_id"`
	Name     string        `gorm:"not null" json:"name"`
	Position int           `gorm:"default:0" json:"position"`
	Items    []CatalogItem `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
