package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store is one tenant: a public menu reachable at /s/:slug whose orders go to WhatsApp.
type Store struct {
	ID         string     `gorm:"primaryKey;type:VARCHAR(36)" json:"id"`
	OwnerID    string     `gorm:"uniqueIndex;not null" json:"owner_id"` // one store per owner
	Slug       string     `gorm:"uniqueIndex;not null" json:"slug"`
	Name       string     `gorm:"not null" json:"name"`
	WhatsApp   string     `json:"whatsapp"` // kept as entered; normalized when building links
	Categories []Category `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE" json:"categories,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
