package models

import "time"

// Owner is a store owner signed in through Google. New owners wait for super-admin approval.
type Owner struct {
	ID        string `gorm:"primaryKey" json:"id"` // Firebase UID
	Email     string `gorm:"unique;not null" json:"email"`
	Name      string `json:"name"`
	Picture   string `json:"picture"`
	Approved  bool   `gorm:"default:false" json:"approved"`
	CreatedAt time.Time
}
