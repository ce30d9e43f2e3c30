package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Wishlist is one saved listing per (email, property). The composite
// unique index is the source of truth for the at-most-one invariant; the
// handler's pre-check only exists for the friendly message.
type Wishlist struct {
	ID         string `gorm:"type:char(36);primaryKey" json:"_id"`
	Email      string `gorm:"type:varchar(320);not null;uniqueIndex:idx_wishlist_email_property" json:"email"`
	PropertyID string `gorm:"type:char(36);not null;uniqueIndex:idx_wishlist_email_property" json:"propertyId"`

	// Display fields copied from the listing at add time.
	Title      string  `gorm:"type:varchar(200)" json:"title,omitempty"`
	Location   string  `gorm:"type:varchar(200)" json:"location,omitempty"`
	ImageURL   string  `gorm:"type:text" json:"image,omitempty"`
	MinPrice   float64 `json:"min_price,omitempty"`
	MaxPrice   float64 `json:"max_price,omitempty"`
	AgentEmail string  `gorm:"type:varchar(320)" json:"agentEmail,omitempty"`
	AgentName  string  `gorm:"type:varchar(120)" json:"agentName,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
}

func (Wishlist) TableName() string {
	return "wishlists"
}

func (w *Wishlist) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}
