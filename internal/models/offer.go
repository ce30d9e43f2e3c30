package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OfferStatus is the negotiation state of a buyer's offer.
type OfferStatus string

const (
	OfferStatusPending  OfferStatus = "pending"
	OfferStatusAccepted OfferStatus = "accepted"
	OfferStatusRejected OfferStatus = "rejected"
	OfferStatusBought   OfferStatus = "bought"
)

// ValidOfferDecision reports whether s is a state an agent may set
// through the status route.
func ValidOfferDecision(s OfferStatus) bool {
	return s == OfferStatusAccepted || s == OfferStatusRejected
}

// Offer is one bid per (email, property); the composite unique index
// enforces the invariant, mirroring Wishlist.
type Offer struct {
	ID         string `gorm:"type:char(36);primaryKey" json:"_id"`
	Email      string `gorm:"type:varchar(320);not null;uniqueIndex:idx_offer_email_property" json:"email"`
	PropertyID string `gorm:"type:char(36);not null;uniqueIndex:idx_offer_email_property" json:"propertyId"`

	BuyerName  string `gorm:"type:varchar(120)" json:"buyerName,omitempty"`
	AgentEmail string `gorm:"type:varchar(320);not null;index" json:"agentEmail"`

	PropertyTitle    string `gorm:"type:varchar(200)" json:"propertyTitle,omitempty"`
	PropertyLocation string `gorm:"type:varchar(200)" json:"propertyLocation,omitempty"`

	Amount float64     `gorm:"not null" json:"amount"`
	Status OfferStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	OfferDate time.Time `gorm:"not null;autoCreateTime" json:"offerDate"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

func (Offer) TableName() string {
	return "offers"
}

func (o *Offer) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
