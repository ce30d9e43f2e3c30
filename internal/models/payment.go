package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment is the immutable record written once at payment confirmation.
type Payment struct {
	ID         string `gorm:"type:char(36);primaryKey" json:"_id"`
	Email      string `gorm:"type:varchar(320);not null;index" json:"email"`
	AgentEmail string `gorm:"type:varchar(320);not null;index" json:"agentEmail"`
	PropertyID string `gorm:"type:char(36);not null" json:"propertyId"`
	OfferID    string `gorm:"type:char(36)" json:"offerId,omitempty"`

	PropertyTitle string  `gorm:"type:varchar(200)" json:"propertyTitle,omitempty"`
	Amount        float64 `gorm:"not null" json:"amount"`
	TransactionID string  `gorm:"type:varchar(120)" json:"transactionId,omitempty"`

	PaidAt time.Time `gorm:"not null;autoCreateTime" json:"paidAt"`
}

func (Payment) TableName() string {
	return "payments"
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
