package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PropertyStatus is the moderation state of a listing. Only Verified
// listings appear in the public search.
type PropertyStatus string

const (
	PropertyStatusPending  PropertyStatus = "Pending"
	PropertyStatusVerified PropertyStatus = "Verified"
	PropertyStatusRejected PropertyStatus = "Rejected"
)

// ValidPropertyStatus reports whether s is a known moderation state.
func ValidPropertyStatus(s PropertyStatus) bool {
	switch s {
	case PropertyStatusPending, PropertyStatusVerified, PropertyStatusRejected:
		return true
	}
	return false
}

type Property struct {
	ID          string `gorm:"type:char(36);primaryKey" json:"_id"`
	Title       string `gorm:"type:varchar(200);not null" json:"title"`
	Location    string `gorm:"type:varchar(200);not null;index" json:"location"`
	ImageURL    string `gorm:"type:text" json:"image,omitempty"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Prices are stored numeric only; coercion happens at the API
	// boundary, never at read time.
	MinPrice float64 `gorm:"not null" json:"min_price"`
	MaxPrice float64 `gorm:"not null" json:"max_price"`

	Status PropertyStatus `gorm:"type:varchar(20);not null;default:'Pending';index" json:"status"`

	// Owning agent, embedded by value the way the source documents did.
	AgentEmail string `gorm:"type:varchar(320);not null;index" json:"agentEmail"`
	AgentName  string `gorm:"type:varchar(120)" json:"agentName,omitempty"`
	AgentPhoto string `gorm:"type:text" json:"agentPhoto,omitempty"`

	IsAdvertised bool       `gorm:"not null;default:false;index" json:"isAdvertised"`
	AdvertisedAt *time.Time `json:"advertisedAt,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

func (Property) TableName() string {
	return "properties"
}

func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// PriceSpread is the derived sort key for the public listing.
func (p *Property) PriceSpread() float64 {
	return p.MaxPrice - p.MinPrice
}

// ValidatePrices enforces the numeric price invariant at write time.
func (p *Property) ValidatePrices() error {
	if p.MinPrice < 0 || p.MaxPrice < 0 {
		return fmt.Errorf("prices must not be negative")
	}
	if p.MinPrice > p.MaxPrice {
		return fmt.Errorf("min_price %v exceeds max_price %v", p.MinPrice, p.MaxPrice)
	}
	return nil
}
