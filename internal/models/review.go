package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID         string `gorm:"type:char(36);primaryKey" json:"_id"`
	PropertyID string `gorm:"type:char(36);not null;index" json:"propertyId"`

	AuthorEmail string `gorm:"type:varchar(320);not null;index" json:"authorEmail"`
	AuthorName  string `gorm:"type:varchar(120)" json:"authorName,omitempty"`
	AuthorPhoto string `gorm:"type:text" json:"authorPhoto,omitempty"`

	PropertyTitle string  `gorm:"type:varchar(200)" json:"propertyTitle,omitempty"`
	Comment       string  `gorm:"type:text" json:"comment"`
	Rating        float64 `json:"rating,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
}

func (Review) TableName() string {
	return "reviews"
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
