package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRole is the stored authorization role. Guards compare exact values,
// there is no hierarchy.
type UserRole string

const (
	RoleAdmin     UserRole = "Admin"
	RoleAgent     UserRole = "Agent"
	RoleRequested UserRole = "Requested"
)

// ValidRole reports whether r is one of the closed set of assignable roles.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleAdmin, RoleAgent, RoleRequested:
		return true
	}
	return false
}

// UserStatus tracks the agent-role request flow.
type UserStatus string

const (
	UserStatusRequested UserStatus = "Requested"
	UserStatusVerified  UserStatus = "Verified"
)

type User struct {
	ID       string     `gorm:"type:char(36);primaryKey" json:"_id"`
	Email    string     `gorm:"type:varchar(320);not null;uniqueIndex" json:"email"`
	Name     string     `gorm:"type:varchar(120)" json:"name,omitempty"`
	PhotoURL string     `gorm:"type:text" json:"photoURL,omitempty"`
	Role     UserRole   `gorm:"type:varchar(20);index" json:"role,omitempty"`
	Status   UserStatus `gorm:"type:varchar(20)" json:"status,omitempty"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"timeStamp"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// IsAdmin reports whether the user holds the Admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsAgent reports whether the user holds the Agent role.
func (u *User) IsAgent() bool {
	return u.Role == RoleAgent
}
