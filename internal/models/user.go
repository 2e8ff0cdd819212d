package models

import (
	"time"

	"github.com/google/uuid"
)

// User mirrors an identity-provider account into the local database. The ID
// is assigned by the provider, never generated here.
type User struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string    `gorm:"size:255" json:"name"`
	Email           string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Phone           string    `gorm:"size:32" json:"phone,omitempty"`
	Role            string    `gorm:"size:20;not null;default:'general_user'" json:"role"`
	AvatarURL       string    `gorm:"type:text" json:"avatar_url,omitempty"`
	RoleSyncPending bool      `gorm:"not null;default:false" json:"role_sync_pending"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

const (
	RoleGeneralUser = "general_user"
	RoleTechnician  = "technician"
	RoleAdmin       = "admin"
)

var UserRoles = map[string]bool{
	RoleGeneralUser: true,
	RoleTechnician:  true,
	RoleAdmin:       true,
}
