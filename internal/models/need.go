package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Need is a requester's outstanding request for a quantity of a resource type.
type Need struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	RequesterID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"requester_id"`
	ResourceType        string         `gorm:"size:32;not null;index" json:"resource_type"`
	RequiredQuantity    int            `gorm:"not null;check:required_quantity >= 0" json:"required_quantity"`
	Unit                string         `gorm:"size:50" json:"unit"`
	Urgency             string         `gorm:"size:20;not null;default:'medium'" json:"urgency"`
	Description         string         `gorm:"type:text" json:"description"`
	Location            string         `gorm:"size:255" json:"location"`
	Coordinates         datatypes.JSON `json:"coordinates,omitempty"`
	SpecialRequirements string         `gorm:"type:text" json:"special_requirements,omitempty"`
	BeneficiaryCount    int            `gorm:"not null;default:1;check:beneficiary_count >= 1" json:"beneficiary_count"`
	VulnerabilityLevel  string         `gorm:"size:20;not null;default:'medium'" json:"vulnerability_level"`
	Status              string         `gorm:"size:20;not null;default:'pending';index" json:"status"`
	MatchedResourceID   *uuid.UUID     `gorm:"type:uuid" json:"matched_resource_id,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

func (n *Need) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

const (
	NeedPending   = "pending"
	NeedMatched   = "matched"
	NeedFulfilled = "fulfilled"
)

var NeedStatuses = map[string]bool{
	NeedPending: true, NeedMatched: true, NeedFulfilled: true,
}

var VulnerabilityLevels = map[string]bool{
	"low": true, "medium": true, "high": true,
}
