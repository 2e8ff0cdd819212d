package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Resource is a donor-supplied quantity of a good available for distribution.
type Resource struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Type        string         `gorm:"size:32;not null;index" json:"type"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Quantity    int            `gorm:"not null;check:quantity >= 0" json:"quantity"`
	Unit        string         `gorm:"size:50" json:"unit"`
	DonorID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"donor_id"`
	Location    string         `gorm:"size:255" json:"location"`
	Coordinates datatypes.JSON `json:"coordinates,omitempty"`
	Status      string         `gorm:"size:20;not null;default:'available';index" json:"status"`
	Priority    string         `gorm:"size:20;not null;default:'medium'" json:"priority"`
	Condition   string         `gorm:"size:20;not null;default:'good'" json:"condition"`
	ExpiresAt   *time.Time     `json:"expires_at,omitempty"`
	Images      datatypes.JSON `json:"images,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (r *Resource) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

const (
	ResourceAvailable   = "available"
	ResourceAssigned    = "assigned"
	ResourceDistributed = "distributed"
	ResourceExpired     = "expired"
)

var ResourceTypes = map[string]bool{
	"food": true, "water": true, "medicine": true, "shelter": true,
	"clothing": true, "tools": true, "construction": true, "other": true,
}

var ResourceStatuses = map[string]bool{
	ResourceAvailable: true, ResourceAssigned: true,
	ResourceDistributed: true, ResourceExpired: true,
}

var ResourceConditions = map[string]bool{
	"excellent": true, "good": true, "fair": true, "poor": true,
}

// PriorityLevels doubles as the need-urgency scale; matching compares the
// two fields directly.
var PriorityLevels = map[string]bool{
	"low": true, "medium": true, "high": true, "critical": true,
}
