package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// WasteReport is a post-flood debris or hazard sighting.
type WasteReport struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ReporterID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"reporter_id"`
	WasteType   string         `gorm:"size:32;not null" json:"waste_type"`
	Description string         `gorm:"type:text" json:"description"`
	Severity    string         `gorm:"size:20;not null;default:'medium'" json:"severity"`
	Hazardous   bool           `gorm:"not null;default:false" json:"hazardous"`
	Status      string         `gorm:"size:20;not null;default:'reported';index" json:"status"`
	Location    string         `gorm:"size:255" json:"location"`
	Coordinates datatypes.JSON `json:"coordinates,omitempty"`
	ImageURL    string         `gorm:"type:text" json:"image_url,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (w *WasteReport) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

const (
	WasteReported     = "reported"
	WasteAcknowledged = "acknowledged"
	WasteInProgress   = "in_progress"
	WasteCleared      = "cleared"
)

var WasteStatuses = map[string]bool{
	WasteReported: true, WasteAcknowledged: true,
	WasteInProgress: true, WasteCleared: true,
}

var WasteTypes = map[string]bool{
	"general": true, "construction": true, "hazardous": true,
	"electronic": true, "organic": true,
}

var WasteSeverities = map[string]bool{
	"low": true, "medium": true, "high": true,
}
