package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Job is a flood-damage repair request reported by a resident and optionally
// assigned to a technician.
type Job struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string         `gorm:"size:255;not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	ReporterID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"reporter_id"`
	TechnicianID *uuid.UUID     `gorm:"type:uuid;index" json:"technician_id,omitempty"`
	Category     string         `gorm:"size:50" json:"category"`
	Urgency      string         `gorm:"size:20;not null;default:'medium'" json:"urgency"`
	Status       string         `gorm:"size:20;not null;default:'open';index" json:"status"`
	Location     string         `gorm:"size:255" json:"location"`
	Coordinates  datatypes.JSON `json:"coordinates,omitempty"`
	Images       datatypes.JSON `json:"images,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

const (
	JobOpen       = "open"
	JobInProgress = "in_progress"
	JobCompleted  = "completed"
	JobCancelled  = "cancelled"
)

var JobStatuses = map[string]bool{
	JobOpen: true, JobInProgress: true, JobCompleted: true, JobCancelled: true,
}
