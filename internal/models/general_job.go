package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GeneralJob is a board posting: someone offering work (hiring) or offering
// labor (seeking). View and contact counters only ever grow.
type GeneralJob struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string         `gorm:"size:255;not null" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	PosterID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"poster_id"`
	CategorySlug string         `gorm:"size:50;index" json:"category"`
	PostingType  string         `gorm:"size:10;not null;index" json:"posting_type"`
	WageAmount   int            `gorm:"not null;default:0" json:"wage_amount"`
	WageType     string         `gorm:"size:20" json:"wage_type"`
	ContactPhone string         `gorm:"size:32" json:"contact_phone"`
	Status       string         `gorm:"size:20;not null;default:'open';index" json:"status"`
	Location     string         `gorm:"size:255" json:"location"`
	Coordinates  datatypes.JSON `json:"coordinates,omitempty"`
	Images       datatypes.JSON `json:"images,omitempty"`
	ViewCount    int            `gorm:"not null;default:0" json:"view_count"`
	ContactCount int            `gorm:"not null;default:0" json:"contact_count"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (g *GeneralJob) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

const (
	PostingHiring  = "hiring"
	PostingSeeking = "seeking"
)

var PostingTypes = map[string]bool{
	PostingHiring: true, PostingSeeking: true,
}

var WageTypes = map[string]bool{
	"hourly": true, "daily": true, "monthly": true, "lump_sum": true,
}

// JobCategory is one row of the seeded posting catalog.
type JobCategory struct {
	Slug      string    `gorm:"size:50;primaryKey" json:"slug"`
	NameTH    string    `gorm:"size:100;not null" json:"name_th"`
	NameEN    string    `gorm:"size:100;not null" json:"name_en"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// JobApplication records one user applying to one posting.
type JobApplication struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	JobID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_job_applications_job_user" json:"job_id"`
	ApplicantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_job_applications_job_user" json:"applicant_id"`
	Message     string    `gorm:"type:text" json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}

func (a *JobApplication) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// JobContact records a contact reveal. The unique pair index is what makes
// the reveal-and-increment write race-free.
type JobContact struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	JobID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_job_contacts_job_user" json:"job_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_job_contacts_job_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (jc *JobContact) BeforeCreate(tx *gorm.DB) error {
	if jc.ID == uuid.Nil {
		jc.ID = uuid.New()
	}
	return nil
}
