package dto

import (
	"github.com/google/uuid"
	"github.com/myhit051/hatyai-restart-sub000/internal/models"
)

type CreateGeneralJobRequest struct {
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Category     string              `json:"category"`
	PostingType  string              `json:"posting_type"`
	WageAmount   int                 `json:"wage_amount"`
	WageType     string              `json:"wage_type"`
	ContactPhone string              `json:"contact_phone"`
	Location     string              `json:"location"`
	Coordinates  *models.Coordinates `json:"coordinates,omitempty"`
	Images       []string            `json:"images,omitempty"`
}

type UpdateGeneralJobRequest struct {
	Title        *string             `json:"title"`
	Description  *string             `json:"description"`
	Category     *string             `json:"category"`
	WageAmount   *int                `json:"wage_amount"`
	WageType     *string             `json:"wage_type"`
	ContactPhone *string             `json:"contact_phone"`
	Location     *string             `json:"location"`
	Coordinates  *models.Coordinates `json:"coordinates"`
	Images       []string            `json:"images"`
}

// GeneralJobResponse deliberately omits the poster's phone; it is only
// handed out through the contact-reveal endpoint.
type GeneralJobResponse struct {
	ID           uuid.UUID           `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	PosterID     uuid.UUID           `json:"poster_id"`
	Category     string              `json:"category"`
	PostingType  string              `json:"posting_type"`
	WageAmount   int                 `json:"wage_amount"`
	WageType     string              `json:"wage_type"`
	Status       string              `json:"status"`
	Location     string              `json:"location"`
	Coordinates  *models.Coordinates `json:"coordinates,omitempty"`
	Images       []string            `json:"images"`
	ViewCount    int                 `json:"view_count"`
	ContactCount int                 `json:"contact_count"`
	CreatedAt    string              `json:"created_at"`
	UpdatedAt    string              `json:"updated_at"`
}

type GeneralJobsListResponse struct {
	Jobs       []GeneralJobResponse `json:"jobs"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
	TotalPages int                  `json:"total_pages"`
}

type ApplyRequest struct {
	Message string `json:"message"`
}

type ApplicationResponse struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"job_id"`
	ApplicantID uuid.UUID `json:"applicant_id"`
	Message     string    `json:"message"`
	CreatedAt   string    `json:"created_at"`
}

type ContactResponse struct {
	Revealed     bool   `json:"revealed"`
	ContactPhone string `json:"contact_phone,omitempty"`
	ContactCount int    `json:"contact_count"`
}

type CategoryResponse struct {
	Slug   string `json:"slug"`
	NameTH string `json:"name_th"`
	NameEN string `json:"name_en"`
}
