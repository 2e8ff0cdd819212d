package dto

import (
	"github.com/google/uuid"
	"github.com/myhit051/hatyai-restart-sub000/internal/models"
)

type CreateJobRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Category    string              `json:"category"`
	Urgency     string              `json:"urgency"`
	Location    string              `json:"location"`
	Coordinates *models.Coordinates `json:"coordinates,omitempty"`
	Images      []string            `json:"images,omitempty"`
}

type UpdateJobRequest struct {
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	Category    *string             `json:"category"`
	Urgency     *string             `json:"urgency"`
	Location    *string             `json:"location"`
	Coordinates *models.Coordinates `json:"coordinates"`
	Images      []string            `json:"images"`
}

type AssignJobRequest struct {
	TechnicianID uuid.UUID `json:"technician_id"`
}

type JobResponse struct {
	ID           uuid.UUID           `json:"id"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	ReporterID   uuid.UUID           `json:"reporter_id"`
	TechnicianID *uuid.UUID          `json:"technician_id,omitempty"`
	Category     string              `json:"category"`
	Urgency      string              `json:"urgency"`
	Status       string              `json:"status"`
	Location     string              `json:"location"`
	Coordinates  *models.Coordinates `json:"coordinates,omitempty"`
	Images       []string            `json:"images"`
	CreatedAt    string              `json:"created_at"`
	UpdatedAt    string              `json:"updated_at"`
}

type JobsListResponse struct {
	Jobs       []JobResponse `json:"jobs"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int           `json:"total_pages"`
}
