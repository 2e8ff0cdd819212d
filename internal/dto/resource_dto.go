package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/myhit051/hatyai-restart-sub000/internal/models"
)

type CreateResourceRequest struct {
	Type        string              `json:"type"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Quantity    int                 `json:"quantity"`
	Unit        string              `json:"unit"`
	DonorID     uuid.UUID           `json:"donor_id"`
	Location    string              `json:"location"`
	Coordinates *models.Coordinates `json:"coordinates,omitempty"`
	Priority    string              `json:"priority"`
	Condition   string              `json:"condition"`
	ExpiresAt   *time.Time          `json:"expires_at,omitempty"`
	Images      []string            `json:"images,omitempty"`
}

type UpdateResourceRequest struct {
	Name        *string             `json:"name"`
	Description *string             `json:"description"`
	Quantity    *int                `json:"quantity"`
	Unit        *string             `json:"unit"`
	Location    *string             `json:"location"`
	Coordinates *models.Coordinates `json:"coordinates"`
	Priority    *string             `json:"priority"`
	Condition   *string             `json:"condition"`
	ExpiresAt   *time.Time          `json:"expires_at"`
	Images      []string            `json:"images"`
}

type ResourceResponse struct {
	ID          uuid.UUID           `json:"id"`
	Type        string              `json:"type"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Quantity    int                 `json:"quantity"`
	Unit        string              `json:"unit"`
	DonorID     uuid.UUID           `json:"donor_id"`
	Location    string              `json:"location"`
	Coordinates *models.Coordinates `json:"coordinates,omitempty"`
	Status      string              `json:"status"`
	Priority    string              `json:"priority"`
	Condition   string              `json:"condition"`
	ExpiresAt   *time.Time          `json:"expires_at,omitempty"`
	Images      []string            `json:"images"`
	CreatedAt   string              `json:"created_at"`
	UpdatedAt   string              `json:"updated_at"`
}

type ResourcesListResponse struct {
	Resources  []ResourceResponse `json:"resources"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
}

type MatchRequest struct {
	ResourceID uuid.UUID `json:"resource_id"`
	NeedID     uuid.UUID `json:"need_id"`
}
