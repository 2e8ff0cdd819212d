package dto

import (
	"github.com/google/uuid"
	"github.com/myhit051/hatyai-restart-sub000/internal/models"
)

type CreateWasteReportRequest struct {
	WasteType   string              `json:"waste_type"`
	Description string              `json:"description"`
	Severity    string              `json:"severity"`
	Hazardous   bool                `json:"hazardous"`
	Location    string              `json:"location"`
	Coordinates *models.Coordinates `json:"coordinates,omitempty"`
	ImageURL    string              `json:"image_url,omitempty"`
}

type UpdateWasteReportRequest struct {
	WasteType   *string             `json:"waste_type,omitempty"`
	Description *string             `json:"description,omitempty"`
	Severity    *string             `json:"severity,omitempty"`
	Hazardous   *bool               `json:"hazardous,omitempty"`
	Location    *string             `json:"location,omitempty"`
	Coordinates *models.Coordinates `json:"coordinates,omitempty"`
	ImageURL    *string             `json:"image_url,omitempty"`
}

type WasteReportResponse struct {
	ID          uuid.UUID           `json:"id"`
	ReporterID  uuid.UUID           `json:"reporter_id"`
	WasteType   string              `json:"waste_type"`
	Description string              `json:"description"`
	Severity    string              `json:"severity"`
	Hazardous   bool                `json:"hazardous"`
	Status      string              `json:"status"`
	Location    string              `json:"location"`
	Coordinates *models.Coordinates `json:"coordinates,omitempty"`
	ImageURL    string              `json:"image_url,omitempty"`
	CreatedAt   string              `json:"created_at"`
	UpdatedAt   string              `json:"updated_at"`
}

type WasteReportsListResponse struct {
	Reports    []WasteReportResponse `json:"reports"`
	Total      int64                 `json:"total"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
	TotalPages int                   `json:"total_pages"`
}
