package dto

import (
	"github.com/google/uuid"
	"github.com/myhit051/hatyai-restart-sub000/internal/models"
)

type CreateNeedRequest struct {
	RequesterID         uuid.UUID           `json:"requester_id"`
	ResourceType        string              `json:"resource_type"`
	RequiredQuantity    int                 `json:"required_quantity"`
	Unit                string              `json:"unit"`
	Urgency             string              `json:"urgency"`
	Description         string              `json:"description"`
	Location            string              `json:"location"`
	Coordinates         *models.Coordinates `json:"coordinates,omitempty"`
	SpecialRequirements string              `json:"special_requirements,omitempty"`
	BeneficiaryCount    int                 `json:"beneficiary_count"`
	VulnerabilityLevel  string              `json:"vulnerability_level"`
}

type UpdateNeedRequest struct {
	RequiredQuantity    *int                `json:"required_quantity"`
	Unit                *string             `json:"unit"`
	Urgency             *string             `json:"urgency"`
	Description         *string             `json:"description"`
	Location            *string             `json:"location"`
	Coordinates         *models.Coordinates `json:"coordinates"`
	SpecialRequirements *string             `json:"special_requirements"`
	BeneficiaryCount    *int                `json:"beneficiary_count"`
	VulnerabilityLevel  *string             `json:"vulnerability_level"`
}

type NeedResponse struct {
	ID                  uuid.UUID           `json:"id"`
	RequesterID         uuid.UUID           `json:"requester_id"`
	ResourceType        string              `json:"resource_type"`
	RequiredQuantity    int                 `json:"required_quantity"`
	Unit                string              `json:"unit"`
	Urgency             string              `json:"urgency"`
	Description         string              `json:"description"`
	Location            string              `json:"location"`
	Coordinates         *models.Coordinates `json:"coordinates,omitempty"`
	SpecialRequirements string              `json:"special_requirements,omitempty"`
	BeneficiaryCount    int                 `json:"beneficiary_count"`
	VulnerabilityLevel  string              `json:"vulnerability_level"`
	Status              string              `json:"status"`
	MatchedResourceID   *uuid.UUID          `json:"matched_resource_id,omitempty"`
	CreatedAt           string              `json:"created_at"`
	UpdatedAt           string              `json:"updated_at"`
}

type NeedsListResponse struct {
	Needs      []NeedResponse `json:"needs"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}

type MatchesResponse struct {
	Need    NeedResponse       `json:"need"`
	Matches []ResourceResponse `json:"matches"`
	Count   int                `json:"count"`
}
