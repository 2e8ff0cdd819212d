package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/myhit051/hatyai-restart-sub000/internal/dto"
	"github.com/myhit051/hatyai-restart-sub000/internal/models"
	"gorm.io/gorm"
)

var (
	ErrNeedNotFound            = errors.New("need not found")
	ErrInvalidUrgency          = errors.New("invalid urgency level")
	ErrInvalidVulnerability    = errors.New("invalid vulnerability level")
	ErrInvalidBeneficiaryCount = errors.New("beneficiary count must be at least 1")
)

type NeedService struct {
	db *gorm.DB
}

func NewNeedService(db *gorm.DB) *NeedService {
	return &NeedService{db: db}
}

func (s *NeedService) Create(callerID uuid.UUID, req *dto.CreateNeedRequest) (*dto.NeedResponse, error) {
	// Requests are always filed under the caller's own account.
	if req.RequesterID != uuid.Nil && req.RequesterID != callerID {
		return nil, ErrNotOwner
	}
	if !models.ResourceTypes[req.ResourceType] {
		return nil, ErrInvalidResourceType
	}
	if req.RequiredQuantity < 0 {
		return nil, ErrInvalidQuantity
	}

	urgency := req.Urgency
	if urgency == "" {
		urgency = "medium"
	}
	if !models.PriorityLevels[urgency] {
		return nil, ErrInvalidUrgency
	}

	beneficiaries := req.BeneficiaryCount
	if beneficiaries == 0 {
		beneficiaries = 1
	}
	if beneficiaries < 1 {
		return nil, ErrInvalidBeneficiaryCount
	}

	vulnerability := req.VulnerabilityLevel
	if vulnerability == "" {
		vulnerability = "medium"
	}
	if !models.VulnerabilityLevels[vulnerability] {
		return nil, ErrInvalidVulnerability
	}

	need := models.Need{
		ID:                  uuid.New(),
		RequesterID:         callerID,
		ResourceType:        req.ResourceType,
		RequiredQuantity:    req.RequiredQuantity,
		Unit:                req.Unit,
		Urgency:             urgency,
		Description:         req.Description,
		Location:            req.Location,
		Coordinates:         models.EncodeCoordinates(req.Coordinates),
		SpecialRequirements: req.SpecialRequirements,
		BeneficiaryCount:    beneficiaries,
		VulnerabilityLevel:  vulnerability,
		Status:              models.NeedPending,
	}

	if err := s.db.Create(&need).Error; err != nil {
		return nil, fmt.Errorf("failed to create need: %w", err)
	}

	return mapNeedToResponse(&need), nil
}

func (s *NeedService) List(resourceType, status string, requesterID *uuid.UUID, page, limit int) (*dto.NeedsListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := s.db.Model(&models.Need{})
	if resourceType != "" {
		query = query.Where("resource_type = ?", resourceType)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if requesterID != nil {
		query = query.Where("requester_id = ?", *requesterID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var needs []models.Need
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&needs).Error; err != nil {
		return nil, err
	}

	resp := &dto.NeedsListResponse{
		Needs:      make([]dto.NeedResponse, len(needs)),
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
	for i, n := range needs {
		resp.Needs[i] = *mapNeedToResponse(&n)
	}
	return resp, nil
}

func (s *NeedService) Get(id uuid.UUID) (*dto.NeedResponse, error) {
	var need models.Need
	if err := s.db.First(&need, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNeedNotFound
		}
		return nil, err
	}
	return mapNeedToResponse(&need), nil
}

func (s *NeedService) Update(id uuid.UUID, req *dto.UpdateNeedRequest) (*dto.NeedResponse, error) {
	updates := map[string]interface{}{}

	if req.RequiredQuantity != nil {
		if *req.RequiredQuantity < 0 {
			return nil, ErrInvalidQuantity
		}
		updates["required_quantity"] = *req.RequiredQuantity
	}
	if req.Unit != nil {
		updates["unit"] = *req.Unit
	}
	if req.Urgency != nil {
		if !models.PriorityLevels[*req.Urgency] {
			return nil, ErrInvalidUrgency
		}
		updates["urgency"] = *req.Urgency
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Coordinates != nil {
		updates["coordinates"] = models.EncodeCoordinates(req.Coordinates)
	}
	if req.SpecialRequirements != nil {
		updates["special_requirements"] = *req.SpecialRequirements
	}
	if req.BeneficiaryCount != nil {
		if *req.BeneficiaryCount < 1 {
			return nil, ErrInvalidBeneficiaryCount
		}
		updates["beneficiary_count"] = *req.BeneficiaryCount
	}
	if req.VulnerabilityLevel != nil {
		if !models.VulnerabilityLevels[*req.VulnerabilityLevel] {
			return nil, ErrInvalidVulnerability
		}
		updates["vulnerability_level"] = *req.VulnerabilityLevel
	}

	if len(updates) == 0 {
		return s.Get(id)
	}

	result := s.db.Model(&models.Need{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNeedNotFound
	}
	return s.Get(id)
}

// UpdateStatus writes the new status without checking the current one.
func (s *NeedService) UpdateStatus(id uuid.UUID, status string) (*dto.NeedResponse, error) {
	if !models.NeedStatuses[status] {
		return nil, ErrInvalidStatus
	}
	result := s.db.Model(&models.Need{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNeedNotFound
	}
	return s.Get(id)
}

func (s *NeedService) Delete(id uuid.UUID) error {
	result := s.db.Where("id = ?", id).Delete(&models.Need{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNeedNotFound
	}
	return nil
}

func mapNeedToResponse(n *models.Need) *dto.NeedResponse {
	coords, _ := models.DecodeCoordinates(n.Coordinates)
	return &dto.NeedResponse{
		ID:                  n.ID,
		RequesterID:         n.RequesterID,
		ResourceType:        n.ResourceType,
		RequiredQuantity:    n.RequiredQuantity,
		Unit:                n.Unit,
		Urgency:             n.Urgency,
		Description:         n.Description,
		Location:            n.Location,
		Coordinates:         coords,
		SpecialRequirements: n.SpecialRequirements,
		BeneficiaryCount:    n.BeneficiaryCount,
		VulnerabilityLevel:  n.VulnerabilityLevel,
		Status:              n.Status,
		MatchedResourceID:   n.MatchedResourceID,
		CreatedAt:           n.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           n.UpdatedAt.Format(time.RFC3339),
	}
}
