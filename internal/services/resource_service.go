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
	ErrResourceNotFound    = errors.New("resource not found")
	ErrInvalidResourceType = errors.New("invalid resource type")
	ErrInvalidQuantity     = errors.New("quantity must be at least 0")
	ErrInvalidPriority     = errors.New("invalid priority level")
	ErrInvalidCondition    = errors.New("invalid condition")
	ErrInvalidStatus       = errors.New("invalid status value")
	ErrNameRequired        = errors.New("name is required")
	ErrNotOwner            = errors.New("cannot act on behalf of another user")
)

type ResourceService struct {
	db *gorm.DB
}

func NewResourceService(db *gorm.DB) *ResourceService {
	return &ResourceService{db: db}
}

func (s *ResourceService) Create(callerID uuid.UUID, req *dto.CreateResourceRequest) (*dto.ResourceResponse, error) {
	// Donations are always filed under the caller's own account.
	if req.DonorID != uuid.Nil && req.DonorID != callerID {
		return nil, ErrNotOwner
	}
	if req.Name == "" {
		return nil, ErrNameRequired
	}
	if !models.ResourceTypes[req.Type] {
		return nil, ErrInvalidResourceType
	}
	if req.Quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	priority := req.Priority
	if priority == "" {
		priority = "medium"
	}
	if !models.PriorityLevels[priority] {
		return nil, ErrInvalidPriority
	}

	condition := req.Condition
	if condition == "" {
		condition = "good"
	}
	if !models.ResourceConditions[condition] {
		return nil, ErrInvalidCondition
	}

	resource := models.Resource{
		ID:          uuid.New(),
		Type:        req.Type,
		Name:        req.Name,
		Description: req.Description,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		DonorID:     callerID,
		Location:    req.Location,
		Coordinates: models.EncodeCoordinates(req.Coordinates),
		Status:      models.ResourceAvailable,
		Priority:    priority,
		Condition:   condition,
		ExpiresAt:   req.ExpiresAt,
		Images:      models.EncodeStringList(req.Images),
	}

	if err := s.db.Create(&resource).Error; err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	return mapResourceToResponse(&resource), nil
}

func (s *ResourceService) List(resourceType, status string, donorID *uuid.UUID, page, limit int) (*dto.ResourcesListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := s.db.Model(&models.Resource{})
	if resourceType != "" {
		query = query.Where("type = ?", resourceType)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if donorID != nil {
		query = query.Where("donor_id = ?", *donorID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var resources []models.Resource
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&resources).Error; err != nil {
		return nil, err
	}

	resp := &dto.ResourcesListResponse{
		Resources:  make([]dto.ResourceResponse, len(resources)),
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
	for i, r := range resources {
		resp.Resources[i] = *mapResourceToResponse(&r)
	}
	return resp, nil
}

func (s *ResourceService) Get(id uuid.UUID) (*dto.ResourceResponse, error) {
	var resource models.Resource
	if err := s.db.First(&resource, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, err
	}
	return mapResourceToResponse(&resource), nil
}

func (s *ResourceService) Update(id uuid.UUID, req *dto.UpdateResourceRequest) (*dto.ResourceResponse, error) {
	updates := map[string]interface{}{}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, ErrNameRequired
		}
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return nil, ErrInvalidQuantity
		}
		updates["quantity"] = *req.Quantity
	}
	if req.Unit != nil {
		updates["unit"] = *req.Unit
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Coordinates != nil {
		updates["coordinates"] = models.EncodeCoordinates(req.Coordinates)
	}
	if req.Priority != nil {
		if !models.PriorityLevels[*req.Priority] {
			return nil, ErrInvalidPriority
		}
		updates["priority"] = *req.Priority
	}
	if req.Condition != nil {
		if !models.ResourceConditions[*req.Condition] {
			return nil, ErrInvalidCondition
		}
		updates["condition"] = *req.Condition
	}
	if req.ExpiresAt != nil {
		updates["expires_at"] = *req.ExpiresAt
	}
	if req.Images != nil {
		updates["images"] = models.EncodeStringList(req.Images)
	}

	if len(updates) == 0 {
		return s.Get(id)
	}

	result := s.db.Model(&models.Resource{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrResourceNotFound
	}
	return s.Get(id)
}

// UpdateStatus writes the new status without checking the current one.
// Skipping a state (available straight to distributed) is allowed.
func (s *ResourceService) UpdateStatus(id uuid.UUID, status string) (*dto.ResourceResponse, error) {
	if !models.ResourceStatuses[status] {
		return nil, ErrInvalidStatus
	}
	result := s.db.Model(&models.Resource{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrResourceNotFound
	}
	return s.Get(id)
}

func (s *ResourceService) Delete(id uuid.UUID) error {
	result := s.db.Where("id = ?", id).Delete(&models.Resource{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrResourceNotFound
	}
	return nil
}

func mapResourceToResponse(r *models.Resource) *dto.ResourceResponse {
	coords, _ := models.DecodeCoordinates(r.Coordinates)
	return &dto.ResourceResponse{
		ID:          r.ID,
		Type:        r.Type,
		Name:        r.Name,
		Description: r.Description,
		Quantity:    r.Quantity,
		Unit:        r.Unit,
		DonorID:     r.DonorID,
		Location:    r.Location,
		Coordinates: coords,
		Status:      r.Status,
		Priority:    r.Priority,
		Condition:   r.Condition,
		ExpiresAt:   r.ExpiresAt,
		Images:      models.DecodeStringList(r.Images),
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339),
	}
}
