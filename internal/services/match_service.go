package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/myhit051/hatyai-restart-sub000/internal/dto"
	"github.com/myhit051/hatyai-restart-sub000/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrMatchConflict means another actor matched the resource or need first.
	ErrMatchConflict = errors.New("resource or need is no longer available for matching")
	ErrNotMatchable  = errors.New("resource does not satisfy the need")
)

// MatchService pairs available resources with pending needs.
type MatchService struct {
	db *gorm.DB
}

func NewMatchService(db *gorm.DB) *MatchService {
	return &MatchService{db: db}
}

// FindMatches returns every resource that can satisfy the need: same type,
// still available, enough quantity, priority equal to the need's urgency.
// An unknown need yields an empty list, not an error. The result is
// evaluated freshly on every call.
func (s *MatchService) FindMatches(needID uuid.UUID) ([]dto.ResourceResponse, error) {
	var need models.Need
	if err := s.db.First(&need, "id = ?", needID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []dto.ResourceResponse{}, nil
		}
		return nil, err
	}

	var resources []models.Resource
	err := s.db.
		Where("type = ? AND status = ? AND quantity >= ? AND priority = ?",
			need.ResourceType, models.ResourceAvailable, need.RequiredQuantity, need.Urgency).
		Find(&resources).Error
	if err != nil {
		return nil, err
	}

	matches := make([]dto.ResourceResponse, len(resources))
	for i, r := range resources {
		matches[i] = *mapResourceToResponse(&r)
	}
	return matches, nil
}

// Match assigns a resource to a need in one transaction. Both status writes
// are conditional on the current status, so a concurrent match of either
// side rolls the whole pairing back with ErrMatchConflict.
func (s *MatchService) Match(resourceID, needID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var resource models.Resource
		if err := tx.First(&resource, "id = ?", resourceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrResourceNotFound
			}
			return err
		}

		var need models.Need
		if err := tx.First(&need, "id = ?", needID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNeedNotFound
			}
			return err
		}

		if resource.Type != need.ResourceType ||
			resource.Quantity < need.RequiredQuantity ||
			resource.Priority != need.Urgency {
			return ErrNotMatchable
		}

		res := tx.Model(&models.Resource{}).
			Where("id = ? AND status = ?", resourceID, models.ResourceAvailable).
			Update("status", models.ResourceAssigned)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrMatchConflict
		}

		res = tx.Model(&models.Need{}).
			Where("id = ? AND status = ?", needID, models.NeedPending).
			Updates(map[string]interface{}{
				"status":              models.NeedMatched,
				"matched_resource_id": resourceID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrMatchConflict
		}
		return nil
	})
}
