package services

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/myhit051/hatyai-restart-sub000/internal/dto"
	"github.com/myhit051/hatyai-restart-sub000/internal/models"
	"gorm.io/gorm"
)

var (
	ErrJobNotFound   = errors.New("job not found")
	ErrTitleRequired = errors.New("title is required")
)

// JobService manages repair-job requests.
type JobService struct {
	db *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{db: db}
}

func (s *JobService) Create(reporterID uuid.UUID, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTitleRequired
	}

	urgency := req.Urgency
	if urgency == "" {
		urgency = "medium"
	}
	if !models.PriorityLevels[urgency] {
		return nil, ErrInvalidUrgency
	}

	job := models.Job{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		ReporterID:  reporterID,
		Category:    req.Category,
		Urgency:     urgency,
		Status:      models.JobOpen,
		Location:    req.Location,
		Coordinates: models.EncodeCoordinates(req.Coordinates),
		Images:      models.EncodeStringList(req.Images),
	}

	if err := s.db.Create(&job).Error; err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	return mapJobToResponse(&job), nil
}

type JobFilters struct {
	Status       string
	Urgency      string
	Category     string
	ReporterID   *uuid.UUID
	TechnicianID *uuid.UUID
	Search       string
}

func (s *JobService) List(filters JobFilters, page, limit int) (*dto.JobsListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := s.db.Model(&models.Job{})
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.Urgency != "" {
		query = query.Where("urgency = ?", filters.Urgency)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.ReporterID != nil {
		query = query.Where("reporter_id = ?", *filters.ReporterID)
	}
	if filters.TechnicianID != nil {
		query = query.Where("technician_id = ?", *filters.TechnicianID)
	}
	if filters.Search != "" {
		searchLower := "%" + strings.ToLower(filters.Search) + "%"
		query = query.Where("(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)", searchLower, searchLower)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var jobs []models.Job
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&jobs).Error; err != nil {
		return nil, err
	}

	resp := &dto.JobsListResponse{
		Jobs:       make([]dto.JobResponse, len(jobs)),
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
	for i, j := range jobs {
		resp.Jobs[i] = *mapJobToResponse(&j)
	}
	return resp, nil
}

func (s *JobService) Get(id uuid.UUID) (*dto.JobResponse, error) {
	var job models.Job
	if err := s.db.First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return mapJobToResponse(&job), nil
}

func (s *JobService) Update(id uuid.UUID, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	updates := map[string]interface{}{}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, ErrTitleRequired
		}
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Urgency != nil {
		if !models.PriorityLevels[*req.Urgency] {
			return nil, ErrInvalidUrgency
		}
		updates["urgency"] = *req.Urgency
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Coordinates != nil {
		updates["coordinates"] = models.EncodeCoordinates(req.Coordinates)
	}
	if req.Images != nil {
		updates["images"] = models.EncodeStringList(req.Images)
	}

	if len(updates) == 0 {
		return s.Get(id)
	}

	result := s.db.Model(&models.Job{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrJobNotFound
	}
	return s.Get(id)
}

// UpdateStatus writes the new status without checking the current one.
func (s *JobService) UpdateStatus(id uuid.UUID, status string) (*dto.JobResponse, error) {
	if !models.JobStatuses[status] {
		return nil, ErrInvalidStatus
	}
	result := s.db.Model(&models.Job{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrJobNotFound
	}
	return s.Get(id)
}

// Assign puts a technician on the job and moves it to in_progress in one write.
func (s *JobService) Assign(id, technicianID uuid.UUID) (*dto.JobResponse, error) {
	result := s.db.Model(&models.Job{}).Where("id = ?", id).Updates(map[string]interface{}{
		"technician_id": technicianID,
		"status":        models.JobInProgress,
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrJobNotFound
	}
	return s.Get(id)
}

func (s *JobService) Delete(id uuid.UUID) error {
	result := s.db.Where("id = ?", id).Delete(&models.Job{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func mapJobToResponse(j *models.Job) *dto.JobResponse {
	coords, _ := models.DecodeCoordinates(j.Coordinates)
	return &dto.JobResponse{
		ID:           j.ID,
		Title:        j.Title,
		Description:  j.Description,
		ReporterID:   j.ReporterID,
		TechnicianID: j.TechnicianID,
		Category:     j.Category,
		Urgency:      j.Urgency,
		Status:       j.Status,
		Location:     j.Location,
		Coordinates:  coords,
		Images:       models.DecodeStringList(j.Images),
		CreatedAt:    j.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    j.UpdatedAt.Format(time.RFC3339),
	}
}
