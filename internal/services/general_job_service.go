package services

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/myhit051/hatyai-restart-sub000/internal/catalog"
	"github.com/myhit051/hatyai-restart-sub000/internal/dto"
	"github.com/myhit051/hatyai-restart-sub000/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrGeneralJobNotFound = errors.New("job posting not found")
	ErrInvalidPostingType = errors.New("posting_type must be hiring or seeking")
	ErrInvalidWageType    = errors.New("invalid wage type")
	ErrUnknownCategory    = errors.New("unknown job category")
	ErrAlreadyApplied     = errors.New("already applied to this posting")
)

// GeneralJobService manages the hiring/seeking board, including the view
// and contact-reveal counters.
type GeneralJobService struct {
	db      *gorm.DB
	catalog *catalog.Registry
}

func NewGeneralJobService(db *gorm.DB, catalog *catalog.Registry) *GeneralJobService {
	return &GeneralJobService{db: db, catalog: catalog}
}

func (s *GeneralJobService) Create(posterID uuid.UUID, req *dto.CreateGeneralJobRequest) (*dto.GeneralJobResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTitleRequired
	}
	if !models.PostingTypes[req.PostingType] {
		return nil, ErrInvalidPostingType
	}
	if req.Category != "" && !s.catalog.Exists(req.Category) {
		return nil, ErrUnknownCategory
	}
	if req.WageType != "" && !models.WageTypes[req.WageType] {
		return nil, ErrInvalidWageType
	}

	job := models.GeneralJob{
		ID:           uuid.New(),
		Title:        req.Title,
		Description:  req.Description,
		PosterID:     posterID,
		CategorySlug: req.Category,
		PostingType:  req.PostingType,
		WageAmount:   req.WageAmount,
		WageType:     req.WageType,
		ContactPhone: req.ContactPhone,
		Status:       models.JobOpen,
		Location:     req.Location,
		Coordinates:  models.EncodeCoordinates(req.Coordinates),
		Images:       models.EncodeStringList(req.Images),
	}

	if err := s.db.Create(&job).Error; err != nil {
		return nil, fmt.Errorf("failed to create job posting: %w", err)
	}

	return mapGeneralJobToResponse(&job), nil
}

type GeneralJobFilters struct {
	Status      string
	PostingType string
	Category    string
	PosterID    *uuid.UUID
	Search      string
}

func (s *GeneralJobService) List(filters GeneralJobFilters, page, limit int) (*dto.GeneralJobsListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := s.db.Model(&models.GeneralJob{})
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.PostingType != "" {
		query = query.Where("posting_type = ?", filters.PostingType)
	}
	if filters.Category != "" {
		query = query.Where("category_slug = ?", filters.Category)
	}
	if filters.PosterID != nil {
		query = query.Where("poster_id = ?", *filters.PosterID)
	}
	if filters.Search != "" {
		searchLower := "%" + strings.ToLower(filters.Search) + "%"
		query = query.Where("(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)", searchLower, searchLower)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var jobs []models.GeneralJob
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&jobs).Error; err != nil {
		return nil, err
	}

	resp := &dto.GeneralJobsListResponse{
		Jobs:       make([]dto.GeneralJobResponse, len(jobs)),
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
	for i, j := range jobs {
		resp.Jobs[i] = *mapGeneralJobToResponse(&j)
	}
	return resp, nil
}

func (s *GeneralJobService) Get(id uuid.UUID) (*dto.GeneralJobResponse, error) {
	var job models.GeneralJob
	if err := s.db.First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGeneralJobNotFound
		}
		return nil, err
	}
	return mapGeneralJobToResponse(&job), nil
}

func (s *GeneralJobService) Update(id uuid.UUID, req *dto.UpdateGeneralJobRequest) (*dto.GeneralJobResponse, error) {
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
		if *req.Category != "" && !s.catalog.Exists(*req.Category) {
			return nil, ErrUnknownCategory
		}
		updates["category_slug"] = *req.Category
	}
	if req.WageAmount != nil {
		updates["wage_amount"] = *req.WageAmount
	}
	if req.WageType != nil {
		if *req.WageType != "" && !models.WageTypes[*req.WageType] {
			return nil, ErrInvalidWageType
		}
		updates["wage_type"] = *req.WageType
	}
	if req.ContactPhone != nil {
		updates["contact_phone"] = *req.ContactPhone
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

	result := s.db.Model(&models.GeneralJob{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrGeneralJobNotFound
	}
	return s.Get(id)
}

// UpdateStatus writes the new status without checking the current one.
func (s *GeneralJobService) UpdateStatus(id uuid.UUID, status string) (*dto.GeneralJobResponse, error) {
	if !models.JobStatuses[status] {
		return nil, ErrInvalidStatus
	}
	result := s.db.Model(&models.GeneralJob{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrGeneralJobNotFound
	}
	return s.Get(id)
}

func (s *GeneralJobService) Delete(id uuid.UUID) error {
	result := s.db.Where("id = ?", id).Delete(&models.GeneralJob{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGeneralJobNotFound
	}
	return nil
}

// IncrementViewCount bumps the counter once per call, unconditionally.
func (s *GeneralJobService) IncrementViewCount(id uuid.UUID) error {
	result := s.db.Model(&models.GeneralJob{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrGeneralJobNotFound
	}
	return nil
}

// Apply records one application per (job, applicant) pair.
func (s *GeneralJobService) Apply(jobID, applicantID uuid.UUID, message string) (*dto.ApplicationResponse, error) {
	var job models.GeneralJob
	if err := s.db.First(&job, "id = ?", jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGeneralJobNotFound
		}
		return nil, err
	}

	application := models.JobApplication{
		ID:          uuid.New(),
		JobID:       jobID,
		ApplicantID: applicantID,
		Message:     message,
	}
	result := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "job_id"}, {Name: "applicant_id"}},
		DoNothing: true,
	}).Create(&application)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrAlreadyApplied
	}

	return &dto.ApplicationResponse{
		ID:          application.ID,
		JobID:       application.JobID,
		ApplicantID: application.ApplicantID,
		Message:     application.Message,
		CreatedAt:   application.CreatedAt.Format(time.RFC3339),
	}, nil
}

func (s *GeneralJobService) ListApplications(jobID uuid.UUID) ([]dto.ApplicationResponse, error) {
	var applications []models.JobApplication
	if err := s.db.Where("job_id = ?", jobID).Order("created_at DESC").Find(&applications).Error; err != nil {
		return nil, err
	}
	resp := make([]dto.ApplicationResponse, len(applications))
	for i, a := range applications {
		resp[i] = dto.ApplicationResponse{
			ID:          a.ID,
			JobID:       a.JobID,
			ApplicantID: a.ApplicantID,
			Message:     a.Message,
			CreatedAt:   a.CreatedAt.Format(time.RFC3339),
		}
	}
	return resp, nil
}

// ContactStatus reports whether the caller has already unlocked the
// poster's contact details; the phone is only included once revealed.
func (s *GeneralJobService) ContactStatus(jobID, userID uuid.UUID) (*dto.ContactResponse, error) {
	var job models.GeneralJob
	if err := s.db.First(&job, "id = ?", jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGeneralJobNotFound
		}
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.JobContact{}).
		Where("job_id = ? AND user_id = ?", jobID, userID).Count(&count).Error; err != nil {
		return nil, err
	}

	resp := &dto.ContactResponse{Revealed: count > 0, ContactCount: job.ContactCount}
	if resp.Revealed {
		resp.ContactPhone = job.ContactPhone
	}
	return resp, nil
}

// RevealContact unlocks the poster's phone for the caller. The insert and
// the counter bump happen as a single conditional write: the unique
// (job_id, user_id) index absorbs the insert race, and the counter only
// moves when this call created the row. A repeat call returns the phone
// without touching the counter.
func (s *GeneralJobService) RevealContact(jobID, userID uuid.UUID) (*dto.ContactResponse, error) {
	var job models.GeneralJob
	if err := s.db.First(&job, "id = ?", jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGeneralJobNotFound
		}
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		contact := models.JobContact{
			ID:     uuid.New(),
			JobID:  jobID,
			UserID: userID,
		}
		result := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "job_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).Create(&contact)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}
		return tx.Model(&models.GeneralJob{}).Where("id = ?", jobID).
			UpdateColumn("contact_count", gorm.Expr("contact_count + ?", 1)).Error
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.First(&job, "id = ?", jobID).Error; err != nil {
		return nil, err
	}
	return &dto.ContactResponse{
		Revealed:     true,
		ContactPhone: job.ContactPhone,
		ContactCount: job.ContactCount,
	}, nil
}

func (s *GeneralJobService) Categories() []dto.CategoryResponse {
	cats := s.catalog.All()
	resp := make([]dto.CategoryResponse, len(cats))
	for i, c := range cats {
		resp[i] = dto.CategoryResponse{Slug: c.Slug, NameTH: c.NameTH, NameEN: c.NameEN}
	}
	return resp
}

func mapGeneralJobToResponse(j *models.GeneralJob) *dto.GeneralJobResponse {
	coords, _ := models.DecodeCoordinates(j.Coordinates)
	return &dto.GeneralJobResponse{
		ID:           j.ID,
		Title:        j.Title,
		Description:  j.Description,
		PosterID:     j.PosterID,
		Category:     j.CategorySlug,
		PostingType:  j.PostingType,
		WageAmount:   j.WageAmount,
		WageType:     j.WageType,
		Status:       j.Status,
		Location:     j.Location,
		Coordinates:  coords,
		Images:       models.DecodeStringList(j.Images),
		ViewCount:    j.ViewCount,
		ContactCount: j.ContactCount,
		CreatedAt:    j.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    j.UpdatedAt.Format(time.RFC3339),
	}
}
