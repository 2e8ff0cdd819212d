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
	ErrWasteReportNotFound = errors.New("waste report not found")
	ErrInvalidWasteType    = errors.New("invalid waste type")
	ErrInvalidSeverity     = errors.New("invalid severity level")
)

type WasteService struct {
	db *gorm.DB
}

func NewWasteService(db *gorm.DB) *WasteService {
	return &WasteService{db: db}
}

func (s *WasteService) Create(reporterID uuid.UUID, req *dto.CreateWasteReportRequest) (*dto.WasteReportResponse, error) {
	if !models.WasteTypes[req.WasteType] {
		return nil, ErrInvalidWasteType
	}

	severity := req.Severity
	if severity == "" {
		severity = "medium"
	}
	if !models.WasteSeverities[severity] {
		return nil, ErrInvalidSeverity
	}

	report := models.WasteReport{
		ID:          uuid.New(),
		ReporterID:  reporterID,
		WasteType:   req.WasteType,
		Description: req.Description,
		Severity:    severity,
		Hazardous:   req.Hazardous,
		Status:      models.WasteReported,
		Location:    req.Location,
		Coordinates: models.EncodeCoordinates(req.Coordinates),
		ImageURL:    req.ImageURL,
	}

	if err := s.db.Create(&report).Error; err != nil {
		return nil, fmt.Errorf("failed to create waste report: %w", err)
	}

	return mapWasteReportToResponse(&report), nil
}

type WasteFilters struct {
	Status     string
	WasteType  string
	Severity   string
	ReporterID *uuid.UUID
	Hazardous  *bool
}

func (s *WasteService) List(filters WasteFilters, page, limit int) (*dto.WasteReportsListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := s.db.Model(&models.WasteReport{})
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.Severity != "" {
		query = query.Where("severity = ?", filters.Severity)
	}
	if filters.WasteType != "" {
		query = query.Where("waste_type = ?", filters.WasteType)
	}
	if filters.ReporterID != nil {
		query = query.Where("reporter_id = ?", *filters.ReporterID)
	}
	if filters.Hazardous != nil {
		query = query.Where("hazardous = ?", *filters.Hazardous)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var reports []models.WasteReport
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&reports).Error; err != nil {
		return nil, err
	}

	resp := &dto.WasteReportsListResponse{
		Reports:    make([]dto.WasteReportResponse, len(reports)),
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
	for i, r := range reports {
		resp.Reports[i] = *mapWasteReportToResponse(&r)
	}
	return resp, nil
}

func (s *WasteService) Get(id uuid.UUID) (*dto.WasteReportResponse, error) {
	var report models.WasteReport
	if err := s.db.First(&report, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWasteReportNotFound
		}
		return nil, err
	}
	return mapWasteReportToResponse(&report), nil
}

func (s *WasteService) Update(id uuid.UUID, req *dto.UpdateWasteReportRequest) (*dto.WasteReportResponse, error) {
	updates := map[string]interface{}{}

	if req.WasteType != nil {
		if !models.WasteTypes[*req.WasteType] {
			return nil, ErrInvalidWasteType
		}
		updates["waste_type"] = *req.WasteType
	}
	if req.Severity != nil {
		if !models.WasteSeverities[*req.Severity] {
			return nil, ErrInvalidSeverity
		}
		updates["severity"] = *req.Severity
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Hazardous != nil {
		updates["hazardous"] = *req.Hazardous
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Coordinates != nil {
		updates["coordinates"] = models.EncodeCoordinates(req.Coordinates)
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}

	if len(updates) == 0 {
		return s.Get(id)
	}

	result := s.db.Model(&models.WasteReport{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrWasteReportNotFound
	}
	return s.Get(id)
}

// UpdateStatus writes the new status without checking the current one;
// jumping straight from reported to cleared is allowed.
func (s *WasteService) UpdateStatus(id uuid.UUID, status string) (*dto.WasteReportResponse, error) {
	if !models.WasteStatuses[status] {
		return nil, ErrInvalidStatus
	}
	result := s.db.Model(&models.WasteReport{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrWasteReportNotFound
	}
	return s.Get(id)
}

func (s *WasteService) Delete(id uuid.UUID) error {
	result := s.db.Where("id = ?", id).Delete(&models.WasteReport{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrWasteReportNotFound
	}
	return nil
}

func mapWasteReportToResponse(r *models.WasteReport) *dto.WasteReportResponse {
	coords, _ := models.DecodeCoordinates(r.Coordinates)
	return &dto.WasteReportResponse{
		ID:          r.ID,
		ReporterID:  r.ReporterID,
		WasteType:   r.WasteType,
		Description: r.Description,
		Severity:    r.Severity,
		Hazardous:   r.Hazardous,
		Status:      r.Status,
		Location:    r.Location,
		Coordinates: coords,
		ImageURL:    r.ImageURL,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339),
	}
}
