package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/myhit051/hatyai-restart-sub000/internal/dto"
	"github.com/myhit051/hatyai-restart-sub000/internal/middleware"
	"github.com/myhit051/hatyai-restart-sub000/internal/services"
)

type GeneralJobHandler struct {
	generalJobService *services.GeneralJobService
}

func NewGeneralJobHandler(generalJobService *services.GeneralJobService) *GeneralJobHandler {
	return &GeneralJobHandler{generalJobService: generalJobService}
}

func (h *GeneralJobHandler) CreateGeneralJob(c *fiber.Ctx) error {
	callerID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	var req dto.CreateGeneralJobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}

	job, err := h.generalJobService.Create(callerID, &req)
	if err != nil {
		if errors.Is(err, services.ErrTitleRequired) || errors.Is(err, services.ErrInvalidPostingType) ||
			errors.Is(err, services.ErrInvalidWageType) || errors.Is(err, services.ErrUnknownCategory) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to create job posting"})
	}

	return c.Status(fiber.StatusCreated).JSON(job)
}

func (h *GeneralJobHandler) ListGeneralJobs(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	filters := services.GeneralJobFilters{
		Status:      c.Query("status"),
		PostingType: c.Query("posting_type"),
		Category:    c.Query("category"),
		Search:      c.Query("search"),
	}
	if raw := c.Query("poster_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid poster_id"})
		}
		filters.PosterID = &id
	}

	jobs, err := h.generalJobService.List(filters, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to fetch job postings"})
	}
	return c.JSON(jobs)
}

// GetGeneralJob returns the posting and counts the page view. Every read
// bumps the counter.
func (h *GeneralJobHandler) GetGeneralJob(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid job ID"})
	}

	if err := h.generalJobService.IncrementViewCount(id); err != nil {
		if errors.Is(err, services.ErrGeneralJobNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		slog.Error("failed to count job view", "action", "general_job_view", "error", err.Error())
	}

	job, err := h.generalJobService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrGeneralJobNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to fetch job posting"})
	}
	return c.JSON(job)
}

func (h *GeneralJobHandler) UpdateGeneralJob(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid job ID"})
	}

	var req dto.UpdateGeneralJobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}

	job, err := h.generalJobService.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrGeneralJobNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		if errors.Is(err, services.ErrTitleRequired) || errors.Is(err, services.ErrInvalidWageType) ||
			errors.Is(err, services.ErrUnknownCategory) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to update job posting"})
	}
	return c.JSON(job)
}

func (h *GeneralJobHandler) UpdateGeneralJobStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid job ID"})
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}

	job, err := h.generalJobService.UpdateStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrGeneralJobNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		if errors.Is(err, services.ErrInvalidStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to update status"})
	}
	return c.JSON(job)
}

func (h *GeneralJobHandler) DeleteGeneralJob(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid job ID"})
	}

	if err := h.generalJobService.Delete(id); err != nil {
		if errors.Is(err, services.ErrGeneralJobNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to delete job posting"})
	}
	return c.JSON(dto.MessageResponse{Message: "Job posting deleted successfully"})
}

func (h *GeneralJobHandler) Apply(c *fiber.Ctx) error {
	callerID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid job ID"})
	}

	var req dto.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid request body"})
	}

	application, err := h.generalJobService.Apply(jobID, callerID, req.Message)
	if err != nil {
		if errors.Is(err, services.ErrGeneralJobNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		if errors.Is(err, services.ErrAlreadyApplied) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to apply"})
	}

	return c.Status(fiber.StatusCreated).JSON(application)
}

func (h *GeneralJobHandler) ListApplications(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid job ID"})
	}

	applications, err := h.generalJobService.ListApplications(jobID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to fetch applications"})
	}
	return c.JSON(fiber.Map{"applications": applications})
}

func (h *GeneralJobHandler) GetContactStatus(c *fiber.Ctx) error {
	callerID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid job ID"})
	}

	status, err := h.generalJobService.ContactStatus(jobID, callerID)
	if err != nil {
		if errors.Is(err, services.ErrGeneralJobNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to fetch contact status"})
	}
	return c.JSON(status)
}

func (h *GeneralJobHandler) RevealContact(c *fiber.Ctx) error {
	callerID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
	}

	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: "Invalid job ID"})
	}

	contact, err := h.generalJobService.RevealContact(jobID, callerID)
	if err != nil {
		if errors.Is(err, services.ErrGeneralJobNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: "Failed to reveal contact"})
	}
	return c.JSON(contact)
}

func (h *GeneralJobHandler) ListCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": h.generalJobService.Categories()})
}
