package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/myhit051/hatyai-restart-sub000/internal/catalog"
	"github.com/myhit051/hatyai-restart-sub000/internal/database"
	"github.com/myhit051/hatyai-restart-sub000/internal/dto"
)

type HealthHandler struct {
	catalog *catalog.Registry
}

func NewHealthHandler(registry *catalog.Registry) *HealthHandler {
	return &HealthHandler{catalog: registry}
}

func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	dbStatus := "connected"
	if err := database.Ping(); err != nil {
		dbStatus = "disconnected"
	}

	return c.JSON(dto.HealthResponse{
		Status:     "ok",
		Timestamp:  time.Now().Format(time.RFC3339),
		DB:         dbStatus,
		Categories: len(h.catalog.All()),
	})
}
