package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/myhit051/hatyai-restart-sub000/internal/config"
	"github.com/myhit051/hatyai-restart-sub000/internal/handlers"
	"github.com/myhit051/hatyai-restart-sub000/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	healthHandler *handlers.HealthHandler,
	userHandler *handlers.UserHandler,
	resourceHandler *handlers.ResourceHandler,
	needHandler *handlers.NeedHandler,
	matchHandler *handlers.MatchHandler,
	jobHandler *handlers.JobHandler,
	generalJobHandler *handlers.GeneralJobHandler,
	wasteHandler *handlers.WasteHandler,
	mapHandler *handlers.MapHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 120 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               120,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.HealthCheck)

	// Public reads — the map and the boards are browsable without login
	api.Get("/map/markers", mapHandler.GetMarkers)

	api.Get("/resources", resourceHandler.ListResources)
	api.Get("/resources/:id", resourceHandler.GetResource)
	api.Get("/needs", needHandler.ListNeeds)
	api.Get("/needs/:id", needHandler.GetNeed)
	api.Get("/jobs", jobHandler.ListJobs)
	api.Get("/jobs/:id", jobHandler.GetJob)
	api.Get("/general-jobs", generalJobHandler.ListGeneralJobs)
	api.Get("/general-jobs/categories", generalJobHandler.ListCategories)
	api.Get("/general-jobs/:id", generalJobHandler.GetGeneralJob)
	api.Get("/waste-reports", wasteHandler.ListWasteReports)
	api.Get("/waste-reports/:id", wasteHandler.GetWasteReport)

	// Everything that writes needs a verified session
	protected := api.Group("", middleware.JWTProtected(cfg))

	// Write endpoints get a stricter limit: 30 req/min per IP
	writeLimiter := limiter.New(limiter.Config{
		Max:               30,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})

	protected.Post("/users/sync", writeLimiter, userHandler.SyncUser)
	protected.Get("/users/me", userHandler.GetMe)
	protected.Get("/users/:id", userHandler.GetUser)
	protected.Put("/users/:id/role", writeLimiter, userHandler.UpdateUserRole)

	protected.Post("/resources", writeLimiter, resourceHandler.CreateResource)
	protected.Put("/resources/:id", writeLimiter, resourceHandler.UpdateResource)
	protected.Put("/resources/:id/status", writeLimiter, resourceHandler.UpdateResourceStatus)
	protected.Delete("/resources/:id", writeLimiter, resourceHandler.DeleteResource)

	protected.Post("/needs", writeLimiter, needHandler.CreateNeed)
	protected.Put("/needs/:id", writeLimiter, needHandler.UpdateNeed)
	protected.Put("/needs/:id/status", writeLimiter, needHandler.UpdateNeedStatus)
	protected.Delete("/needs/:id", writeLimiter, needHandler.DeleteNeed)

	protected.Get("/needs/:id/matches", matchHandler.FindMatches)
	protected.Post("/matches", writeLimiter, matchHandler.Match)

	protected.Post("/jobs", writeLimiter, jobHandler.CreateJob)
	protected.Put("/jobs/:id", writeLimiter, jobHandler.UpdateJob)
	protected.Put("/jobs/:id/status", writeLimiter, jobHandler.UpdateJobStatus)
	protected.Put("/jobs/:id/assign", writeLimiter, jobHandler.AssignJob)
	protected.Delete("/jobs/:id", writeLimiter, jobHandler.DeleteJob)

	protected.Post("/general-jobs", writeLimiter, generalJobHandler.CreateGeneralJob)
	protected.Put("/general-jobs/:id", writeLimiter, generalJobHandler.UpdateGeneralJob)
	protected.Put("/general-jobs/:id/status", writeLimiter, generalJobHandler.UpdateGeneralJobStatus)
	protected.Delete("/general-jobs/:id", writeLimiter, generalJobHandler.DeleteGeneralJob)
	protected.Post("/general-jobs/:id/apply", writeLimiter, generalJobHandler.Apply)
	protected.Get("/general-jobs/:id/applications", generalJobHandler.ListApplications)
	protected.Get("/general-jobs/:id/contact", generalJobHandler.GetContactStatus)
	protected.Post("/general-jobs/:id/contact", writeLimiter, generalJobHandler.RevealContact)

	protected.Post("/waste-reports", writeLimiter, wasteHandler.CreateWasteReport)
	protected.Put("/waste-reports/:id", writeLimiter, wasteHandler.UpdateWasteReport)
	protected.Put("/waste-reports/:id/status", writeLimiter, wasteHandler.UpdateWasteReportStatus)
	protected.Delete("/waste-reports/:id", writeLimiter, wasteHandler.DeleteWasteReport)

	// Admin panel (protected + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Get("/users", userHandler.ListUsers)
}
