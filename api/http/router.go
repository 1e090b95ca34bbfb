package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/hr-dashboard/api/http/handlers"
)

// Handlers groups everything Register mounts.
type Handlers struct {
	Auth       *handlers.AuthHandler
	Health     *handlers.HealthHandler
	Jobs       *handlers.JobHandler
	Applicants *handlers.ApplicantHandler
	Stats      *handlers.StatsHandler
	Seed       *handlers.SeedHandler
}

// Register wires all HTTP routes onto given Fiber app. Everything except
// probes, register and login sits behind requireAuth.
func Register(app *fiber.App, h Handlers, requireAuth fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", h.Auth.Register)
	a.Post("/login", h.Auth.Login)
	a.Post("/logout", requireAuth, h.Auth.Logout)

	p := v1.Group("", requireAuth)
	p.Get("/dashboard", h.Stats.Dashboard)
	p.Get("/statistics", h.Stats.Statistics)

	p.Get("/jobs", h.Jobs.List)
	p.Post("/jobs", h.Jobs.Create)
	p.Get("/jobs/:id", h.Jobs.Get)
	p.Patch("/jobs/:id", h.Jobs.UpdateDescription)
	p.Patch("/jobs/:id/status", h.Jobs.ToggleStatus)

	p.Get("/applicants", h.Applicants.List)
	p.Get("/applicants/:id", h.Applicants.Get)
	p.Post("/applicants/:id/approve", h.Applicants.Approve)
	p.Post("/applicants/:id/reject", h.Applicants.Reject)

	p.Post("/seed/jobs", h.Seed.Jobs)
	p.Post("/seed/applicants", h.Seed.Applicants)
}
