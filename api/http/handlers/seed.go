package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/hr-dashboard/api/http/presenter"
	"github.com/artem13815/hr-dashboard/pkg/seed"
)

type SeedHandler struct {
	useCase seed.UseCase
	log     *slog.Logger
}

func NewSeedHandler(useCase seed.UseCase, log *slog.Logger) *SeedHandler {
	return &SeedHandler{useCase: useCase, log: log}
}

// Jobs replaces all jobs (and their applicants) with the demo postings.
// @Summary Seed jobs
// @Tags    seed
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /seed/jobs [post]
func (h *SeedHandler) Jobs(c *fiber.Ctx) error {
	jobs, err := h.useCase.SeedJobs(c.Context())
	if err != nil {
		h.log.ErrorContext(c.Context(), "seed jobs failed", "error", err)
		return presenter.Error(c, http.StatusInternalServerError, "failed to seed jobs")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"message": "jobs seeded",
		"count":   len(jobs),
		"data":    jobs,
	})
}

// Applicants replaces all applicants with generated ones.
// @Summary Seed applicants
// @Tags    seed
// @Produce json
// @Security BearerAuth
// @Success 200 {object} seed.Result
// @Failure 409 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /seed/applicants [post]
func (h *SeedHandler) Applicants(c *fiber.Ctx) error {
	res, err := h.useCase.SeedApplicants(c.Context())
	if errors.Is(err, seed.ErrNoJobs) {
		return presenter.Error(c, http.StatusConflict, err.Error())
	}
	if err != nil {
		h.log.ErrorContext(c.Context(), "seed applicants failed", "error", err, "inserted", res.Count)
		return presenter.Error(c, http.StatusInternalServerError, "failed to seed applicants")
	}
	return presenter.JSON(c, http.StatusOK, res)
}
