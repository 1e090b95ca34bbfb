package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/hr-dashboard/api/http/presenter"
	"github.com/artem13815/hr-dashboard/pkg/datasource"
	"github.com/artem13815/hr-dashboard/pkg/job"
)

type JobHandler struct {
	useCase      job.UseCase
	data         *datasource.Selector
	pageSize     int
	createSchema *payloadSchema
	updateSchema *payloadSchema
}

func NewJobHandler(useCase job.UseCase, data *datasource.Selector, pageSize int) *JobHandler {
	return &JobHandler{
		useCase:      useCase,
		data:         data,
		pageSize:     pageSize,
		createSchema: mustSchema(createJobSchema),
		updateSchema: mustSchema(updateJobSchema),
	}
}

type jobPage struct {
	Page[job.Job]
	Source datasource.Source `json:"source"`
}

type createJobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type updateJobRequest struct {
	Description string `json:"description"`
}

// List returns jobs page by page, newest first.
// @Summary List jobs
// @Tags    jobs
// @Produce json
// @Security BearerAuth
// @Param   status query string false "Active or Closed"
// @Param   q      query string false "title search"
// @Param   page   query int    false "page number, from 1"
// @Param   limit  query int    false "page size (max 200)"
// @Success 200 {object} jobPage
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /jobs [get]
func (h *JobHandler) List(c *fiber.Ctx) error {
	var status job.Status
	if v := c.Query("status"); v != "" {
		st, err := job.ParseStatus(v)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		}
		status = st
	}
	q := strings.ToLower(strings.TrimSpace(c.Query("q")))

	jobs, src := h.data.Jobs(c.Context())
	filtered := make([]job.Job, 0, len(jobs))
	for _, j := range jobs {
		if status != "" && j.Status != status {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(j.Title), q) {
			continue
		}
		filtered = append(filtered, j)
	}

	page, limit := parsePage(c, h.pageSize)
	return presenter.JSON(c, http.StatusOK, jobPage{Page: paginate(filtered, page, limit), Source: src})
}

// Get returns a single job from the same source the listing uses.
// @Summary Get job
// @Tags    jobs
// @Produce json
// @Security BearerAuth
// @Param   id path int true "job id"
// @Success 200 {object} job.Job
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [get]
func (h *JobHandler) Get(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "invalid job id")
	}
	jobs, _ := h.data.Jobs(c.Context())
	for _, j := range jobs {
		if j.ID == id {
			return presenter.JSON(c, http.StatusOK, j)
		}
	}
	return presenter.Error(c, http.StatusNotFound, "job not found")
}

// Create adds an Active job.
// @Summary Create job
// @Tags    jobs
// @Accept  json
// @Produce json
// @Security BearerAuth
// @Param   input body createJobRequest true "job payload"
// @Success 201 {object} job.Job
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /jobs [post]
func (h *JobHandler) Create(c *fiber.Ctx) error {
	msg, err := h.createSchema.Validate(c.Context(), c.Body())
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to validate payload")
	}
	if msg != "" {
		return presenter.Error(c, http.StatusBadRequest, msg)
	}
	var req createJobRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	created, err := h.useCase.Create(c.Context(), req.Title, req.Description)
	if err != nil {
		return writeDomainError(c, err, "failed to create job")
	}
	return presenter.JSON(c, http.StatusCreated, created)
}

// ToggleStatus flips a job between Active and Closed.
// @Summary Toggle job status
// @Tags    jobs
// @Produce json
// @Security BearerAuth
// @Param   id path int true "job id"
// @Success 200 {object} job.Job
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id}/status [patch]
func (h *JobHandler) ToggleStatus(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "invalid job id")
	}
	updated, err := h.useCase.ToggleStatus(c.Context(), id)
	if err != nil {
		return writeDomainError(c, err, "failed to update job status")
	}
	return presenter.JSON(c, http.StatusOK, updated)
}

// UpdateDescription replaces a job description.
// @Summary Update job description
// @Tags    jobs
// @Accept  json
// @Produce json
// @Security BearerAuth
// @Param   id    path int              true "job id"
// @Param   input body updateJobRequest true "new description"
// @Success 200 {object} job.Job
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [patch]
func (h *JobHandler) UpdateDescription(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "invalid job id")
	}
	msg, err := h.updateSchema.Validate(c.Context(), c.Body())
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to validate payload")
	}
	if msg != "" {
		return presenter.Error(c, http.StatusBadRequest, msg)
	}
	var req updateJobRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	updated, err := h.useCase.UpdateDescription(c.Context(), id, req.Description)
	if err != nil {
		return writeDomainError(c, err, "failed to update job")
	}
	return presenter.JSON(c, http.StatusOK, updated)
}
