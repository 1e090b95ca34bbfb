package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/hr-dashboard/api/http/presenter"
	"github.com/artem13815/hr-dashboard/pkg/applicant"
	"github.com/artem13815/hr-dashboard/pkg/datasource"
	"github.com/artem13815/hr-dashboard/pkg/job"
)

// unknownJobTitle is shown when an applicant's job cannot be found.
const unknownJobTitle = "Unknown Job"

type ApplicantHandler struct {
	useCase  applicant.UseCase
	data     *datasource.Selector
	pageSize int
}

func NewApplicantHandler(useCase applicant.UseCase, data *datasource.Selector, pageSize int) *ApplicantHandler {
	return &ApplicantHandler{useCase: useCase, data: data, pageSize: pageSize}
}

type applicantView struct {
	applicant.Applicant
	JobTitle string `json:"jobTitle"`
}

type applicantPage struct {
	Page[applicantView]
	JobsSource       datasource.Source `json:"jobsSource"`
	ApplicantsSource datasource.Source `json:"applicantsSource"`
}

func withJobTitles(items []applicant.Applicant, jobs []job.Job) []applicantView {
	titles := make(map[int64]string, len(jobs))
	for _, j := range jobs {
		titles[j.ID] = j.Title
	}
	out := make([]applicantView, len(items))
	for i, a := range items {
		title, ok := titles[a.JobID]
		if !ok {
			title = unknownJobTitle
		}
		out[i] = applicantView{Applicant: a, JobTitle: title}
	}
	return out
}

func parseFilter(c *fiber.Ctx) (applicant.Filter, error) {
	f := applicant.Filter{Query: c.Query("q")}
	if v := c.Query("jobId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			return f, applicant.ErrValidation("jobId must be a positive integer")
		}
		f.JobID = id
	}
	if v := c.Query("jobMatch"); v != "" {
		m, err := applicant.ParseJobMatch(v)
		if err != nil {
			return f, err
		}
		f.JobMatch = m
	}
	if v := c.Query("status"); v != "" {
		st, err := applicant.ParseStatus(v)
		if err != nil {
			return f, err
		}
		f.Status = st
	}
	return f, nil
}

// List returns applicants matching the filters, page by page.
// @Summary List applicants
// @Tags    applicants
// @Produce json
// @Security BearerAuth
// @Param   jobId    query int    false "job id"
// @Param   jobMatch query string false "Top Performer, Potential or Under Performer"
// @Param   status   query string false "Pending Review, Approved or Rejected"
// @Param   q        query string false "name or email search"
// @Param   page     query int    false "page number, from 1"
// @Param   limit    query int    false "page size (max 200)"
// @Success 200 {object} applicantPage
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /applicants [get]
func (h *ApplicantHandler) List(c *fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return writeDomainError(c, err, "invalid filter")
	}
	snap := h.data.Load(c.Context())
	items := withJobTitles(f.Apply(snap.Applicants), snap.Jobs)

	page, limit := parsePage(c, h.pageSize)
	return presenter.JSON(c, http.StatusOK, applicantPage{
		Page:             paginate(items, page, limit),
		JobsSource:       snap.JobsSource,
		ApplicantsSource: snap.ApplicantsSource,
	})
}

// Get returns an applicant with the title of the job applied for.
// @Summary Get applicant
// @Tags    applicants
// @Produce json
// @Security BearerAuth
// @Param   id path int true "applicant id"
// @Success 200 {object} applicantView
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /applicants/{id} [get]
func (h *ApplicantHandler) Get(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "invalid applicant id")
	}
	snap := h.data.Load(c.Context())
	for _, a := range snap.Applicants {
		if a.ID == id {
			return presenter.JSON(c, http.StatusOK, withJobTitles([]applicant.Applicant{a}, snap.Jobs)[0])
		}
	}
	return presenter.Error(c, http.StatusNotFound, "applicant not found")
}

// Approve marks an application as Approved.
// @Summary Approve applicant
// @Tags    applicants
// @Produce json
// @Security BearerAuth
// @Param   id path int true "applicant id"
// @Success 200 {object} applicant.Applicant
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /applicants/{id}/approve [post]
func (h *ApplicantHandler) Approve(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "invalid applicant id")
	}
	a, err := h.useCase.Approve(c.Context(), id)
	if err != nil {
		return writeDomainError(c, err, "failed to approve applicant")
	}
	return presenter.JSON(c, http.StatusOK, a)
}

// Reject marks an application as Rejected.
// @Summary Reject applicant
// @Tags    applicants
// @Produce json
// @Security BearerAuth
// @Param   id path int true "applicant id"
// @Success 200 {object} applicant.Applicant
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /applicants/{id}/reject [post]
func (h *ApplicantHandler) Reject(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "invalid applicant id")
	}
	a, err := h.useCase.Reject(c.Context(), id)
	if err != nil {
		return writeDomainError(c, err, "failed to reject applicant")
	}
	return presenter.JSON(c, http.StatusOK, a)
}
