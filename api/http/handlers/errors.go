package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/hr-dashboard/api/http/presenter"
	"github.com/artem13815/hr-dashboard/pkg/applicant"
	"github.com/artem13815/hr-dashboard/pkg/job"
)

// writeDomainError maps use case errors to HTTP responses.
func writeDomainError(c *fiber.Ctx, err error, fallback string) error {
	var jobInvalid job.ErrValidation
	var applicantInvalid applicant.ErrValidation
	switch {
	case errors.Is(err, job.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "job not found")
	case errors.Is(err, applicant.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "applicant not found")
	case errors.As(err, &jobInvalid):
		return presenter.Error(c, http.StatusBadRequest, jobInvalid.Error())
	case errors.As(err, &applicantInvalid):
		return presenter.Error(c, http.StatusBadRequest, applicantInvalid.Error())
	default:
		return presenter.Error(c, http.StatusInternalServerError, fallback)
	}
}

func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
