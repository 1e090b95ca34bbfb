package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/hr-dashboard/api/http/presenter"
	"github.com/artem13815/hr-dashboard/pkg/datasource"
	"github.com/artem13815/hr-dashboard/pkg/job"
	"github.com/artem13815/hr-dashboard/pkg/stats"
)

const (
	defaultStatsDays = 30
	// maxStatsDays bounds custom ranges so one request cannot allocate
	// millions of buckets.
	maxStatsDays = 3660

	rangeLast30 = "30days"
	rangeCustom = "custom"
)

// StatsHandler serves the dashboard overview and the statistics chart.
type StatsHandler struct {
	data *datasource.Selector
	loc  *time.Location
	now  func() time.Time
}

func NewStatsHandler(data *datasource.Selector, loc *time.Location) *StatsHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &StatsHandler{data: data, loc: loc, now: time.Now}
}

type dashboardResponse struct {
	stats.Dashboard
	JobsSource       datasource.Source `json:"jobsSource"`
	ApplicantsSource datasource.Source `json:"applicantsSource"`
}

type statisticsResponse struct {
	Status           job.Status        `json:"status"`
	Start            string            `json:"start"`
	End              string            `json:"end"`
	Granularity      stats.Granularity `json:"granularity"`
	Series           []stats.Series    `json:"series"`
	Buckets          []stats.Bucket    `json:"buckets"`
	YMax             int               `json:"yMax"`
	JobsSource       datasource.Source `json:"jobsSource"`
	ApplicantsSource datasource.Source `json:"applicantsSource"`
}

// Dashboard returns the overview distributions and the trend of active jobs
// over the last seven days.
// @Summary Dashboard overview
// @Tags    stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dashboardResponse
// @Router  /dashboard [get]
func (h *StatsHandler) Dashboard(c *fiber.Ctx) error {
	snap := h.data.Load(c.Context())
	today := h.now().In(h.loc)
	return presenter.JSON(c, http.StatusOK, dashboardResponse{
		Dashboard:        stats.BuildDashboard(today, h.loc, snap.Jobs, snap.Applicants),
		JobsSource:       snap.JobsSource,
		ApplicantsSource: snap.ApplicantsSource,
	})
}

// Statistics returns applicants per job over time for jobs with one status.
// @Summary Applicant trend
// @Tags    stats
// @Produce json
// @Security BearerAuth
// @Param   status query string false "Active (default) or Closed"
// @Param   range  query string false "30days (default) or custom"
// @Param   start  query string false "custom range start, YYYY-MM-DD"
// @Param   end    query string false "custom range end, YYYY-MM-DD"
// @Success 200 {object} statisticsResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /statistics [get]
func (h *StatsHandler) Statistics(c *fiber.Ctx) error {
	status := job.StatusActive
	if v := c.Query("status"); v != "" {
		st, err := job.ParseStatus(v)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		}
		status = st
	}

	r, err := h.parseRange(c)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	if r.Days(h.loc) > maxStatsDays {
		return presenter.Error(c, http.StatusBadRequest, "date range is too long")
	}

	snap := h.data.Load(c.Context())
	tr := stats.BuildTrend(stats.TrendQuery{Status: status, Range: r, Location: h.loc}, snap.Jobs, snap.Applicants)
	return presenter.JSON(c, http.StatusOK, statisticsResponse{
		Status:           status,
		Start:            r.Start.In(h.loc).Format(time.DateOnly),
		End:              r.End.In(h.loc).Format(time.DateOnly),
		Granularity:      tr.Granularity,
		Series:           tr.Series,
		Buckets:          tr.Buckets,
		YMax:             tr.YMax,
		JobsSource:       snap.JobsSource,
		ApplicantsSource: snap.ApplicantsSource,
	})
}

// parseRange resolves the range query. A custom range with a missing bound
// takes that bound from the default 30-day window; start after end is
// allowed and yields no buckets.
func (h *StatsHandler) parseRange(c *fiber.Ctx) (stats.DateRange, error) {
	r := stats.LastNDays(h.now().In(h.loc), defaultStatsDays)
	switch c.Query("range", rangeLast30) {
	case rangeLast30:
		return r, nil
	case rangeCustom:
		if v := c.Query("start"); v != "" {
			d, err := stats.ParseDay(v, h.loc)
			if err != nil {
				return stats.DateRange{}, err
			}
			r.Start = d
		}
		if v := c.Query("end"); v != "" {
			d, err := stats.ParseDay(v, h.loc)
			if err != nil {
				return stats.DateRange{}, err
			}
			r.End = d
		}
		return r, nil
	default:
		return stats.DateRange{}, errors.New("range must be 30days or custom")
	}
}
