package stats

import (
	"time"

	"github.com/artem13815/hr-dashboard/pkg/applicant"
	"github.com/artem13815/hr-dashboard/pkg/job"
)

// DashboardTrendDays is the window of the dashboard trend chart.
const DashboardTrendDays = 7

// Dashboard is everything the overview page charts.
type Dashboard struct {
	JobStatus         Distribution `json:"jobStatus"`
	JobMatch          Distribution `json:"jobMatch"`
	ApplicationStatus Distribution `json:"applicationStatus"`
	ApplicantsPerJob  []Slice      `json:"applicantsPerJob"`
	Trend             Trend        `json:"trend"`
}

// BuildDashboard computes the overview charts. The trend covers active jobs
// over the last DashboardTrendDays days ending with today.
func BuildDashboard(today time.Time, loc *time.Location, jobs []job.Job, applicants []applicant.Applicant) Dashboard {
	return Dashboard{
		JobStatus: Count(jobs, func(j job.Job) job.Status { return j.Status }, job.Statuses),
		JobMatch: Count(applicants, func(a applicant.Applicant) applicant.JobMatch {
			return a.JobMatch
		}, applicant.JobMatches),
		ApplicationStatus: Count(applicants, func(a applicant.Applicant) applicant.Status {
			return a.Status
		}, applicant.Statuses),
		ApplicantsPerJob: CountByJob(jobs, applicants),
		Trend: BuildTrend(TrendQuery{
			Status:   job.StatusActive,
			Range:    LastNDays(today, DashboardTrendDays),
			Location: loc,
		}, jobs, applicants),
	}
}
