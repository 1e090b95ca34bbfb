package stats

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/artem13815/hr-dashboard/pkg/applicant"
	"github.com/artem13815/hr-dashboard/pkg/job"
)

func TestMain(m *testing.M) {
	defer goleak.VerifyTestMain(m)
	os.Exit(m.Run())
}

func TestCount_JobMatchExample(t *testing.T) {
	apps := []applicant.Applicant{
		{JobMatch: applicant.MatchTopPerformer},
		{JobMatch: applicant.MatchPotential},
		{JobMatch: applicant.MatchTopPerformer},
	}

	d := Count(apps, func(a applicant.Applicant) applicant.JobMatch { return a.JobMatch }, applicant.JobMatches)

	assert.Equal(t, []Slice{
		{Name: "Top Performer", Value: 2},
		{Name: "Potential", Value: 1},
		{Name: "Under Performer", Value: 0},
	}, d.Slices)
	assert.Equal(t, 3, d.Total)
	assert.Equal(t, 2, d.Value("Top Performer"))
	assert.Equal(t, 0, d.Value("Nope"))
}

func TestCount_EmptyAndUnknownValues(t *testing.T) {
	d := Count([]job.Job(nil), func(j job.Job) job.Status { return j.Status }, job.Statuses)
	assert.Equal(t, []Slice{{Name: "Active"}, {Name: "Closed"}}, d.Slices)
	assert.Equal(t, 0, d.Total)

	jobs := []job.Job{{Status: job.StatusClosed}, {Status: "Archived"}}
	d = Count(jobs, func(j job.Job) job.Status { return j.Status }, job.Statuses)
	assert.Equal(t, 0, d.Value("Active"))
	assert.Equal(t, 1, d.Value("Closed"))
	assert.Equal(t, 2, d.Total)
}

func TestBuildDashboard(t *testing.T) {
	jobs := []job.Job{
		{ID: 1, Title: "Frontend", Status: job.StatusActive},
		{ID: 2, Title: "Backend", Status: job.StatusActive},
		{ID: 3, Title: "DevOps", Status: job.StatusClosed},
	}
	apps := []applicant.Applicant{
		{JobID: 1, JobMatch: applicant.MatchTopPerformer, Status: applicant.StatusApproved, CreatedAt: day("2025-11-24")},
		{JobID: 2, JobMatch: applicant.MatchPotential, Status: applicant.StatusPendingReview, CreatedAt: day("2025-11-18")},
		{JobID: 3, JobMatch: applicant.MatchUnderPerformer, Status: applicant.StatusRejected, CreatedAt: day("2025-11-20")},
		{JobID: 2, JobMatch: applicant.MatchPotential, Status: applicant.StatusPendingReview, CreatedAt: day("2025-11-17")},
	}

	d := BuildDashboard(day("2025-11-24"), time.UTC, jobs, apps)

	assert.Equal(t, 2, d.JobStatus.Value("Active"))
	assert.Equal(t, 1, d.JobStatus.Value("Closed"))
	assert.Equal(t, 3, d.JobStatus.Total)
	assert.Equal(t, 2, d.JobMatch.Value("Potential"))
	assert.Equal(t, 2, d.ApplicationStatus.Value("Pending Review"))
	assert.Equal(t, 4, d.ApplicationStatus.Total)
	assert.Equal(t, []Slice{{Name: "Frontend", Value: 1}, {Name: "Backend", Value: 2}, {Name: "DevOps", Value: 1}}, d.ApplicantsPerJob)

	require.Len(t, d.Trend.Buckets, DashboardTrendDays)
	assert.Equal(t, Daily, d.Trend.Granularity)
	assert.Equal(t, "Tue", d.Trend.Buckets[0].Period)
	assert.Equal(t, "Mon", d.Trend.Buckets[6].Period)
	assert.Equal(t, 1, d.Trend.Total("Frontend"))
	assert.Equal(t, 1, d.Trend.Total("Backend"))
	assert.NotContains(t, d.Trend.Buckets[0].Counts, "DevOps")
}

func TestDateRangeDays(t *testing.T) {
	assert.Equal(t, 1, rng("2025-01-01", "2025-01-01").Days(nil))
	assert.Equal(t, 31, rng("2025-01-01", "2025-01-31").Days(time.UTC))
	assert.Equal(t, 0, rng("2025-01-02", "2025-01-01").Days(nil))
	assert.Equal(t, 30, LastNDays(day("2025-01-30"), 30).Days(nil))
	assert.Equal(t, Daily, GranularityFor(7))
	assert.Equal(t, Weekly, GranularityFor(8))
}

func TestParseTimestamp(t *testing.T) {
	for _, s := range []string{
		"2024-11-20",
		"2024-11-20T10:15:00Z",
		"2024-11-20T10:15:00.123456+00:00",
		"2024-11-20 10:15:00+00",
		"2024-11-20T10:15:00",
	} {
		ts, ok := ParseTimestamp(s)
		require.True(t, ok, s)
		assert.Equal(t, 20, ts.Day(), s)
	}

	for _, s := range []string{"", "yesterday", "2024-13-40"} {
		ts, ok := ParseTimestamp(s)
		assert.False(t, ok, s)
		assert.True(t, ts.IsZero(), s)
	}
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2025-02-28", nil)
	require.NoError(t, err)
	assert.Equal(t, time.February, d.Month())

	_, err = ParseDay("28/02/2025", nil)
	assert.Error(t, err)
}
