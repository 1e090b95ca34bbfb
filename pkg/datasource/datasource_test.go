package datasource

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/artem13815/hr-dashboard/pkg/applicant"
	"github.com/artem13815/hr-dashboard/pkg/job"
	"github.com/artem13815/hr-dashboard/pkg/seed"
	"github.com/artem13815/hr-dashboard/pkg/stats"
)

func TestMain(m *testing.M) {
	defer goleak.VerifyTestMain(m)
	os.Exit(m.Run())
}

type fakeProvider struct {
	jobs       []job.Job
	applicants []applicant.Applicant
	err        error
}

func (f fakeProvider) Jobs(context.Context) ([]job.Job, error) { return f.jobs, f.err }
func (f fakeProvider) Applicants(context.Context) ([]applicant.Applicant, error) {
	return f.applicants, f.err
}

func quietLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestDefaultSample(t *testing.T) {
	s, err := DefaultSample(WithActivity(nil))
	require.NoError(t, err)

	jobs, err := s.Jobs(context.Background())
	require.NoError(t, err)
	apps, err := s.Applicants(context.Background())
	require.NoError(t, err)

	require.Len(t, jobs, 8)
	require.Len(t, apps, 12)
	assert.Equal(t, "Senior Frontend Developer", jobs[0].Title)
	assert.Equal(t, job.StatusActive, jobs[0].Status)
	assert.Equal(t, job.StatusClosed, jobs[3].Status)

	ids := make(map[int64]bool, len(jobs))
	for _, j := range jobs {
		ids[j.ID] = true
	}
	for _, a := range apps {
		assert.True(t, ids[a.JobID], "applicant %d references job %d", a.ID, a.JobID)
		assert.False(t, a.CreatedAt.IsZero(), "applicant %d", a.ID)
		assert.Equal(t, 2024, a.CreatedAt.Year())
	}
}

func TestSample_RecentActivity(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	gen := seed.NewGenerator(rand.New(rand.NewPCG(1, 1)), func() time.Time { return now })
	s, err := DefaultSample(WithActivity(gen))
	require.NoError(t, err)

	jobs, _ := s.Jobs(context.Background())
	apps, _ := s.Applicants(context.Background())
	require.Greater(t, len(apps), 12)

	active := map[int64]bool{}
	for _, j := range jobs {
		if j.Status == job.StatusActive {
			active[j.ID] = true
		}
	}
	ids := map[int64]bool{}
	for _, a := range apps {
		assert.False(t, ids[a.ID], "duplicate id %d", a.ID)
		ids[a.ID] = true
	}
	for _, a := range apps[12:] {
		assert.True(t, active[a.JobID], "applicant %d on job %d", a.ID, a.JobID)
	}

	trend := stats.BuildTrend(stats.TrendQuery{
		Status: job.StatusActive,
		Range:  stats.LastNDays(now, 30),
	}, jobs, apps)
	total := 0
	for _, series := range trend.Series {
		total += trend.Total(series.Title)
	}
	assert.Equal(t, len(apps)-12, total)
	assert.Positive(t, trend.YMax)

	dash := stats.BuildDashboard(now, time.UTC, jobs, apps)
	require.Len(t, dash.Trend.Buckets, stats.DashboardTrendDays)
	for _, b := range dash.Trend.Buckets {
		for title, n := range b.Counts {
			assert.GreaterOrEqual(t, n, 5, "%s %s", b.Period, title)
		}
	}

	again, _ := s.Applicants(context.Background())
	assert.Equal(t, apps, again)
}

func TestSample_ReturnsCopies(t *testing.T) {
	s, err := DefaultSample()
	require.NoError(t, err)

	jobs, _ := s.Jobs(context.Background())
	jobs[0].Title = "changed"

	again, _ := s.Jobs(context.Background())
	assert.Equal(t, "Senior Frontend Developer", again[0].Title)
}

func TestParseSample(t *testing.T) {
	s, err := ParseSample([]byte(`
jobs:
  - {id: 1, title: A, status: Active}
applicants:
  - {id: 1, name: X, jobId: 1, jobMatch: Potential, createdAt: "not a date"}
`), WithActivity(nil))
	require.NoError(t, err)
	apps, _ := s.Applicants(context.Background())
	require.Len(t, apps, 1)
	assert.Equal(t, applicant.StatusPendingReview, apps[0].Status)
	assert.True(t, apps[0].CreatedAt.IsZero())

	_, err = ParseSample([]byte(`jobs: [{id: 1, title: A, status: active}]`))
	assert.Error(t, err)

	_, err = ParseSample([]byte(`applicants: [{id: 1, jobMatch: Great}]`))
	assert.Error(t, err)

	_, err = ParseSample([]byte(`jobs: {`))
	assert.Error(t, err)
}

func TestLoadSampleFile(t *testing.T) {
	_, err := LoadSampleFile("testdata/missing.yaml")
	assert.Error(t, err)

	s, err := LoadSampleFile("sample.yaml")
	require.NoError(t, err)
	jobs, _ := s.Jobs(context.Background())
	assert.Len(t, jobs, 8)
}

func TestSelector(t *testing.T) {
	ctx := context.Background()
	live := fakeProvider{
		jobs:       []job.Job{{ID: 10, Title: "Live"}},
		applicants: []applicant.Applicant{{ID: 20, JobID: 10}},
	}
	sample := fakeProvider{
		jobs:       []job.Job{{ID: 1, Title: "Sample"}},
		applicants: []applicant.Applicant{{ID: 2, JobID: 1}},
	}

	t.Run("primary has data", func(t *testing.T) {
		snap := NewSelector(live, sample, quietLogger()).Load(ctx)
		assert.Equal(t, SourceRemote, snap.JobsSource)
		assert.Equal(t, SourceRemote, snap.ApplicantsSource)
		assert.Equal(t, "Live", snap.Jobs[0].Title)
	})

	t.Run("primary fails", func(t *testing.T) {
		snap := NewSelector(fakeProvider{err: errors.New("connection refused")}, sample, quietLogger()).Load(ctx)
		assert.Equal(t, SourceSample, snap.JobsSource)
		assert.Equal(t, SourceSample, snap.ApplicantsSource)
		assert.Equal(t, "Sample", snap.Jobs[0].Title)
	})

	t.Run("collections decided independently", func(t *testing.T) {
		partial := fakeProvider{jobs: live.jobs}
		snap := NewSelector(partial, sample, quietLogger()).Load(ctx)
		assert.Equal(t, SourceRemote, snap.JobsSource)
		assert.Equal(t, SourceSample, snap.ApplicantsSource)
		assert.Equal(t, int64(2), snap.Applicants[0].ID)
	})

	t.Run("fallback fails too", func(t *testing.T) {
		broken := fakeProvider{err: errors.New("boom")}
		jobs, src := NewSelector(broken, broken, nil).Jobs(ctx)
		assert.Equal(t, SourceSample, src)
		assert.NotNil(t, jobs)
		assert.Empty(t, jobs)
	})
}
