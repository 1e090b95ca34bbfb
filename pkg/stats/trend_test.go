package stats

import (
	"encoding/json"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/hr-dashboard/pkg/applicant"
	"github.com/artem13815/hr-dashboard/pkg/job"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func rng(start, end string) DateRange {
	return DateRange{Start: day(start), End: day(end)}
}

func periods(tr Trend) []string {
	out := make([]string, 0, len(tr.Buckets))
	for _, b := range tr.Buckets {
		out = append(out, b.Period)
	}
	return out
}

func TestBuildTrend_DailyExample(t *testing.T) {
	jobs := []job.Job{{ID: 1, Title: "A", Status: job.StatusActive}}
	apps := []applicant.Applicant{
		{ID: 1, JobID: 1, CreatedAt: day("2025-01-01")},
		{ID: 2, JobID: 1, CreatedAt: day("2025-01-01")},
		{ID: 3, JobID: 1, CreatedAt: day("2025-01-03")},
	}

	tr := BuildTrend(TrendQuery{Status: job.StatusActive, Range: rng("2025-01-01", "2025-01-03")}, jobs, apps)

	assert.Equal(t, Daily, tr.Granularity)
	assert.Equal(t, []Series{{Title: "A", Color: Palette[0]}}, tr.Series)
	assert.Equal(t, []Bucket{
		{Period: "Wed", Counts: map[string]int{"A": 2}},
		{Period: "Thu", Counts: map[string]int{"A": 0}},
		{Period: "Fri", Counts: map[string]int{"A": 1}},
	}, tr.Buckets)
	assert.Equal(t, 3, tr.YMax)

	raw, err := json.Marshal(tr.Buckets)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"period":"Wed","A":2},{"period":"Thu","A":0},{"period":"Fri","A":1}]`, string(raw))
}

func TestBuildTrend_Weekly(t *testing.T) {
	jobs := []job.Job{
		{ID: 1, Title: "A", Status: job.StatusActive},
		{ID: 2, Title: "B", Status: job.StatusActive},
		{ID: 3, Title: "C", Status: job.StatusClosed},
	}
	apps := []applicant.Applicant{
		{JobID: 1, CreatedAt: at("2024-12-30T09:00:00Z")}, // same week as the range start, but before it
		{JobID: 1, CreatedAt: at("2025-01-02T09:00:00Z")},
		{JobID: 1, CreatedAt: at("2025-01-06T09:00:00Z")},
		{JobID: 2, CreatedAt: at("2025-01-07T09:00:00Z")},
		{JobID: 3, CreatedAt: at("2025-01-07T09:00:00Z")},
		{JobID: 1, CreatedAt: at("2025-01-14T23:59:59Z")},
		{JobID: 1, CreatedAt: at("2025-01-15T00:00:00Z")},
	}

	tr := BuildTrend(TrendQuery{Status: job.StatusActive, Range: rng("2025-01-01", "2025-01-14")}, jobs, apps)

	assert.Equal(t, Weekly, tr.Granularity)
	assert.Equal(t, []string{"Dec-week-5", "Jan-week-2", "Jan-week-3"}, periods(tr))
	assert.Equal(t, map[string]int{"A": 1, "B": 0}, tr.Buckets[0].Counts)
	assert.Equal(t, map[string]int{"A": 1, "B": 1}, tr.Buckets[1].Counts)
	assert.Equal(t, map[string]int{"A": 1, "B": 0}, tr.Buckets[2].Counts)
}

func TestBuildTrend_GranularityBoundary(t *testing.T) {
	jobs := []job.Job{{ID: 1, Title: "A", Status: job.StatusActive}}

	seven := BuildTrend(TrendQuery{Status: job.StatusActive, Range: rng("2025-03-01", "2025-03-07")}, jobs, nil)
	assert.Equal(t, Daily, seven.Granularity)
	assert.Len(t, seven.Buckets, 7)

	eight := BuildTrend(TrendQuery{Status: job.StatusActive, Range: rng("2025-03-01", "2025-03-08")}, jobs, nil)
	assert.Equal(t, Weekly, eight.Granularity)
	// 2025-03-01 is a Saturday: weeks of Feb 23 and Mar 2
	assert.Equal(t, []string{"Feb-week-5", "Mar-week-2"}, periods(eight))
}

func TestBuildTrend_SingleDay(t *testing.T) {
	jobs := []job.Job{{ID: 1, Title: "A", Status: job.StatusActive}}
	apps := []applicant.Applicant{
		{JobID: 1, CreatedAt: at("2025-02-10T00:00:00Z")},
		{JobID: 1, CreatedAt: at("2025-02-10T23:00:00Z")},
		{JobID: 1, CreatedAt: at("2025-02-11T00:00:00Z")},
		{JobID: 1, CreatedAt: at("2025-02-09T23:59:59Z")},
	}

	tr := BuildTrend(TrendQuery{Status: job.StatusActive, Range: rng("2025-02-10", "2025-02-10")}, jobs, apps)

	assert.Equal(t, Daily, tr.Granularity)
	require.Len(t, tr.Buckets, 1)
	assert.Equal(t, "Mon", tr.Buckets[0].Period)
	assert.Equal(t, 2, tr.Buckets[0].Counts["A"])
}

func TestBuildTrend_SeriesFollowStatusFilter(t *testing.T) {
	jobs := []job.Job{
		{ID: 1, Title: "Frontend", Status: job.StatusActive},
		{ID: 2, Title: "DevOps", Status: job.StatusClosed},
		{ID: 3, Title: "Designer", Status: job.StatusClosed},
	}
	apps := []applicant.Applicant{
		{JobID: 1, CreatedAt: day("2025-01-02")},
		{JobID: 2, CreatedAt: day("2025-01-02")},
	}

	tr := BuildTrend(TrendQuery{Status: job.StatusClosed, Range: rng("2025-01-01", "2025-01-20")}, jobs, apps)

	require.Len(t, tr.Series, 2)
	assert.Equal(t, "DevOps", tr.Series[0].Title)
	assert.Equal(t, "Designer", tr.Series[1].Title)
	for _, b := range tr.Buckets {
		assert.Len(t, b.Counts, 2, b.Period)
		assert.Contains(t, b.Counts, "DevOps")
		assert.Contains(t, b.Counts, "Designer")
	}
	assert.Equal(t, 1, tr.Total("DevOps"))
	assert.Equal(t, 0, tr.Total("Designer"))
	assert.Equal(t, 0, tr.Total("Frontend"))
}

func TestBuildTrend_SkipsBadRecords(t *testing.T) {
	jobs := []job.Job{
		{ID: 1, Title: "A", Status: job.StatusActive},
		{ID: 2, Title: "  ", Status: job.StatusActive},
	}
	apps := []applicant.Applicant{
		{JobID: 1},                               // unreadable timestamp
		{JobID: 99, CreatedAt: day("2025-01-01")}, // orphan
		{JobID: 1, CreatedAt: day("2025-01-01")},
		{JobID: 2, CreatedAt: day("2025-01-01")},
	}

	tr := BuildTrend(TrendQuery{Status: job.StatusActive, Range: rng("2025-01-01", "2025-01-01")}, jobs, apps)

	require.Len(t, tr.Buckets, 1)
	assert.Equal(t, map[string]int{"A": 1, UnknownTitle: 1}, tr.Buckets[0].Counts)
}

func TestBuildTrend_EmptyRange(t *testing.T) {
	jobs := []job.Job{{ID: 1, Title: "A", Status: job.StatusActive}}
	apps := []applicant.Applicant{{JobID: 1, CreatedAt: day("2025-01-02")}}

	tr := BuildTrend(TrendQuery{Status: job.StatusActive, Range: rng("2025-01-05", "2025-01-01")}, jobs, apps)

	require.NotNil(t, tr.Buckets)
	assert.Empty(t, tr.Buckets)
	assert.Equal(t, 0, tr.YMax)

	raw, err := json.Marshal(tr)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"buckets":[]`)
}

func TestBuildTrend_NoJobs(t *testing.T) {
	tr := BuildTrend(TrendQuery{Status: job.StatusActive, Range: rng("2025-01-01", "2025-01-02")}, nil, nil)
	assert.NotNil(t, tr.Series)
	assert.Empty(t, tr.Series)
	assert.Len(t, tr.Buckets, 2)
}

func TestBuildTrend_Location(t *testing.T) {
	jobs := []job.Job{{ID: 1, Title: "A", Status: job.StatusActive}}
	apps := []applicant.Applicant{{JobID: 1, CreatedAt: at("2025-01-01T22:30:00Z")}}
	plus3 := time.FixedZone("UTC+3", 3*60*60)

	utc := BuildTrend(TrendQuery{Status: job.StatusActive, Range: rng("2025-01-01", "2025-01-02")}, jobs, apps)
	assert.Equal(t, 1, utc.Buckets[0].Counts["A"])

	local := BuildTrend(TrendQuery{
		Status:   job.StatusActive,
		Range:    DateRange{Start: time.Date(2025, 1, 1, 0, 0, 0, 0, plus3), End: time.Date(2025, 1, 2, 0, 0, 0, 0, plus3)},
		Location: plus3,
	}, jobs, apps)
	assert.Equal(t, 0, local.Buckets[0].Counts["A"])
	assert.Equal(t, 1, local.Buckets[1].Counts["A"])
}

func TestBuildTrend_SumsMatchApplicantsInRange(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	jobs := []job.Job{
		{ID: 1, Title: "A", Status: job.StatusActive},
		{ID: 2, Title: "B", Status: job.StatusActive},
		{ID: 3, Title: "C", Status: job.StatusClosed},
	}
	base := day("2025-01-01")
	apps := make([]applicant.Applicant, 0, 400)
	for i := 0; i < 400; i++ {
		apps = append(apps, applicant.Applicant{
			ID:        int64(i + 1),
			JobID:     int64(r.IntN(4) + 1), // job 4 does not exist
			CreatedAt: base.Add(time.Duration(r.IntN(90*24)) * time.Hour),
		})
	}

	for _, q := range []DateRange{rng("2025-01-10", "2025-01-14"), rng("2025-01-05", "2025-03-01")} {
		tr := BuildTrend(TrendQuery{Status: job.StatusActive, Range: q}, jobs, apps)
		for _, j := range jobs[:2] {
			want := 0
			for _, a := range apps {
				d := civil(a.CreatedAt, time.UTC)
				if a.JobID == j.ID && !d.Before(q.Start) && !d.After(q.End) {
					want++
				}
			}
			assert.Equal(t, want, tr.Total(j.Title), "%s over %v..%v", j.Title, q.Start, q.End)
		}

		again := BuildTrend(TrendQuery{Status: job.StatusActive, Range: q}, jobs, apps)
		assert.Equal(t, tr, again)
	}
}

func TestCountByJob(t *testing.T) {
	jobs := []job.Job{
		{ID: 1, Title: "A", Status: job.StatusActive},
		{ID: 2, Title: "B", Status: job.StatusClosed},
	}
	apps := []applicant.Applicant{{JobID: 1}, {JobID: 1}, {JobID: 7}}

	assert.Equal(t, []Slice{{Name: "A", Value: 2}, {Name: "B", Value: 0}, {Name: UnknownTitle, Value: 1}}, CountByJob(jobs, apps))
	assert.Equal(t, []Slice{}, CountByJob(nil, nil))
}

func TestOrphansCountOnlyPerJob(t *testing.T) {
	jobs := []job.Job{{ID: 1, Title: "A", Status: job.StatusActive}}
	apps := []applicant.Applicant{
		{JobID: 1, CreatedAt: day("2025-01-01")},
		{JobID: 42, CreatedAt: day("2025-01-01")},
	}

	tr := BuildTrend(TrendQuery{Status: job.StatusActive, Range: rng("2025-01-01", "2025-01-01")}, jobs, apps)
	assert.Equal(t, []Series{{Title: "A", Color: ColorAt(0)}}, tr.Series)
	assert.Equal(t, 1, tr.Total("A"))
	assert.Zero(t, tr.Total(UnknownTitle))

	assert.Equal(t, []Slice{{Name: "A", Value: 1}, {Name: UnknownTitle, Value: 1}}, CountByJob(jobs, apps))
}
