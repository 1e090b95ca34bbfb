package stats

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/artem13815/hr-dashboard/pkg/applicant"
	"github.com/artem13815/hr-dashboard/pkg/job"
)

// UnknownTitle labels applicants whose job cannot be resolved to a title.
const UnknownTitle = "Unknown"

// Palette holds the line colours assigned to series in order.
var Palette = []string{"#3b82f6", "#8b5cf6", "#ec4899", "#f59e0b", "#10b981"}

// ColorAt cycles through Palette.
func ColorAt(i int) string {
	return Palette[i%len(Palette)]
}

// TrendQuery selects which jobs are tracked and over which days.
// A nil Location means UTC.
type TrendQuery struct {
	Status   job.Status
	Range    DateRange
	Location *time.Location
}

// Series is one line of the chart legend.
type Series struct {
	Title string `json:"title"`
	Color string `json:"color"`
}

// Bucket is one period of a trend: a label plus applicant counts per job
// title. Every tracked title is present, zero when nothing matched.
type Bucket struct {
	Period string
	Counts map[string]int
}

// MarshalJSON flattens the bucket into {"period": ..., "<title>": n}.
// A job literally titled "period" is shadowed by the label.
func (b Bucket) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(b.Counts)+1)
	for title, n := range b.Counts {
		m[title] = n
	}
	m["period"] = b.Period
	return json.Marshal(m)
}

// Trend is a chart-ready applicant time series.
type Trend struct {
	Granularity Granularity `json:"granularity"`
	Series      []Series    `json:"series"`
	Buckets     []Bucket    `json:"buckets"`
	// YMax is the y-axis ceiling: the largest count plus 10%, rounded up.
	YMax int `json:"yMax"`
}

// Total sums the counts of one title across all buckets.
func (t Trend) Total(title string) int {
	n := 0
	for _, b := range t.Buckets {
		n += b.Counts[title]
	}
	return n
}

func titleOf(j job.Job) string {
	if t := strings.TrimSpace(j.Title); t != "" {
		return j.Title
	}
	return UnknownTitle
}

// BuildTrend buckets applicants of jobs with the queried status by the day
// or week they applied. Ranges longer than seven days use Sunday-started
// weeks. Every period in range is emitted, in chronological order, even when
// it has no applicants. Applicants with a zero CreatedAt or whose job is not
// tracked are skipped. The inputs are not modified.
// Orphaned applicants, whose job id matches no job, are counted only by
// CountByJob under UnknownTitle.
func BuildTrend(q TrendQuery, jobs []job.Job, applicants []applicant.Applicant) Trend {
	loc := q.Location
	if loc == nil {
		loc = time.UTC
	}

	tracked := make(map[int64]string)
	var titles []string
	seen := make(map[string]bool)
	for _, j := range jobs {
		if j.Status != q.Status {
			continue
		}
		title := titleOf(j)
		tracked[j.ID] = title
		if !seen[title] {
			seen[title] = true
			titles = append(titles, title)
		}
	}

	series := make([]Series, len(titles))
	for i, title := range titles {
		series[i] = Series{Title: title, Color: ColorAt(i)}
	}

	days := q.Range.Days(loc)
	out := Trend{
		Granularity: GranularityFor(days),
		Series:      series,
		Buckets:     []Bucket{},
	}
	if days == 0 {
		return out
	}

	start, end := civil(q.Range.Start, loc), civil(q.Range.End, loc)
	keyOf := func(day time.Time) time.Time { return day }
	step := 1
	label := dayLabel
	first := start
	if out.Granularity == Weekly {
		keyOf = weekStart
		step = 7
		label = weekLabel
		first = weekStart(start)
	}

	index := make(map[time.Time]int)
	for d := first; !d.After(end); d = d.AddDate(0, 0, step) {
		counts := make(map[string]int, len(titles))
		for _, title := range titles {
			counts[title] = 0
		}
		index[d] = len(out.Buckets)
		out.Buckets = append(out.Buckets, Bucket{Period: label(d), Counts: counts})
	}

	for _, a := range applicants {
		if a.CreatedAt.IsZero() {
			continue
		}
		title, ok := tracked[a.JobID]
		if !ok {
			continue
		}
		day := civil(a.CreatedAt, loc)
		if day.Before(start) || day.After(end) {
			continue
		}
		if i, ok := index[keyOf(day)]; ok {
			out.Buckets[i].Counts[title]++
		}
	}

	peak := 0
	for _, b := range out.Buckets {
		for _, n := range b.Counts {
			peak = max(peak, n)
		}
	}
	out.YMax = int(math.Ceil(float64(peak) * 1.1))
	return out
}

// CountByJob counts applicants per job title in job order. Applicants whose
// job id is not among jobs are reported under UnknownTitle, which is only
// present when there are such applicants.
func CountByJob(jobs []job.Job, applicants []applicant.Applicant) []Slice {
	titleByID := make(map[int64]string, len(jobs))
	index := make(map[string]int)
	out := []Slice{}
	for _, j := range jobs {
		title := titleOf(j)
		titleByID[j.ID] = title
		if _, ok := index[title]; !ok {
			index[title] = len(out)
			out = append(out, Slice{Name: title})
		}
	}
	for _, a := range applicants {
		title, ok := titleByID[a.JobID]
		if !ok {
			title = UnknownTitle
		}
		i, ok := index[title]
		if !ok {
			i = len(out)
			index[title] = i
			out = append(out, Slice{Name: title})
		}
		out[i].Value++
	}
	return out
}
