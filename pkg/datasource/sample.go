package datasource

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"slices"
	"sync"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/artem13815/hr-dashboard/pkg/applicant"
	"github.com/artem13815/hr-dashboard/pkg/job"
	"github.com/artem13815/hr-dashboard/pkg/seed"
	"github.com/artem13815/hr-dashboard/pkg/stats"
)

//go:embed sample.yaml
var sampleYAML []byte

type sampleFile struct {
	Jobs       []sampleJob       `yaml:"jobs"`
	Applicants []sampleApplicant `yaml:"applicants"`
}

type sampleJob struct {
	ID          int64  `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Status      string `yaml:"status"`
}

type sampleApplicant struct {
	ID                    int64  `yaml:"id"`
	Name                  string `yaml:"name"`
	Email                 string `yaml:"email"`
	JobID                 int64  `yaml:"jobId"`
	JobMatch              string `yaml:"jobMatch"`
	ApplicationStatus     string `yaml:"applicationStatus"`
	YearsOfExperience     string `yaml:"yearsOfExperience"`
	NotableQualifications string `yaml:"notableQualifications"`
	NotableWorkExperience string `yaml:"notableWorkExperience"`
	CreatedAt             string `yaml:"createdAt"`
}

// Sample is the dataset served when the store has nothing to offer: the
// jobs and applicants read from YAML plus, unless disabled, generated
// applications for every Active job over the last 30 days so the charts
// have something to draw. The generated part is rebuilt once per day.
// Sample is read-only; every call returns fresh copies.
type Sample struct {
	jobs       []job.Job
	applicants []applicant.Applicant

	activity   *seed.Generator
	activeJobs []int64
	nextID     int64

	mu     sync.Mutex
	day    string
	recent []applicant.Applicant
}

// SampleOption tunes a Sample.
type SampleOption func(*Sample)

// WithActivity sets the generator behind the recent applications. A nil
// generator serves the YAML records alone.
func WithActivity(gen *seed.Generator) SampleOption {
	return func(s *Sample) { s.activity = gen }
}

// DefaultSample returns the dataset compiled into the binary.
func DefaultSample(opts ...SampleOption) (*Sample, error) {
	return ParseSample(sampleYAML, opts...)
}

// LoadSampleFile reads a dataset with the same layout as the embedded one.
func LoadSampleFile(path string, opts ...SampleOption) (*Sample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sample dataset: %w", err)
	}
	return ParseSample(data, opts...)
}

// ParseSample decodes a YAML dataset. Enum values must match exactly; a
// createdAt that cannot be read leaves the applicant with a zero time.
func ParseSample(data []byte, opts ...SampleOption) (*Sample, error) {
	var f sampleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode sample dataset: %w", err)
	}
	s := &Sample{
		jobs:       make([]job.Job, 0, len(f.Jobs)),
		applicants: make([]applicant.Applicant, 0, len(f.Applicants)),
		activity:   seed.NewGenerator(nil, nil),
		nextID:     1,
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, sj := range f.Jobs {
		st, err := job.ParseStatus(sj.Status)
		if err != nil {
			return nil, fmt.Errorf("sample job %d: %w", sj.ID, err)
		}
		s.jobs = append(s.jobs, job.Job{ID: sj.ID, Title: sj.Title, Description: sj.Description, Status: st})
		if st == job.StatusActive {
			s.activeJobs = append(s.activeJobs, sj.ID)
		}
	}
	for _, sa := range f.Applicants {
		match, err := applicant.ParseJobMatch(sa.JobMatch)
		if err != nil {
			return nil, fmt.Errorf("sample applicant %d: %w", sa.ID, err)
		}
		status := applicant.StatusPendingReview
		if sa.ApplicationStatus != "" {
			if status, err = applicant.ParseStatus(sa.ApplicationStatus); err != nil {
				return nil, fmt.Errorf("sample applicant %d: %w", sa.ID, err)
			}
		}
		createdAt, _ := stats.ParseTimestamp(sa.CreatedAt)
		s.applicants = append(s.applicants, applicant.Applicant{
			ID:                    sa.ID,
			Name:                  sa.Name,
			Email:                 sa.Email,
			JobID:                 sa.JobID,
			JobMatch:              match,
			Status:                status,
			YearsOfExperience:     sa.YearsOfExperience,
			NotableQualifications: sa.NotableQualifications,
			NotableWorkExperience: sa.NotableWorkExperience,
			CreatedAt:             createdAt,
		})
		s.nextID = max(s.nextID, sa.ID+1)
	}
	return s, nil
}

func (s *Sample) Jobs(context.Context) ([]job.Job, error) {
	return slices.Clone(s.jobs), nil
}

func (s *Sample) Applicants(context.Context) ([]applicant.Applicant, error) {
	out := slices.Clone(s.applicants)
	return append(out, s.recentActivity()...), nil
}

func (s *Sample) recentActivity() []applicant.Applicant {
	if s.activity == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if day := s.activity.Now().Format(time.DateOnly); day != s.day {
		s.recent = s.activity.Activity(s.activeJobs, s.nextID)
		s.day = day
	}
	return s.recent
}
