package datasource

import (
	"context"
	"log/slog"

	"github.com/artem13815/hr-dashboard/pkg/applicant"
	"github.com/artem13815/hr-dashboard/pkg/job"
)

// Source tells which provider a collection came from.
type Source string

const (
	SourceRemote Source = "remote"
	SourceSample Source = "sample"
)

// Provider yields the full job and applicant collections.
type Provider interface {
	Jobs(ctx context.Context) ([]job.Job, error)
	Applicants(ctx context.Context) ([]applicant.Applicant, error)
}

// Snapshot is the data one request works on.
type Snapshot struct {
	Jobs             []job.Job
	Applicants       []applicant.Applicant
	JobsSource       Source
	ApplicantsSource Source
}

// Selector serves the primary collections and substitutes the fallback ones
// whenever the primary fails or returns nothing. The decision is made per
// collection, so live jobs can be paired with sample applicants.
type Selector struct {
	primary  Provider
	fallback Provider
	log      *slog.Logger
}

func NewSelector(primary, fallback Provider, log *slog.Logger) *Selector {
	if log == nil {
		log = slog.Default()
	}
	return &Selector{primary: primary, fallback: fallback, log: log}
}

func (s *Selector) Jobs(ctx context.Context) ([]job.Job, Source) {
	return pick(ctx, s, "jobs", s.primary.Jobs, s.fallback.Jobs)
}

func (s *Selector) Applicants(ctx context.Context) ([]applicant.Applicant, Source) {
	return pick(ctx, s, "applicants", s.primary.Applicants, s.fallback.Applicants)
}

// Load fetches both collections once.
func (s *Selector) Load(ctx context.Context) Snapshot {
	jobs, js := s.Jobs(ctx)
	apps, as := s.Applicants(ctx)
	return Snapshot{Jobs: jobs, Applicants: apps, JobsSource: js, ApplicantsSource: as}
}

func pick[T any](ctx context.Context, s *Selector, name string, primary, fallback func(context.Context) ([]T, error)) ([]T, Source) {
	items, err := primary(ctx)
	switch {
	case err != nil:
		s.log.WarnContext(ctx, "primary source failed, using sample data", "collection", name, "error", err)
	case len(items) == 0:
		s.log.InfoContext(ctx, "primary source is empty, using sample data", "collection", name)
	default:
		return items, SourceRemote
	}

	items, err = fallback(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "sample source failed", "collection", name, "error", err)
		return []T{}, SourceSample
	}
	if items == nil {
		items = []T{}
	}
	return items, SourceSample
}
