package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/artem13815/hr-dashboard/pkg/applicant"
	"github.com/artem13815/hr-dashboard/pkg/job"
)

// ErrNoJobs is returned when applicants are seeded before any job exists.
var ErrNoJobs = errors.New("no jobs to attach applicants to, seed jobs first")

// Result reports what a reseed wrote.
type Result struct {
	Count   int `json:"count"`
	Batches int `json:"batches"`
}

// UseCase replaces the stored collections with demo data.
type UseCase interface {
	SeedJobs(ctx context.Context) ([]job.Job, error)
	SeedApplicants(ctx context.Context) (Result, error)
}

type service struct {
	jobs       job.Repository
	applicants applicant.Repository
	gen        *Generator
}

func NewService(jobs job.Repository, applicants applicant.Repository, gen *Generator) UseCase {
	if gen == nil {
		gen = NewGenerator(nil, nil)
	}
	return &service{jobs: jobs, applicants: applicants, gen: gen}
}

// SeedJobs clears applicants and jobs, then inserts the demo postings.
// Applicants go first because they reference jobs.
func (s *service) SeedJobs(ctx context.Context) ([]job.Job, error) {
	if err := s.applicants.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("clear applicants: %w", err)
	}
	if err := s.jobs.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("clear jobs: %w", err)
	}
	created, err := s.jobs.InsertMany(ctx, Jobs())
	if err != nil {
		return nil, fmt.Errorf("insert jobs: %w", err)
	}
	return created, nil
}

func (s *service) SeedApplicants(ctx context.Context) (Result, error) {
	jobs, err := s.jobs.ListAll(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("list jobs: %w", err)
	}
	if len(jobs) == 0 {
		return Result{}, ErrNoJobs
	}
	ids := make([]int64, len(jobs))
	for i, j := range jobs {
		ids[i] = j.ID
	}

	if err := s.applicants.DeleteAll(ctx); err != nil {
		return Result{}, fmt.Errorf("clear applicants: %w", err)
	}

	var res Result
	all := s.gen.Applicants(ApplicantCount, ids)
	for start := 0; start < len(all); start += BatchSize {
		end := min(start+BatchSize, len(all))
		n, err := s.applicants.InsertBatch(ctx, all[start:end])
		if err != nil {
			return res, fmt.Errorf("insert applicants batch %d: %w", res.Batches+1, err)
		}
		res.Count += n
		res.Batches++
	}
	return res, nil
}
