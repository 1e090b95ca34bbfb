package datasource

import (
	"context"

	"github.com/artem13815/hr-dashboard/pkg/applicant"
	"github.com/artem13815/hr-dashboard/pkg/job"
)

// Remote reads the live collections from the store.
type Remote struct {
	jobs       job.Repository
	applicants applicant.Repository
}

func NewRemote(jobs job.Repository, applicants applicant.Repository) *Remote {
	return &Remote{jobs: jobs, applicants: applicants}
}

func (r *Remote) Jobs(ctx context.Context) ([]job.Job, error) {
	return r.jobs.ListAll(ctx)
}

func (r *Remote) Applicants(ctx context.Context) ([]applicant.Applicant, error) {
	return r.applicants.ListAll(ctx)
}
