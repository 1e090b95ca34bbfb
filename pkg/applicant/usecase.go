package applicant

import (
	"context"
)

// UseCase covers the review actions available on the applicant detail view.
type UseCase interface {
	Approve(ctx context.Context, id int64) (Applicant, error)
	Reject(ctx context.Context, id int64) (Applicant, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Approve(ctx context.Context, id int64) (Applicant, error) {
	return s.setStatus(ctx, id, StatusApproved)
}

func (s *service) Reject(ctx context.Context, id int64) (Applicant, error) {
	return s.setStatus(ctx, id, StatusRejected)
}

func (s *service) setStatus(ctx context.Context, id int64, status Status) (Applicant, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Applicant{}, err
	}
	if a.Status == status {
		return a, nil
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return Applicant{}, err
	}
	a.Status = status
	return a, nil
}
