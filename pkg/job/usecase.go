package job

import (
	"context"
	"strings"
	"time"
)

// UseCase encapsulates job mutations issued from the jobs view.
type UseCase interface {
	Create(ctx context.Context, title, description string) (Job, error)
	ToggleStatus(ctx context.Context, id int64) (Job, error)
	UpdateDescription(ctx context.Context, id int64, description string) (Job, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) UseCase {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Create(ctx context.Context, title, description string) (Job, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" {
		return Job{}, ErrValidation("title is required")
	}
	if description == "" {
		return Job{}, ErrValidation("description is required")
	}
	return s.repo.Create(ctx, Job{
		Title:       title,
		Description: description,
		Status:      StatusActive,
		CreatedAt:   s.now().UTC(),
	})
}

func (s *service) ToggleStatus(ctx context.Context, id int64) (Job, error) {
	j, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Job{}, err
	}
	j.Status = j.Status.Toggled()
	if err := s.repo.UpdateStatus(ctx, id, j.Status); err != nil {
		return Job{}, err
	}
	return j, nil
}

func (s *service) UpdateDescription(ctx context.Context, id int64, description string) (Job, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Job{}, ErrValidation("description is required")
	}
	if err := s.repo.UpdateDescription(ctx, id, description); err != nil {
		return Job{}, err
	}
	return s.repo.GetByID(ctx, id)
}

// ErrValidation is a plain validation error.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
