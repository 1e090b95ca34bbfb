package job

import (
	"context"
	"errors"
	"time"
)

// Status is the lifecycle state of a job posting.
type Status string

const (
	StatusActive Status = "Active"
	StatusClosed Status = "Closed"
)

// Statuses lists job statuses in display order.
var Statuses = []Status{StatusActive, StatusClosed}

// ParseStatus accepts the exact category strings only.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusClosed:
		return Status(s), nil
	}
	return "", ErrValidation("status must be one of Active, Closed")
}

// Toggled returns the opposite status.
func (s Status) Toggled() Status {
	if s == StatusActive {
		return StatusClosed
	}
	return StatusActive
}

// Job describes an open or closed position.
type Job struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

var ErrNotFound = errors.New("job not found")

// Repository is the storage port for jobs. Jobs are never deleted one by
// one; DeleteAll exists for reseeding only.
type Repository interface {
	Create(ctx context.Context, j Job) (Job, error)
	GetByID(ctx context.Context, id int64) (Job, error)
	ListAll(ctx context.Context) ([]Job, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
	UpdateDescription(ctx context.Context, id int64, description string) error
	InsertMany(ctx context.Context, jobs []Job) ([]Job, error)
	DeleteAll(ctx context.Context) error
}
