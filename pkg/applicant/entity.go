package applicant

import (
	"context"
	"errors"
	"time"
)

// JobMatch classifies how well an applicant fits the role.
type JobMatch string

const (
	MatchTopPerformer   JobMatch = "Top Performer"
	MatchPotential      JobMatch = "Potential"
	MatchUnderPerformer JobMatch = "Under Performer"
)

// JobMatches lists job-match categories in display order.
var JobMatches = []JobMatch{MatchTopPerformer, MatchPotential, MatchUnderPerformer}

// Status is the review state of an application.
type Status string

const (
	StatusPendingReview Status = "Pending Review"
	StatusApproved      Status = "Approved"
	StatusRejected      Status = "Rejected"
)

// Statuses lists application statuses in display order.
var Statuses = []Status{StatusPendingReview, StatusApproved, StatusRejected}

func ParseJobMatch(s string) (JobMatch, error) {
	for _, m := range JobMatches {
		if string(m) == s {
			return m, nil
		}
	}
	return "", ErrValidation("jobMatch must be one of Top Performer, Potential, Under Performer")
}

func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", ErrValidation("status must be one of Pending Review, Approved, Rejected")
}

// Applicant is a candidate who applied for exactly one job.
// A zero CreatedAt means the stored timestamp could not be read.
type Applicant struct {
	ID                    int64     `json:"id"`
	Name                  string    `json:"name"`
	Email                 string    `json:"email"`
	JobID                 int64     `json:"jobId"`
	JobMatch              JobMatch  `json:"jobMatch"`
	Status                Status    `json:"applicationStatus"`
	YearsOfExperience     string    `json:"yearsOfExperience"`
	NotableQualifications string    `json:"notableQualifications"`
	NotableWorkExperience string    `json:"notableWorkExperience"`
	CreatedAt             time.Time `json:"createdAt"`
}

var ErrNotFound = errors.New("applicant not found")

// Repository is the storage port for applicants.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Applicant, error)
	ListAll(ctx context.Context) ([]Applicant, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
	// InsertBatch stores applicants in one round trip and returns how many were written.
	InsertBatch(ctx context.Context, batch []Applicant) (int, error)
	DeleteAll(ctx context.Context) error
}

// ErrValidation is a plain validation error.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
