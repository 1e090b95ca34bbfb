package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/hr-dashboard/pkg/applicant"
)

// ApplicantRepository stores applications.
type ApplicantRepository struct {
	pool *pgxpool.Pool
}

func NewApplicantRepository(pool *pgxpool.Pool) *ApplicantRepository {
	return &ApplicantRepository{pool: pool}
}

const applicantColumns = `id, job_id, name, email, job_match, application_status,
	years_of_experience, notable_qualifications, notable_work_experience, created_at`

func scanApplicant(row pgx.Row) (applicant.Applicant, error) {
	var a applicant.Applicant
	var match, status string
	var created time.Time
	if err := row.Scan(&a.ID, &a.JobID, &a.Name, &a.Email, &match, &status,
		&a.YearsOfExperience, &a.NotableQualifications, &a.NotableWorkExperience, &created); err != nil {
		return applicant.Applicant{}, err
	}
	a.JobMatch = applicant.JobMatch(match)
	a.Status = applicant.Status(status)
	a.CreatedAt = created.UTC()
	return a, nil
}

func (r *ApplicantRepository) GetByID(ctx context.Context, id int64) (applicant.Applicant, error) {
	a, err := scanApplicant(r.pool.QueryRow(ctx, `SELECT `+applicantColumns+` FROM applicants WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return applicant.Applicant{}, applicant.ErrNotFound
	}
	return a, err
}

// ListAll returns every applicant, newest first.
func (r *ApplicantRepository) ListAll(ctx context.Context) ([]applicant.Applicant, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+applicantColumns+` FROM applicants ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []applicant.Applicant{}
	for rows.Next() {
		a, err := scanApplicant(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, rows.Err()
}

func (r *ApplicantRepository) UpdateStatus(ctx context.Context, id int64, status applicant.Status) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE applicants SET application_status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return applicant.ErrNotFound
	}
	return nil
}

// InsertBatch queues one INSERT per applicant and sends them in a single
// round trip.
func (r *ApplicantRepository) InsertBatch(ctx context.Context, items []applicant.Applicant) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	batch := &pgx.Batch{}
	for _, a := range items {
		created := a.CreatedAt
		if created.IsZero() {
			created = time.Now().UTC()
		}
		status := a.Status
		if status == "" {
			status = applicant.StatusPendingReview
		}
		batch.Queue(`
INSERT INTO applicants (job_id, name, email, job_match, application_status,
	years_of_experience, notable_qualifications, notable_work_experience, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`, a.JobID, a.Name, a.Email, string(a.JobMatch), string(status),
			a.YearsOfExperience, a.NotableQualifications, a.NotableWorkExperience, created)
	}

	br := r.pool.SendBatch(ctx, batch)
	inserted := 0
	for range items {
		cmd, err := br.Exec()
		if err != nil {
			_ = br.Close()
			return inserted, err
		}
		inserted += int(cmd.RowsAffected())
	}
	return inserted, br.Close()
}

func (r *ApplicantRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM applicants`)
	return err
}
