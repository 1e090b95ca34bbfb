package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/hr-dashboard/pkg/job"
)

// JobRepository stores job postings.
type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

const jobColumns = `id, title, description, status, created_at`

func scanJob(row pgx.Row) (job.Job, error) {
	var j job.Job
	var status string
	var created time.Time
	if err := row.Scan(&j.ID, &j.Title, &j.Description, &status, &created); err != nil {
		return job.Job{}, err
	}
	j.Status = job.Status(status)
	j.CreatedAt = created.UTC()
	return j, nil
}

func (r *JobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	if j.CreatedAt.IsZero() {
		j.CreatedAt = time.Now().UTC()
	}
	row := r.pool.QueryRow(ctx, `
INSERT INTO jobs (title, description, status, created_at)
VALUES ($1, $2, $3, $4)
RETURNING `+jobColumns, strings.TrimSpace(j.Title), j.Description, string(j.Status), j.CreatedAt)
	return scanJob(row)
}

func (r *JobRepository) GetByID(ctx context.Context, id int64) (job.Job, error) {
	j, err := scanJob(r.pool.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return job.Job{}, job.ErrNotFound
	}
	return j, err
}

// ListAll returns every job, newest first.
func (r *JobRepository) ListAll(ctx context.Context) ([]job.Job, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []job.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, j)
	}
	return res, rows.Err()
}

func (r *JobRepository) UpdateStatus(ctx context.Context, id int64, status job.Status) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE jobs SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *JobRepository) UpdateDescription(ctx context.Context, id int64, description string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE jobs SET description = $2 WHERE id = $1`, id, description)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return job.ErrNotFound
	}
	return nil
}

// InsertMany writes jobs in one transaction and returns them with their ids.
func (r *JobRepository) InsertMany(ctx context.Context, jobs []job.Job) ([]job.Job, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	out := make([]job.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.CreatedAt.IsZero() {
			j.CreatedAt = time.Now().UTC()
		}
		created, err := scanJob(tx.QueryRow(ctx, `
INSERT INTO jobs (title, description, status, created_at)
VALUES ($1, $2, $3, $4)
RETURNING `+jobColumns, strings.TrimSpace(j.Title), j.Description, string(j.Status), j.CreatedAt))
		if err != nil {
			return nil, err
		}
		out = append(out, created)
	}
	return out, tx.Commit(ctx)
}

func (r *JobRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM jobs`)
	return err
}
