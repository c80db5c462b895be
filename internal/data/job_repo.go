package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/gigpay/timeclock/internal/core"
	"github.com/gigpay/timeclock/internal/domain/model"
	apperrors "github.com/gigpay/timeclock/internal/errors"
)

const jobColumns = `id, employer_id, title, hourly_rate_cents, created_at, updated_at`

// JobRepo implements core.JobRepository over Postgres.
type JobRepo struct {
	DB    *sql.DB
	clock core.Clock
}

// NewJobRepo creates a JobRepo with the given database handle.
func NewJobRepo(db *sql.DB, clock core.Clock) *JobRepo {
	if clock == nil {
		clock = &RealTimeProvider{}
	}
	return &JobRepo{DB: db, clock: clock}
}

// Create registers a job with its canonical hourly rate and opens its empty
// escrow account in the same transaction.
func (r *JobRepo) Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error) {
	if req == nil {
		return nil, apperrors.Validation("create job request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	now := r.clock.Now().UTC()
	id := uuid.NewString()

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			_ = rbErr
		}
	}()

	row := tx.QueryRowContext(ctx, `
		INSERT INTO jobs (id, employer_id, title, hourly_rate_cents, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING `+jobColumns,
		id, req.EmployerID, req.Title, int64(req.HourlyRate), now,
	)
	job, err := scanJob(row)
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", apperrors.MapDBError(err))
	}

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO escrow_accounts (job_id, balance_cents, updated_at)
		VALUES ($1, 0, $2)
	`, id, now); err != nil {
		return nil, fmt.Errorf("open escrow account: %w", apperrors.MapDBError(err))
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit job: %w", err)
	}
	return job, nil
}

// GetByID retrieves a job by id.
func (r *JobRepo) GetByID(ctx context.Context, id string) (*model.Job, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+jobColumns+`
		FROM jobs
		WHERE id = $1
	`, id)

	job, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFoundf("job %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get job: %w", apperrors.MapDBError(err))
	}
	return job, nil
}

func scanJob(scanner rowScanner) (*model.Job, error) {
	var (
		job  model.Job
		rate int64
	)
	if err := scanner.Scan(&job.ID, &job.EmployerID, &job.Title, &rate, &job.CreatedAt, &job.UpdatedAt); err != nil {
		return nil, err
	}
	job.HourlyRate = model.Cents(rate)
	return &job, nil
}
