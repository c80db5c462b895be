// Package data provides the Postgres-backed repositories of the timeclock
// engine.
package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gigpay/timeclock/internal/core"
	"github.com/gigpay/timeclock/internal/domain/model"
	apperrors "github.com/gigpay/timeclock/internal/errors"
)

const timeLogColumns = `
  id,
  worker_id,
  job_id,
  hourly_rate_cents,
  start_time,
  end_time,
  duration_minutes,
  total_cost_cents,
  status,
  approved_by,
  approved_at,
  rejected_by,
  rejected_at,
  created_at,
  updated_at
`

// TimeLogRepoConfig holds optional dependencies for TimeLogRepo.
type TimeLogRepoConfig struct {
	Logger *slog.Logger
	Clock  core.Clock
}

// TimeLogRepo implements core.TimeLogRepository over Postgres.
//
// The "at most one ACTIVE log per worker" invariant is enforced by a partial
// unique index on (worker_id) WHERE status = 'ACTIVE'; the losing INSERT of
// a start race surfaces here as a Conflict. Every update is guarded by the
// expected current status so stale retries cannot roll a log backwards.
type TimeLogRepo struct {
	DB     *sql.DB
	clock  core.Clock
	logger *slog.Logger
}

// NewTimeLogRepo creates a TimeLogRepo with the given database handle.
func NewTimeLogRepo(db *sql.DB, cfg TimeLogRepoConfig) *TimeLogRepo {
	clock := cfg.Clock
	if clock == nil {
		clock = &RealTimeProvider{}
	}
	return &TimeLogRepo{DB: db, clock: clock, logger: cfg.Logger}
}

// Create inserts a new ACTIVE log with startTime = now. A worker who already
// has a running log gets a Conflict from the partial unique index.
func (r *TimeLogRepo) Create(ctx context.Context, params core.CreateTimeLogParams) (*model.TimeLog, error) {
	now := r.clock.Now().UTC()
	row := r.DB.QueryRowContext(ctx, `
		INSERT INTO time_logs (id, worker_id, job_id, hourly_rate_cents, start_time, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, 'ACTIVE', $5, $5)
		RETURNING `+timeLogColumns,
		uuid.NewString(), params.WorkerID, params.JobID, int64(params.HourlyRate), now,
	)

	log, err := scanTimeLog(row)
	if err != nil {
		return nil, fmt.Errorf("insert time log: %w", apperrors.MapDBError(err))
	}
	return log, nil
}

// GetByID retrieves a log by id.
func (r *TimeLogRepo) GetByID(ctx context.Context, id string) (*model.TimeLog, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+timeLogColumns+`
		FROM time_logs
		WHERE id = $1
	`, id)

	log, err := scanTimeLog(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFoundf("time log %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get time log: %w", apperrors.MapDBError(err))
	}
	return log, nil
}

// ActiveFor returns the worker's single running log, or nil when the worker
// has no clock running.
func (r *TimeLogRepo) ActiveFor(ctx context.Context, workerID string) (*model.TimeLog, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+timeLogColumns+`
		FROM time_logs
		WHERE worker_id = $1 AND status = 'ACTIVE'
	`, workerID)

	log, err := scanTimeLog(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get active time log: %w", apperrors.MapDBError(err))
	}
	return log, nil
}

// ListByWorker returns the worker's logs, most recent first.
func (r *TimeLogRepo) ListByWorker(ctx context.Context, workerID string) ([]*model.TimeLog, error) {
	return r.list(ctx, `
		SELECT `+timeLogColumns+`
		FROM time_logs
		WHERE worker_id = $1
		ORDER BY start_time DESC, id
	`, workerID)
}

// ListByJob returns the job's logs, most recent first.
func (r *TimeLogRepo) ListByJob(ctx context.Context, jobID string) ([]*model.TimeLog, error) {
	return r.list(ctx, `
		SELECT `+timeLogColumns+`
		FROM time_logs
		WHERE job_id = $1
		ORDER BY start_time DESC, id
	`, jobID)
}

func (r *TimeLogRepo) list(ctx context.Context, query, arg string) ([]*model.TimeLog, error) {
	rows, err := r.DB.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list time logs: %w", apperrors.MapDBError(err))
	}
	defer rows.Close()

	logs := []*model.TimeLog{}
	for rows.Next() {
		log, scanErr := scanTimeLog(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("scan time log: %w", scanErr)
		}
		logs = append(logs, log)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("list time logs: %w", apperrors.MapDBError(rowsErr))
	}
	return logs, nil
}

// ActiveForUpdateInTx locks and returns the worker's running log within tx,
// or nil when the worker has no clock running.
func (r *TimeLogRepo) ActiveForUpdateInTx(ctx context.Context, tx pgx.Tx, workerID string) (*model.TimeLog, error) {
	row := tx.QueryRow(ctx, `
		SELECT `+timeLogColumns+`
		FROM time_logs
		WHERE worker_id = $1 AND status = 'ACTIVE'
		FOR UPDATE
	`, workerID)

	log, err := scanTimeLog(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lock active time log: %w", apperrors.MapDBError(err))
	}
	return log, nil
}

// GetForUpdateInTx locks and returns a log by id within tx.
func (r *TimeLogRepo) GetForUpdateInTx(ctx context.Context, tx pgx.Tx, id string) (*model.TimeLog, error) {
	row := tx.QueryRow(ctx, `
		SELECT `+timeLogColumns+`
		FROM time_logs
		WHERE id = $1
		FOR UPDATE
	`, id)

	log, err := scanTimeLog(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFoundf("time log %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("lock time log: %w", apperrors.MapDBError(err))
	}
	return log, nil
}

// FinishInTx freezes end time, duration and cost onto an ACTIVE log and
// flips it to PENDING_APPROVAL. The status guard means a log that already
// advanced cannot be finished twice.
func (r *TimeLogRepo) FinishInTx(ctx context.Context, tx pgx.Tx, params core.FinishTimeLogParams) (*model.TimeLog, error) {
	row := tx.QueryRow(ctx, `
		UPDATE time_logs
		SET end_time = $2,
		    duration_minutes = $3,
		    total_cost_cents = $4,
		    status = 'PENDING_APPROVAL',
		    updated_at = $5
		WHERE id = $1 AND status = 'ACTIVE'
		RETURNING `+timeLogColumns,
		params.LogID, params.EndTime.UTC(), params.DurationMinutes, int64(params.TotalCost), r.clock.Now().UTC(),
	)

	log, err := scanTimeLog(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.InvalidStatef("time log %s is not active", params.LogID)
	}
	if err != nil {
		return nil, fmt.Errorf("finish time log: %w", apperrors.MapDBError(err))
	}
	return log, nil
}

// MarkPaidInTx flips a PENDING_APPROVAL log to PAID, recording the approver.
func (r *TimeLogRepo) MarkPaidInTx(ctx context.Context, tx pgx.Tx, params core.SettleTimeLogParams) (*model.TimeLog, error) {
	now := r.clock.Now().UTC()
	row := tx.QueryRow(ctx, `
		UPDATE time_logs
		SET status = 'PAID',
		    approved_by = $2,
		    approved_at = $3,
		    updated_at = $3
		WHERE id = $1 AND status = 'PENDING_APPROVAL'
		RETURNING `+timeLogColumns,
		params.LogID, params.ActorID, now,
	)

	log, err := scanTimeLog(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.InvalidStatef("time log %s is not pending approval", params.LogID)
	}
	if err != nil {
		return nil, fmt.Errorf("mark time log paid: %w", apperrors.MapDBError(err))
	}
	return log, nil
}

// MarkRejectedInTx flips a PENDING_APPROVAL log to REJECTED. Escrow is never
// touched on this edge.
func (r *TimeLogRepo) MarkRejectedInTx(ctx context.Context, tx pgx.Tx, params core.SettleTimeLogParams) (*model.TimeLog, error) {
	now := r.clock.Now().UTC()
	row := tx.QueryRow(ctx, `
		UPDATE time_logs
		SET status = 'REJECTED',
		    rejected_by = $2,
		    rejected_at = $3,
		    updated_at = $3
		WHERE id = $1 AND status = 'PENDING_APPROVAL'
		RETURNING `+timeLogColumns,
		params.LogID, params.ActorID, now,
	)

	log, err := scanTimeLog(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.InvalidStatef("time log %s is not pending approval", params.LogID)
	}
	if err != nil {
		return nil, fmt.Errorf("mark time log rejected: %w", apperrors.MapDBError(err))
	}
	return log, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTimeLog(scanner rowScanner) (*model.TimeLog, error) {
	var (
		log        model.TimeLog
		cost       sql.NullInt64
		duration   sql.NullInt64
		endTime    sql.NullTime
		approvedBy sql.NullString
		approvedAt sql.NullTime
		rejectedBy sql.NullString
		rejectedAt sql.NullTime
		rawRate    int64
	)

	err := scanner.Scan(
		&log.ID,
		&log.WorkerID,
		&log.JobID,
		&rawRate,
		&log.StartTime,
		&endTime,
		&duration,
		&cost,
		&log.Status,
		&approvedBy,
		&approvedAt,
		&rejectedBy,
		&rejectedAt,
		&log.CreatedAt,
		&log.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	log.HourlyRate = model.Cents(rawRate)
	log.StartTime = log.StartTime.UTC()
	log.EndTime = nullableTime(endTime)
	if duration.Valid {
		d := int(duration.Int64)
		log.DurationMinutes = &d
	}
	if cost.Valid {
		c := model.Cents(cost.Int64)
		log.TotalCost = &c
	}
	log.ApprovedBy = nullableString(approvedBy)
	log.ApprovedAt = nullableTime(approvedAt)
	log.RejectedBy = nullableString(rejectedBy)
	log.RejectedAt = nullableTime(rejectedAt)
	return &log, nil
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func nullableTime(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time.UTC()
	return &t
}
