package data

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigpay/timeclock/internal/core"
	"github.com/gigpay/timeclock/internal/domain/model"
	apperrors "github.com/gigpay/timeclock/internal/errors"
	"github.com/gigpay/timeclock/internal/testutil"
)

func seedTestJob(t *testing.T, db *sql.DB) *model.Job {
	t.Helper()
	jobs := NewJobRepo(db, nil)
	job, err := jobs.Create(context.Background(), &model.CreateJobRequest{
		EmployerID: "emp-acme",
		Title:      "Frontend bug triage",
		HourlyRate: model.Cents(2000),
	})
	require.NoError(t, err)
	return job
}

func startLog(t *testing.T, db *sql.DB, workerID, jobID string) *model.TimeLog {
	t.Helper()
	repo := NewTimeLogRepo(db, TimeLogRepoConfig{})
	log, err := repo.Create(context.Background(), core.CreateTimeLogParams{
		WorkerID:   workerID,
		JobID:      jobID,
		HourlyRate: model.Cents(2000),
	})
	require.NoError(t, err)
	return log
}

// stopLog advances an ACTIVE log to PENDING_APPROVAL with a fixed 90 minute
// duration.
func stopLog(t *testing.T, db *sql.DB, log *model.TimeLog) *model.TimeLog {
	t.Helper()
	repo := NewTimeLogRepo(db, TimeLogRepoConfig{})
	runner := NewPgxTxRunner(db)

	var finished *model.TimeLog
	err := runner.InTx(context.Background(), func(tx pgx.Tx) error {
		var txErr error
		finished, txErr = repo.FinishInTx(context.Background(), tx, core.FinishTimeLogParams{
			LogID:           log.ID,
			EndTime:         log.StartTime.Add(90 * time.Minute),
			DurationMinutes: 90,
			TotalCost:       model.Cents(3000),
		})
		return txErr
	})
	require.NoError(t, err)
	return finished
}

func TestTimeLogRepo_CreateAndGet(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithTestDB(t, func(db *sql.DB) {
		job := seedTestJob(t, db)
		repo := NewTimeLogRepo(db, TimeLogRepoConfig{})

		created := startLog(t, db, "worker-1", job.ID)
		assert.Equal(t, model.LogStatusActive, created.Status)
		assert.Nil(t, created.EndTime)
		assert.Nil(t, created.TotalCost)

		got, err := repo.GetByID(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, model.Cents(2000), got.HourlyRate)
	})
}

func TestTimeLogRepo_GetByID_NotFound(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithTestDB(t, func(db *sql.DB) {
		repo := NewTimeLogRepo(db, TimeLogRepoConfig{})

		_, err := repo.GetByID(context.Background(), "00000000-0000-0000-0000-000000000000")
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestTimeLogRepo_OneActivePerWorker(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithTestDB(t, func(db *sql.DB) {
		job := seedTestJob(t, db)
		repo := NewTimeLogRepo(db, TimeLogRepoConfig{})

		startLog(t, db, "worker-1", job.ID)

		// The partial unique index rejects a second ACTIVE log for the
		// worker, on any job.
		_, err := repo.Create(context.Background(), core.CreateTimeLogParams{
			WorkerID:   "worker-1",
			JobID:      job.ID,
			HourlyRate: model.Cents(2000),
		})
		assert.True(t, apperrors.IsConflict(err))

		// A different worker is unaffected.
		_, err = repo.Create(context.Background(), core.CreateTimeLogParams{
			WorkerID:   "worker-2",
			JobID:      job.ID,
			HourlyRate: model.Cents(2000),
		})
		assert.NoError(t, err)
	})
}

func TestTimeLogRepo_ActiveFor(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithTestDB(t, func(db *sql.DB) {
		job := seedTestJob(t, db)
		repo := NewTimeLogRepo(db, TimeLogRepoConfig{})

		none, err := repo.ActiveFor(context.Background(), "worker-1")
		require.NoError(t, err)
		assert.Nil(t, none)

		created := startLog(t, db, "worker-1", job.ID)

		active, err := repo.ActiveFor(context.Background(), "worker-1")
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, created.ID, active.ID)

		stopLog(t, db, created)

		none, err = repo.ActiveFor(context.Background(), "worker-1")
		require.NoError(t, err)
		assert.Nil(t, none)
	})
}

func TestTimeLogRepo_FinishGuards(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithTestDB(t, func(db *sql.DB) {
		job := seedTestJob(t, db)
		repo := NewTimeLogRepo(db, TimeLogRepoConfig{})
		runner := NewPgxTxRunner(db)

		created := startLog(t, db, "worker-1", job.ID)
		finished := stopLog(t, db, created)

		assert.Equal(t, model.LogStatusPendingApproval, finished.Status)
		assert.Equal(t, 90, *finished.DurationMinutes)
		assert.Equal(t, model.Cents(3000), *finished.TotalCost)

		// Finishing a log that already advanced is an invalid transition.
		err := runner.InTx(context.Background(), func(tx pgx.Tx) error {
			_, txErr := repo.FinishInTx(context.Background(), tx, core.FinishTimeLogParams{
				LogID:           created.ID,
				EndTime:         created.StartTime.Add(2 * time.Hour),
				DurationMinutes: 120,
				TotalCost:       model.Cents(4000),
			})
			return txErr
		})
		assert.True(t, apperrors.IsInvalidState(err))
	})
}

func TestTimeLogRepo_MarkPaidGuards(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithTestDB(t, func(db *sql.DB) {
		job := seedTestJob(t, db)
		repo := NewTimeLogRepo(db, TimeLogRepoConfig{})
		runner := NewPgxTxRunner(db)

		created := startLog(t, db, "worker-1", job.ID)

		// An ACTIVE log cannot be settled.
		err := runner.InTx(context.Background(), func(tx pgx.Tx) error {
			_, txErr := repo.MarkPaidInTx(context.Background(), tx, core.SettleTimeLogParams{
				LogID:   created.ID,
				ActorID: "emp-acme",
			})
			return txErr
		})
		assert.True(t, apperrors.IsInvalidState(err))

		stopLog(t, db, created)

		var paid *model.TimeLog
		err = runner.InTx(context.Background(), func(tx pgx.Tx) error {
			var txErr error
			paid, txErr = repo.MarkPaidInTx(context.Background(), tx, core.SettleTimeLogParams{
				LogID:   created.ID,
				ActorID: "emp-acme",
			})
			return txErr
		})
		require.NoError(t, err)
		assert.Equal(t, model.LogStatusPaid, paid.Status)
		assert.Equal(t, "emp-acme", *paid.ApprovedBy)
		assert.NotNil(t, paid.ApprovedAt)

		// A second paid transition fails the status guard.
		err = runner.InTx(context.Background(), func(tx pgx.Tx) error {
			_, txErr := repo.MarkPaidInTx(context.Background(), tx, core.SettleTimeLogParams{
				LogID:   created.ID,
				ActorID: "emp-acme",
			})
			return txErr
		})
		assert.True(t, apperrors.IsInvalidState(err))
	})
}

func TestTimeLogRepo_MarkRejected(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithTestDB(t, func(db *sql.DB) {
		job := seedTestJob(t, db)
		repo := NewTimeLogRepo(db, TimeLogRepoConfig{})
		runner := NewPgxTxRunner(db)

		created := startLog(t, db, "worker-1", job.ID)
		stopLog(t, db, created)

		var rejected *model.TimeLog
		err := runner.InTx(context.Background(), func(tx pgx.Tx) error {
			var txErr error
			rejected, txErr = repo.MarkRejectedInTx(context.Background(), tx, core.SettleTimeLogParams{
				LogID:   created.ID,
				ActorID: "emp-acme",
			})
			return txErr
		})
		require.NoError(t, err)
		assert.Equal(t, model.LogStatusRejected, rejected.Status)
		assert.Equal(t, "emp-acme", *rejected.RejectedBy)
		assert.NotNil(t, rejected.RejectedAt)
	})
}

func TestTimeLogRepo_Lists(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithTestDB(t, func(db *sql.DB) {
		job := seedTestJob(t, db)
		repo := NewTimeLogRepo(db, TimeLogRepoConfig{})

		first := startLog(t, db, "worker-1", job.ID)
		stopLog(t, db, first)
		second := startLog(t, db, "worker-1", job.ID)
		startLog(t, db, "worker-2", job.ID)

		byWorker, err := repo.ListByWorker(context.Background(), "worker-1")
		require.NoError(t, err)
		require.Len(t, byWorker, 2)
		// Most recent first.
		assert.Equal(t, second.ID, byWorker[0].ID)

		byJob, err := repo.ListByJob(context.Background(), job.ID)
		require.NoError(t, err)
		assert.Len(t, byJob, 3)

		empty, err := repo.ListByWorker(context.Background(), "worker-none")
		require.NoError(t, err)
		assert.Empty(t, empty)
	})
}
