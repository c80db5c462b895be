package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigpay/timeclock/internal/core"
	"github.com/gigpay/timeclock/internal/domain/model"
	apperrors "github.com/gigpay/timeclock/internal/errors"
	"github.com/gigpay/timeclock/internal/testutil"
)

// seedJobWithoutAccount inserts a job row directly, bypassing JobRepo.Create
// and the zero-balance escrow account it opens. This is the only way to reach
// the missing-account branches of Balance and DebitInTx.
func seedJobWithoutAccount(t *testing.T, db *sql.DB) string {
	t.Helper()
	id := uuid.NewString()
	_, err := db.ExecContext(context.Background(), `
		INSERT INTO jobs (id, employer_id, title, hourly_rate_cents, created_at, updated_at)
		VALUES ($1, 'emp-acme', 'Unfunded listing', 2000, now(), now())
	`, id)
	require.NoError(t, err)
	return id
}

func creditEscrow(t *testing.T, db *sql.DB, jobID string, amount model.Cents) model.Cents {
	t.Helper()
	repo := NewEscrowRepo(db, nil)
	runner := NewPgxTxRunner(db)

	var balance model.Cents
	err := runner.InTx(context.Background(), func(tx pgx.Tx) error {
		var txErr error
		balance, txErr = repo.CreditInTx(context.Background(), tx, core.CreditEscrowParams{
			JobID:  jobID,
			Amount: amount,
		})
		return txErr
	})
	require.NoError(t, err)
	return balance
}

func TestEscrowRepo_CreditCreatesAccount(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithTestDB(t, func(db *sql.DB) {
		job := seedTestJob(t, db)
		repo := NewEscrowRepo(db, nil)

		balance := creditEscrow(t, db, job.ID, model.Cents(50000))
		assert.Equal(t, model.Cents(50000), balance)

		balance = creditEscrow(t, db, job.ID, model.Cents(10000))
		assert.Equal(t, model.Cents(60000), balance)

		got, err := repo.Balance(context.Background(), job.ID)
		require.NoError(t, err)
		assert.Equal(t, model.Cents(60000), got)
	})
}

func TestEscrowRepo_Balance_NoAccount(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithTestDB(t, func(db *sql.DB) {
		jobID := seedJobWithoutAccount(t, db)
		repo := NewEscrowRepo(db, nil)

		_, err := repo.Balance(context.Background(), jobID)
		assert.True(t, apperrors.IsNotFound(err))

		// A job registered through the repo opens its account immediately,
		// so Balance reports zero rather than NotFound.
		job := seedTestJob(t, db)
		balance, err := repo.Balance(context.Background(), job.ID)
		require.NoError(t, err)
		assert.Equal(t, model.Cents(0), balance)
	})
}

func TestEscrowRepo_Debit(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithTestDB(t, func(db *sql.DB) {
		job := seedTestJob(t, db)
		log := startLog(t, db, "worker-1", job.ID)
		stopLog(t, db, log)
		creditEscrow(t, db, job.ID, model.Cents(50000))

		repo := NewEscrowRepo(db, nil)
		runner := NewPgxTxRunner(db)

		var after model.Cents
		err := runner.InTx(context.Background(), func(tx pgx.Tx) error {
			var txErr error
			after, txErr = repo.DebitInTx(context.Background(), tx, core.DebitEscrowParams{
				JobID:     job.ID,
				TimeLogID: log.ID,
				Amount:    model.Cents(3000),
			})
			return txErr
		})
		require.NoError(t, err)
		assert.Equal(t, model.Cents(47000), after)

		// The audit entry records the debit and the running balance.
		var entryType string
		var amount, balanceAfter int64
		err = db.QueryRowContext(context.Background(), `
			SELECT entry_type, amount_cents, balance_after_cents
			FROM escrow_entries
			WHERE time_log_id = $1
		`, log.ID).Scan(&entryType, &amount, &balanceAfter)
		require.NoError(t, err)
		assert.Equal(t, "DEBIT", entryType)
		assert.Equal(t, int64(3000), amount)
		assert.Equal(t, int64(47000), balanceAfter)
	})
}

func TestEscrowRepo_Debit_InsufficientBalance(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithTestDB(t, func(db *sql.DB) {
		job := seedTestJob(t, db)
		log := startLog(t, db, "worker-1", job.ID)
		stopLog(t, db, log)
		creditEscrow(t, db, job.ID, model.Cents(2500))

		repo := NewEscrowRepo(db, nil)
		runner := NewPgxTxRunner(db)

		err := runner.InTx(context.Background(), func(tx pgx.Tx) error {
			_, txErr := repo.DebitInTx(context.Background(), tx, core.DebitEscrowParams{
				JobID:     job.ID,
				TimeLogID: log.ID,
				Amount:    model.Cents(3000),
			})
			return txErr
		})
		assert.True(t, apperrors.IsInsufficientFunds(err))

		// The failed debit left the balance untouched.
		balance, err := repo.Balance(context.Background(), job.ID)
		require.NoError(t, err)
		assert.Equal(t, model.Cents(2500), balance)
	})
}

func TestEscrowRepo_Debit_MissingAccount(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithTestDB(t, func(db *sql.DB) {
		jobID := seedJobWithoutAccount(t, db)
		log := startLog(t, db, "worker-1", jobID)
		stopLog(t, db, log)

		repo := NewEscrowRepo(db, nil)
		runner := NewPgxTxRunner(db)

		err := runner.InTx(context.Background(), func(tx pgx.Tx) error {
			_, txErr := repo.DebitInTx(context.Background(), tx, core.DebitEscrowParams{
				JobID:     jobID,
				TimeLogID: log.ID,
				Amount:    model.Cents(3000),
			})
			return txErr
		})
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestEscrowRepo_Debit_SameLogTwiceConflicts(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithTestDB(t, func(db *sql.DB) {
		job := seedTestJob(t, db)
		log := startLog(t, db, "worker-1", job.ID)
		stopLog(t, db, log)
		creditEscrow(t, db, job.ID, model.Cents(50000))

		repo := NewEscrowRepo(db, nil)
		runner := NewPgxTxRunner(db)

		debit := func() error {
			return runner.InTx(context.Background(), func(tx pgx.Tx) error {
				_, txErr := repo.DebitInTx(context.Background(), tx, core.DebitEscrowParams{
					JobID:     job.ID,
					TimeLogID: log.ID,
					Amount:    model.Cents(3000),
				})
				return txErr
			})
		}

		require.NoError(t, debit())

		// The unique constraint on time_log_id rejects a second debit for
		// the same log, so the failing transaction rolls back in full.
		err := debit()
		assert.True(t, apperrors.IsConflict(err))

		balance, balErr := repo.Balance(context.Background(), job.ID)
		require.NoError(t, balErr)
		assert.Equal(t, model.Cents(47000), balance)
	})
}

func TestEscrowRepo_InvalidAmounts(t *testing.T) {
	testutil.SkipIfNoTestDB(t)
	testutil.WithTestDB(t, func(db *sql.DB) {
		job := seedTestJob(t, db)
		repo := NewEscrowRepo(db, nil)
		runner := NewPgxTxRunner(db)

		err := runner.InTx(context.Background(), func(tx pgx.Tx) error {
			_, txErr := repo.CreditInTx(context.Background(), tx, core.CreditEscrowParams{
				JobID:  job.ID,
				Amount: model.Cents(0),
			})
			return txErr
		})
		assert.True(t, apperrors.IsValidation(err))

		err = runner.InTx(context.Background(), func(tx pgx.Tx) error {
			_, txErr := repo.DebitInTx(context.Background(), tx, core.DebitEscrowParams{
				JobID:     job.ID,
				TimeLogID: "whatever",
				Amount:    model.Cents(-1),
			})
			return txErr
		})
		assert.True(t, apperrors.IsValidation(err))
	})
}
