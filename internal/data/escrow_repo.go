package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/gigpay/timeclock/internal/core"
	"github.com/gigpay/timeclock/internal/domain/model"
	apperrors "github.com/gigpay/timeclock/internal/errors"
)

// EscrowRepo implements core.EscrowLedger over Postgres.
//
// Balances live in escrow_accounts; every movement appends an immutable
// escrow_entries row. Debit entries carry the settled log's id under a
// unique constraint, so even a logic error upstream cannot commit the same
// log's debit twice.
type EscrowRepo struct {
	DB    *sql.DB
	clock core.Clock
}

// NewEscrowRepo creates an EscrowRepo with the given database handle.
func NewEscrowRepo(db *sql.DB, clock core.Clock) *EscrowRepo {
	if clock == nil {
		clock = &RealTimeProvider{}
	}
	return &EscrowRepo{DB: db, clock: clock}
}

// Balance returns the job's current escrow balance.
func (r *EscrowRepo) Balance(ctx context.Context, jobID string) (model.Cents, error) {
	var balance int64
	err := r.DB.QueryRowContext(ctx, `
		SELECT balance_cents FROM escrow_accounts WHERE job_id = $1
	`, jobID).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, apperrors.NotFoundf("no escrow account for job %s", jobID)
	}
	if err != nil {
		return 0, fmt.Errorf("get escrow balance: %w", apperrors.MapDBError(err))
	}
	return model.Cents(balance), nil
}

// BalanceForUpdateInTx locks the job's escrow account row within tx and
// returns its balance. The lock serializes concurrent settlements against
// the same job.
func (r *EscrowRepo) BalanceForUpdateInTx(ctx context.Context, tx pgx.Tx, jobID string) (model.Cents, error) {
	var balance int64
	err := tx.QueryRow(ctx, `
		SELECT balance_cents FROM escrow_accounts WHERE job_id = $1 FOR UPDATE
	`, jobID).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, apperrors.NotFoundf("no escrow account for job %s", jobID)
	}
	if err != nil {
		return 0, fmt.Errorf("lock escrow balance: %w", apperrors.MapDBError(err))
	}
	return model.Cents(balance), nil
}

// DebitInTx removes params.Amount from the job's escrow within tx and
// appends the audit entry tying the debit to the settled log. The balance
// guard in the UPDATE makes an overdraft unrepresentable even if the caller
// skipped the balance check.
func (r *EscrowRepo) DebitInTx(ctx context.Context, tx pgx.Tx, params core.DebitEscrowParams) (model.Cents, error) {
	if params.Amount < 0 {
		return 0, apperrors.Validation("debit amount must not be negative")
	}

	now := r.clock.Now().UTC()
	var balanceAfter int64
	err := tx.QueryRow(ctx, `
		UPDATE escrow_accounts
		SET balance_cents = balance_cents - $2,
		    updated_at = $3
		WHERE job_id = $1 AND balance_cents >= $2
		RETURNING balance_cents
	`, params.JobID, int64(params.Amount), now).Scan(&balanceAfter)
	if errors.Is(err, pgx.ErrNoRows) {
		// Distinguish a missing account from a short balance.
		if _, balErr := r.BalanceForUpdateInTx(ctx, tx, params.JobID); balErr != nil {
			return 0, balErr
		}
		return 0, apperrors.InsufficientFundsf("escrow balance for job %s is below %s", params.JobID, params.Amount)
	}
	if err != nil {
		return 0, fmt.Errorf("debit escrow: %w", apperrors.MapDBError(err))
	}

	if _, err = tx.Exec(ctx, `
		INSERT INTO escrow_entries (id, job_id, time_log_id, entry_type, amount_cents, balance_after_cents, created_at)
		VALUES ($1, $2, $3, 'DEBIT', $4, $5, $6)
	`, uuid.NewString(), params.JobID, params.TimeLogID, int64(params.Amount), balanceAfter, now); err != nil {
		return 0, fmt.Errorf("record escrow debit: %w", apperrors.MapDBError(err))
	}

	return model.Cents(balanceAfter), nil
}

// CreditInTx deposits params.Amount into the job's escrow within tx,
// creating the account if it does not exist yet, and appends the audit
// entry.
func (r *EscrowRepo) CreditInTx(ctx context.Context, tx pgx.Tx, params core.CreditEscrowParams) (model.Cents, error) {
	if params.Amount <= 0 {
		return 0, apperrors.Validation("credit amount must be positive")
	}

	now := r.clock.Now().UTC()
	var balanceAfter int64
	err := tx.QueryRow(ctx, `
		INSERT INTO escrow_accounts (job_id, balance_cents, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (job_id) DO UPDATE
		SET balance_cents = escrow_accounts.balance_cents + EXCLUDED.balance_cents,
		    updated_at = EXCLUDED.updated_at
		RETURNING balance_cents
	`, params.JobID, int64(params.Amount), now).Scan(&balanceAfter)
	if err != nil {
		return 0, fmt.Errorf("credit escrow: %w", apperrors.MapDBError(err))
	}

	if _, err = tx.Exec(ctx, `
		INSERT INTO escrow_entries (id, job_id, entry_type, amount_cents, balance_after_cents, created_at)
		VALUES ($1, $2, 'CREDIT', $3, $4, $5)
	`, uuid.NewString(), params.JobID, int64(params.Amount), balanceAfter, now); err != nil {
		return 0, fmt.Errorf("record escrow credit: %w", apperrors.MapDBError(err))
	}

	return model.Cents(balanceAfter), nil
}
