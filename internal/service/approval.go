package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/gigpay/timeclock/internal/core"
	"github.com/gigpay/timeclock/internal/domain/model"
	apperrors "github.com/gigpay/timeclock/internal/errors"
)

// ApprovalServiceOptions groups dependencies for ApprovalService.
type ApprovalServiceOptions struct {
	Logs   core.TimeLogRepository // Required: time log store
	Escrow core.EscrowLedger      // Required: escrow balance and debits
	Authz  core.Authorizer        // Required: approver entitlement check
	Tx     core.TxRunner          // Required: settlement transaction scope
	Logger *slog.Logger           // Optional: structured logger
}

// ApprovalService is the approval gate: the transactional boundary that
// converts a pending time log into a paid one. The escrow debit and the
// status flip commit in a single transaction; a failure at any point leaves
// both the log and the balance exactly as they were.
type ApprovalService struct {
	logs   core.TimeLogRepository
	escrow core.EscrowLedger
	authz  core.Authorizer
	tx     core.TxRunner
	logger *slog.Logger
}

// NewApprovalService constructs a new ApprovalService.
func NewApprovalService(opts ApprovalServiceOptions) (*ApprovalService, error) {
	if opts.Logs == nil {
		return nil, errors.New("TimeLogRepository is required")
	}
	if opts.Escrow == nil {
		return nil, errors.New("EscrowLedger is required")
	}
	if opts.Authz == nil {
		return nil, errors.New("Authorizer is required")
	}
	if opts.Tx == nil {
		return nil, errors.New("TxRunner is required")
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "approval_service")
	}

	return &ApprovalService{
		logs:   opts.Logs,
		escrow: opts.Escrow,
		authz:  opts.Authz,
		tx:     opts.Tx,
		logger: logger,
	}, nil
}

// MustNewApprovalService constructs an ApprovalService and panics on error.
func MustNewApprovalService(opts ApprovalServiceOptions) *ApprovalService {
	svc, err := NewApprovalService(opts)
	if err != nil {
		panic(fmt.Sprintf("failed to create ApprovalService: %v", err))
	}
	return svc
}

// Approve settles a pending log: it debits the job's escrow by exactly the
// log's frozen cost and flips the log to PAID, atomically. Approving an
// already PAID log returns it unchanged with no second debit, which makes
// double submits and retries safe. A balance below the cost fails with
// InsufficientFunds and leaves everything untouched.
func (s *ApprovalService) Approve(ctx context.Context, logID, actorID string) (*model.TimeLog, error) {
	if err := s.authorize(ctx, logID, actorID); err != nil {
		return nil, err
	}

	var settled *model.TimeLog
	err := s.tx.InTx(ctx, func(tx pgx.Tx) error {
		log, txErr := s.logs.GetForUpdateInTx(ctx, tx, logID)
		if txErr != nil {
			return txErr
		}

		if log.Status == model.LogStatusPaid {
			settled = log
			return nil
		}
		if log.Status != model.LogStatusPendingApproval {
			return apperrors.InvalidStatef("time log %s is %s, not pending approval", log.ID, log.Status)
		}

		cost := *log.TotalCost
		balance, txErr := s.escrow.BalanceForUpdateInTx(ctx, tx, log.JobID)
		if txErr != nil {
			return txErr
		}
		if balance < cost {
			return apperrors.InsufficientFundsf(
				"escrow balance %s for job %s is below the log cost %s", balance, log.JobID, cost)
		}

		if _, txErr = s.escrow.DebitInTx(ctx, tx, core.DebitEscrowParams{
			JobID:     log.JobID,
			TimeLogID: log.ID,
			Amount:    cost,
		}); txErr != nil {
			return txErr
		}

		paid, txErr := s.logs.MarkPaidInTx(ctx, tx, core.SettleTimeLogParams{LogID: log.ID, ActorID: actorID})
		if txErr != nil {
			return txErr
		}
		settled = paid
		return nil
	})
	if err != nil {
		return nil, s.settlementError(err, "approve")
	}

	if s.logger != nil && settled.ApprovedBy != nil {
		s.logger.InfoContext(ctx, "time log approved",
			"log_id", settled.ID,
			"job_id", settled.JobID,
			"approved_by", *settled.ApprovedBy,
			"total_cost", settled.TotalCost.String(),
		)
	}
	return settled, nil
}

// Reject declines a pending log. Escrow is never touched on this edge;
// rejecting an already REJECTED log returns it unchanged.
func (s *ApprovalService) Reject(ctx context.Context, logID, actorID string) (*model.TimeLog, error) {
	if err := s.authorize(ctx, logID, actorID); err != nil {
		return nil, err
	}

	var declined *model.TimeLog
	err := s.tx.InTx(ctx, func(tx pgx.Tx) error {
		log, txErr := s.logs.GetForUpdateInTx(ctx, tx, logID)
		if txErr != nil {
			return txErr
		}

		if log.Status == model.LogStatusRejected {
			declined = log
			return nil
		}
		if log.Status != model.LogStatusPendingApproval {
			return apperrors.InvalidStatef("time log %s is %s, not pending approval", log.ID, log.Status)
		}

		rejected, txErr := s.logs.MarkRejectedInTx(ctx, tx, core.SettleTimeLogParams{LogID: log.ID, ActorID: actorID})
		if txErr != nil {
			return txErr
		}
		declined = rejected
		return nil
	})
	if err != nil {
		return nil, s.settlementError(err, "reject")
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "time log rejected", "log_id", declined.ID, "job_id", declined.JobID)
	}
	return declined, nil
}

// authorize resolves the log's job and asks the Authorizer whether the actor
// may settle it. Identity is always caller-supplied; there is no ambient
// identity anywhere in the engine.
func (s *ApprovalService) authorize(ctx context.Context, logID, actorID string) error {
	if logID == "" {
		return apperrors.Validation("logId is required")
	}
	if actorID == "" {
		return apperrors.Validation("approver identity is required")
	}

	log, err := s.logs.GetByID(ctx, logID)
	if err != nil {
		return fmt.Errorf("load time log: %w", err)
	}

	allowed, err := s.authz.CanApprove(ctx, actorID, log.JobID)
	if err != nil {
		return fmt.Errorf("check approver entitlement: %w", err)
	}
	if !allowed {
		return apperrors.Forbidden(fmt.Sprintf("actor %s may not settle logs for job %s", actorID, log.JobID))
	}
	return nil
}

// settlementError passes domain errors through and folds everything else
// (commit failures, ledger timeouts mid-debit) into a retryable Transaction
// error. The transaction has already rolled back in full by the time this
// runs.
func (s *ApprovalService) settlementError(err error, op string) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperrors.Wrapf(err, apperrors.ErrCodeTransaction, "%s settlement could not be committed", op)
}
