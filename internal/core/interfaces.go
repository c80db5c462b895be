// Package core defines the port interfaces between the service layer and the
// data layer. Services depend on these contracts, never on concrete
// repositories.
package core

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gigpay/timeclock/internal/domain/model"
)

// Clock provides the current time. Core logic never calls time.Now directly;
// a Clock is injected so time-dependent behavior is deterministic in tests.
type Clock interface {
	Now() time.Time
}

// TxRunner executes a function inside a single database transaction.
// The approval settlement (escrow debit plus status flip) is the one
// multi-resource atomic unit in the system and runs entirely within InTx.
type TxRunner interface {
	InTx(ctx context.Context, fn func(pgx.Tx) error) error
}

// CreateTimeLogParams groups parameters for TimeLogRepository.Create.
type CreateTimeLogParams struct {
	WorkerID   string
	JobID      string
	HourlyRate model.Cents
}

// FinishTimeLogParams groups the stop-time values frozen onto a log when the
// clock stops. Duration and cost are computed by the caller via the rate
// package and never recomputed afterwards.
type FinishTimeLogParams struct {
	LogID           string
	EndTime         time.Time
	DurationMinutes int
	TotalCost       model.Cents
}

// SettleTimeLogParams groups parameters for the paid/rejected transitions.
type SettleTimeLogParams struct {
	LogID   string
	ActorID string
}

// TimeLogRepository defines the persisted time-log ledger: append-create on
// start, status-guarded in-place updates afterward, never deletes. All
// mutations are compare-and-swap on the log's current status so a stale
// retry can never overwrite a more advanced state.
type TimeLogRepository interface {
	Create(ctx context.Context, params CreateTimeLogParams) (*model.TimeLog, error)
	GetByID(ctx context.Context, id string) (*model.TimeLog, error)
	// ActiveFor returns the worker's single running log, or nil when the
	// worker has no clock running.
	ActiveFor(ctx context.Context, workerID string) (*model.TimeLog, error)
	ListByWorker(ctx context.Context, workerID string) ([]*model.TimeLog, error)
	ListByJob(ctx context.Context, jobID string) ([]*model.TimeLog, error)

	// Transactional variants used by the timer registry and approval gate.
	ActiveForUpdateInTx(ctx context.Context, tx pgx.Tx, workerID string) (*model.TimeLog, error)
	GetForUpdateInTx(ctx context.Context, tx pgx.Tx, id string) (*model.TimeLog, error)
	FinishInTx(ctx context.Context, tx pgx.Tx, params FinishTimeLogParams) (*model.TimeLog, error)
	MarkPaidInTx(ctx context.Context, tx pgx.Tx, params SettleTimeLogParams) (*model.TimeLog, error)
	MarkRejectedInTx(ctx context.Context, tx pgx.Tx, params SettleTimeLogParams) (*model.TimeLog, error)
}

// JobRepository defines job data operations.
type JobRepository interface {
	Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error)
	GetByID(ctx context.Context, id string) (*model.Job, error)
}

// DebitEscrowParams groups parameters for EscrowLedger.DebitInTx. TimeLogID
// ties the debit to the settled log; the ledger refuses a second debit for
// the same log.
type DebitEscrowParams struct {
	JobID     string
	TimeLogID string
	Amount    model.Cents
}

// CreditEscrowParams groups parameters for EscrowLedger.CreditInTx.
type CreditEscrowParams struct {
	JobID  string
	Amount model.Cents
}

// EscrowLedger exposes the per-job escrow balance as a transactional
// resource. Debits participate in the caller's transaction so that the
// balance change and the log's status flip commit or roll back together.
type EscrowLedger interface {
	Balance(ctx context.Context, jobID string) (model.Cents, error)
	BalanceForUpdateInTx(ctx context.Context, tx pgx.Tx, jobID string) (model.Cents, error)
	DebitInTx(ctx context.Context, tx pgx.Tx, params DebitEscrowParams) (model.Cents, error)
	CreditInTx(ctx context.Context, tx pgx.Tx, params CreditEscrowParams) (model.Cents, error)
}

// Authorizer answers the single authorization question the engine asks:
// is this actor entitled to settle logs for this job. Everything else about
// identity lives with the external auth collaborator.
type Authorizer interface {
	CanApprove(ctx context.Context, actorID, jobID string) (bool, error)
}

// CacheRepository defines the byte-oriented cache used for hot read paths.
type CacheRepository interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) (bool, error)
}
