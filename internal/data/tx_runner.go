package data

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"

	"github.com/gigpay/timeclock/internal/data/pgxutil"
)

// PgxTxRunner implements core.TxRunner over the shared connection pool.
type PgxTxRunner struct {
	DB *sql.DB
}

// NewPgxTxRunner creates a PgxTxRunner using the given database handle.
func NewPgxTxRunner(db *sql.DB) *PgxTxRunner {
	return &PgxTxRunner{DB: db}
}

// InTx runs fn within a single pgx transaction.
func (r *PgxTxRunner) InTx(ctx context.Context, fn func(pgx.Tx) error) error {
	return pgxutil.WithPgxTx(ctx, r.DB, fn)
}
