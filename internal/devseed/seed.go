// Package devseed populates a development database with a few jobs and
// funded escrow accounts so the API is usable immediately after startup.
package devseed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/gigpay/timeclock/internal/core"
	"github.com/gigpay/timeclock/internal/domain/model"
)

// Deps groups the collaborators Seed needs.
type Deps struct {
	DB     *sql.DB
	Jobs   core.JobRepository
	Escrow core.EscrowLedger
	Tx     core.TxRunner
	Logger *slog.Logger
}

type seedJob struct {
	req    model.CreateJobRequest
	escrow model.Cents
}

// Seed inserts sample jobs with funded escrow accounts. It is a no-op when
// any job already exists, so restarting a dev server never duplicates data.
func Seed(ctx context.Context, deps Deps) error {
	if deps.DB == nil || deps.Jobs == nil || deps.Escrow == nil || deps.Tx == nil {
		return errors.New("devseed requires DB, Jobs, Escrow, and Tx")
	}

	var count int
	if err := deps.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&count); err != nil {
		return fmt.Errorf("count jobs: %w", err)
	}
	if count > 0 {
		return nil
	}

	seeds := []seedJob{
		{
			req:    model.CreateJobRequest{EmployerID: "emp-acme", Title: "Frontend bug triage", HourlyRate: 2000},
			escrow: 50000,
		},
		{
			req:    model.CreateJobRequest{EmployerID: "emp-acme", Title: "API integration work", HourlyRate: 3500},
			escrow: 120000,
		},
		{
			req:    model.CreateJobRequest{EmployerID: "emp-globex", Title: "Data migration scripts", HourlyRate: 4500},
			escrow: 2500,
		},
	}

	for _, s := range seeds {
		job, err := deps.Jobs.Create(ctx, &s.req)
		if err != nil {
			return fmt.Errorf("seed job %q: %w", s.req.Title, err)
		}

		err = deps.Tx.InTx(ctx, func(tx pgx.Tx) error {
			_, txErr := deps.Escrow.CreditInTx(ctx, tx, core.CreditEscrowParams{
				JobID:  job.ID,
				Amount: s.escrow,
			})
			return txErr
		})
		if err != nil {
			return fmt.Errorf("fund escrow for job %q: %w", s.req.Title, err)
		}

		if deps.Logger != nil {
			deps.Logger.InfoContext(ctx, "seeded job",
				"job_id", job.ID,
				"title", job.Title,
				"hourly_rate", job.HourlyRate.String(),
				"escrow", s.escrow.String(),
			)
		}
	}

	return nil
}
