package model

import (
	"errors"
	"strings"
	"time"
)

// Job is a marketplace job a worker can clock time against. The job's
// HourlyRate is the canonical rate used to validate client-supplied rates at
// timer start; its escrow balance lives in a separate account row.
type Job struct {
	ID         string    `json:"id"         db:"id"`
	EmployerID string    `json:"employerId" db:"employer_id"`
	Title      string    `json:"title"      db:"title"`
	HourlyRate Cents     `json:"hourlyRate" db:"hourly_rate_cents"`
	CreatedAt  time.Time `json:"createdAt"  db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt"  db:"updated_at"`
}

// CreateJobRequest represents a request to register a job.
type CreateJobRequest struct {
	EmployerID string `json:"employerId"`
	Title      string `json:"title"`
	HourlyRate Cents  `json:"hourlyRate"`
}

// Validate validates the CreateJobRequest fields.
func (r *CreateJobRequest) Validate() error {
	if strings.TrimSpace(r.EmployerID) == "" {
		return errors.New("employerId is required")
	}
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("title is required")
	}
	if r.HourlyRate <= 0 {
		return errors.New("hourlyRate must be positive")
	}
	return nil
}

// EscrowEntryType distinguishes ledger entry directions.
type EscrowEntryType string

const (
	// EscrowEntryDebit records funds released from escrow for a paid log.
	EscrowEntryDebit EscrowEntryType = "DEBIT"
	// EscrowEntryCredit records funds deposited into escrow.
	EscrowEntryCredit EscrowEntryType = "CREDIT"
)

// EscrowEntry is one immutable row of the per-job escrow audit trail. Debit
// entries carry the settled log's id under a unique constraint, which is what
// makes a second debit for the same log unrepresentable.
type EscrowEntry struct {
	ID           string          `json:"id"           db:"id"`
	JobID        string          `json:"jobId"        db:"job_id"`
	TimeLogID    *string         `json:"timeLogId"    db:"time_log_id"`
	EntryType    EscrowEntryType `json:"entryType"    db:"entry_type"`
	Amount       Cents           `json:"amount"       db:"amount_cents"`
	BalanceAfter Cents           `json:"balanceAfter" db:"balance_after_cents"`
	CreatedAt    time.Time       `json:"createdAt"    db:"created_at"`
}
