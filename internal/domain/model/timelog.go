// Package model defines the core data types for the timeclock settlement engine.
package model

import (
	"errors"
	"strings"
	"time"
)

// LogStatus represents the settlement state of a time log.
type LogStatus string

const (
	// LogStatusActive indicates the worker's clock is still running.
	LogStatusActive LogStatus = "ACTIVE"
	// LogStatusPendingApproval indicates the clock was stopped and the log awaits employer approval.
	LogStatusPendingApproval LogStatus = "PENDING_APPROVAL"
	// LogStatusPaid indicates the log was approved and its cost debited from job escrow.
	LogStatusPaid LogStatus = "PAID"
	// LogStatusRejected indicates the log was declined; escrow was never touched.
	LogStatusRejected LogStatus = "REJECTED"
)

// Valid returns true if the LogStatus is one of the known states.
func (s LogStatus) Valid() bool {
	return s == LogStatusActive || s == LogStatusPendingApproval ||
		s == LogStatusPaid || s == LogStatusRejected
}

// Terminal returns true once no further transition can be applied to a log.
func (s LogStatus) Terminal() bool {
	return s == LogStatusPaid || s == LogStatusRejected
}

// TimeLog is one worker-job worked-time record and its settlement state.
//
// Identity, worker, job, rate and start time are immutable after creation.
// EndTime, DurationMinutes and TotalCost are set exactly once when the clock
// stops and are never recomputed afterwards; they are nil while ACTIVE and
// non-nil in every other state.
type TimeLog struct {
	ID              string     `json:"id"              db:"id"`
	WorkerID        string     `json:"workerId"        db:"worker_id"`
	JobID           string     `json:"jobId"           db:"job_id"`
	HourlyRate      Cents      `json:"hourlyRate"      db:"hourly_rate_cents"`
	StartTime       time.Time  `json:"startTime"       db:"start_time"`
	EndTime         *time.Time `json:"endTime"         db:"end_time"`
	DurationMinutes *int       `json:"durationMinutes" db:"duration_minutes"`
	TotalCost       *Cents     `json:"totalCost"       db:"total_cost_cents"`
	Status          LogStatus  `json:"status"          db:"status"`

	ApprovedBy *string    `json:"approvedBy,omitempty" db:"approved_by"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty" db:"approved_at"`
	RejectedBy *string    `json:"rejectedBy,omitempty" db:"rejected_by"`
	RejectedAt *time.Time `json:"rejectedAt,omitempty" db:"rejected_at"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// StartTimerRequest is the payload for starting a worker's clock on a job.
// HourlyRate is the client-proposed rate; the engine validates it against the
// job's canonical rate before capturing it on the log.
type StartTimerRequest struct {
	JobID      string `json:"jobId"`
	WorkerID   string `json:"workerId"`
	HourlyRate Cents  `json:"hourlyRate,omitempty"`
}

// Validate validates the StartTimerRequest fields.
func (r *StartTimerRequest) Validate() error {
	if strings.TrimSpace(r.JobID) == "" {
		return errors.New("jobId is required")
	}
	if strings.TrimSpace(r.WorkerID) == "" {
		return errors.New("workerId is required")
	}
	if r.HourlyRate < 0 {
		return errors.New("hourlyRate must not be negative")
	}
	return nil
}

// StopTimerRequest is the payload for stopping a worker's running clock.
type StopTimerRequest struct {
	WorkerID string `json:"workerId"`
}

// Validate validates the StopTimerRequest fields.
func (r *StopTimerRequest) Validate() error {
	if strings.TrimSpace(r.WorkerID) == "" {
		return errors.New("workerId is required")
	}
	return nil
}
