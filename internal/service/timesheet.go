package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gigpay/timeclock/internal/core"
	"github.com/gigpay/timeclock/internal/domain/model"
	apperrors "github.com/gigpay/timeclock/internal/errors"
)

// TimesheetServiceOptions groups dependencies for TimesheetService.
type TimesheetServiceOptions struct {
	Logs   core.TimeLogRepository // Required: time log store
	Logger *slog.Logger           // Optional: structured logger
}

// TimesheetService serves the read side of the log store: per-worker and
// per-job history, newest first, all statuses included.
type TimesheetService struct {
	logs   core.TimeLogRepository
	logger *slog.Logger
}

// NewTimesheetService constructs a new TimesheetService.
func NewTimesheetService(opts TimesheetServiceOptions) (*TimesheetService, error) {
	if opts.Logs == nil {
		return nil, errors.New("TimeLogRepository is required")
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "timesheet_service")
	}

	return &TimesheetService{logs: opts.Logs, logger: logger}, nil
}

// MustNewTimesheetService constructs a TimesheetService and panics on error.
func MustNewTimesheetService(opts TimesheetServiceOptions) *TimesheetService {
	svc, err := NewTimesheetService(opts)
	if err != nil {
		panic(fmt.Sprintf("failed to create TimesheetService: %v", err))
	}
	return svc
}

// Get returns a single time log by id.
func (s *TimesheetService) Get(ctx context.Context, logID string) (*model.TimeLog, error) {
	if logID == "" {
		return nil, apperrors.Validation("logId is required")
	}
	return s.logs.GetByID(ctx, logID)
}

// ForWorker returns the worker's full timesheet, most recent start first.
// An unknown worker yields an empty list, not an error.
func (s *TimesheetService) ForWorker(ctx context.Context, workerID string) ([]*model.TimeLog, error) {
	if workerID == "" {
		return nil, apperrors.Validation("workerId is required")
	}
	logs, err := s.logs.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("list worker time logs: %w", err)
	}
	return logs, nil
}

// ForJob returns every log billed against a job, most recent start first.
func (s *TimesheetService) ForJob(ctx context.Context, jobID string) ([]*model.TimeLog, error) {
	if jobID == "" {
		return nil, apperrors.Validation("jobId is required")
	}
	logs, err := s.logs.ListByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("list job time logs: %w", err)
	}
	return logs, nil
}
