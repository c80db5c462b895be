// Package service contains the business logic of the timeclock engine: the
// timer registry, the approval gate and the timesheet query facade.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gigpay/timeclock/internal/core"
	"github.com/gigpay/timeclock/internal/domain/model"
	"github.com/gigpay/timeclock/internal/domain/rate"
	apperrors "github.com/gigpay/timeclock/internal/errors"
)

// TimerServiceOptions groups dependencies for TimerService.
type TimerServiceOptions struct {
	Logs  core.TimeLogRepository // Required: time log store
	Jobs  core.JobRepository     // Required: job lookups for rate validation
	Tx    core.TxRunner          // Required: transaction scope for Stop
	Clock core.Clock             // Optional: defaults to the system clock
	Cache core.CacheRepository   // Optional: active-timer read-through cache
	// CacheTTL bounds staleness of cached active timers. Zero disables caching
	// even when a cache is configured.
	CacheTTL time.Duration
	Logger   *slog.Logger // Optional: structured logger
}

// TimerService is the timer registry: the single entry point for starting
// and stopping worker clocks. Centralizing start/stop here (instead of ad
// hoc store queries) is what lets the one-active-timer-per-worker invariant
// be enforced atomically at the storage layer.
type TimerService struct {
	logs     core.TimeLogRepository
	jobs     core.JobRepository
	tx       core.TxRunner
	clock    core.Clock
	cache    core.CacheRepository
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NewTimerService constructs a new TimerService.
func NewTimerService(opts TimerServiceOptions) (*TimerService, error) {
	if opts.Logs == nil {
		return nil, errors.New("TimeLogRepository is required")
	}
	if opts.Jobs == nil {
		return nil, errors.New("JobRepository is required")
	}
	if opts.Tx == nil {
		return nil, errors.New("TxRunner is required")
	}

	clock := opts.Clock
	if clock == nil {
		clock = systemClock{}
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "timer_service")
	}

	return &TimerService{
		logs:     opts.Logs,
		jobs:     opts.Jobs,
		tx:       opts.Tx,
		clock:    clock,
		cache:    opts.Cache,
		cacheTTL: opts.CacheTTL,
		logger:   logger,
	}, nil
}

// MustNewTimerService constructs a TimerService and panics on error.
func MustNewTimerService(opts TimerServiceOptions) *TimerService {
	svc, err := NewTimerService(opts)
	if err != nil {
		panic(fmt.Sprintf("failed to create TimerService: %v", err))
	}
	return svc
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Start begins a clock for the worker on the given job. The captured rate is
// validated against the job's canonical rate: an omitted rate defaults to
// it, a higher rate is clamped down to it, a lower rate is accepted. A
// worker with a running clock on any job gets a Conflict.
func (s *TimerService) Start(ctx context.Context, req *model.StartTimerRequest) (*model.TimeLog, error) {
	if req == nil {
		return nil, apperrors.Validation("start request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	job, err := s.jobs.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, fmt.Errorf("load job: %w", err)
	}

	captured := req.HourlyRate
	switch {
	case captured == 0:
		captured = job.HourlyRate
	case captured > job.HourlyRate:
		if s.logger != nil {
			s.logger.WarnContext(ctx, "requested rate above job rate, clamping",
				"job_id", job.ID,
				"worker_id", req.WorkerID,
				"requested", req.HourlyRate.String(),
				"canonical", job.HourlyRate.String(),
			)
		}
		captured = job.HourlyRate
	}

	log, err := s.logs.Create(ctx, core.CreateTimeLogParams{
		WorkerID:   req.WorkerID,
		JobID:      req.JobID,
		HourlyRate: captured,
	})
	if err != nil {
		if apperrors.IsConflict(err) {
			return nil, apperrors.Conflictf("worker %s already has an active timer", req.WorkerID)
		}
		return nil, fmt.Errorf("start timer: %w", err)
	}

	s.cachePut(ctx, log)

	if s.logger != nil {
		s.logger.InfoContext(ctx, "timer started",
			"log_id", log.ID,
			"worker_id", log.WorkerID,
			"job_id", log.JobID,
		)
	}
	return log, nil
}

// Stop ends the worker's running clock, freezing end time, duration and cost
// in one transaction. This is the sole place duration and cost are computed.
func (s *TimerService) Stop(ctx context.Context, workerID string) (*model.TimeLog, error) {
	if workerID == "" {
		return nil, apperrors.Validation("workerId is required")
	}

	var stopped *model.TimeLog
	err := s.tx.InTx(ctx, func(tx pgx.Tx) error {
		active, txErr := s.logs.ActiveForUpdateInTx(ctx, tx, workerID)
		if txErr != nil {
			return txErr
		}
		if active == nil {
			return apperrors.NotFoundf("worker %s has no active timer", workerID)
		}

		end := s.clock.Now().UTC()
		if !end.After(active.StartTime) {
			// Clock resolution guard: end must stay strictly after start.
			end = active.StartTime.Add(time.Microsecond)
		}

		minutes := rate.Minutes(active.StartTime, end)
		cost := rate.Cost(minutes, active.HourlyRate)

		finished, txErr := s.logs.FinishInTx(ctx, tx, core.FinishTimeLogParams{
			LogID:           active.ID,
			EndTime:         end,
			DurationMinutes: minutes,
			TotalCost:       cost,
		})
		if txErr != nil {
			return txErr
		}
		stopped = finished
		return nil
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeTransaction, "stop timer could not be committed")
	}

	s.cacheDrop(ctx, workerID)

	if s.logger != nil {
		s.logger.InfoContext(ctx, "timer stopped",
			"log_id", stopped.ID,
			"worker_id", stopped.WorkerID,
			"duration_minutes", *stopped.DurationMinutes,
			"total_cost", stopped.TotalCost.String(),
		)
	}
	return stopped, nil
}

// ActiveFor returns the worker's running log, or nil when no clock is
// running. The timer widget polls this, so reads go through the cache when
// one is configured; cache failures degrade to the store.
func (s *TimerService) ActiveFor(ctx context.Context, workerID string) (*model.TimeLog, error) {
	if workerID == "" {
		return nil, apperrors.Validation("workerId is required")
	}

	if s.cacheEnabled() {
		if raw, err := s.cache.Get(ctx, activeTimerKey(workerID)); err == nil && raw != nil {
			var log model.TimeLog
			if jsonErr := json.Unmarshal(raw, &log); jsonErr == nil {
				return &log, nil
			}
		}
	}

	log, err := s.logs.ActiveFor(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("get active timer: %w", err)
	}
	if log != nil {
		// A Stop racing this read can delete the key before the put lands;
		// the stale ACTIVE entry then lives at most one cache TTL.
		s.cachePut(ctx, log)
	}
	return log, nil
}

func (s *TimerService) cacheEnabled() bool {
	return s.cache != nil && s.cacheTTL > 0
}

func activeTimerKey(workerID string) string {
	return "timeclock:active:" + workerID
}

func (s *TimerService) cachePut(ctx context.Context, log *model.TimeLog) {
	if !s.cacheEnabled() {
		return
	}
	raw, err := json.Marshal(log)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, activeTimerKey(log.WorkerID), raw, s.cacheTTL); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "cache active timer failed", "worker_id", log.WorkerID, "error", err)
	}
}

func (s *TimerService) cacheDrop(ctx context.Context, workerID string) {
	if !s.cacheEnabled() {
		return
	}
	if _, err := s.cache.Delete(ctx, activeTimerKey(workerID)); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "drop cached timer failed", "worker_id", workerID, "error", err)
	}
}
