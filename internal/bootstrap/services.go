package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/gigpay/timeclock/config"
	"github.com/gigpay/timeclock/internal/adapters/authz"
	"github.com/gigpay/timeclock/internal/core"
	"github.com/gigpay/timeclock/internal/data"
	"github.com/gigpay/timeclock/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Timers     *service.TimerService
	Timesheets *service.TimesheetService
	Approvals  *service.ApprovalService
	Jobs       core.JobRepository
	Escrow     core.EscrowLedger
	Tx         core.TxRunner
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceRepositories groups data adapters backing service ports.
type serviceRepositories struct {
	TimeLogRepo *data.TimeLogRepo
	JobRepo     *data.JobRepo
	EscrowRepo  *data.EscrowRepo
	CacheRepo   *data.RedisCacheRepo
	TxRunner    *data.PgxTxRunner
}

// buildRepositories builds repositories backing service ports; no business rules here.
func buildRepositories(db *sql.DB, redisClient redis.UniversalClient, logger *slog.Logger) *serviceRepositories {
	clock := &data.RealTimeProvider{}
	repos := &serviceRepositories{
		TimeLogRepo: data.NewTimeLogRepo(db, data.TimeLogRepoConfig{Logger: logger, Clock: clock}),
		JobRepo:     data.NewJobRepo(db, clock),
		EscrowRepo:  data.NewEscrowRepo(db, clock),
		TxRunner:    data.NewPgxTxRunner(db),
	}
	if redisClient != nil {
		repos.CacheRepo = data.NewRedisCacheRepo(redisClient)
	}
	return repos
}

// NewServices wires repositories into domain services.
func NewServices(deps *ServiceDeps) ServiceContainer {
	if deps == nil {
		return ServiceContainer{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	appCfg := deps.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}

	repos := buildRepositories(deps.DB, deps.RedisClient, logger)

	timerOpts := service.TimerServiceOptions{
		Logs:   repos.TimeLogRepo,
		Jobs:   repos.JobRepo,
		Tx:     repos.TxRunner,
		Logger: logger,
	}
	if repos.CacheRepo != nil {
		timerOpts.Cache = repos.CacheRepo
		timerOpts.CacheTTL = appCfg.Cache.ActiveTimerTTL
	}
	timers := service.MustNewTimerService(timerOpts)

	timesheets := service.MustNewTimesheetService(service.TimesheetServiceOptions{
		Logs:   repos.TimeLogRepo,
		Logger: logger,
	})

	approvals := service.MustNewApprovalService(service.ApprovalServiceOptions{
		Logs:   repos.TimeLogRepo,
		Escrow: repos.EscrowRepo,
		Authz: authz.EmployerAuthorizer{
			Jobs:     repos.JobRepo,
			AdminIDs: appCfg.Auth.AdminIDs,
		},
		Tx:     repos.TxRunner,
		Logger: logger,
	})

	return ServiceContainer{
		Timers:     timers,
		Timesheets: timesheets,
		Approvals:  approvals,
		Jobs:       repos.JobRepo,
		Escrow:     repos.EscrowRepo,
		Tx:         repos.TxRunner,
	}
}
