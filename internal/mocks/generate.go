// Package mocks provides mock implementations for testing the timeclock engine.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for the
// core port interfaces. The mocks are generated using go:generate directives and
// provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockTimeLogRepository(ctrl)
//	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(log, nil)
package mocks

// Generate mock for TimeLogRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=timelog_repository_mock.go github.com/gigpay/timeclock/internal/core TimeLogRepository

// Generate mock for JobRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=job_repository_mock.go github.com/gigpay/timeclock/internal/core JobRepository

// Generate mock for EscrowLedger interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=escrow_ledger_mock.go github.com/gigpay/timeclock/internal/core EscrowLedger

// Generate mock for Authorizer interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=authorizer_mock.go github.com/gigpay/timeclock/internal/core Authorizer

// Generate mock for CacheRepository interface from internal/core package.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=cache_repository_mock.go github.com/gigpay/timeclock/internal/core CacheRepository
