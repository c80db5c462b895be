package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gigpay/timeclock/internal/core"
	"github.com/gigpay/timeclock/internal/domain/model"
	apperrors "github.com/gigpay/timeclock/internal/errors"
	"github.com/gigpay/timeclock/internal/mocks"
	"github.com/gigpay/timeclock/internal/service"
)

type passthroughTx struct{}

func (passthroughTx) InTx(_ context.Context, fn func(pgx.Tx) error) error {
	return fn(nil)
}

// routerFixture wires a real router over mocked repositories so tests cover
// the full path from URL pattern to response body.
type routerFixture struct {
	logs   *mocks.MockTimeLogRepository
	jobs   *mocks.MockJobRepository
	escrow *mocks.MockEscrowLedger
	authz  *mocks.MockAuthorizer
	router http.Handler
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &routerFixture{
		logs:   mocks.NewMockTimeLogRepository(ctrl),
		jobs:   mocks.NewMockJobRepository(ctrl),
		escrow: mocks.NewMockEscrowLedger(ctrl),
		authz:  mocks.NewMockAuthorizer(ctrl),
	}

	timers := service.MustNewTimerService(service.TimerServiceOptions{
		Logs: f.logs, Jobs: f.jobs, Tx: passthroughTx{},
	})
	timesheets := service.MustNewTimesheetService(service.TimesheetServiceOptions{Logs: f.logs})
	approvals := service.MustNewApprovalService(service.ApprovalServiceOptions{
		Logs: f.logs, Escrow: f.escrow, Authz: f.authz, Tx: passthroughTx{},
	})

	f.router = NewRouter(RouterServices{
		Timers:     timers,
		Timesheets: timesheets,
		Approvals:  approvals,
	})
	return f
}

func (f *routerFixture) do(method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func fixtureJob() *model.Job {
	return &model.Job{
		ID:         "job-1",
		EmployerID: "emp-1",
		Title:      "API integration work",
		HourlyRate: model.Cents(2000),
	}
}

func fixturePendingLog() *model.TimeLog {
	end := time.Date(2025, 3, 10, 10, 30, 0, 0, time.UTC)
	minutes := 90
	cost := model.Cents(3000)
	return &model.TimeLog{
		ID:              "log-1",
		WorkerID:        "worker-1",
		JobID:           "job-1",
		HourlyRate:      model.Cents(2000),
		StartTime:       time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		EndTime:         &end,
		DurationMinutes: &minutes,
		TotalCost:       &cost,
		Status:          model.LogStatusPendingApproval,
	}
}

func TestStartTimer(t *testing.T) {
	f := newRouterFixture(t)

	f.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(fixtureJob(), nil).Times(1)
	f.logs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&model.TimeLog{
		ID:         "log-1",
		WorkerID:   "worker-1",
		JobID:      "job-1",
		HourlyRate: model.Cents(2000),
		Status:     model.LogStatusActive,
	}, nil).Times(1)

	rec := f.do(http.MethodPost, "/api/timers/start",
		`{"jobId":"job-1","workerId":"worker-1"}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ACTIVE"`)
	assert.Contains(t, rec.Body.String(), `"hourlyRate":20.00`)
}

func TestStartTimer_InvalidJSON(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodPost, "/api/timers/start", `{"jobId":`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_json")
}

func TestStartTimer_SecondTimerConflicts(t *testing.T) {
	f := newRouterFixture(t)

	f.jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(fixtureJob(), nil).Times(1)
	f.logs.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.Conflict("unique violation")).Times(1)

	rec := f.do(http.MethodPost, "/api/timers/start",
		`{"jobId":"job-1","workerId":"worker-1"}`, nil)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "already has an active timer")
}

func TestStopTimer(t *testing.T) {
	f := newRouterFixture(t)

	active := &model.TimeLog{
		ID:         "log-1",
		WorkerID:   "worker-1",
		JobID:      "job-1",
		HourlyRate: model.Cents(2000),
		StartTime:  time.Now().UTC().Add(-time.Hour),
		Status:     model.LogStatusActive,
	}
	f.logs.EXPECT().ActiveForUpdateInTx(gomock.Any(), gomock.Any(), "worker-1").
		Return(active, nil).Times(1)
	f.logs.EXPECT().FinishInTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, params core.FinishTimeLogParams) (*model.TimeLog, error) {
			finished := *active
			finished.EndTime = &params.EndTime
			finished.DurationMinutes = &params.DurationMinutes
			finished.TotalCost = &params.TotalCost
			finished.Status = model.LogStatusPendingApproval
			return &finished, nil
		}).Times(1)

	rec := f.do(http.MethodPost, "/api/timers/stop", `{"workerId":"worker-1"}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"PENDING_APPROVAL"`)
}

func TestStopTimer_MissingWorkerID(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodPost, "/api/timers/stop", `{}`, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "workerId is required")
}

func TestStopTimer_NoActiveTimer(t *testing.T) {
	f := newRouterFixture(t)

	f.logs.EXPECT().ActiveForUpdateInTx(gomock.Any(), gomock.Any(), "worker-idle").
		Return(nil, nil).Times(1)

	rec := f.do(http.MethodPost, "/api/timers/stop", `{"workerId":"worker-idle"}`, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetActiveTimer(t *testing.T) {
	f := newRouterFixture(t)

	f.logs.EXPECT().ActiveFor(gomock.Any(), "worker-1").Return(&model.TimeLog{
		ID:       "log-1",
		WorkerID: "worker-1",
		JobID:    "job-1",
		Status:   model.LogStatusActive,
	}, nil).Times(1)

	rec := f.do(http.MethodGet, "/api/workers/worker-1/timer", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"log-1"`)
}

func TestGetActiveTimer_NoTimerReturnsNull(t *testing.T) {
	f := newRouterFixture(t)

	f.logs.EXPECT().ActiveFor(gomock.Any(), "worker-idle").Return(nil, nil).Times(1)

	rec := f.do(http.MethodGet, "/api/workers/worker-idle/timer", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
}

func TestListTimesheets(t *testing.T) {
	f := newRouterFixture(t)

	f.logs.EXPECT().ListByWorker(gomock.Any(), "worker-1").
		Return([]*model.TimeLog{fixturePendingLog()}, nil).Times(1)
	f.logs.EXPECT().ListByJob(gomock.Any(), "job-1").
		Return([]*model.TimeLog{}, nil).Times(1)

	rec := f.do(http.MethodGet, "/api/workers/worker-1/timelogs", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalCost":30.00`)

	rec = f.do(http.MethodGet, "/api/jobs/job-1/timelogs", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestGetTimeLog(t *testing.T) {
	f := newRouterFixture(t)

	f.logs.EXPECT().GetByID(gomock.Any(), "log-1").Return(fixturePendingLog(), nil).Times(1)

	rec := f.do(http.MethodGet, "/api/timelogs/log-1", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"durationMinutes":90`)
}

func TestGetTimeLog_NotFound(t *testing.T) {
	f := newRouterFixture(t)

	f.logs.EXPECT().GetByID(gomock.Any(), "log-missing").
		Return(nil, apperrors.NotFoundf("time log %s not found", "log-missing")).Times(1)

	rec := f.do(http.MethodGet, "/api/timelogs/log-missing", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestApprove(t *testing.T) {
	f := newRouterFixture(t)
	log := fixturePendingLog()

	f.logs.EXPECT().GetByID(gomock.Any(), "log-1").Return(log, nil).Times(1)
	f.authz.EXPECT().CanApprove(gomock.Any(), "emp-1", "job-1").Return(true, nil).Times(1)
	f.logs.EXPECT().GetForUpdateInTx(gomock.Any(), gomock.Any(), "log-1").Return(log, nil).Times(1)
	f.escrow.EXPECT().BalanceForUpdateInTx(gomock.Any(), gomock.Any(), "job-1").
		Return(model.Cents(50000), nil).Times(1)
	f.escrow.EXPECT().DebitInTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(model.Cents(47000), nil).Times(1)
	f.logs.EXPECT().MarkPaidInTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, params core.SettleTimeLogParams) (*model.TimeLog, error) {
			paid := *log
			paid.Status = model.LogStatusPaid
			paid.ApprovedBy = &params.ActorID
			return &paid, nil
		}).Times(1)

	rec := f.do(http.MethodPost, "/api/timelogs/log-1/approve", "",
		map[string]string{ActorHeader: "emp-1"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"PAID"`)
	assert.Contains(t, rec.Body.String(), `"approvedBy":"emp-1"`)
}

func TestApprove_MissingActorHeader(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodPost, "/api/timelogs/log-1/approve", "", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing_actor")
}

func TestApprove_Forbidden(t *testing.T) {
	f := newRouterFixture(t)
	log := fixturePendingLog()

	f.logs.EXPECT().GetByID(gomock.Any(), "log-1").Return(log, nil).Times(1)
	f.authz.EXPECT().CanApprove(gomock.Any(), "rando", "job-1").Return(false, nil).Times(1)

	rec := f.do(http.MethodPost, "/api/timelogs/log-1/approve", "",
		map[string]string{ActorHeader: "rando"})

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestApprove_InsufficientFunds(t *testing.T) {
	f := newRouterFixture(t)
	log := fixturePendingLog()

	f.logs.EXPECT().GetByID(gomock.Any(), "log-1").Return(log, nil).Times(1)
	f.authz.EXPECT().CanApprove(gomock.Any(), "emp-1", "job-1").Return(true, nil).Times(1)
	f.logs.EXPECT().GetForUpdateInTx(gomock.Any(), gomock.Any(), "log-1").Return(log, nil).Times(1)
	f.escrow.EXPECT().BalanceForUpdateInTx(gomock.Any(), gomock.Any(), "job-1").
		Return(model.Cents(2500), nil).Times(1)

	rec := f.do(http.MethodPost, "/api/timelogs/log-1/approve", "",
		map[string]string{ActorHeader: "emp-1"})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "insufficient_funds")
}

func TestReject(t *testing.T) {
	f := newRouterFixture(t)
	log := fixturePendingLog()

	f.logs.EXPECT().GetByID(gomock.Any(), "log-1").Return(log, nil).Times(1)
	f.authz.EXPECT().CanApprove(gomock.Any(), "emp-1", "job-1").Return(true, nil).Times(1)
	f.logs.EXPECT().GetForUpdateInTx(gomock.Any(), gomock.Any(), "log-1").Return(log, nil).Times(1)
	f.logs.EXPECT().MarkRejectedInTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, params core.SettleTimeLogParams) (*model.TimeLog, error) {
			rejected := *log
			rejected.Status = model.LogStatusRejected
			rejected.RejectedBy = &params.ActorID
			return &rejected, nil
		}).Times(1)

	rec := f.do(http.MethodPost, "/api/timelogs/log-1/reject", "",
		map[string]string{ActorHeader: "emp-1"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"REJECTED"`)
}

func TestReject_ApprovedLogConflicts(t *testing.T) {
	f := newRouterFixture(t)
	log := fixturePendingLog()
	log.Status = model.LogStatusPaid

	f.logs.EXPECT().GetByID(gomock.Any(), "log-1").Return(log, nil).Times(1)
	f.authz.EXPECT().CanApprove(gomock.Any(), "emp-1", "job-1").Return(true, nil).Times(1)
	f.logs.EXPECT().GetForUpdateInTx(gomock.Any(), gomock.Any(), "log-1").Return(log, nil).Times(1)

	rec := f.do(http.MethodPost, "/api/timelogs/log-1/reject", "",
		map[string]string{ActorHeader: "emp-1"})

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_state")
}

func TestHealthz(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = f.do(http.MethodHead, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWriteAppError_UnknownErrorHidesDetails(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteAppError(rec, assert.AnError)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}
