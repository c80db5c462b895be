package httpx

import (
	"net/http"

	"github.com/gigpay/timeclock/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Timers     *service.TimerService
	Timesheets *service.TimesheetService
	Approvals  *service.ApprovalService
}

// NewRouter creates and configures a new HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	timerHandlers := &TimerHandlers{Svc: services.Timers}
	timesheetHandlers := &TimesheetHandlers{Svc: services.Timesheets}
	approvalHandlers := &ApprovalHandlers{Svc: services.Approvals}

	registerTimerRoutes(mux, timerHandlers)
	registerTimesheetRoutes(mux, timesheetHandlers)
	registerApprovalRoutes(mux, approvalHandlers)
	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	return mux
}

func registerTimerRoutes(mux *http.ServeMux, h *TimerHandlers) {
	mux.HandleFunc("POST /api/timers/start", h.StartTimer)
	mux.HandleFunc("POST /api/timers/stop", h.StopTimer)
	mux.HandleFunc("GET /api/workers/{workerId}/timer", h.GetActiveTimer)
}

func registerTimesheetRoutes(mux *http.ServeMux, h *TimesheetHandlers) {
	mux.HandleFunc("GET /api/workers/{workerId}/timelogs", h.ListByWorker)
	mux.HandleFunc("GET /api/jobs/{jobId}/timelogs", h.ListByJob)
	mux.HandleFunc("GET /api/timelogs/{logId}", h.GetByID)
}

func registerApprovalRoutes(mux *http.ServeMux, h *ApprovalHandlers) {
	mux.HandleFunc("POST /api/timelogs/{logId}/approve", h.Approve)
	mux.HandleFunc("POST /api/timelogs/{logId}/reject", h.Reject)
}
