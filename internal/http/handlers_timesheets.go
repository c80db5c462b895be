package httpx

import (
	"errors"
	"net/http"

	"github.com/gigpay/timeclock/internal/service"
)

// TimesheetHandlers provides HTTP handlers for timesheet queries.
type TimesheetHandlers struct {
	Svc *service.TimesheetService
}

// ListByWorker handles HTTP requests for a worker's full timesheet.
func (h *TimesheetHandlers) ListByWorker(w http.ResponseWriter, r *http.Request) {
	workerID := r.PathValue("workerId")
	if workerID == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("worker id is required")},
		)
		return
	}

	logs, err := h.Svc.ForWorker(r.Context(), workerID)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, logs)
}

// ListByJob handles HTTP requests for all logs billed against a job.
func (h *TimesheetHandlers) ListByJob(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("jobId")
	if jobID == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("job id is required")},
		)
		return
	}

	logs, err := h.Svc.ForJob(r.Context(), jobID)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, logs)
}

// GetByID handles HTTP requests for a single time log.
func (h *TimesheetHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	logID := r.PathValue("logId")
	if logID == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("log id is required")},
		)
		return
	}

	log, err := h.Svc.Get(r.Context(), logID)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, log)
}
