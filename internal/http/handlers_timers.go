package httpx

import (
	"errors"
	"net/http"

	"github.com/gigpay/timeclock/internal/domain/model"
	apperrors "github.com/gigpay/timeclock/internal/errors"
	"github.com/gigpay/timeclock/internal/service"
)

// TimerHandlers provides HTTP handlers for clocking in and out.
type TimerHandlers struct {
	Svc *service.TimerService
}

// StartTimer handles HTTP requests to clock a worker in on a job.
func (h *TimerHandlers) StartTimer(w http.ResponseWriter, r *http.Request) {
	var req model.StartTimerRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	log, err := h.Svc.Start(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, log)
}

// StopTimer handles HTTP requests to clock a worker out.
func (h *TimerHandlers) StopTimer(w http.ResponseWriter, r *http.Request) {
	var req model.StopTimerRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		WriteAppError(w, apperrors.Validation(err.Error()))
		return
	}

	log, err := h.Svc.Stop(r.Context(), req.WorkerID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, log)
}

// GetActiveTimer handles HTTP requests for a worker's currently running log.
// A worker with no clock running gets a 200 with a null body, not an error.
func (h *TimerHandlers) GetActiveTimer(w http.ResponseWriter, r *http.Request) {
	workerID := r.PathValue("workerId")
	if workerID == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("worker id is required")},
		)
		return
	}

	log, err := h.Svc.ActiveFor(r.Context(), workerID)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	if log == nil {
		WriteJSON(w, http.StatusOK, nil)
		return
	}

	WriteJSON(w, http.StatusOK, log)
}
