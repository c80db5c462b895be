package httpx

import (
	"errors"
	"net/http"

	"github.com/gigpay/timeclock/internal/service"
)

// ActorHeader carries the caller's identity. Settlement endpoints refuse
// requests without it; there is no fallback identity.
const ActorHeader = "X-Actor-Id"

// ApprovalHandlers provides HTTP handlers for settling pending time logs.
type ApprovalHandlers struct {
	Svc *service.ApprovalService
}

// Approve handles HTTP requests to approve a pending log, debiting escrow.
func (h *ApprovalHandlers) Approve(w http.ResponseWriter, r *http.Request) {
	logID, actorID, ok := settlementParams(w, r)
	if !ok {
		return
	}

	log, err := h.Svc.Approve(r.Context(), logID, actorID)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, log)
}

// Reject handles HTTP requests to decline a pending log.
func (h *ApprovalHandlers) Reject(w http.ResponseWriter, r *http.Request) {
	logID, actorID, ok := settlementParams(w, r)
	if !ok {
		return
	}

	log, err := h.Svc.Reject(r.Context(), logID, actorID)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, log)
}

func settlementParams(w http.ResponseWriter, r *http.Request) (logID, actorID string, ok bool) {
	logID = r.PathValue("logId")
	if logID == "" {
		WriteError(
			w,
			ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: errors.New("log id is required")},
		)
		return "", "", false
	}

	actorID = r.Header.Get(ActorHeader)
	if actorID == "" {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "missing_actor",
			Err:     errors.New("X-Actor-Id header is required"),
		})
		return "", "", false
	}
	return logID, actorID, true
}
