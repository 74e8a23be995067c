package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"solidarity-campaign/internal/core/domain"
)

type completionRequest struct {
	TransactionID string `json:"transaction_id"`
	Amount        int64  `json:"amount"`
}

type completionResponse struct {
	domain.CampaignProgress
	Duplicate bool `json:"duplicate"`
}

// handleProgress returns the current total, goal and percentage.
func (h *Handler) handleProgress(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.svc.Progress(r.Context()))
}

// handleCompletion applies a server-confirmed checkout completion. The
// transaction_id is mandatory; replaying an id is answered with 200 and
// duplicate=true without changing the total. An amount that is negative,
// above the goal or would overflow the total yields 400 and internal
// errors 500.
func (h *Handler) handleCompletion(w http.ResponseWriter, r *http.Request) {
	var req completionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	req.TransactionID = strings.TrimSpace(req.TransactionID)
	if req.TransactionID == "" {
		http.Error(w, "missing transaction_id", http.StatusBadRequest)
		return
	}

	progress, duplicate, err := h.svc.RecordCompletion(r.Context(), req.TransactionID, req.Amount)
	if errors.Is(err, domain.ErrNegativeDelta) ||
		errors.Is(err, domain.ErrAmountOutOfRange) ||
		errors.Is(err, domain.ErrTotalOverflow) {
		http.Error(w, "invalid amount", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.requestLogger(r).Error("record completion error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, r, http.StatusOK, completionResponse{CampaignProgress: progress, Duplicate: duplicate})
}
