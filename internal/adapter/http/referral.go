package httpadapter

import (
	"errors"
	"io"
	"net/http"

	"solidarity-campaign/internal/core/domain"
)

type shareRequest struct {
	Capabilities domain.ShareCapabilities `json:"capabilities"`
	// Referral asks for the referral link to be shared; otherwise the
	// landing page URL is shared.
	Referral bool `json:"referral"`
}

type shareReport struct {
	Method domain.ShareMethod `json:"method"`
	Reason string             `json:"reason"`
}

// handleReferral generates the referral link for the deployment origin.
func (h *Handler) handleReferral(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.svc.GenerateReferral(h.origin(r)))
}

// handleShare broadcasts the referral link through the first capability
// the client declares. The response always carries the message so the
// client can open its share sheet or write its clipboard. An empty body is
// treated as a client without capabilities.
func (h *Handler) handleShare(w http.ResponseWriter, r *http.Request) {
	var req shareRequest
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	var link domain.ReferralLink
	if req.Referral {
		link = h.svc.GenerateReferral(h.origin(r))
	}
	h.writeJSON(w, r, http.StatusOK, h.svc.Share(r.Context(), req.Capabilities, link, h.pageURL(r)))
}

// handleShareReport records a failed or cancelled client-side share. It
// always answers 204: a failed share is never an application error.
func (h *Handler) handleShareReport(w http.ResponseWriter, r *http.Request) {
	var rep shareReport
	if err := decodeJSON(w, r, &rep); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	h.svc.ReportShareFailure(r.Context(), rep.Method, rep.Reason)
	w.WriteHeader(http.StatusNoContent)
}
