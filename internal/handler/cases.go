package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// HandleListCases returns summaries of every openable case
func (h *GamesHandler) HandleListCases(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.service.ListCases(r.Context())
	if err != nil {
		respondServiceError(w, r, "List cases", err)
		return
	}

	respondJSON(w, http.StatusOK, summaries)
}

// HandleGetCase returns a single case with its full item pool
func (h *GamesHandler) HandleGetCase(w http.ResponseWriter, r *http.Request) {
	caseID := chi.URLParam(r, "caseID")
	if caseID == "" {
		http.Error(w, ErrMsgMissingCaseID, http.StatusBadRequest)
		return
	}

	caseData, err := h.service.GetCase(r.Context(), caseID)
	if err != nil {
		respondServiceError(w, r, "Get case", err)
		return
	}

	respondJSON(w, http.StatusOK, caseData)
}
