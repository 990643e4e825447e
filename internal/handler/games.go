package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/LootVault_Go/internal/caseopening"
	"github.com/osse101/LootVault_Go/internal/middleware"
)

// GamesHandler serves the case-opening game endpoints
type GamesHandler struct {
	service caseopening.Service
}

// NewGamesHandler creates a new GamesHandler
func NewGamesHandler(service caseopening.Service) *GamesHandler {
	return &GamesHandler{service: service}
}

// OpenCaseRequest is the body of an open-case call. Quantity is decoded as
// a float so values like 2.5 reach the service and get rejected there
// instead of being truncated.
type OpenCaseRequest struct {
	Quantity float64 `json:"quantity"`
}

// HandleOpenCase resolves a paid case opening for the authenticated user
func (h *GamesHandler) HandleOpenCase(w http.ResponseWriter, r *http.Request) {
	caseID := chi.URLParam(r, "caseID")
	if caseID == "" {
		http.Error(w, ErrMsgMissingCaseID, http.StatusBadRequest)
		return
	}

	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, middleware.ErrMsgMissingIdentity, http.StatusUnauthorized)
		return
	}

	var req OpenCaseRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Open case"); err != nil {
		return
	}

	result, err := h.service.OpenCase(r.Context(), userID, caseID, req.Quantity)
	if err != nil {
		respondServiceError(w, r, "Open case", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
