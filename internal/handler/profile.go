package handler

import (
	"net/http"

	"github.com/osse101/LootVault_Go/internal/middleware"
	"github.com/osse101/LootVault_Go/internal/repository"
)

// ProfileHandler serves the authenticated user's own account data
type ProfileHandler struct {
	accounts repository.Account
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(accounts repository.Account) *ProfileHandler {
	return &ProfileHandler{accounts: accounts}
}

// HandleGetProfile returns the caller's full account state, including
// balance, progression and inventory
func (h *ProfileHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, middleware.ErrMsgMissingIdentity, http.StatusUnauthorized)
		return
	}

	user, err := h.accounts.GetUserByID(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, "Get profile", err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}
