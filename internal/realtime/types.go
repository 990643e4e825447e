package realtime

import "github.com/osse101/LootVault_Go/internal/domain"

// CaseOpenedPayload is the public feed payload published after every
// committed case opening. Field names match the browser client contract.
type CaseOpenedPayload struct {
	WinningItems []domain.Item        `json:"winningItems"`
	User         domain.PublicProfile `json:"user"`
	CaseImage    string               `json:"caseImage"`
}

// UserDataUpdatedPayload is the private-room payload carrying the opening
// user's committed account state.
type UserDataUpdatedPayload struct {
	WalletBalance int64 `json:"walletBalance"`
	XP            int64 `json:"xp"`
	Level         int   `json:"level"`
}
