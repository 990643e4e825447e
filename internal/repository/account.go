package repository

import (
	"context"

	"github.com/osse101/LootVault_Go/internal/domain"
)

// Account defines the interface for user account persistence
type Account interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	BeginTx(ctx context.Context) (AccountTx, error)
}

// AccountTx is a transaction over a single user's economic state. The row
// lock taken by GetUserForUpdate serializes concurrent transactions for the
// same user; transactions for different users proceed in parallel.
type AccountTx interface {
	// GetUserForUpdate loads the user and holds an exclusive row lock until
	// Commit or Rollback.
	GetUserForUpdate(ctx context.Context, userID string) (*domain.User, error)

	// UpdateUserEconomy writes balance, xp, level and inventory as a single
	// update.
	UpdateUserEconomy(ctx context.Context, user *domain.User) error

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
