package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/osse101/LootVault_Go/internal/domain"
	"github.com/osse101/LootVault_Go/internal/repository"
)

// AccountRepository implements repository.Account for PostgreSQL
type AccountRepository struct {
	db *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{db: db}
}

const userColumns = `user_id, username, profile_picture, wallet_balance, xp, level, inventory`

// GetUserByID retrieves a user without locking
func (r *AccountRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	row := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE user_id = $1`, userUUID)
	return scanUser(row)
}

// BeginTx starts a new transaction
func (r *AccountRepository) BeginTx(ctx context.Context) (repository.AccountTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin account transaction: %w", err)
	}
	return &accountTx{tx: tx}, nil
}

// accountTx implements repository.AccountTx
type accountTx struct {
	tx pgx.Tx
}

// GetUserForUpdate retrieves a user holding an exclusive row lock. A second
// transaction calling this for the same user blocks until the first commits
// or rolls back.
func (t *accountTx) GetUserForUpdate(ctx context.Context, userID string) (*domain.User, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	row := t.tx.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE user_id = $1 FOR UPDATE`, userUUID)
	return scanUser(row)
}

// UpdateUserEconomy writes balance, xp, level and inventory in one statement
func (t *accountTx) UpdateUserEconomy(ctx context.Context, user *domain.User) error {
	userUUID, err := uuid.Parse(user.ID)
	if err != nil {
		return fmt.Errorf("invalid user ID: %w", err)
	}

	inventoryJSON, err := json.Marshal(user.Inventory)
	if err != nil {
		return fmt.Errorf("failed to marshal inventory: %w", err)
	}

	tag, err := t.tx.Exec(ctx,
		`UPDATE users
		 SET wallet_balance = $2, xp = $3, level = $4, inventory = $5, updated_at = NOW()
		 WHERE user_id = $1`,
		userUUID, user.WalletBalance, user.XP, user.Level, inventoryJSON)
	if err != nil {
		return fmt.Errorf("failed to update user economy: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

// Commit commits the transaction
func (t *accountTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *accountTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func scanUser(row pgx.Row) (*domain.User, error) {
	user := &domain.User{}
	var inventoryJSON []byte

	err := row.Scan(&user.ID, &user.Username, &user.ProfilePicture,
		&user.WalletBalance, &user.XP, &user.Level, &inventoryJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if len(inventoryJSON) > 0 {
		if err := json.Unmarshal(inventoryJSON, &user.Inventory); err != nil {
			return nil, fmt.Errorf("failed to unmarshal inventory: %w", err)
		}
	}

	return user, nil
}
