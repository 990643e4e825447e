package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/LootVault_Go/internal/database"
	"github.com/osse101/LootVault_Go/internal/domain"
)

// startPostgres runs a disposable postgres container, applies the embedded
// migrations and returns a connected pool. Skips in short mode and when
// Docker is unavailable.
func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	var container *tcpostgres.PostgresContainer
	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test, Docker unavailable: %v", r)
			}
		}()
		container, err = tcpostgres.Run(ctx,
			"postgres:15-alpine",
			tcpostgres.WithDatabase("lootvault_test"),
			tcpostgres.WithUsername("test"),
			tcpostgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second)),
		)
	}()
	require.NoError(t, err, "start postgres container")
	require.NotNil(t, container)
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, database.Migrate(ctx, connStr))

	pool, err := database.NewPool(ctx, connStr, 10, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func seedUser(t *testing.T, pool *pgxpool.Pool, username string, balance int64) string {
	t.Helper()

	id := uuid.NewString()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (user_id, username, profile_picture, wallet_balance)
		 VALUES ($1, $2, $3, $4)`,
		id, username, username+".png", balance)
	require.NoError(t, err)
	return id
}

// seedCase inserts a case whose item pool is the given items, membership
// ordered as passed.
func seedCase(t *testing.T, pool *pgxpool.Pool, name string, price int64, items []domain.Item) string {
	t.Helper()
	ctx := context.Background()

	caseID := uuid.NewString()
	_, err := pool.Exec(ctx,
		`INSERT INTO cases (case_id, case_name, price, image) VALUES ($1, $2, $3, $4)`,
		caseID, name, price, name+".png")
	require.NoError(t, err)

	for pos, item := range items {
		_, err := pool.Exec(ctx,
			`INSERT INTO items (item_id, item_name, image, rarity) VALUES ($1, $2, $3, $4)`,
			item.ID, item.Name, item.Image, item.Rarity)
		require.NoError(t, err)
		_, err = pool.Exec(ctx,
			`INSERT INTO case_items (case_id, item_id, position) VALUES ($1, $2, $3)`,
			caseID, item.ID, pos)
		require.NoError(t, err)
	}

	return caseID
}

func TestCatalogRepository_Integration(t *testing.T) {
	pool := startPostgres(t)
	repo := NewCatalogRepository(pool)
	ctx := context.Background()

	items := []domain.Item{
		{ID: uuid.NewString(), Name: "Rusty Knife", Image: "rusty.png", Rarity: "1"},
		{ID: uuid.NewString(), Name: "Emerald Blade", Image: "emerald.png", Rarity: "3"},
		{ID: uuid.NewString(), Name: "Dragon Claw", Image: "dragon.png", Rarity: "5"},
	}
	caseID := seedCase(t, pool, "Starter Case", 10, items)

	t.Run("GetCaseByID returns case with ordered items", func(t *testing.T) {
		got, err := repo.GetCaseByID(ctx, caseID)
		require.NoError(t, err)

		assert.Equal(t, caseID, got.ID)
		assert.Equal(t, "Starter Case", got.Name)
		assert.Equal(t, int64(10), got.Price)
		assert.Equal(t, items, got.Items)
	})

	t.Run("unknown case ID", func(t *testing.T) {
		_, err := repo.GetCaseByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrCaseNotFound)
	})

	t.Run("malformed case ID behaves as unknown", func(t *testing.T) {
		_, err := repo.GetCaseByID(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, domain.ErrCaseNotFound)
	})

	t.Run("ListCases returns summaries", func(t *testing.T) {
		seedCase(t, pool, "Another Case", 25, nil)

		summaries, err := repo.ListCases(ctx)
		require.NoError(t, err)
		require.Len(t, summaries, 2)

		// Ordered by name
		assert.Equal(t, "Another Case", summaries[0].Name)
		assert.Equal(t, "Starter Case", summaries[1].Name)
	})
}

func TestAccountRepository_Integration(t *testing.T) {
	pool := startPostgres(t)
	repo := NewAccountRepository(pool)
	ctx := context.Background()

	t.Run("GetUserByID round trip", func(t *testing.T) {
		id := seedUser(t, pool, "ana", 100)

		user, err := repo.GetUserByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "ana", user.Username)
		assert.Equal(t, int64(100), user.WalletBalance)
		assert.Empty(t, user.Inventory)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := repo.GetUserByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("UpdateUserEconomy persists the single write", func(t *testing.T) {
		id := seedUser(t, pool, "bela", 50)

		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)

		user, err := tx.GetUserForUpdate(ctx, id)
		require.NoError(t, err)

		won := domain.Item{ID: uuid.NewString(), Name: "Frost Fang", Image: "frost.png", Rarity: "2"}
		user.WalletBalance = 40
		user.XP = 10
		user.Level = 1
		user.Inventory = append([]domain.Item{won}, user.Inventory...)

		require.NoError(t, tx.UpdateUserEconomy(ctx, user))
		require.NoError(t, tx.Commit(ctx))

		// Inventory survives the JSONB round trip in order
		got, err := repo.GetUserByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(40), got.WalletBalance)
		assert.Equal(t, int64(10), got.XP)
		assert.Equal(t, 1, got.Level)
		assert.Equal(t, []domain.Item{won}, got.Inventory)
	})

	t.Run("UpdateUserEconomy on absent row", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback(ctx) }()

		ghost := &domain.User{ID: uuid.NewString(), WalletBalance: 1}
		err = tx.UpdateUserEconomy(ctx, ghost)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("rollback leaves the committed state", func(t *testing.T) {
		id := seedUser(t, pool, "cora", 30)

		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)

		user, err := tx.GetUserForUpdate(ctx, id)
		require.NoError(t, err)
		user.WalletBalance = 0
		require.NoError(t, tx.UpdateUserEconomy(ctx, user))
		require.NoError(t, tx.Rollback(ctx))

		got, err := repo.GetUserByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(30), got.WalletBalance)
	})
}
