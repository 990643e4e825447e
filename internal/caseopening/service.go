// Package caseopening implements the case-opening engine: quantity and funds
// validation, the weighted reward draw, progression, and the single atomic
// account write, with realtime events published after commit.
package caseopening

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/LootVault_Go/internal/domain"
	"github.com/osse101/LootVault_Go/internal/logger"
	"github.com/osse101/LootVault_Go/internal/metrics"
	"github.com/osse101/LootVault_Go/internal/progression"
	"github.com/osse101/LootVault_Go/internal/realtime"
	"github.com/osse101/LootVault_Go/internal/repository"
)

// Service defines the case-opening interface
type Service interface {
	// OpenCase resolves a paid multi-open for one user. Quantity arrives as
	// a float so non-integer request values can be rejected here rather
	// than silently truncated at the decode step.
	OpenCase(ctx context.Context, userID, caseID string, quantity float64) (*domain.OpenResult, error)

	// GetCase returns a full case definition, served from cache when warm.
	GetCase(ctx context.Context, caseID string) (*domain.Case, error)

	// ListCases returns summaries of every openable case.
	ListCases(ctx context.Context) ([]domain.CaseSummary, error)
}

type service struct {
	catalog     repository.Catalog
	accounts    repository.Account
	selector    *Selector
	progression progression.Service
	broadcaster realtime.Broadcaster
	cache       *caseCache
}

// NewService creates a case-opening service
func NewService(
	catalog repository.Catalog,
	accounts repository.Account,
	selector *Selector,
	prog progression.Service,
	broadcaster realtime.Broadcaster,
	cacheSize int,
	cacheTTL time.Duration,
) Service {
	return &service{
		catalog:     catalog,
		accounts:    accounts,
		selector:    selector,
		progression: prog,
		broadcaster: broadcaster,
		cache:       newCaseCache(cacheSize, cacheTTL),
	}
}

// OpenCase validates the request, draws quantity rewards, applies the
// economic outcome in one transaction, and publishes events once committed.
//
// Validation order is part of the contract: unknown case, then unknown user,
// then quantity shape, then funds. A request for a missing case fails on the
// case even when the quantity is also bad.
func (s *service) OpenCase(ctx context.Context, userID, caseID string, quantity float64) (*domain.OpenResult, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgOpenCaseCalled, "user_id", userID, "case_id", caseID, "quantity", quantity)

	caseData, err := s.GetCase(ctx, caseID)
	if err != nil {
		return nil, s.fail(err)
	}

	tx, err := s.accounts.BeginTx(ctx)
	if err != nil {
		return nil, s.fail(fmt.Errorf("%w: begin tx: %v", domain.ErrDatabaseError, err))
	}
	defer repository.SafeRollback(ctx, tx)

	// Row lock: concurrent opens for the same user queue up here.
	user, err := tx.GetUserForUpdate(ctx, userID)
	if err != nil {
		return nil, s.fail(err)
	}

	qty := int(quantity)
	if float64(qty) != quantity || qty < MinOpenQuantity || qty > MaxOpenQuantity {
		return nil, s.fail(domain.ErrInvalidQuantity)
	}

	totalCost := caseData.Price * int64(qty)
	if user.WalletBalance < totalCost {
		return nil, s.fail(fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientFunds, totalCost, user.WalletBalance))
	}

	wonItems := make([]domain.Item, 0, qty)
	for i := 0; i < qty; i++ {
		item, err := s.selector.Select(caseData)
		if err != nil {
			return nil, s.fail(err)
		}
		wonItems = append(wonItems, item)
	}

	newXP, newLevel := s.progression.ApplySpend(user.XP, totalCost)

	user.WalletBalance -= totalCost
	user.XP = newXP
	user.Level = newLevel
	// New rewards go to the front of the inventory in draw order.
	inventory := make([]domain.Item, 0, len(wonItems)+len(user.Inventory))
	inventory = append(inventory, wonItems...)
	inventory = append(inventory, user.Inventory...)
	user.Inventory = inventory

	if err := tx.UpdateUserEconomy(ctx, user); err != nil {
		return nil, s.fail(fmt.Errorf("%w: update user economy: %v", domain.ErrDatabaseError, err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, s.fail(fmt.Errorf("%w: commit: %v", domain.ErrDatabaseError, err))
	}

	metrics.CasesOpened.WithLabelValues(caseData.Name).Add(float64(qty))
	metrics.CaseOpenSpend.Add(float64(totalCost))
	for _, item := range wonItems {
		metrics.RewardsDrawn.WithLabelValues(item.Rarity).Inc()
	}

	// Events go out only after the commit, so observers never see an
	// outcome that later rolled back. Delivery is best-effort.
	s.broadcaster.PublishOutcome(ctx, wonItems, user.Public(), caseData.Image)
	s.broadcaster.PublishAccountUpdate(ctx, user.ID, user.WalletBalance, user.XP, user.Level)

	log.Info(LogMsgCaseOpened,
		"user_id", userID,
		"case_id", caseID,
		"quantity", qty,
		"total_cost", totalCost,
		"new_balance", user.WalletBalance,
		"new_level", user.Level)

	return &domain.OpenResult{WonItems: wonItems}, nil
}

// GetCase looks up a case, preferring the in-memory cache.
func (s *service) GetCase(ctx context.Context, caseID string) (*domain.Case, error) {
	if cached, ok := s.cache.Get(caseID); ok {
		logger.FromContext(ctx).Debug(LogMsgCacheHit, "case_id", caseID)
		return cached, nil
	}

	caseData, err := s.catalog.GetCaseByID(ctx, caseID)
	if err != nil {
		return nil, err
	}

	s.cache.Set(caseID, caseData)
	return caseData, nil
}

// ListCases returns the openable case summaries straight from the catalog.
func (s *service) ListCases(ctx context.Context) ([]domain.CaseSummary, error) {
	return s.catalog.ListCases(ctx)
}

// fail records the failure reason metric and passes the error through.
func (s *service) fail(err error) error {
	metrics.OpenFailures.WithLabelValues(failReason(err)).Inc()
	return err
}

func failReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrCaseNotFound):
		return FailReasonCaseNotFound
	case errors.Is(err, domain.ErrUserNotFound):
		return FailReasonUserNotFound
	case errors.Is(err, domain.ErrInvalidQuantity):
		return FailReasonInvalidQuantity
	case errors.Is(err, domain.ErrInsufficientFunds):
		return FailReasonInsufficientFunds
	case errors.Is(err, domain.ErrEmptyCase):
		return FailReasonEmptyCase
	default:
		return FailReasonPersistence
	}
}
