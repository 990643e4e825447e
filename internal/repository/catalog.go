package repository

import (
	"context"

	"github.com/osse101/LootVault_Go/internal/domain"
)

// Catalog defines the read interface over the case/item catalog. The engine
// only borrows case definitions; catalog writes belong to admin tooling
// outside this service.
type Catalog interface {
	GetCaseByID(ctx context.Context, caseID string) (*domain.Case, error)
	ListCases(ctx context.Context) ([]domain.CaseSummary, error)
}
