// Package postgres implements the repository interfaces over pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/osse101/LootVault_Go/internal/domain"
)

// CatalogRepository implements repository.Catalog for PostgreSQL
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// GetCaseByID retrieves a case and its full item pool
func (r *CatalogRepository) GetCaseByID(ctx context.Context, caseID string) (*domain.Case, error) {
	caseUUID, err := uuid.Parse(caseID)
	if err != nil {
		// Malformed IDs behave like unknown cases.
		return nil, domain.ErrCaseNotFound
	}

	caseData := &domain.Case{}
	err = r.db.QueryRow(ctx,
		`SELECT case_id, case_name, price, image FROM cases WHERE case_id = $1`,
		caseUUID,
	).Scan(&caseData.ID, &caseData.Name, &caseData.Price, &caseData.Image)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCaseNotFound
		}
		return nil, fmt.Errorf("failed to get case: %w", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT i.item_id, i.item_name, i.image, i.rarity
		 FROM case_items ci
		 JOIN items i ON i.item_id = ci.item_id
		 WHERE ci.case_id = $1
		 ORDER BY ci.position, i.item_name`,
		caseUUID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get case items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Image, &item.Rarity); err != nil {
			return nil, fmt.Errorf("failed to scan case item: %w", err)
		}
		caseData.Items = append(caseData.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read case items: %w", err)
	}

	return caseData, nil
}

// ListCases retrieves summaries of every case in the catalog
func (r *CatalogRepository) ListCases(ctx context.Context) ([]domain.CaseSummary, error) {
	rows, err := r.db.Query(ctx,
		`SELECT case_id, case_name, price, image FROM cases ORDER BY case_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	defer rows.Close()

	var summaries []domain.CaseSummary
	for rows.Next() {
		var s domain.CaseSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Price, &s.Image); err != nil {
			return nil, fmt.Errorf("failed to scan case summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cases: %w", err)
	}

	return summaries, nil
}
