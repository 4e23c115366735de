package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"techmart-assistant/internal/domain"
)

// CatalogRepository loads the product catalog from the database.
type CatalogRepository interface {
	LoadAll(ctx context.Context) ([]domain.Product, error)
}

type catalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a new instance of CatalogRepository.
func NewCatalogRepository(db *sql.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

// LoadAll retrieves every product ordered by catalog position. The position
// column preserves seed order, which downstream sorts use as tie-break.
func (r *catalogRepository) LoadAll(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, name, category, brand, price, rating, features, use_cases
		FROM products
		ORDER BY position ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var (
			product  domain.Product
			category string
			useCases string
		)
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&category,
			&product.Brand,
			&product.Price,
			&product.Rating,
			&product.Features,
			&useCases,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}

		product.Category = domain.Category(category)
		product.UseCases = splitUseCases(useCases)
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// splitUseCases parses the comma-separated use_cases column.
func splitUseCases(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	useCases := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			useCases = append(useCases, trimmed)
		}
	}
	return useCases
}
