package category

import (
	"context"
	"fmt"

	domcat "github.com/kailas-cloud/catalog/internal/domain/category"
)

// Service lists categories with live product counts.
type Service struct {
	repo     Repository
	products ProductCounter
}

// New creates a category service.
func New(repo Repository, products ProductCounter) *Service {
	return &Service{repo: repo, products: products}
}

// List returns every category in source order. Counts reflect products
// created since startup.
func (s *Service) List(ctx context.Context) ([]domcat.Category, error) {
	cats, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	counts, err := s.products.CountByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	out := make([]domcat.Category, len(cats))
	for i, c := range cats {
		out[i] = c.WithProductCount(counts[c.Name()])
	}
	return out, nil
}
