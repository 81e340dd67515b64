package product

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/kailas-cloud/catalog/internal/domain"
	domprod "github.com/kailas-cloud/catalog/internal/domain/product"
)

// Repo is the in-memory product source. It implements usecase/product.Repository.
type Repo struct {
	mu    sync.RWMutex
	items []domprod.Product
}

// New creates a product repository holding items in the given order.
func New(items []domprod.Product) *Repo {
	return &Repo{items: slices.Clone(items)}
}

// List returns a snapshot of all products in insertion order.
func (r *Repo) List(_ context.Context) ([]domprod.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.items), nil
}

// Get returns a product by ID.
func (r *Repo) Get(_ context.Context, id string) (domprod.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.items {
		if p.ID() == id {
			return p, nil
		}
	}
	return domprod.Product{}, fmt.Errorf("product %s: %w", id, domain.ErrNotFound)
}

// Create appends a product. SKUs are unique, compared case-insensitively.
func (r *Repo) Create(_ context.Context, p domprod.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.ID() == p.ID() {
			return fmt.Errorf("product %s: %w", p.ID(), domain.ErrAlreadyExists)
		}
		if strings.EqualFold(existing.SKU(), p.SKU()) {
			return fmt.Errorf("sku %s: %w", p.SKU(), domain.ErrAlreadyExists)
		}
	}
	r.items = append(r.items, p)
	return nil
}

// CountByCategory returns the number of products per category name.
func (r *Repo) CountByCategory(_ context.Context) (map[string]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	counts := make(map[string]int)
	for _, p := range r.items {
		counts[p.Category()]++
	}
	return counts, nil
}

// Ping reports source availability. Always nil for the in-memory source.
func (r *Repo) Ping(_ context.Context) error { return nil }
