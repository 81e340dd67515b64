package category

import (
	"context"
	"slices"
	"strings"

	domcat "github.com/kailas-cloud/catalog/internal/domain/category"
)

// Repo is the static in-memory category source.
type Repo struct {
	items []domcat.Category
}

// New creates a category repository.
func New(items []domcat.Category) *Repo {
	return &Repo{items: slices.Clone(items)}
}

// List returns all categories in seed order.
func (r *Repo) List(_ context.Context) ([]domcat.Category, error) {
	return slices.Clone(r.items), nil
}

// FindByName looks up a category by display name, case-insensitively.
func (r *Repo) FindByName(_ context.Context, name string) (domcat.Category, bool) {
	for _, c := range r.items {
		if strings.EqualFold(c.Name(), name) {
			return c, true
		}
	}
	return domcat.Category{}, false
}

// Ping reports source availability. Always nil for the in-memory source.
func (r *Repo) Ping(_ context.Context) error { return nil }
