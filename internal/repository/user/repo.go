package user

import (
	"context"
	"fmt"
	"slices"

	"github.com/kailas-cloud/catalog/internal/domain"
	domuser "github.com/kailas-cloud/catalog/internal/domain/user"
)

// Repo is the static in-memory user source. It implements usecase/user.Repository.
type Repo struct {
	items []domuser.User
}

// New creates a user repository.
func New(items []domuser.User) *Repo {
	return &Repo{items: slices.Clone(items)}
}

// List returns all users in seed order.
func (r *Repo) List(_ context.Context) ([]domuser.User, error) {
	return slices.Clone(r.items), nil
}

// Get returns a user by ID.
func (r *Repo) Get(_ context.Context, id string) (domuser.User, error) {
	for _, u := range r.items {
		if u.ID() == id {
			return u, nil
		}
	}
	return domuser.User{}, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
}

// Ping reports source availability. Always nil for the in-memory source.
func (r *Repo) Ping(_ context.Context) error { return nil }
