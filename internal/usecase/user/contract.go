package user

import (
	"context"

	domuser "github.com/kailas-cloud/catalog/internal/domain/user"
)

// Repository defines the record source contract for users.
type Repository interface {
	List(ctx context.Context) ([]domuser.User, error)
	Get(ctx context.Context, id string) (domuser.User, error)
}
