package category

import (
	"context"

	domcat "github.com/kailas-cloud/catalog/internal/domain/category"
)

// Repository lists the known categories.
type Repository interface {
	List(ctx context.Context) ([]domcat.Category, error)
}

// ProductCounter counts products per category name.
type ProductCounter interface {
	CountByCategory(ctx context.Context) (map[string]int, error)
}
