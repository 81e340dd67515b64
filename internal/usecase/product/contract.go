package product

import (
	"context"

	domcat "github.com/kailas-cloud/catalog/internal/domain/category"
	domprod "github.com/kailas-cloud/catalog/internal/domain/product"
)

// Repository defines the record source contract for products.
type Repository interface {
	List(ctx context.Context) ([]domprod.Product, error)
	Get(ctx context.Context, id string) (domprod.Product, error)
	Create(ctx context.Context, p domprod.Product) error
}

// CategoryReader resolves category names submitted by the product form.
type CategoryReader interface {
	FindByName(ctx context.Context, name string) (domcat.Category, bool)
}
