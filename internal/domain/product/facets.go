package product

import (
	"github.com/kailas-cloud/catalog/internal/domain/facet"
	"github.com/kailas-cloud/catalog/internal/domain/filter"
)

// Facet group ids.
const (
	FacetCategory = "category"
	FacetStatus   = "status"
	FacetPrice    = "price"
)

// CategoryLabels maps category option ids to the category names stored on products.
// Matching goes through this table rather than comparing the id with the
// lower-cased name, so "home" selects products stored as "Home & Kitchen".
var CategoryLabels = facet.Labels{
	"electronics": "Electronics",
	"clothing":    "Clothing",
	"home":        "Home & Kitchen",
	"books":       "Books",
}

// StatusLabels maps status option ids to stored statuses.
var StatusLabels = facet.Labels{
	"inStock":    string(InStock),
	"lowStock":   string(LowStock),
	"outOfStock": string(OutOfStock),
}

// PriceBuckets are the price facet ranges. 100 belongs to "50to100" only.
var PriceBuckets = map[string]filter.Range{
	"under50":  filter.MustRange(filter.Lt(50)),
	"50to100":  filter.MustRange(filter.Gte(50), filter.Lte(100)),
	"100to200": filter.MustRange(filter.Gt(100), filter.Lte(200)),
	"over200":  filter.MustRange(filter.Gt(200)),
}

// Groups returns the product facet groups in display order.
func Groups() []facet.Group {
	return []facet.Group{
		facet.MustGroup(FacetCategory, "Category",
			facet.Option{ID: "electronics", Label: CategoryLabels["electronics"]},
			facet.Option{ID: "clothing", Label: CategoryLabels["clothing"]},
			facet.Option{ID: "home", Label: CategoryLabels["home"]},
			facet.Option{ID: "books", Label: CategoryLabels["books"]},
		),
		facet.MustGroup(FacetStatus, "Status",
			facet.Option{ID: "inStock", Label: StatusLabels["inStock"]},
			facet.Option{ID: "lowStock", Label: StatusLabels["lowStock"]},
			facet.Option{ID: "outOfStock", Label: StatusLabels["outOfStock"]},
		),
		facet.MustGroup(FacetPrice, "Price Range",
			facet.Option{ID: "under50", Label: "Under $50"},
			facet.Option{ID: "50to100", Label: "$50 to $100"},
			facet.Option{ID: "100to200", Label: "$100 to $200"},
			facet.Option{ID: "over200", Label: "Over $200"},
		),
	}
}

// FilterConfig returns the filter engine configuration for products.
// Search covers name and SKU.
func FilterConfig() filter.Config[Product] {
	return filter.Config[Product]{
		Groups:     Groups(),
		TextFields: []filter.TextField[Product]{Product.Name, Product.SKU},
		Predicates: map[string]filter.Predicate[Product]{
			FacetCategory: filter.Labeled(CategoryLabels, Product.Category),
			FacetStatus:   filter.Labeled(StatusLabels, func(p Product) string { return string(p.status) }),
			FacetPrice:    filter.Bucketed(PriceBuckets, Product.Price),
		},
	}
}
