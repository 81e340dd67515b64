package product

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kailas-cloud/catalog/internal/domain"
	"github.com/kailas-cloud/catalog/internal/domain/facet"
	"github.com/kailas-cloud/catalog/internal/domain/filter"
	"github.com/kailas-cloud/catalog/internal/domain/listing"
	domprod "github.com/kailas-cloud/catalog/internal/domain/product"
	"github.com/kailas-cloud/catalog/internal/logger"
	"github.com/kailas-cloud/catalog/internal/metrics"
)

const metricsKind = "product"

// Service handles product listing, lookup and creation.
type Service struct {
	repo       Repository
	categories CategoryReader
	engine     *filter.Engine[domprod.Product]
	limits     listing.Limits
	newID      func() string
}

// New creates a product service. It fails if the product filter
// configuration is inconsistent.
func New(repo Repository, categories CategoryReader) (*Service, error) {
	engine, err := filter.NewEngine(domprod.FilterConfig())
	if err != nil {
		return nil, fmt.Errorf("product filter: %w", err)
	}
	return &Service{
		repo:       repo,
		categories: categories,
		engine:     engine,
		limits:     listing.DefaultLimits(),
		newID:      uuid.NewString,
	}, nil
}

// WithLimits configures query length and page size limits.
func (s *Service) WithLimits(l listing.Limits) *Service {
	if l.MaxQueryLength > 0 {
		s.limits.MaxQueryLength = l.MaxQueryLength
	}
	if l.DefaultPageSize > 0 {
		s.limits.DefaultPageSize = l.DefaultPageSize
	}
	if l.MaxPageSize > 0 {
		s.limits.MaxPageSize = l.MaxPageSize
	}
	return s
}

// Limits returns the effective list limits.
func (s *Service) Limits() listing.Limits { return s.limits }

// Facets returns the product facet groups in display order.
func (s *Service) Facets() []facet.Group { return s.engine.Groups() }

// List filters products by free text (name, SKU) and facet selection.
func (s *Service) List(ctx context.Context, req listing.Request) (listing.Page[domprod.Product], error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return listing.Page[domprod.Product]{}, fmt.Errorf("list products: %w", err)
	}

	ctx = logger.WithFields(ctx, zap.String("record_kind", metricsKind))
	sel := s.engine.Sanitize(req.Selection())
	matched := s.engine.Filter(all, req.Query(), sel)
	metrics.ObserveFilter(metricsKind, len(all), len(matched), sel.Count())

	logger.FromContext(ctx).Debug("products filtered",
		zap.String("query", req.Query()),
		zap.Strings("groups", sel.Active()),
		zap.Int("total", len(all)),
		zap.Int("matched", len(matched)),
	)

	return listing.Page[domprod.Product]{
		Items:         listing.Paginate(matched, req.Offset(), req.Limit()),
		Total:         len(all),
		Matched:       len(matched),
		ActiveFilters: sel.Count(),
	}, nil
}

// Get returns a product by ID.
func (s *Service) Get(ctx context.Context, id string) (domprod.Product, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return domprod.Product{}, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Create validates the form draft and adds the product to the catalog.
// The category must name a known category; it is stored with canonical casing.
func (s *Service) Create(ctx context.Context, d domprod.Draft) (domprod.Product, error) {
	d.Category = strings.TrimSpace(d.Category)
	cat, ok := s.categories.FindByName(ctx, d.Category)
	if !ok && d.Category != "" {
		return domprod.Product{}, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidProduct, d.Category)
	}
	if ok {
		d.Category = cat.Name()
	}

	p, err := domprod.New(s.newID(), d)
	if err != nil {
		return domprod.Product{}, fmt.Errorf("%w: %w", domain.ErrInvalidProduct, err)
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return domprod.Product{}, fmt.Errorf("create product: %w", err)
	}

	logger.FromContext(ctx).Info("product created",
		zap.String("id", p.ID()),
		zap.String("sku", p.SKU()),
		zap.String("category", p.Category()),
	)
	return p, nil
}
