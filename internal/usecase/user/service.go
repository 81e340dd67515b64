package user

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/catalog/internal/domain/facet"
	"github.com/kailas-cloud/catalog/internal/domain/filter"
	"github.com/kailas-cloud/catalog/internal/domain/listing"
	domuser "github.com/kailas-cloud/catalog/internal/domain/user"
	"github.com/kailas-cloud/catalog/internal/logger"
	"github.com/kailas-cloud/catalog/internal/metrics"
)

const metricsKind = "user"

// Detail is a user together with the permission matrix of its role.
type Detail struct {
	User        domuser.User
	Permissions []domuser.Permission
}

// Service handles user listing and lookup.
type Service struct {
	repo   Repository
	engine *filter.Engine[domuser.User]
	limits listing.Limits
}

// New creates a user service.
func New(repo Repository) (*Service, error) {
	engine, err := filter.NewEngine(domuser.FilterConfig())
	if err != nil {
		return nil, fmt.Errorf("user filter: %w", err)
	}
	return &Service{repo: repo, engine: engine, limits: listing.DefaultLimits()}, nil
}

// WithLimits overrides the list limits. Zero fields keep their defaults.
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

// Facets returns the user facet groups in display order.
func (s *Service) Facets() []facet.Group { return s.engine.Groups() }

// List filters users by free text (name, email) and facet selection.
func (s *Service) List(ctx context.Context, req listing.Request) (listing.Page[domuser.User], error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return listing.Page[domuser.User]{}, fmt.Errorf("list users: %w", err)
	}

	ctx = logger.WithFields(ctx, zap.String("record_kind", metricsKind))
	sel := s.engine.Sanitize(req.Selection())
	matched := s.engine.Filter(all, req.Query(), sel)
	metrics.ObserveFilter(metricsKind, len(all), len(matched), sel.Count())

	logger.FromContext(ctx).Debug("users filtered",
		zap.String("query", req.Query()),
		zap.Strings("groups", sel.Active()),
		zap.Int("matched", len(matched)),
	)

	return listing.Page[domuser.User]{
		Items:         listing.Paginate(matched, req.Offset(), req.Limit()),
		Total:         len(all),
		Matched:       len(matched),
		ActiveFilters: sel.Count(),
	}, nil
}

// Get returns a user and the permissions of its role.
func (s *Service) Get(ctx context.Context, id string) (Detail, error) {
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return Detail{}, fmt.Errorf("get user: %w", err)
	}
	return Detail{User: u, Permissions: domuser.Permissions(u.Role())}, nil
}
