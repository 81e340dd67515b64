package user

import (
	"github.com/kailas-cloud/catalog/internal/domain/facet"
	"github.com/kailas-cloud/catalog/internal/domain/filter"
)

// Facet group ids.
const (
	FacetRole   = "role"
	FacetStatus = "status"
)

// Groups returns the user facet groups in display order.
func Groups() []facet.Group {
	return []facet.Group{
		facet.MustGroup(FacetRole, "Role",
			facet.Option{ID: string(RoleAdmin), Label: "Admin"},
			facet.Option{ID: string(RoleManager), Label: "Manager"},
			facet.Option{ID: string(RoleEditor), Label: "Editor"},
			facet.Option{ID: string(RoleViewer), Label: "Viewer"},
		),
		facet.MustGroup(FacetStatus, "Status",
			facet.Option{ID: string(StatusActive), Label: "Active"},
			facet.Option{ID: string(StatusInactive), Label: "Inactive"},
			facet.Option{ID: string(StatusPending), Label: "Pending"},
		),
	}
}

// FilterConfig returns the filter engine configuration for users.
// Users store option ids directly, so facets match on identity.
func FilterConfig() filter.Config[User] {
	return filter.Config[User]{
		Groups:     Groups(),
		TextFields: []filter.TextField[User]{User.Name, User.Email},
		Predicates: map[string]filter.Predicate[User]{
			FacetRole:   filter.OneOf(func(u User) string { return string(u.role) }),
			FacetStatus: filter.OneOf(func(u User) string { return string(u.status) }),
		},
	}
}
