package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/kailas-cloud/catalog/internal/domain/facet"
	"github.com/kailas-cloud/catalog/internal/domain/listing"
)

// paramError reports a query or path parameter that failed to bind.
type paramError struct {
	name string
	err  error
}

func (e *paramError) Error() string { return "parameter " + e.name + ": " + e.err.Error() }

func (e *paramError) Unwrap() error { return e.err }

// listParams are the parameters shared by every list endpoint.
type listParams struct {
	Q      *string
	Limit  *int
	Offset *int
}

// bindListRequest binds q, limit, offset and one exploded form parameter per
// facet group (?status=inStock&status=lowStock).
func bindListRequest(r *http.Request, groups []facet.Group, lim listing.Limits) (listing.Request, error) {
	query := r.URL.Query()

	var params listParams
	if err := runtime.BindQueryParameter("form", true, false, "q", query, &params.Q); err != nil {
		return listing.Request{}, &paramError{name: "q", err: err}
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", query, &params.Limit); err != nil {
		return listing.Request{}, &paramError{name: "limit", err: err}
	}
	if err := runtime.BindQueryParameter("form", true, false, "offset", query, &params.Offset); err != nil {
		return listing.Request{}, &paramError{name: "offset", err: err}
	}

	sel := facet.NewSelection()
	for _, g := range groups {
		var ids *[]string
		if err := runtime.BindQueryParameter("form", true, false, g.ID(), query, &ids); err != nil {
			return listing.Request{}, &paramError{name: g.ID(), err: err}
		}
		if ids != nil {
			sel.Set(g.ID(), *ids...)
		}
	}

	return listing.NewRequest(deref(params.Q), sel, deref(params.Limit), deref(params.Offset), lim)
}

// bindID binds the {id} path parameter.
func bindID(r *http.Request) (string, error) {
	var id string
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", &paramError{name: "id", err: err}
	}
	return id, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
