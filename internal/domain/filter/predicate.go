package filter

import "github.com/kailas-cloud/catalog/internal/domain/facet"

// OneOf matches when the record field equals one of the selected option ids.
// Used where records store option ids directly (user role, user status).
func OneOf[R any](field func(R) string) Predicate[R] {
	return func(r R, selected facet.OptionSet) bool {
		return selected.Has(field(r))
	}
}

// Labeled matches when a selected option's label equals the record field.
// Used where records store display strings ("In Stock") while callers
// select machine ids ("inStock").
func Labeled[R any](labels facet.Labels, field func(R) string) Predicate[R] {
	return func(r R, selected facet.OptionSet) bool {
		return labels.AnyMatches(selected, field(r))
	}
}

// Bucketed matches when the record value falls into any selected bucket.
func Bucketed[R any](buckets map[string]Range, field func(R) float64) Predicate[R] {
	return func(r R, selected facet.OptionSet) bool {
		v := field(r)
		for id := range selected {
			if b, ok := buckets[id]; ok && b.Contains(v) {
				return true
			}
		}
		return false
	}
}
