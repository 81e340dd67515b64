package filter

import "fmt"

// Range is a numeric range with gt/gte/lt/lte boundaries.
type Range struct {
	gt  *float64
	gte *float64
	lt  *float64
	lte *float64
}

// Bound sets one boundary of a Range.
type Bound func(*Range)

// Gt sets the lower exclusive bound.
func Gt(v float64) Bound { return func(r *Range) { r.gt = &v } }

// Gte sets the lower inclusive bound.
func Gte(v float64) Bound { return func(r *Range) { r.gte = &v } }

// Lt sets the upper exclusive bound.
func Lt(v float64) Bound { return func(r *Range) { r.lt = &v } }

// Lte sets the upper inclusive bound.
func Lte(v float64) Bound { return func(r *Range) { r.lte = &v } }

// NewRange validates and creates a Range.
// At least one boundary required. gt/gte and lt/lte are mutually exclusive.
func NewRange(bounds ...Bound) (Range, error) {
	var r Range
	for _, b := range bounds {
		b(&r)
	}
	if r.gt == nil && r.gte == nil && r.lt == nil && r.lte == nil {
		return Range{}, fmt.Errorf("at least one range boundary is required")
	}
	if r.gt != nil && r.gte != nil {
		return Range{}, fmt.Errorf("cannot specify both gt and gte")
	}
	if r.lt != nil && r.lte != nil {
		return Range{}, fmt.Errorf("cannot specify both lt and lte")
	}
	return r, nil
}

// MustRange is NewRange for package-level bucket tables. Panics on invalid bounds.
func MustRange(bounds ...Bound) Range {
	r, err := NewRange(bounds...)
	if err != nil {
		panic(err)
	}
	return r
}

// GT returns the lower exclusive bound.
func (r Range) GT() *float64 { return r.gt }

// GTE returns the lower inclusive bound.
func (r Range) GTE() *float64 { return r.gte }

// LT returns the upper exclusive bound.
func (r Range) LT() *float64 { return r.lt }

// LTE returns the upper inclusive bound.
func (r Range) LTE() *float64 { return r.lte }

// Contains reports whether v satisfies every set boundary.
func (r Range) Contains(v float64) bool {
	switch {
	case r.gt != nil && v <= *r.gt:
		return false
	case r.gte != nil && v < *r.gte:
		return false
	case r.lt != nil && v >= *r.lt:
		return false
	case r.lte != nil && v > *r.lte:
		return false
	}
	return true
}
