// Package filter implements the record filter engine shared by the list
// views: a free-text substring stage followed by one predicate per active
// facet group (OR within a group, AND across groups).
package filter

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/kailas-cloud/catalog/internal/domain"
	"github.com/kailas-cloud/catalog/internal/domain/facet"
)

// TextField extracts a searchable string from a record.
type TextField[R any] func(record R) string

// Predicate decides whether a record satisfies a facet group given its
// active option ids. Unknown ids must simply not match.
type Predicate[R any] func(record R, selected facet.OptionSet) bool

// Config describes how one record shape is filtered.
type Config[R any] struct {
	// Groups are the facet groups offered to callers, in display order.
	Groups []facet.Group
	// TextFields are matched against the query; any hit keeps the record.
	TextFields []TextField[R]
	// Predicates are keyed by facet group id.
	Predicates map[string]Predicate[R]
}

// Engine filters records of one shape. It holds no mutable state and is
// safe for concurrent use.
type Engine[R any] struct {
	groups     []facet.Group
	textFields []TextField[R]
	predicates map[string]Predicate[R]
}

// NewEngine validates cfg and creates an Engine.
// Every group needs a predicate and every predicate needs a declared group.
func NewEngine[R any](cfg Config[R]) (*Engine[R], error) {
	declared := make(map[string]bool, len(cfg.Groups))
	for _, g := range cfg.Groups {
		if declared[g.ID()] {
			return nil, fmt.Errorf("%w: duplicate facet group %q", domain.ErrInvalidFilterConfig, g.ID())
		}
		declared[g.ID()] = true
		if cfg.Predicates[g.ID()] == nil {
			return nil, fmt.Errorf("%w: no predicate for facet group %q", domain.ErrInvalidFilterConfig, g.ID())
		}
	}
	for id := range cfg.Predicates {
		if !declared[id] {
			return nil, fmt.Errorf("%w: predicate %q has no facet group", domain.ErrInvalidFilterConfig, id)
		}
	}
	for i, f := range cfg.TextFields {
		if f == nil {
			return nil, fmt.Errorf("%w: text field %d is nil", domain.ErrInvalidFilterConfig, i)
		}
	}

	return &Engine[R]{
		groups:     slices.Clone(cfg.Groups),
		textFields: slices.Clone(cfg.TextFields),
		predicates: maps.Clone(cfg.Predicates),
	}, nil
}

// MustEngine is NewEngine for static configurations. Panics on invalid config.
func MustEngine[R any](cfg Config[R]) *Engine[R] {
	e, err := NewEngine(cfg)
	if err != nil {
		panic(err)
	}
	return e
}

// Groups returns the facet groups in display order.
func (e *Engine[R]) Groups() []facet.Group {
	return slices.Clone(e.groups)
}

// Group looks up a declared facet group.
func (e *Engine[R]) Group(id string) (facet.Group, bool) {
	for _, g := range e.groups {
		if g.ID() == id {
			return g, true
		}
	}
	return facet.Group{}, false
}

// Sanitize returns a copy of sel without undeclared or empty groups.
func (e *Engine[R]) Sanitize(sel facet.Selection) facet.Selection {
	out := facet.NewSelection()
	for _, id := range sel.Active() {
		if _, ok := e.predicates[id]; ok {
			out.Set(id, sel[id].IDs()...)
		}
	}
	return out
}

// Filter returns the records matching query and sel, in their original order.
// The result is never nil. Groups without a predicate are ignored.
func (e *Engine[R]) Filter(records []R, query string, sel facet.Selection) []R {
	fold := newFolder()
	needle := fold(query)

	type stage struct {
		predicate Predicate[R]
		selected  facet.OptionSet
	}
	var stages []stage
	for _, id := range sel.Active() {
		if p, ok := e.predicates[id]; ok {
			stages = append(stages, stage{predicate: p, selected: sel[id]})
		}
	}

	out := make([]R, 0, len(records))
	for _, r := range records {
		if needle != "" && !e.matchesText(r, needle, fold) {
			continue
		}
		keep := true
		for _, s := range stages {
			if !s.predicate(r, s.selected) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, r)
		}
	}
	return out
}

func (e *Engine[R]) matchesText(r R, needle string, fold func(string) string) bool {
	for _, f := range e.textFields {
		if strings.Contains(fold(f(r)), needle) {
			return true
		}
	}
	return false
}

// newFolder returns the case folding used on both sides of a text match:
// NFC normalization, then Unicode lower-casing. A Caser is not safe for
// concurrent use, so each Filter call gets its own.
func newFolder() func(string) string {
	lower := cases.Lower(language.Und)
	return func(s string) string {
		if s == "" {
			return ""
		}
		return lower.String(norm.NFC.String(s))
	}
}
