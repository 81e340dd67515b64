// Package facet models the selectable filter dimensions of a list view:
// facet groups, their options and the caller-owned selection.
package facet

import (
	"fmt"
	"maps"
	"slices"
)

// Option is one selectable value of a facet group.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Group is one filter dimension with an ordered set of options.
type Group struct {
	id      string
	label   string
	options []Option
}

// NewGroup validates and creates a Group. Option ids must be non-empty and unique.
func NewGroup(id, label string, options ...Option) (Group, error) {
	if id == "" {
		return Group{}, fmt.Errorf("facet group id is required")
	}
	seen := make(map[string]bool, len(options))
	for _, o := range options {
		if o.ID == "" {
			return Group{}, fmt.Errorf("facet group %q: option id is required", id)
		}
		if seen[o.ID] {
			return Group{}, fmt.Errorf("facet group %q: duplicate option %q", id, o.ID)
		}
		seen[o.ID] = true
	}
	return Group{id: id, label: label, options: slices.Clone(options)}, nil
}

// MustGroup is NewGroup for package-level declarations. Panics on invalid input.
func MustGroup(id, label string, options ...Option) Group {
	g, err := NewGroup(id, label, options...)
	if err != nil {
		panic(err)
	}
	return g
}

// ID returns the group id used as the selection key.
func (g Group) ID() string { return g.id }

// Label returns the display label.
func (g Group) Label() string { return g.label }

// Options returns the options in declaration order.
func (g Group) Options() []Option { return slices.Clone(g.options) }

// Option looks up an option by id.
func (g Group) Option(id string) (Option, bool) {
	for _, o := range g.options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// Labels returns the option id -> label table of this group.
func (g Group) Labels() Labels {
	l := make(Labels, len(g.options))
	for _, o := range g.options {
		l[o.ID] = o.Label
	}
	return l
}

// Labels maps option ids to the display strings stored on records
// (e.g. "inStock" -> "In Stock").
type Labels map[string]string

// Lookup returns the display label for an option id.
func (l Labels) Lookup(id string) (string, bool) {
	v, ok := l[id]
	return v, ok
}

// AnyMatches reports whether any selected option maps to value.
// Ids missing from the table never match.
func (l Labels) AnyMatches(selected OptionSet, value string) bool {
	for id := range selected {
		if label, ok := l[id]; ok && label == value {
			return true
		}
	}
	return false
}

// OptionSet is the set of active option ids of one group.
type OptionSet map[string]struct{}

// NewOptionSet builds a set from ids, skipping empty ones.
func NewOptionSet(ids ...string) OptionSet {
	s := make(OptionSet, len(ids))
	for _, id := range ids {
		if id != "" {
			s[id] = struct{}{}
		}
	}
	return s
}

// Has reports whether id is active.
func (s OptionSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the active ids sorted.
func (s OptionSet) IDs() []string {
	return slices.Sorted(maps.Keys(s))
}

// Selection maps group ids to active option sets. Absent or empty groups
// impose no constraint.
type Selection map[string]OptionSet

// NewSelection creates an empty selection.
func NewSelection() Selection { return Selection{} }

// Set replaces the active options of a group. No ids removes the group.
func (s Selection) Set(group string, ids ...string) {
	set := NewOptionSet(ids...)
	if len(set) == 0 {
		delete(s, group)
		return
	}
	s[group] = set
}

// Toggle flips one option. The group is removed once its last option is cleared.
func (s Selection) Toggle(group, option string) {
	if option == "" {
		return
	}
	set, ok := s[group]
	if !ok {
		s[group] = NewOptionSet(option)
		return
	}
	if set.Has(option) {
		delete(set, option)
		if len(set) == 0 {
			delete(s, group)
		}
		return
	}
	set[option] = struct{}{}
}

// Active returns ids of groups with a non-empty option set, sorted.
func (s Selection) Active() []string {
	ids := make([]string, 0, len(s))
	for id, set := range s {
		if len(set) > 0 {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// Count returns the number of active options across all groups.
func (s Selection) Count() int {
	n := 0
	for _, set := range s {
		n += len(set)
	}
	return n
}

// Clone returns a deep copy.
func (s Selection) Clone() Selection {
	c := make(Selection, len(s))
	for id, set := range s {
		c[id] = maps.Clone(set)
	}
	return c
}
