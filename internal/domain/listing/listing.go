// Package listing holds the validated list request and the page returned
// by the list views.
package listing

import (
	"fmt"
	"unicode/utf8"

	"github.com/kailas-cloud/catalog/internal/domain"
	"github.com/kailas-cloud/catalog/internal/domain/facet"
)

// Limits bounds list requests.
type Limits struct {
	MaxQueryLength  int
	DefaultPageSize int
	MaxPageSize     int
}

// DefaultLimits returns the limits used when none are configured.
func DefaultLimits() Limits {
	return Limits{MaxQueryLength: 256, DefaultPageSize: 20, MaxPageSize: 100}
}

// Request is a validated list query.
type Request struct {
	query     string
	selection facet.Selection
	limit     int
	offset    int
}

// NewRequest validates and normalizes list parameters. Errors wrap domain.ErrInvalidFilter.
// limit <= 0 takes the default page size; limit above the maximum is clamped.
func NewRequest(query string, sel facet.Selection, limit, offset int, lim Limits) (Request, error) {
	if lim.MaxQueryLength > 0 && utf8.RuneCountInString(query) > lim.MaxQueryLength {
		return Request{}, fmt.Errorf("%w: query too long (max %d chars)", domain.ErrInvalidFilter, lim.MaxQueryLength)
	}
	if offset < 0 {
		return Request{}, fmt.Errorf("%w: offset must not be negative", domain.ErrInvalidFilter)
	}
	if limit <= 0 {
		limit = lim.DefaultPageSize
	}
	if lim.MaxPageSize > 0 && limit > lim.MaxPageSize {
		limit = lim.MaxPageSize
	}
	if sel == nil {
		sel = facet.NewSelection()
	}
	return Request{query: query, selection: sel, limit: limit, offset: offset}, nil
}

// Query returns the free-text query.
func (r Request) Query() string { return r.query }

// Selection returns the facet selection.
func (r Request) Selection() facet.Selection { return r.selection }

// Limit returns the page size.
func (r Request) Limit() int { return r.limit }

// Offset returns the index of the first returned match.
func (r Request) Offset() int { return r.offset }

// Page is one page of filtered records.
type Page[R any] struct {
	Items []R
	// Total is the unfiltered record count ("Showing Matched of Total").
	Total int
	// Matched is the number of records passing the filter, before paging.
	Matched int
	// ActiveFilters is the number of selected facet options.
	ActiveFilters int
}

// Paginate slices matched records for the request. The result is never nil.
func Paginate[R any](matched []R, offset, limit int) []R {
	if offset >= len(matched) || limit <= 0 {
		return []R{}
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end]
}
