package domain

import "errors"

var (
	// ErrNotFound signals a missing record.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists signals a duplicate record.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidProduct signals a product that fails form validation.
	ErrInvalidProduct = errors.New("invalid product")
	// ErrInvalidFilter signals a malformed list request (query, selection, paging).
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrInvalidFilterConfig signals a filter configuration that cannot serve its facet groups.
	ErrInvalidFilterConfig = errors.New("invalid filter config")
)
