package chi

import (
	"github.com/kailas-cloud/catalog/internal/domain/facet"
	"github.com/kailas-cloud/catalog/internal/domain/listing"
	domprod "github.com/kailas-cloud/catalog/internal/domain/product"
	domuser "github.com/kailas-cloud/catalog/internal/domain/user"
)

type errorCode string

const (
	codeBadRequest       errorCode = "bad_request"
	codeValidationFailed errorCode = "validation_failed"
	codeNotFound         errorCode = "not_found"
	codeAlreadyExists    errorCode = "already_exists"
	codeInternalError    errorCode = "internal_error"
)

type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

type listResponse[T any] struct {
	Items         []T `json:"items"`
	Total         int `json:"total"`
	Matched       int `json:"matched"`
	ActiveFilters int `json:"active_filters"`
	Limit         int `json:"limit"`
	Offset        int `json:"offset"`
}

func newListResponse[T any](items []T, total, matched, active int, req listing.Request) listResponse[T] {
	return listResponse[T]{
		Items:         items,
		Total:         total,
		Matched:       matched,
		ActiveFilters: active,
		Limit:         req.Limit(),
		Offset:        req.Offset(),
	}
}

type itemsResponse[T any] struct {
	Items []T `json:"items"`
}

type facetGroupResponse struct {
	ID      string         `json:"id"`
	Label   string         `json:"label"`
	Options []facet.Option `json:"options"`
}

func facetsToResponse(groups []facet.Group) itemsResponse[facetGroupResponse] {
	out := make([]facetGroupResponse, len(groups))
	for i, g := range groups {
		out[i] = facetGroupResponse{ID: g.ID(), Label: g.Label(), Options: g.Options()}
	}
	return itemsResponse[facetGroupResponse]{Items: out}
}

type productResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	SKU         string  `json:"sku"`
	Inventory   int     `json:"inventory"`
	Status      string  `json:"status"`
	ImageURL    string  `json:"image_url,omitempty"`
	IsActive    bool    `json:"is_active"`
}

func productToResponse(p domprod.Product) productResponse {
	return productResponse{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price(),
		Category:    p.Category(),
		SKU:         p.SKU(),
		Inventory:   p.Inventory(),
		Status:      string(p.Status()),
		ImageURL:    p.ImageURL(),
		IsActive:    p.IsActive(),
	}
}

type createProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	SKU         string  `json:"sku"`
	Inventory   int     `json:"inventory"`
	IsActive    *bool   `json:"is_active"`
}

func (r createProductRequest) toDraft() domprod.Draft {
	return domprod.Draft{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Price:       r.Price,
		SKU:         r.SKU,
		Inventory:   r.Inventory,
		Active:      r.IsActive,
	}
}

type userResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Status     string `json:"status"`
	AvatarURL  string `json:"avatar_url,omitempty"`
	CreatedAt  string `json:"created_at"`
	LastActive string `json:"last_active,omitempty"`
}

func userToResponse(u domuser.User) userResponse {
	return userResponse{
		ID:         u.ID(),
		Name:       u.Name(),
		Email:      u.Email(),
		Role:       string(u.Role()),
		Status:     string(u.Status()),
		AvatarURL:  u.AvatarURL(),
		CreatedAt:  u.CreatedAt(),
		LastActive: u.LastActive(),
	}
}

type userDetailResponse struct {
	userResponse
	Permissions []domuser.Permission `json:"permissions"`
}

type categoryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ProductCount int    `json:"product_count"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
