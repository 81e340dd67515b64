package product

import (
	"fmt"
	"strings"
)

// Status is the human-readable stock status stored on a product.
type Status string

// Stock statuses.
const (
	InStock    Status = "In Stock"
	LowStock   Status = "Low Stock"
	OutOfStock Status = "Out of Stock"
)

// LowStockThreshold is the inventory level below which a product is low on stock.
const LowStockThreshold = 10

// Form limits.
const (
	MinNameLength = 2
	MinSKULength  = 3
	MinPrice      = 0.01
)

// StatusFor derives the stock status from an inventory count.
func StatusFor(inventory int) Status {
	switch {
	case inventory <= 0:
		return OutOfStock
	case inventory < LowStockThreshold:
		return LowStock
	default:
		return InStock
	}
}

// Draft holds the values submitted by the new product form.
type Draft struct {
	Name        string
	Description string
	Category    string
	Price       float64
	SKU         string
	Inventory   int
	Active      *bool // nil means active
}

// Product is the catalog item aggregate (immutable value object).
type Product struct {
	id          string
	name        string
	description string
	category    string
	sku         string
	price       float64
	inventory   int
	status      Status
	imageURL    string
	active      bool
}

// New validates a draft and creates a Product. Status is derived from inventory.
// Category existence is checked by the service layer.
func New(id string, d Draft) (Product, error) {
	if id == "" {
		return Product{}, fmt.Errorf("product ID is required")
	}
	name := strings.TrimSpace(d.Name)
	if len([]rune(name)) < MinNameLength {
		return Product{}, fmt.Errorf("name must be at least %d characters", MinNameLength)
	}
	category := strings.TrimSpace(d.Category)
	if category == "" {
		return Product{}, fmt.Errorf("category is required")
	}
	if d.Price < MinPrice {
		return Product{}, fmt.Errorf("price must be at least %.2f", MinPrice)
	}
	sku := strings.TrimSpace(d.SKU)
	if len([]rune(sku)) < MinSKULength {
		return Product{}, fmt.Errorf("SKU must be at least %d characters", MinSKULength)
	}
	if d.Inventory < 0 {
		return Product{}, fmt.Errorf("inventory must not be negative")
	}
	active := true
	if d.Active != nil {
		active = *d.Active
	}

	return Product{
		id:          id,
		name:        name,
		description: strings.TrimSpace(d.Description),
		category:    category,
		sku:         sku,
		price:       d.Price,
		inventory:   d.Inventory,
		status:      StatusFor(d.Inventory),
		active:      active,
	}, nil
}

// Reconstruct creates a Product without validation (seed hydration).
func Reconstruct(
	id, name, description, category, sku string,
	price float64, inventory int, status Status, imageURL string,
) Product {
	return Product{
		id:          id,
		name:        name,
		description: description,
		category:    category,
		sku:         sku,
		price:       price,
		inventory:   inventory,
		status:      status,
		imageURL:    imageURL,
		active:      true,
	}
}

// ID returns the product identifier.
func (p Product) ID() string { return p.id }

// Name returns the display name.
func (p Product) Name() string { return p.name }

// Description returns the optional long description.
func (p Product) Description() string { return p.description }

// Category returns the category display name (e.g. "Home & Kitchen").
func (p Product) Category() string { return p.category }

// SKU returns the stock keeping unit.
func (p Product) SKU() string { return p.sku }

// Price returns the unit price.
func (p Product) Price() float64 { return p.price }

// Inventory returns the units on hand.
func (p Product) Inventory() int { return p.inventory }

// Status returns the stock status label.
func (p Product) Status() Status { return p.status }

// ImageURL returns the optional product image.
func (p Product) ImageURL() string { return p.imageURL }

// IsActive reports whether the product is listed.
func (p Product) IsActive() bool { return p.active }
