package category

import "fmt"

// Category is a product category with its current product count.
type Category struct {
	id           string
	name         string
	productCount int
}

// New validates and creates a Category.
func New(id, name string) (Category, error) {
	if id == "" {
		return Category{}, fmt.Errorf("category ID is required")
	}
	if name == "" {
		return Category{}, fmt.Errorf("category name is required")
	}
	return Category{id: id, name: name}, nil
}

// ID returns the category identifier.
func (c Category) ID() string { return c.id }

// Name returns the display name products refer to.
func (c Category) Name() string { return c.name }

// ProductCount returns the number of products in the category.
func (c Category) ProductCount() int { return c.productCount }

// WithProductCount returns a copy with the given count.
func (c Category) WithProductCount(n int) Category {
	c.productCount = n
	return c
}
