// Package seed loads the static mock data set that backs the record sources.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/catalog/internal/domain/category"
	"github.com/kailas-cloud/catalog/internal/domain/product"
	"github.com/kailas-cloud/catalog/internal/domain/user"
)

//go:embed data.yaml
var embedded []byte

// Data is the hydrated mock data set.
type Data struct {
	Products   []product.Product
	Categories []category.Category
	Users      []user.User
}

// Load reads the seed file at path, or the embedded data set if path is empty.
func Load(path string) (Data, error) {
	raw := embedded
	if path != "" {
		b, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return Data{}, fmt.Errorf("read seed %s: %w", path, err)
		}
		raw = b
	}
	return Parse(raw)
}

// Parse decodes and validates a YAML seed document.
func Parse(raw []byte) (Data, error) {
	var f fileDTO
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Data{}, fmt.Errorf("parse seed: %w", err)
	}

	var d Data
	seen := make(map[string]bool, len(f.Products))
	for i, p := range f.Products {
		if p.ID == "" {
			return Data{}, fmt.Errorf("products[%d]: id is required", i)
		}
		if seen[p.ID] {
			return Data{}, fmt.Errorf("products[%d]: duplicate id %q", i, p.ID)
		}
		seen[p.ID] = true
		d.Products = append(d.Products, p.toDomain())
	}

	for i, c := range f.Categories {
		cat, err := category.New(c.ID, c.Name)
		if err != nil {
			return Data{}, fmt.Errorf("categories[%d]: %w", i, err)
		}
		d.Categories = append(d.Categories, cat)
	}

	for i, u := range f.Users {
		usr, err := u.toDomain()
		if err != nil {
			return Data{}, fmt.Errorf("users[%d]: %w", i, err)
		}
		d.Users = append(d.Users, usr)
	}
	return d, nil
}
