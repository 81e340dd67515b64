package seed

import (
	"github.com/kailas-cloud/catalog/internal/domain/product"
	"github.com/kailas-cloud/catalog/internal/domain/user"
)

type fileDTO struct {
	Products   []productDTO  `yaml:"products"`
	Categories []categoryDTO `yaml:"categories"`
	Users      []userDTO     `yaml:"users"`
}

type productDTO struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Price       float64 `yaml:"price"`
	Category    string  `yaml:"category"`
	SKU         string  `yaml:"sku"`
	Inventory   int     `yaml:"inventory"`
	Status      string  `yaml:"status"` // empty: derived from inventory
	ImageURL    string  `yaml:"image_url"`
}

func (p productDTO) toDomain() product.Product {
	status := product.Status(p.Status)
	if status == "" {
		status = product.StatusFor(p.Inventory)
	}
	return product.Reconstruct(
		p.ID, p.Name, p.Description, p.Category, p.SKU,
		p.Price, p.Inventory, status, p.ImageURL,
	)
}

type categoryDTO struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type userDTO struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Email      string `yaml:"email"`
	Role       string `yaml:"role"`
	Status     string `yaml:"status"`
	AvatarURL  string `yaml:"avatar_url"`
	CreatedAt  string `yaml:"created_at"`
	LastActive string `yaml:"last_active"`
}

func (u userDTO) toDomain() (user.User, error) {
	return user.New(
		u.ID, u.Name, u.Email, user.Role(u.Role), user.Status(u.Status),
		u.AvatarURL, u.CreatedAt, u.LastActive,
	)
}
