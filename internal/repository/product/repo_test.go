package product

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/kailas-cloud/catalog/internal/domain"
	domprod "github.com/kailas-cloud/catalog/internal/domain/product"
)

func item(id, sku, category string) domprod.Product {
	return domprod.Reconstruct(id, "Product "+id, "", category, sku, 10, 5, domprod.LowStock, "")
}

func seeded() *Repo {
	return New([]domprod.Product{
		item("1", "SKU-1", "Books"),
		item("2", "SKU-2", "Books"),
		item("3", "SKU-3", "Clothing"),
	})
}

func TestList_SnapshotInOrder(t *testing.T) {
	repo := seeded()
	ctx := context.Background()

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 || got[0].ID() != "1" || got[2].ID() != "3" {
		t.Fatalf("unexpected list: %v", got)
	}

	got[0] = item("x", "SKU-X", "Books")
	again, _ := repo.List(ctx)
	if again[0].ID() != "1" {
		t.Error("List must return a copy")
	}
}

func TestGet(t *testing.T) {
	repo := seeded()

	p, err := repo.Get(context.Background(), "2")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.SKU() != "SKU-2" {
		t.Errorf("SKU() = %q", p.SKU())
	}

	_, err = repo.Get(context.Background(), "404")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCreate(t *testing.T) {
	repo := seeded()
	ctx := context.Background()

	if err := repo.Create(ctx, item("4", "SKU-4", "Books")); err != nil {
		t.Fatalf("Create: %v", err)
	}
	all, _ := repo.List(ctx)
	if len(all) != 4 || all[3].ID() != "4" {
		t.Errorf("created product should be appended, got %d items", len(all))
	}
}

func TestCreate_Duplicates(t *testing.T) {
	repo := seeded()
	ctx := context.Background()

	tests := []struct {
		name string
		p    domprod.Product
	}{
		{"same id", item("1", "OTHER", "Books")},
		{"same sku", item("9", "SKU-1", "Books")},
		{"sku differs in case", item("9", "sku-2", "Books")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := repo.Create(ctx, tt.p); !errors.Is(err, domain.ErrAlreadyExists) {
				t.Errorf("expected ErrAlreadyExists, got %v", err)
			}
		})
	}
}

func TestCountByCategory(t *testing.T) {
	counts, err := seeded().CountByCategory(context.Background())
	if err != nil {
		t.Fatalf("CountByCategory: %v", err)
	}
	if counts["Books"] != 2 || counts["Clothing"] != 1 || counts["Toys"] != 0 {
		t.Errorf("unexpected counts: %v", counts)
	}
}

func TestConcurrentCreateAndList(t *testing.T) {
	repo := seeded()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = repo.Create(ctx, item(fmt.Sprintf("c%d", i), fmt.Sprintf("C-%d", i), "Books"))
		}()
		go func() {
			defer wg.Done()
			_, _ = repo.List(ctx)
		}()
	}
	wg.Wait()

	all, _ := repo.List(ctx)
	if len(all) != 23 {
		t.Errorf("len = %d, want 23", len(all))
	}
}

func TestPing(t *testing.T) {
	if err := seeded().Ping(context.Background()); err != nil {
		t.Errorf("Ping: %v", err)
	}
}
