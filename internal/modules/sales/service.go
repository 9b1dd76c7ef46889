package sales

import (
	"context"
	"fmt"

	"github.com/lesatelierszo/zopos-backend/internal/modules/catalog"
)

// Service defines sales-history business logic.
type Service interface {
	ListSales(ctx context.Context, includeHidden bool) ([]*Sale, error)
	GetSale(ctx context.Context, id string) (*Sale, error)

	// SetHidden soft-deletes (or restores) a sale in history views.
	SetHidden(ctx context.Context, id string, hidden bool) (*Sale, error)

	// DeleteSale permanently removes a sale and returns each sold quantity
	// to stock.
	DeleteSale(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	products catalog.Repository
}

func NewService(repo Repository, products catalog.Repository) Service {
	return &service{repo: repo, products: products}
}

func (s *service) ListSales(ctx context.Context, includeHidden bool) ([]*Sale, error) {
	return s.repo.List(ctx, includeHidden)
}

func (s *service) GetSale(ctx context.Context, id string) (*Sale, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) SetHidden(ctx context.Context, id string, hidden bool) (*Sale, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("sale not found: %w", err)
	}
	if err := s.repo.SetHidden(ctx, id, hidden); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// DeleteSale restores stock line by line, then removes the record. Each
// restore is its own read-modify-write; a failure partway through leaves the
// earlier lines restored and the sale in place. Products deleted since the
// sale are skipped, since their stock no longer exists to restore.
func (s *service) DeleteSale(ctx context.Context, id string) error {
	sale, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("sale not found: %w", err)
	}

	for i, item := range sale.Items {
		p, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			continue
		}
		if p.Quantities == nil {
			p.Quantities = map[string]int{}
		}
		p.Quantities[item.Size] += item.Quantity
		if err := s.products.UpdateQuantities(ctx, item.ProductID, p.Quantities); err != nil {
			return fmt.Errorf("restore stock for line %d of sale %s: %w", i+1, sale.ID, err)
		}
	}

	return s.repo.Delete(ctx, id)
}
