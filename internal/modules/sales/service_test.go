package sales

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lesatelierszo/zopos-backend/internal/modules/catalog"
)

type memSalesRepo struct {
	sales map[string]*Sale
}

func newMemSalesRepo(list ...*Sale) *memSalesRepo {
	r := &memSalesRepo{sales: map[string]*Sale{}}
	for _, s := range list {
		r.sales[s.ID.String()] = s
	}
	return r
}

func (r *memSalesRepo) Create(ctx context.Context, sale *Sale) error {
	r.sales[sale.ID.String()] = sale
	return nil
}

func (r *memSalesRepo) GetByID(ctx context.Context, id string) (*Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, fmt.Errorf("sale %s not found", id)
	}
	return s, nil
}

func (r *memSalesRepo) List(ctx context.Context, includeHidden bool) ([]*Sale, error) {
	var list []*Sale
	for _, s := range r.sales {
		if s.Hidden && !includeHidden {
			continue
		}
		list = append(list, s)
	}
	return list, nil
}

func (r *memSalesRepo) SetHidden(ctx context.Context, id string, hidden bool) error {
	s, ok := r.sales[id]
	if !ok {
		return fmt.Errorf("sale %s not found", id)
	}
	s.Hidden = hidden
	return nil
}

func (r *memSalesRepo) Delete(ctx context.Context, id string) error {
	delete(r.sales, id)
	return nil
}

type memProductRepo struct {
	products map[string]*catalog.Product
}

func newMemProductRepo(list ...*catalog.Product) *memProductRepo {
	r := &memProductRepo{products: map[string]*catalog.Product{}}
	for _, p := range list {
		r.products[p.ID.String()] = p
	}
	return r
}

func (r *memProductRepo) Create(ctx context.Context, p *catalog.Product) error {
	r.products[p.ID.String()] = p
	return nil
}

func (r *memProductRepo) GetByID(ctx context.Context, id string) (*catalog.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product %s not found", id)
	}
	return p, nil
}

func (r *memProductRepo) List(ctx context.Context, activeOnly bool) ([]*catalog.Product, error) {
	var list []*catalog.Product
	for _, p := range r.products {
		list = append(list, p)
	}
	return list, nil
}

func (r *memProductRepo) Update(ctx context.Context, p *catalog.Product) error {
	r.products[p.ID.String()] = p
	return nil
}

func (r *memProductRepo) UpdateQuantities(ctx context.Context, id string, quantities map[string]int) error {
	p, ok := r.products[id]
	if !ok {
		return fmt.Errorf("product %s not found", id)
	}
	p.Quantities = quantities
	return nil
}

func (r *memProductRepo) Delete(ctx context.Context, id string) error {
	delete(r.products, id)
	return nil
}

func saleOf(p *catalog.Product, size string, qty int) *Sale {
	return &Sale{
		ID: uuid.New(),
		Items: []SaleItem{{
			ProductID:   p.ID.String(),
			ProductName: p.Name,
			Size:        size,
			Quantity:    qty,
			UnitPrice:   p.Price,
			TotalPrice:  p.Price * float64(qty),
		}},
		TotalAmount: p.Price * float64(qty),
		ItemsCount:  qty,
		SaleDate:    time.Now().UTC(),
		CreatedAt:   time.Now().UTC(),
	}
}

func TestSetHidden(t *testing.T) {
	p := &catalog.Product{ID: uuid.New(), Name: "Chemise Wax", Price: 15000}
	sale := saleOf(p, "M", 1)
	repo := newMemSalesRepo(sale)
	svc := NewService(repo, newMemProductRepo(p))

	updated, err := svc.SetHidden(context.Background(), sale.ID.String(), true)
	require.NoError(t, err)
	assert.True(t, updated.Hidden)

	visible, err := svc.ListSales(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, visible)

	all, err := svc.ListSales(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestDeleteSaleRestoresStock(t *testing.T) {
	p := &catalog.Product{
		ID:         uuid.New(),
		Name:       "Robe Pagne",
		Price:      18000,
		Quantities: map[string]int{"M": 7},
	}
	sale := saleOf(p, "M", 3)
	repo := newMemSalesRepo(sale)
	svc := NewService(repo, newMemProductRepo(p))

	require.NoError(t, svc.DeleteSale(context.Background(), sale.ID.String()))

	assert.Equal(t, 10, p.Quantities["M"])
	_, err := repo.GetByID(context.Background(), sale.ID.String())
	assert.Error(t, err)
}

func TestDeleteSaleSkipsRemovedProducts(t *testing.T) {
	p := &catalog.Product{ID: uuid.New(), Name: "Chemise Wax", Price: 15000}
	sale := saleOf(p, "M", 2)
	repo := newMemSalesRepo(sale)

	// Product no longer exists; its line is skipped, the sale still deletes.
	svc := NewService(repo, newMemProductRepo())
	require.NoError(t, svc.DeleteSale(context.Background(), sale.ID.String()))

	_, err := repo.GetByID(context.Background(), sale.ID.String())
	assert.Error(t, err)
}

func TestDeleteSaleUnknownID(t *testing.T) {
	svc := NewService(newMemSalesRepo(), newMemProductRepo())
	err := svc.DeleteSale(context.Background(), uuid.NewString())
	assert.ErrorContains(t, err, "not found")
}
