package pos

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lesatelierszo/zopos-backend/internal/modules/barcode"
	"github.com/lesatelierszo/zopos-backend/internal/modules/catalog"
	"github.com/lesatelierszo/zopos-backend/internal/modules/sales"
)

type fakeProductRepo struct {
	products map[string]*catalog.Product
}

func newFakeProductRepo(products ...*catalog.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[string]*catalog.Product{}}
	for _, p := range products {
		r.products[p.ID.String()] = p
	}
	return r
}

func (r *fakeProductRepo) Create(ctx context.Context, p *catalog.Product) error {
	r.products[p.ID.String()] = p
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*catalog.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product %s not found", id)
	}
	return p, nil
}

func (r *fakeProductRepo) List(ctx context.Context, activeOnly bool) ([]*catalog.Product, error) {
	var list []*catalog.Product
	for _, p := range r.products {
		if activeOnly && !p.IsActive {
			continue
		}
		list = append(list, p)
	}
	return list, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, p *catalog.Product) error {
	r.products[p.ID.String()] = p
	return nil
}

func (r *fakeProductRepo) UpdateQuantities(ctx context.Context, id string, quantities map[string]int) error {
	p, ok := r.products[id]
	if !ok {
		return fmt.Errorf("product %s not found", id)
	}
	p.Quantities = quantities
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	delete(r.products, id)
	return nil
}

type fakeSalesRepo struct {
	sales map[string]*sales.Sale
}

func newFakeSalesRepo() *fakeSalesRepo {
	return &fakeSalesRepo{sales: map[string]*sales.Sale{}}
}

func (r *fakeSalesRepo) Create(ctx context.Context, sale *sales.Sale) error {
	r.sales[sale.ID.String()] = sale
	return nil
}

func (r *fakeSalesRepo) GetByID(ctx context.Context, id string) (*sales.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, fmt.Errorf("sale %s not found", id)
	}
	return s, nil
}

func (r *fakeSalesRepo) List(ctx context.Context, includeHidden bool) ([]*sales.Sale, error) {
	var list []*sales.Sale
	for _, s := range r.sales {
		if s.Hidden && !includeHidden {
			continue
		}
		list = append(list, s)
	}
	return list, nil
}

func (r *fakeSalesRepo) SetHidden(ctx context.Context, id string, hidden bool) error {
	s, ok := r.sales[id]
	if !ok {
		return fmt.Errorf("sale %s not found", id)
	}
	s.Hidden = hidden
	return nil
}

func (r *fakeSalesRepo) Delete(ctx context.Context, id string) error {
	delete(r.sales, id)
	return nil
}

func testProduct(name string, price float64, quantities map[string]int) *catalog.Product {
	return &catalog.Product{
		ID:         uuid.New(),
		Name:       name,
		Price:      price,
		IsActive:   true,
		Quantities: quantities,
	}
}

func TestScanResolvesCode(t *testing.T) {
	p := testProduct("Chemise Wax", 15000, map[string]int{"M": 4, "XL": 1})
	svc := NewService(newFakeProductRepo(p), newFakeSalesRepo())

	code := barcode.ShortCode(p.ID.String(), "XL")
	result, err := svc.Scan(context.Background(), code)
	require.NoError(t, err)
	assert.Equal(t, p.ID, result.ProductID)
	assert.Equal(t, "XL", result.Size)
	assert.Equal(t, 15000.0, result.UnitPrice)
	assert.Equal(t, 1, result.InStock)
}

func TestScanUnknownCode(t *testing.T) {
	p := testProduct("Chemise Wax", 15000, map[string]int{"M": 4})
	svc := NewService(newFakeProductRepo(p), newFakeSalesRepo())

	_, err := svc.Scan(context.Background(), "000000")
	assert.ErrorIs(t, err, ErrCodeNotFound)
}

func TestScanOutOfStock(t *testing.T) {
	p := testProduct("Boubou Brodé", 22000, map[string]int{"S": 0, "M": 5})
	svc := NewService(newFakeProductRepo(p), newFakeSalesRepo())

	code := barcode.ShortCode(p.ID.String(), "S")
	_, err := svc.Scan(context.Background(), code)
	assert.ErrorIs(t, err, ErrOutOfStock)
}

func TestCompleteSaleDecrementsStock(t *testing.T) {
	p := testProduct("Chemise Wax", 15000, map[string]int{"M": 5, "L": 3})
	productRepo := newFakeProductRepo(p)
	salesRepo := newFakeSalesRepo()
	svc := NewService(productRepo, salesRepo)

	receipt, err := svc.CompleteSale(context.Background(), CompleteSaleRequest{
		Lines: []CartLine{{ProductID: p.ID.String(), Size: "M", Quantity: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, receipt.LinesApplied)
	assert.Equal(t, 30000.0, receipt.Sale.TotalAmount)
	assert.Equal(t, 2, receipt.Sale.ItemsCount)
	assert.Equal(t, 3, p.Quantities["M"])
	assert.Equal(t, 3, p.Quantities["L"], "untouched size must keep its stock")

	stored, err := salesRepo.GetByID(context.Background(), receipt.Sale.ID.String())
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, "Chemise Wax", stored.Items[0].ProductName)
	assert.Equal(t, 15000.0, stored.Items[0].UnitPrice)
}

func TestCompleteSaleClampsAtZero(t *testing.T) {
	p := testProduct("Robe Pagne", 18000, map[string]int{"2XL": 3})
	svc := NewService(newFakeProductRepo(p), newFakeSalesRepo())

	// Selling more than on hand clamps the size to zero instead of failing.
	receipt, err := svc.CompleteSale(context.Background(), CompleteSaleRequest{
		Lines: []CartLine{{ProductID: p.ID.String(), Size: "2XL", Quantity: 5}},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, p.Quantities["2XL"])
	assert.Equal(t, 90000.0, receipt.Sale.TotalAmount)
}

func TestCompleteSaleValidation(t *testing.T) {
	p := testProduct("Chemise Wax", 15000, map[string]int{"M": 5})
	svc := NewService(newFakeProductRepo(p), newFakeSalesRepo())

	_, err := svc.CompleteSale(context.Background(), CompleteSaleRequest{})
	assert.ErrorContains(t, err, "at least one line")

	_, err = svc.CompleteSale(context.Background(), CompleteSaleRequest{
		Lines: []CartLine{{ProductID: p.ID.String(), Size: "M", Quantity: 0}},
	})
	assert.ErrorContains(t, err, "quantity must be > 0")

	_, err = svc.CompleteSale(context.Background(), CompleteSaleRequest{
		Lines: []CartLine{{ProductID: p.ID.String(), Size: "XL", Quantity: 1}},
	})
	assert.ErrorContains(t, err, "not available")

	_, err = svc.CompleteSale(context.Background(), CompleteSaleRequest{
		Lines: []CartLine{{ProductID: uuid.NewString(), Size: "M", Quantity: 1}},
	})
	assert.ErrorContains(t, err, "not found")
}

func TestCompleteSaleRecordsSeller(t *testing.T) {
	p := testProduct("Chemise Wax", 15000, map[string]int{"M": 5})
	svc := NewService(newFakeProductRepo(p), newFakeSalesRepo())

	seller := uuid.New()
	receipt, err := svc.CompleteSale(context.Background(), CompleteSaleRequest{
		Lines:    []CartLine{{ProductID: p.ID.String(), Size: "M", Quantity: 1}},
		SellerID: seller.String(),
	})
	require.NoError(t, err)
	require.NotNil(t, receipt.Sale.SellerID)
	assert.Equal(t, seller, *receipt.Sale.SellerID)
}
