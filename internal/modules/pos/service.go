package pos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lesatelierszo/zopos-backend/internal/metrics"
	"github.com/lesatelierszo/zopos-backend/internal/modules/barcode"
	"github.com/lesatelierszo/zopos-backend/internal/modules/catalog"
	"github.com/lesatelierszo/zopos-backend/internal/modules/sales"
)

var (
	// ErrCodeNotFound means the scanned code matches no (product, size) pair.
	ErrCodeNotFound = errors.New("no product matches the scanned code")

	// ErrOutOfStock means the code resolved but the size has zero stock.
	ErrOutOfStock = errors.New("size is out of stock")
)

// Service defines checkout business logic.
type Service interface {
	// Scan resolves a scanned code against the live catalog. A match with
	// zero stock for the size is rejected with ErrOutOfStock.
	Scan(ctx context.Context, code string) (*ScanResult, error)

	// CompleteSale records the sale and decrements stock for each line.
	CompleteSale(ctx context.Context, req CompleteSaleRequest) (*Receipt, error)
}

type service struct {
	products catalog.Repository
	sales    sales.Repository
}

func NewService(products catalog.Repository, salesRepo sales.Repository) Service {
	return &service{products: products, sales: salesRepo}
}

func (s *service) Scan(ctx context.Context, code string) (*ScanResult, error) {
	products, err := s.products.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	p, size, ok := barcode.Resolve(code, products)
	if !ok {
		metrics.ScanTotal.WithLabelValues("not_found").Inc()
		return nil, ErrCodeNotFound
	}
	if p.Quantities[size] == 0 {
		metrics.ScanTotal.WithLabelValues("out_of_stock").Inc()
		return nil, fmt.Errorf("%w: %s size %s", ErrOutOfStock, p.Name, size)
	}

	metrics.ScanTotal.WithLabelValues("matched").Inc()
	return &ScanResult{
		ProductID:   p.ID,
		ProductName: p.Name,
		Size:        size,
		UnitPrice:   p.Price,
		InStock:     p.Quantities[size],
		ImageURL:    p.ImageURL,
	}, nil
}

// CompleteSale inserts the sale record first, then walks the cart and issues
// one stock update per line, awaiting each before the next. There is no
// rollback: if a stock update fails partway, the sale stays recorded and the
// remaining lines stay undecremented. The error reports how far it got.
func (s *service) CompleteSale(ctx context.Context, req CompleteSaleRequest) (*Receipt, error) {
	if len(req.Lines) == 0 {
		return nil, fmt.Errorf("sale must contain at least one line")
	}

	var items []sales.SaleItem
	var total float64
	itemsCount := 0

	for _, line := range req.Lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("quantity must be > 0 for product %s", line.ProductID)
		}
		p, err := s.products.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %s not found: %w", line.ProductID, err)
		}
		if _, ok := p.Quantities[line.Size]; !ok {
			return nil, fmt.Errorf("size %q not available for product %s", line.Size, p.Name)
		}

		lineTotal := p.Price * float64(line.Quantity)
		total += lineTotal
		itemsCount += line.Quantity

		items = append(items, sales.SaleItem{
			ProductID:   p.ID.String(),
			ProductName: p.Name,
			Size:        line.Size,
			Quantity:    line.Quantity,
			UnitPrice:   p.Price,
			TotalPrice:  lineTotal,
		})
	}

	sale := &sales.Sale{
		ID:          uuid.New(),
		Items:       items,
		TotalAmount: total,
		ItemsCount:  itemsCount,
		SaleDate:    time.Now().UTC(),
	}
	if req.SellerID != "" {
		uid, err := uuid.Parse(req.SellerID)
		if err != nil {
			return nil, fmt.Errorf("invalid seller_id: %w", err)
		}
		sale.SellerID = &uid
	}

	if err := s.sales.Create(ctx, sale); err != nil {
		return nil, fmt.Errorf("record sale: %w", err)
	}

	applied := 0
	for _, line := range req.Lines {
		if err := s.decrementStock(ctx, line); err != nil {
			return nil, fmt.Errorf("sale %s recorded but stock update failed after %d of %d lines: %w",
				sale.ID, applied, len(req.Lines), err)
		}
		applied++
	}

	metrics.SalesCompleted.Inc()
	metrics.SaleAmount.Observe(sale.TotalAmount)
	return &Receipt{Sale: sale, LinesApplied: applied}, nil
}

// decrementStock rewrites the product's full quantity map with the sold size
// floored at zero. Selling more than is on hand clamps to zero rather than
// failing; the read-modify-write carries no version check.
func (s *service) decrementStock(ctx context.Context, line CartLine) error {
	p, err := s.products.GetByID(ctx, line.ProductID)
	if err != nil {
		return err
	}
	newQty := p.Quantities[line.Size] - line.Quantity
	if newQty < 0 {
		newQty = 0
	}
	p.Quantities[line.Size] = newQty
	return s.products.UpdateQuantities(ctx, line.ProductID, p.Quantities)
}
