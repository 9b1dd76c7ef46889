package catalog

import "context"

// Repository defines data access for catalog products.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, activeOnly bool) ([]*Product, error)
	Update(ctx context.Context, p *Product) error

	// UpdateQuantities rewrites the full quantity map for a product.
	// The write is last-writer-wins: no version check guards the read that
	// produced the map.
	UpdateQuantities(ctx context.Context, id string, quantities map[string]int) error

	Delete(ctx context.Context, id string) error
}
