package sales

import "context"

// Repository defines data access for sale records.
type Repository interface {
	Create(ctx context.Context, sale *Sale) error
	GetByID(ctx context.Context, id string) (*Sale, error)

	// List returns sales newest-first. Hidden sales are excluded unless
	// includeHidden is set; aggregation always sets it.
	List(ctx context.Context, includeHidden bool) ([]*Sale, error)

	SetHidden(ctx context.Context, id string, hidden bool) error
	Delete(ctx context.Context, id string) error
}
