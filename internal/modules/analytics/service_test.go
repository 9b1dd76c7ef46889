package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lesatelierszo/zopos-backend/internal/modules/sales"
)

type memSalesRepo struct{ list []*sales.Sale }

func (r *memSalesRepo) Create(ctx context.Context, sale *sales.Sale) error {
	r.list = append(r.list, sale)
	return nil
}

func (r *memSalesRepo) GetByID(ctx context.Context, id string) (*sales.Sale, error) {
	panic("not used")
}

func (r *memSalesRepo) List(ctx context.Context, includeHidden bool) ([]*sales.Sale, error) {
	var out []*sales.Sale
	for _, s := range r.list {
		if s.Hidden && !includeHidden {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *memSalesRepo) SetHidden(ctx context.Context, id string, hidden bool) error { return nil }
func (r *memSalesRepo) Delete(ctx context.Context, id string) error                 { return nil }

func TestSummarizeIncludesHiddenSales(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	hidden := saleAt(now, 100)
	hidden.Hidden = true
	repo := &memSalesRepo{list: []*sales.Sale{saleAt(now, 50), hidden}}

	svc := NewService(repo)
	summary, err := svc.Summarize(context.Background(), nil, nil, GranularityDay)
	require.NoError(t, err)

	// Hiding a sale removes it from history views, never from the numbers.
	assert.Equal(t, 150.0, summary.Totals.Revenue)
	assert.Equal(t, 2, summary.Totals.Transactions)
}

func TestSummarizeGranularity(t *testing.T) {
	svc := NewService(&memSalesRepo{})

	_, err := svc.Summarize(context.Background(), nil, nil, "hour")
	assert.ErrorContains(t, err, "invalid granularity")

	summary, err := svc.Summarize(context.Background(), nil, nil, "")
	require.NoError(t, err)
	assert.Zero(t, summary.Totals.Revenue)
	assert.Empty(t, summary.TopProducts)
}
