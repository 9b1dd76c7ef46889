package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/lesatelierszo/zopos-backend/internal/modules/sales"
)

// Summary is the full analytics report for a period.
type Summary struct {
	Totals       Totals         `json:"totals"`
	TopProducts  []ProductGroup `json:"top_products"`
	BestPeriods  []PeriodGroup  `json:"best_periods"`
	WorstPeriods []PeriodGroup  `json:"worst_periods"`
}

// Service defines analytics business logic.
type Service interface {
	Summarize(ctx context.Context, start, end *time.Time, g Granularity) (*Summary, error)
}

type service struct {
	sales sales.Repository
}

func NewService(salesRepo sales.Repository) Service {
	return &service{sales: salesRepo}
}

// Summarize reads the full sales history, including hidden sales, and
// aggregates it over the requested period.
func (s *service) Summarize(ctx context.Context, start, end *time.Time, g Granularity) (*Summary, error) {
	switch g {
	case GranularityDay, GranularityWeek, GranularityMonth:
	case "":
		g = GranularityDay
	default:
		return nil, fmt.Errorf("invalid granularity %q", g)
	}

	list, err := s.sales.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("load sales: %w", err)
	}

	filtered := FilterPeriod(list, start, end)
	periods := GroupByPeriod(filtered, g)

	best := periods
	if len(best) > 5 {
		best = best[:5]
	}

	return &Summary{
		Totals:       SumTotals(filtered),
		TopProducts:  TopProducts(filtered, 5),
		BestPeriods:  best,
		WorstPeriods: WorstPeriods(periods, 5),
	}, nil
}
