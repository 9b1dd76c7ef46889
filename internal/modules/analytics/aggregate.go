// Package analytics summarises sales history: totals, top products and
// best/worst selling periods. Everything here is a pure function over sale
// records already loaded in memory; single-shop history is small enough that
// no streaming or incremental design is needed.
package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/lesatelierszo/zopos-backend/internal/modules/sales"
)

// Granularity selects how sales are bucketed when grouped by period.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// Totals are the headline figures over a set of sales.
type Totals struct {
	Revenue      float64 `json:"revenue"`
	Transactions int     `json:"transactions"`
	Items        int     `json:"items"`
	Average      float64 `json:"average"`
}

// ProductGroup aggregates sold items sharing a (product name, size) pair.
type ProductGroup struct {
	ProductName string  `json:"product_name"`
	Size        string  `json:"size"`
	Quantity    int     `json:"quantity"`
	Revenue     float64 `json:"revenue"`
}

// PeriodGroup aggregates sales falling into one period bucket.
type PeriodGroup struct {
	Label        string  `json:"label"`
	Revenue      float64 `json:"revenue"`
	Transactions int     `json:"transactions"`
}

// FilterPeriod keeps sales whose creation time falls within the inclusive
// day range [start 00:00:00, end 23:59:59.999]. A nil bound leaves that side
// unbounded.
func FilterPeriod(list []*sales.Sale, start, end *time.Time) []*sales.Sale {
	var lower, upper time.Time
	if start != nil {
		lower = dayStart(*start)
	}
	if end != nil {
		upper = dayStart(*end).Add(24*time.Hour - time.Millisecond)
	}

	var filtered []*sales.Sale
	for _, s := range list {
		t := s.CreatedAt
		if start != nil && t.Before(lower) {
			continue
		}
		if end != nil && t.After(upper) {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered
}

// SumTotals computes revenue, transaction and item totals. The average is
// zero over an empty set, never NaN.
func SumTotals(list []*sales.Sale) Totals {
	t := Totals{}
	for _, s := range list {
		t.Revenue += s.TotalAmount
		t.Items += s.ItemsCount
	}
	t.Transactions = len(list)
	if t.Transactions > 0 {
		t.Average = t.Revenue / float64(t.Transactions)
	}
	return t
}

// TopProducts flattens all line items, groups them by (product name, size),
// and returns the n groups with the highest revenue, best first.
func TopProducts(list []*sales.Sale, n int) []ProductGroup {
	type key struct{ name, size string }
	index := map[key]int{}
	var groups []ProductGroup

	for _, s := range list {
		for _, item := range s.Items {
			k := key{item.ProductName, item.Size}
			i, ok := index[k]
			if !ok {
				i = len(groups)
				index[k] = i
				groups = append(groups, ProductGroup{ProductName: item.ProductName, Size: item.Size})
			}
			groups[i].Quantity += item.Quantity
			groups[i].Revenue += item.TotalPrice
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Revenue > groups[j].Revenue
	})
	if n > 0 && len(groups) > n {
		groups = groups[:n]
	}
	return groups
}

// GroupByPeriod buckets sales at the given granularity and returns the
// buckets sorted by revenue, best first.
func GroupByPeriod(list []*sales.Sale, g Granularity) []PeriodGroup {
	index := map[string]int{}
	var groups []PeriodGroup

	for _, s := range list {
		label := periodLabel(s.CreatedAt, g)
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, PeriodGroup{Label: label})
		}
		groups[i].Revenue += s.TotalAmount
		groups[i].Transactions++
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Revenue > groups[j].Revenue
	})
	return groups
}

// WorstPeriods takes the last n groups of a best-first period list and
// reverses them so the worst period comes first.
func WorstPeriods(groups []PeriodGroup, n int) []PeriodGroup {
	if n > len(groups) {
		n = len(groups)
	}
	worst := make([]PeriodGroup, n)
	for i := 0; i < n; i++ {
		worst[i] = groups[len(groups)-1-i]
	}
	return worst
}

// frenchMonths matches the labels the shop's reports have always shown.
var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

func periodLabel(t time.Time, g Granularity) string {
	switch g {
	case GranularityWeek:
		// Bucket by the Monday starting the ISO week.
		offset := (int(t.Weekday()) + 6) % 7
		monday := dayStart(t).AddDate(0, 0, -offset)
		return "semaine du " + monday.Format("02/01/2006")
	case GranularityMonth:
		return fmt.Sprintf("%s %d", frenchMonths[t.Month()-1], t.Year())
	default:
		return t.Format("02/01/2006")
	}
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
