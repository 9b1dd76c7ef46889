package barcode

import (
	"sort"
	"strings"

	"github.com/lesatelierszo/zopos-backend/internal/modules/catalog"
)

// Resolve maps a scanned code back to a (product, size) pair by regenerating
// the code for every size key of every product and comparing exactly. The
// first match wins; size keys are walked in sorted order so resolution of a
// colliding code is at least repeatable. Resolution is a pure lookup: stock
// levels are not consulted here.
func Resolve(code string, products []*catalog.Product) (*catalog.Product, string, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, "", false
	}
	for _, p := range products {
		for _, size := range sortedSizes(p.Quantities) {
			if ShortCode(p.ID.String(), size) == code {
				return p, size, true
			}
		}
	}
	return nil, "", false
}

// Labels returns the size → short code map for one product, used to print a
// label sheet.
func Labels(p *catalog.Product) map[string]string {
	labels := make(map[string]string, len(p.Quantities))
	for size := range p.Quantities {
		labels[size] = ShortCode(p.ID.String(), size)
	}
	return labels
}

func sortedSizes(quantities map[string]int) []string {
	sizes := make([]string, 0, len(quantities))
	for size := range quantities {
		sizes = append(sizes, size)
	}
	sort.Strings(sizes)
	return sizes
}
