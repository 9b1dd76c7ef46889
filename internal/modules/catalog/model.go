package catalog

import (
	"time"

	"github.com/google/uuid"
)

// DefaultSizes is the size run offered when a product is created without an
// explicit quantity map. Labels are free-form strings, not an enum; any size
// key stored on a product is valid.
var DefaultSizes = []string{"M", "L", "XL", "2XL", "3XL", "4XL", "5XL"}

// Product is a catalog item sold at the counter. Quantities maps a size label
// to the on-hand count for that size; total stock is the sum of its values.
type Product struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Category    string         `json:"category,omitempty"`
	Price       float64        `json:"price"`
	ImageURL    string         `json:"image_url,omitempty"`
	IsActive    bool           `json:"is_active"`
	Quantities  map[string]int `json:"quantities"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// TotalStock returns the sum of on-hand counts across all sizes.
func (p *Product) TotalStock() int {
	total := 0
	for _, qty := range p.Quantities {
		total += qty
	}
	return total
}

// DefaultQuantities returns a zeroed quantity map over DefaultSizes.
func DefaultQuantities() map[string]int {
	quantities := make(map[string]int, len(DefaultSizes))
	for _, size := range DefaultSizes {
		quantities[size] = 0
	}
	return quantities
}
