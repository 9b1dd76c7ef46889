package sales

import (
	"time"

	"github.com/google/uuid"
)

// SaleItem is one line of a completed sale. Name and price are snapshots
// taken at checkout; later catalog edits do not rewrite history.
type SaleItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Size        string  `json:"size"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

// Sale records a completed checkout. It is immutable once created, except
// for the Hidden flag: hiding removes a sale from history views while its
// amounts keep counting toward aggregate totals. Hard deletion is a separate
// administrative action that also reverses the sale's stock effect.
type Sale struct {
	ID          uuid.UUID  `json:"id"`
	Items       []SaleItem `json:"items"`
	TotalAmount float64    `json:"total_amount"`
	ItemsCount  int        `json:"items_count"`
	SellerID    *uuid.UUID `json:"seller_id,omitempty"`
	Hidden      bool       `json:"hidden"`
	SaleDate    time.Time  `json:"sale_date"`
	CreatedAt   time.Time  `json:"created_at"`
}
