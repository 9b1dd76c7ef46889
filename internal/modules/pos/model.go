package pos

import (
	"github.com/google/uuid"

	"github.com/lesatelierszo/zopos-backend/internal/modules/sales"
)

// CartLine is one entry of a checkout in progress: a (product, size) pair and
// the quantity requested. Lines exist only for the duration of a checkout.
type CartLine struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// ScanResult is a successfully resolved barcode scan.
type ScanResult struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Size        string    `json:"size"`
	UnitPrice   float64   `json:"unit_price"`
	InStock     int       `json:"in_stock"`
	ImageURL    string    `json:"image_url,omitempty"`
}

// CompleteSaleRequest is the payload for finalising a checkout.
type CompleteSaleRequest struct {
	Lines    []CartLine `json:"lines"`
	SellerID string     `json:"seller_id,omitempty"`
}

// Receipt is returned after a completed checkout.
type Receipt struct {
	Sale         *sales.Sale `json:"sale"`
	LinesApplied int         `json:"lines_applied"`
}
