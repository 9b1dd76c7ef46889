package barcode

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lesatelierszo/zopos-backend/internal/modules/catalog"
)

// Handler exposes code resolution and label generation over HTTP.
type Handler struct{ catalog catalog.Service }

func NewHandler(catalogService catalog.Service) *Handler {
	return &Handler{catalog: catalogService}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/barcode", func(r chi.Router) {
		r.Get("/resolve", h.resolve)
		r.Get("/products/{id}/labels", h.labels)
	})
}

func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		respond(w, http.StatusBadRequest, map[string]string{"error": "code is required"})
		return
	}
	products, err := h.catalog.ListProducts(r.Context(), false)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	p, size, ok := Resolve(code, products)
	if !ok {
		respond(w, http.StatusNotFound, map[string]string{"error": "no product matches this code"})
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{
		"product_id":   p.ID,
		"product_name": p.Name,
		"size":         size,
		"quantity":     p.Quantities[size],
		"unit_price":   p.Price,
	})
}

func (h *Handler) labels(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{
		"product_id":   p.ID,
		"product_name": p.Name,
		"labels":       Labels(p),
	})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
