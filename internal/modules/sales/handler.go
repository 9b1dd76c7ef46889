package sales

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes sales-history HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/sales", func(r chi.Router) {
		r.Get("/", h.listSales)
		r.Get("/{id}", h.getSale)
		r.Post("/{id}/hide", h.hideSale)
		r.Post("/{id}/unhide", h.unhideSale)
		r.Delete("/{id}", h.deleteSale)
	})
}

func (h *Handler) listSales(w http.ResponseWriter, r *http.Request) {
	includeHidden := r.URL.Query().Get("include_hidden") == "true"
	list, err := h.service.ListSales(r.Context(), includeHidden)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, list)
}

func (h *Handler) getSale(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sale, err := h.service.GetSale(r.Context(), id)
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, sale)
}

func (h *Handler) hideSale(w http.ResponseWriter, r *http.Request)   { h.setHidden(w, r, true) }
func (h *Handler) unhideSale(w http.ResponseWriter, r *http.Request) { h.setHidden(w, r, false) }

func (h *Handler) setHidden(w http.ResponseWriter, r *http.Request, hidden bool) {
	id := chi.URLParam(r, "id")
	sale, err := h.service.SetHidden(r.Context(), id, hidden)
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			code = http.StatusNotFound
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, sale)
}

func (h *Handler) deleteSale(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.service.DeleteSale(r.Context(), id); err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			code = http.StatusNotFound
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
