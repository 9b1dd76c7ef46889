package pos

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes checkout HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/pos", func(r chi.Router) {
		r.Get("/scan", h.scan)       // GET  /api/v1/pos/scan?code=1234
		r.Post("/sales", h.complete) // POST /api/v1/pos/sales
	})
}

func (h *Handler) scan(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		respond(w, http.StatusBadRequest, map[string]string{"error": "code is required"})
		return
	}
	result, err := h.service.Scan(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, ErrCodeNotFound):
			respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		case errors.Is(err, ErrOutOfStock):
			respond(w, http.StatusConflict, map[string]string{"error": err.Error()})
		default:
			respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return
	}
	respond(w, http.StatusOK, result)
}

func (h *Handler) complete(w http.ResponseWriter, r *http.Request) {
	var req CompleteSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	receipt, err := h.service.CompleteSale(r.Context(), req)
	if err != nil {
		code := http.StatusInternalServerError
		msg := err.Error()
		if strings.Contains(msg, "must") || strings.Contains(msg, "invalid") ||
			strings.Contains(msg, "not found") || strings.Contains(msg, "not available") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": msg})
		return
	}
	respond(w, http.StatusCreated, receipt)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
