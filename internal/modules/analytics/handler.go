package analytics

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Handler exposes analytics HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/analytics", func(r chi.Router) {
		r.Get("/summary", h.summary) // GET /api/v1/analytics/summary?start=2026-01-01&end=2026-01-31&granularity=day
	})
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	start, err := parseDate(q.Get("start"))
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid start date, expected YYYY-MM-DD"})
		return
	}
	end, err := parseDate(q.Get("end"))
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid end date, expected YYYY-MM-DD"})
		return
	}

	summary, err := h.service.Summarize(r.Context(), start, end, Granularity(q.Get("granularity")))
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, summary)
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
