package wishlist

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/soberanopy/soberano-backend/internal/modules/catalog"
)

// Handler exposes wishlist HTTP endpoints, keyed by the caller's device id.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/wishlists/{deviceID}", func(r chi.Router) {
		r.Get("/", h.listEntries)
		r.Post("/toggle", h.toggle)
	})
}

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.ListEntries(r.Context(), chi.URLParam(r, "deviceID"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []*Entry{}
	}
	respond(w, http.StatusOK, entries)
}

func (h *Handler) toggle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	result, err := h.service.Toggle(r.Context(), chi.URLParam(r, "deviceID"), req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, result)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
