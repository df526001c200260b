package cart

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/soberanopy/soberano-backend/internal/modules/catalog"
)

// Handler exposes cart HTTP endpoints. All public: a cart is addressed by
// the unguessable id handed out at creation.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/carts", func(r chi.Router) {
		r.Post("/", h.createCart)
		r.Get("/{id}", h.getCart)
		r.Post("/{id}/items", h.addItem)
		r.Delete("/{id}/items/{lineID}", h.removeItem)
		r.Post("/{id}/checkout", h.checkout)
	})
}

// cartView decorates a cart with its recomputed total for responses.
type cartView struct {
	*Cart
	Total int64 `json:"total"`
}

func view(c *Cart) cartView { return cartView{Cart: c, Total: c.Total()} }

func (h *Handler) createCart(w http.ResponseWriter, r *http.Request) {
	c := h.service.CreateCart(r.Context())
	respond(w, http.StatusCreated, view(c))
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.GetCart(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond(w, http.StatusOK, view(c))
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string          `json:"product_id"`
		Variant   catalog.Variant `json:"variant"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Variant == "" {
		req.Variant = catalog.VariantBottle
	}
	c, err := h.service.AddItem(r.Context(), chi.URLParam(r, "id"), req.ProductID, req.Variant)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond(w, http.StatusCreated, view(c))
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.RemoveItem(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "lineID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond(w, http.StatusOK, view(c))
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	result, err := h.service.Checkout(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond(w, http.StatusCreated, result)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrCartNotFound), errors.Is(err, catalog.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrInvalid):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
