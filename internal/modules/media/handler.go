package media

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// maxUploadBytes caps incoming image payloads at 10 MB.
const maxUploadBytes = 10 << 20

// Handler exposes media HTTP endpoints. Hero reads are public; uploads and
// hero writes are admin-only.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux, admin func(http.HandlerFunc) http.HandlerFunc) {
	r.Route("/api/v1/media", func(r chi.Router) {
		r.Get("/hero/{section}", h.heroImages)
		r.Put("/hero/{section}", admin(h.updateHeroImages))
		r.Post("/uploads", admin(h.upload))
	})
}

func (h *Handler) heroImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.service.HeroImages(r.Context(), chi.URLParam(r, "section"))
	if err != nil {
		if errors.Is(err, ErrUnknownSection) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, map[string][]string{"images": images})
}

func (h *Handler) updateHeroImages(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Images []string `json:"images"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.service.UpdateHeroImages(r.Context(), chi.URLParam(r, "section"), req.Images); err != nil {
		if errors.Is(err, ErrUnknownSection) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	url, err := h.service.UploadImage(r.Context(), header.Filename, file, r.FormValue("folder"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	respond(w, http.StatusCreated, map[string]string{"url": url})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
