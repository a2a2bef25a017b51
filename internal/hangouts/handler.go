package hangouts

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Handler serves the hangouts REST API.
type Handler struct {
	store     Store
	listLimit int
	logger    *slog.Logger
}

// NewHandler creates the hangouts API handler.
func NewHandler(store Store, listLimit int, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		store:     store,
		listLimit: listLimit,
		logger:    logger,
	}
}

// Register attaches the hangouts routes to mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/hangouts", h.list)
	mux.HandleFunc("GET /api/hangouts/{id}", h.get)
	mux.HandleFunc("POST /api/hangouts", h.create)
	mux.HandleFunc("PUT /api/hangouts/like/{id}", h.like)
	mux.HandleFunc("DELETE /api/hangouts/{id}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	posts, err := h.store.List(r.Context(), h.listLimit)
	if err != nil {
		h.serverError(w, "list hangouts", err)
		return
	}
	if posts == nil {
		posts = []Hangout{}
	}
	writeJSON(w, http.StatusOK, posts)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	post, err := h.store.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, ErrNotFound) {
		h.notFound(w)
		return
	}
	if err != nil {
		h.serverError(w, "get hangout", err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid request body"})
		return
	}
	if req.Username == "" || req.ImageURL == "" || req.Description == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "username, imageUrl and description are required"})
		return
	}

	post := Hangout{
		ID:          uuid.NewString(),
		Username:    req.Username,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Tags:        req.Tags,
		CreatedAt:   time.Now().UTC(),
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}

	if err := h.store.Create(r.Context(), post); err != nil {
		h.serverError(w, "create hangout", err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

func (h *Handler) like(w http.ResponseWriter, r *http.Request) {
	likes, err := h.store.Like(r.Context(), r.PathValue("id"))
	if errors.Is(err, ErrNotFound) {
		h.notFound(w)
		return
	}
	if err != nil {
		h.serverError(w, "like hangout", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"likes": likes})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	err := h.store.Delete(r.Context(), r.PathValue("id"))
	if errors.Is(err, ErrNotFound) {
		h.notFound(w)
		return
	}
	if err != nil {
		h.serverError(w, "delete hangout", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hangout removed"})
}

type errorBody struct {
	Message string `json:"message"`
}

func (h *Handler) notFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, errorBody{Message: "Hangout not found"})
}

func (h *Handler) serverError(w http.ResponseWriter, op string, err error) {
	h.logger.Error(op, "error", err)
	writeJSON(w, http.StatusInternalServerError, errorBody{Message: "Server error"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
