package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"plantGame/internal/domain"
	"plantGame/internal/handler/mw"
	"plantGame/internal/usecase"
)

type Handler struct {
	service *usecase.Service
	log     *logrus.Logger
}

func NewHandler(service *usecase.Service, log *logrus.Logger) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) Register(r chi.Router) {
	r.Use(middleware.RealIP)
	r.Use(mw.RequestLogger(h.log))
	r.Use(mw.Recoverer(h.log))
	r.Use(middleware.Heartbeat("/ping"))

	r.Get("/", h.rootHandler)

	// The game client still calls the Catalan/Spanish prefixes.
	for _, prefix := range []string{"/users", "/usuaris"} {
		r.Route(prefix, func(r chi.Router) {
			r.Get("/", h.wrap(h.listUsers))
			r.Post("/", h.wrap(h.createUser))
			r.Get("/{id}", h.wrap(h.getUser))
			r.Put("/{id}", h.wrap(h.updateUser))
			r.Delete("/{id}", h.wrap(h.deleteUser))
			r.Get("/{id}/items", h.wrap(h.listOwnedItems))
		})
	}
	for _, prefix := range []string{"/plants", "/plantas"} {
		r.Route(prefix, func(r chi.Router) {
			r.Get("/", h.wrap(h.listPlants))
			r.Post("/", h.wrap(h.createPlant))
			r.Get("/{id}", h.wrap(h.getPlant))
			r.Put("/{id}", h.wrap(h.updatePlant))
			r.Delete("/{id}", h.wrap(h.deletePlant))
		})
	}

	r.Get("/items", h.wrap(h.listItems))
	r.Post("/items_usuaris", h.buyItems)
	r.Post("/items/items_usuaris", h.buyItems)
}

func (h *Handler) rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(`
<html>
<head>
  <title>Plant Game API</title>
</head>
<body style="font-family: sans-serif;">
  <h1>Plant Game API</h1>
  <ul>
    <li>Users: <strong>GET/POST /users</strong>, <strong>GET/PUT/DELETE /users/{id}</strong></li>
    <li>Owned items: <strong>GET /users/{id}/items</strong></li>
    <li>Plants: <strong>GET/POST /plants</strong>, <strong>GET/PUT/DELETE /plants/{id}</strong></li>
    <li>Item catalog: <strong>GET /items</strong></li>
    <li>Buy items: <strong>POST /items_usuaris</strong></li>
  </ul>
</body>
</html>
`))
}

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type apiFunc func(w http.ResponseWriter, r *http.Request) error

// wrap maps the error kinds returned by the service to status codes.
// Internal errors are echoed to the caller as-is.
func (h *Handler) wrap(fn apiFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			mw.GetLogger(r.Context(), h.log).WithError(err).Error("request failed")
		}
		writeJSON(w, status, errorResponse{Error: err.Error()})
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// pathID reads the {id} segment the way MySQL compares a string to an
// integer column: the leading digits are used, and an id with none counts
// as 0, which never matches a row. A bad id is a miss, not a 400.
func pathID(r *http.Request) int {
	raw := chi.URLParam(r, "id")
	if id, err := strconv.Atoi(raw); err == nil {
		return id
	}
	end := 0
	if end < len(raw) && (raw[end] == '-' || raw[end] == '+') {
		end++
	}
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	id, err := strconv.Atoi(raw[:end])
	if err != nil {
		return 0
	}
	return id
}

func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", domain.ErrValidation, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
