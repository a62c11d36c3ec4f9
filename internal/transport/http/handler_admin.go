package httptransport

import (
	"net/http"

	"card-admin/internal/app/admins"

	"github.com/go-chi/chi/v5"
)

type AdminHandlers struct {
	store Pinger
	svc   *admins.Service
}

func NewAdminHandlers(st Pinger, svc *admins.Service) *AdminHandlers {
	return &AdminHandlers{store: st, svc: svc}
}

func (h *AdminHandlers) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.store.Ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{"ok": false, "db": "down"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "db": "up"})
	}
}

func (h *AdminHandlers) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, offset := ParsePagination(r)
		resp, err := h.svc.List(r.Context(), limit, offset)
		if err != nil {
			WriteAppError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *AdminHandlers) Profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.svc.Profile(r.Context(), chi.URLParam(r, "admin_id"))
		if err != nil {
			WriteAppError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *AdminHandlers) CurrentGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.svc.CurrentGame(r.Context())
		if err != nil {
			WriteAppError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
