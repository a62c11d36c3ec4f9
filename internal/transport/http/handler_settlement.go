package httptransport

import (
	"encoding/json"
	"net/http"

	"card-admin/internal/settlement"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type SettlementHandlers struct {
	engine *settlement.Engine
}

func NewSettlementHandlers(e *settlement.Engine) *SettlementHandlers {
	return &SettlementHandlers{engine: e}
}

func (h *SettlementHandlers) Settle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := h.engine.SettleGame(r.Context(), chi.URLParam(r, "game_id"))
		if err != nil {
			WriteAppError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func (h *SettlementHandlers) AddWinning() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			AdminID string          `json:"admin_id"`
			GameID  string          `json:"game_id"`
			Amount  decimal.Decimal `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		entry, balance, err := h.engine.AddAdminWinning(r.Context(), body.AdminID, body.GameID, body.Amount)
		if err != nil {
			WriteAppError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"entry": entry, "wallet": balance})
	}
}

func (h *SettlementHandlers) Backfill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := h.engine.BackfillAdminWinnings(r.Context(), chi.URLParam(r, "admin_id"))
		if err != nil {
			WriteAppError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}
