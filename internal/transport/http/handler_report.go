package httptransport

import (
	"net/http"

	"card-admin/internal/report"

	"github.com/go-chi/chi/v5"
)

type ReportHandlers struct {
	reports *report.Aggregator
}

func NewReportHandlers(a *report.Aggregator) *ReportHandlers {
	return &ReportHandlers{reports: a}
}

func (h *ReportHandlers) Totals() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from, to, err := ParseTimeRange(r)
		if err != nil {
			WriteAppError(w, r, err)
			return
		}
		totals, err := h.reports.AdminGameTotals(r.Context(), chi.URLParam(r, "admin_id"), from, to)
		if err != nil {
			WriteAppError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, totals)
	}
}

func (h *ReportHandlers) Winnings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from, to, err := ParseTimeRange(r)
		if err != nil {
			WriteAppError(w, r, err)
			return
		}
		rows, err := h.reports.AdminWinnings(r.Context(), chi.URLParam(r, "admin_id"), from, to)
		if err != nil {
			WriteAppError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"items": rows})
	}
}
