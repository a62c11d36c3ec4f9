package httptransport

import (
	"context"
	"expvar"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"card-admin/internal/app/admins"
	"card-admin/internal/config"
	"card-admin/internal/mcpserver"
	"card-admin/internal/report"
	"card-admin/internal/settlement"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// Services are the operations the router exposes.
type Services struct {
	Store      Pinger
	Admins     *admins.Service
	Settlement *settlement.Engine
	Reports    *report.Aggregator
}

func NewRouter(svc Services, cfg config.ServerConfig) *chi.Mux {
	mcpSrv := mcpserver.New(svc.Settlement, svc.Reports, svc.Admins)

	adminHandlers := NewAdminHandlers(svc.Store, svc.Admins)
	settlementHandlers := NewSettlementHandlers(svc.Settlement)
	reportHandlers := NewReportHandlers(svc.Reports)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.With(APILogMiddleware()).Get("/healthz", adminHandlers.Health())

	r.Route("/api", func(r chi.Router) {
		r.Use(APILogMiddleware())
		r.Use(AdminAuthMiddleware(cfg.AdminAPIKey))

		r.Get("/admins", adminHandlers.List())
		r.Get("/admins/{admin_id}", adminHandlers.Profile())
		r.Get("/admins/{admin_id}/winnings", reportHandlers.Winnings())
		r.Get("/admins/{admin_id}/totals", reportHandlers.Totals())
		r.Get("/games/current", adminHandlers.CurrentGame())

		r.Group(func(r chi.Router) {
			r.Use(BodyCaptureMiddleware(4096))
			r.Post("/games/{game_id}/settle", settlementHandlers.Settle())
			r.Post("/winnings", settlementHandlers.AddWinning())
			r.Post("/admins/{admin_id}/winnings/backfill", settlementHandlers.Backfill())
		})

		r.MethodFunc(http.MethodOptions, "/mcp", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Allow", "POST, GET, DELETE, OPTIONS")
			w.WriteHeader(http.StatusNoContent)
		})
		r.Method(http.MethodPost, "/mcp", mcpSrv.Handler())
		r.Method(http.MethodGet, "/mcp", mcpSrv.Handler())
		r.Method(http.MethodDelete, "/mcp", mcpSrv.Handler())

		r.Get("/debug/vars", expvar.Handler().ServeHTTP)
	})
	return r
}

func LogRoutes(r chi.Router) {
	type routeDef struct {
		Method string
		Path   string
	}
	routes := make([]routeDef, 0, 16)
	err := chi.Walk(r, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, routeDef{Method: method, Path: route})
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("walk routes failed")
		return
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	var b strings.Builder
	for _, rt := range routes {
		b.WriteString(fmt.Sprintf("%s %s; ", rt.Method, rt.Path))
	}
	log.Info().Int("count", len(routes)).Str("routes", strings.TrimSuffix(b.String(), "; ")).Msg("registered routes")
}
