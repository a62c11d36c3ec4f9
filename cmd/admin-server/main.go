package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"card-admin/internal/app/admins"
	"card-admin/internal/config"
	"card-admin/internal/ledger"
	"card-admin/internal/logging"
	"card-admin/internal/report"
	"card-admin/internal/settlement"
	"card-admin/internal/store"
	"card-admin/internal/store/memstore"
	httptransport "card-admin/internal/transport/http"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// backend is everything the services need from persistence. Both the
// Postgres store and memstore satisfy it.
type backend interface {
	settlement.Store
	ledger.Store
	report.Store
	admins.Store
	httptransport.Pinger
	EnsureAdmin(ctx context.Context, name, email string, wallet decimal.Decimal) (string, error)
	Close()
}

func main() {
	if err := config.LoadDotEnv(); err != nil {
		panic(err)
	}
	cfg, err := config.LoadApp()
	if err != nil {
		panic(err)
	}
	logging.Init(cfg.Log)
	loc, _ := cfg.Report.Location()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	be, err := openBackend(ctx, cfg.Server)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Server.StoreDriver).Msg("store init failed")
	}
	defer be.Close()

	if id, err := seedAdmin(ctx, be, cfg.Server); err != nil {
		log.Fatal().Err(err).Msg("seed admin failed")
	} else if id != "" {
		log.Info().Str("admin_id", id).Str("email", cfg.Server.SeedAdminEmail).Msg("seed admin ready")
	}

	engine := settlement.NewEngine(be, ledger.New(be))
	r := httptransport.NewRouter(httptransport.Services{
		Store:      be,
		Admins:     admins.NewService(be),
		Settlement: engine,
		Reports:    report.NewAggregator(be, loc),
	}, cfg.Server)
	httptransport.LogRoutes(r)

	server := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	if cfg.Settlement.ListenEnabled {
		notifier, ok := be.(settlement.Notifier)
		if ok {
			l := settlement.NewListener(notifier, engine, cfg.Settlement.ListenChannel, cfg.Settlement.ListenBackoff)
			g.Go(func() error {
				l.Run(gctx)
				return nil
			})
		} else {
			log.Warn().Str("driver", cfg.Server.StoreDriver).Msg("settlement listener needs the postgres driver; disabled")
		}
	}
	g.Go(func() error {
		log.Info().Str("addr", cfg.Server.HTTPAddr).Msg("admin server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("server stopped")
		return
	}
	log.Info().Msg("server stopped")
}

func openBackend(ctx context.Context, cfg config.ServerConfig) (backend, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		return memstore.New(), nil
	case config.StoreDriverPostgres:
		st, err := store.New(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		if err := st.Ping(ctx); err != nil {
			st.Close()
			return nil, err
		}
		return st, nil
	default:
		return nil, errors.New("unknown store driver " + cfg.StoreDriver)
	}
}

// seedAdmin creates the configured admin if its email is not taken yet.
func seedAdmin(ctx context.Context, be backend, cfg config.ServerConfig) (string, error) {
	name := strings.TrimSpace(cfg.SeedAdminName)
	email := strings.TrimSpace(cfg.SeedAdminEmail)
	if name == "" || email == "" {
		return "", nil
	}
	return be.EnsureAdmin(ctx, name, email, decimal.NewFromFloat(cfg.SeedAdminWallet))
}
