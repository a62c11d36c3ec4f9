// Package report aggregates an admin's betting activity over a date range.
package report

import (
	"context"
	"expvar"
	"strings"
	"time"

	"card-admin/internal/apperr"
	"card-admin/internal/store"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var (
	metricTotalsQueries  = expvar.NewInt("report_totals_queries_total")
	metricTotalsErrors   = expvar.NewInt("report_totals_errors_total")
	metricLedgerMismatch = expvar.NewInt("report_ledger_mismatch_total")
)

// CommissionRate is the house share of the bet total.
var CommissionRate = decimal.RequireFromString("0.05")

const maxWinningRows = 1000

type Store interface {
	GetAdmin(ctx context.Context, adminID string) (*store.Admin, error)
	ListGamesByAdmin(ctx context.Context, f store.GameFilter) ([]store.Game, error)
	ListWinningCardsForGames(ctx context.Context, gameIDs []string) ([]store.WinningCard, error)
	ListGameResultsForAdmin(ctx context.Context, gameIDs []string, adminID string) ([]store.GameResult, error)
	ListWinnings(ctx context.Context, f store.WinningFilter, limit, offset int) ([]store.AdminWinning, error)
	SumWinnings(ctx context.Context, f store.WinningFilter) (decimal.Decimal, int, error)
}

type Aggregator struct {
	store Store
	loc   *time.Location
	now   func() time.Time
}

func NewAggregator(st Store, loc *time.Location) *Aggregator {
	if loc == nil {
		loc = time.Local
	}
	return &Aggregator{store: st, loc: loc, now: time.Now}
}

// WithClock replaces the clock used to pick the default range.
func (a *Aggregator) WithClock(now func() time.Time) *Aggregator {
	a.now = now
	return a
}

type Totals struct {
	AdminID            string          `json:"admin_id"`
	From               time.Time       `json:"from"`
	To                 time.Time       `json:"to"`
	TotalBetAmount     decimal.Decimal `json:"total_bet_amount"`
	TotalWinAmount     decimal.Decimal `json:"total_win_amount"`
	TotalClaimedAmount decimal.Decimal `json:"total_claimed_amount"`
	EndAmount          decimal.Decimal `json:"end_amount"`
	Commission         decimal.Decimal `json:"commission"`
	UnclaimedAmount    decimal.Decimal `json:"unclaimed_amount"`
	NTP                decimal.Decimal `json:"ntp"`
	LedgerWinAmount    decimal.Decimal `json:"ledger_win_amount"`
	GamesPlayed        int             `json:"games_played"`
	UnsettledGames     int             `json:"unsettled_games"`
}

func zeroTotals(adminID string, from, to time.Time) *Totals {
	return &Totals{
		AdminID:            adminID,
		From:               from,
		To:                 to,
		TotalBetAmount:     decimal.Zero,
		TotalWinAmount:     decimal.Zero,
		TotalClaimedAmount: decimal.Zero,
		EndAmount:          decimal.Zero,
		Commission:         decimal.Zero,
		UnclaimedAmount:    decimal.Zero,
		NTP:                decimal.Zero,
		LedgerWinAmount:    decimal.Zero,
	}
}

// DayRange returns midnight to 23:59:59.999 of the day containing now in loc.
func DayRange(now time.Time, loc *time.Location) (time.Time, time.Time) {
	n := now.In(loc)
	start := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, loc)
	end := time.Date(n.Year(), n.Month(), n.Day(), 23, 59, 59, int(999*time.Millisecond), loc)
	return start, end
}

// AdminGameTotals summarises the admin's games created in [from, to]. A nil
// bound defaults to the matching edge of today.
func (a *Aggregator) AdminGameTotals(ctx context.Context, adminID string, from, to *time.Time) (*Totals, error) {
	adminID = strings.TrimSpace(adminID)
	if adminID == "" {
		return nil, apperr.InvalidInput("admin_id is required")
	}
	metricTotalsQueries.Add(1)
	if _, err := a.store.GetAdmin(ctx, adminID); err != nil {
		return nil, a.fail(apperr.FromStore("admin game totals", "admin", err))
	}

	dayStart, dayEnd := DayRange(a.now(), a.loc)
	start, end := dayStart, dayEnd
	if from != nil {
		start = *from
	}
	if to != nil {
		end = *to
	}
	out := zeroTotals(adminID, start, end)
	if start.After(end) {
		return out, nil
	}

	games, err := a.store.ListGamesByAdmin(ctx, store.GameFilter{AdminID: adminID, From: &start, To: &end})
	if err != nil {
		return nil, a.fail(apperr.Internal("admin game totals", err))
	}
	if len(games) == 0 {
		return out, nil
	}
	ids := make([]string, 0, len(games))
	for _, g := range games {
		ids = append(ids, g.GameID)
	}

	var (
		cards   []store.WinningCard
		results []store.GameResult
		ledger  decimal.Decimal
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		cards, err = a.store.ListWinningCardsForGames(egCtx, ids)
		return err
	})
	eg.Go(func() error {
		var err error
		results, err = a.store.ListGameResultsForAdmin(egCtx, ids, adminID)
		return err
	})
	eg.Go(func() error {
		var err error
		ledger, _, err = a.store.SumWinnings(egCtx, store.WinningFilter{AdminID: adminID, GameIDs: ids})
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, a.fail(apperr.Internal("admin game totals", err))
	}

	out.GamesPlayed = len(games)
	out.LedgerWinAmount = ledger
	for _, g := range games {
		for _, b := range g.Bets {
			if b.AdminID != adminID {
				continue
			}
			for _, s := range b.Stakes {
				out.TotalBetAmount = out.TotalBetAmount.Add(s.Amount)
			}
		}
	}
	for _, r := range results {
		for _, w := range r.Winners {
			if w.AdminID != adminID {
				continue
			}
			out.TotalWinAmount = out.TotalWinAmount.Add(w.WinAmount)
			if w.Status == store.ResultStatusClaimed {
				out.TotalClaimedAmount = out.TotalClaimedAmount.Add(w.WinAmount)
			}
		}
	}
	settled := map[string]bool{}
	for _, c := range cards {
		settled[c.GameID] = true
	}
	for _, id := range ids {
		if !settled[id] {
			out.UnsettledGames++
		}
	}

	out.EndAmount = out.TotalBetAmount.Sub(out.TotalWinAmount)
	out.Commission = out.TotalBetAmount.Mul(CommissionRate)
	out.UnclaimedAmount = out.TotalWinAmount.Sub(out.TotalClaimedAmount)
	out.NTP = out.EndAmount.Sub(out.Commission)

	if !out.LedgerWinAmount.Equal(out.TotalWinAmount) {
		metricLedgerMismatch.Add(1)
		log.Warn().
			Str("admin_id", adminID).
			Str("result_win", out.TotalWinAmount.String()).
			Str("ledger_win", out.LedgerWinAmount.String()).
			Int("games", len(ids)).
			Msg("ledger and game results disagree")
	}
	return out, nil
}

func (a *Aggregator) fail(err error) error {
	metricTotalsErrors.Add(1)
	return err
}

// AdminWinnings lists the admin's ledger entries newest first, optionally
// bounded by creation time. An empty result is NotFound.
func (a *Aggregator) AdminWinnings(ctx context.Context, adminID string, from, to *time.Time) ([]store.AdminWinning, error) {
	adminID = strings.TrimSpace(adminID)
	if adminID == "" {
		return nil, apperr.InvalidInput("admin_id is required")
	}
	rows, err := a.store.ListWinnings(ctx, store.WinningFilter{AdminID: adminID, From: from, To: to}, maxWinningRows, 0)
	if err != nil {
		return nil, apperr.Internal("admin winnings", err)
	}
	if len(rows) == 0 {
		return nil, apperr.NotFound("winnings")
	}
	return rows, nil
}
