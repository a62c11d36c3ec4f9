// Package settlement turns winning-card selections into ledger entries.
package settlement

import (
	"context"
	"errors"
	"strings"

	"card-admin/internal/apperr"
	"card-admin/internal/store"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type Store interface {
	GetGame(ctx context.Context, gameID string) (*store.Game, error)
	GetAdmin(ctx context.Context, adminID string) (*store.Admin, error)
	ListWinningCards(ctx context.Context, gameID string) ([]store.WinningCard, error)
	ListGamesByAdmin(ctx context.Context, f store.GameFilter) ([]store.Game, error)
	ListWinningCardsForGames(ctx context.Context, gameIDs []string) ([]store.WinningCard, error)
}

type Ledger interface {
	RecordSettlement(ctx context.Context, adminID, gameID string, amount decimal.Decimal) (*store.AdminWinning, bool, error)
	RecordBackfill(ctx context.Context, adminID, gameID string, amount decimal.Decimal) (*store.AdminWinning, error)
	CreditManual(ctx context.Context, adminID, gameID string, amount decimal.Decimal) (*store.AdminWinning, decimal.Decimal, error)
}

type Engine struct {
	store  Store
	ledger Ledger
	locks  *keyedMutex
}

func NewEngine(st Store, l Ledger) *Engine {
	return &Engine{store: st, ledger: l, locks: newKeyedMutex()}
}

// SettleResult describes one SettleGame run. Skipped counts admins that
// already had a settlement entry for the game.
type SettleResult struct {
	GameID     string               `json:"game_id"`
	CardNo     int                  `json:"card_no"`
	Multiplier decimal.Decimal      `json:"multiplier"`
	Entries    []store.AdminWinning `json:"entries"`
	Skipped    int                  `json:"skipped"`
}

type BackfillResult struct {
	AdminID       string               `json:"admin_id"`
	TotalWinnings decimal.Decimal      `json:"total_winnings"`
	Entries       []store.AdminWinning `json:"entries"`
}

// SettleGame pays every admin with a stake on the game's winning card. It
// never touches wallets. Entries written before a failure are kept and the
// partial result is returned alongside the error; a later run completes the
// game without paying anyone twice.
func (e *Engine) SettleGame(ctx context.Context, gameID string) (*SettleResult, error) {
	gameID = strings.TrimSpace(gameID)
	if gameID == "" {
		return nil, apperr.InvalidInput("game_id is required")
	}
	unlock := e.locks.Lock(gameID)
	defer unlock()
	metricSettleTotal.Add(1)

	g, err := e.store.GetGame(ctx, gameID)
	if err != nil {
		metricSettleErrors.Add(1)
		return nil, apperr.FromStore("settle game", "game", err)
	}
	cards, err := e.store.ListWinningCards(ctx, gameID)
	if err != nil {
		metricSettleErrors.Add(1)
		return nil, apperr.Internal("settle game", err)
	}
	card, ok := WinningCard(cards)
	if !ok {
		return nil, apperr.NotFound("winning card")
	}

	res := &SettleResult{GameID: gameID, CardNo: card.CardNo, Multiplier: card.Multiplier, Entries: []store.AdminWinning{}}
	for _, p := range gamePayouts(g, card, "") {
		w, written, err := e.ledger.RecordSettlement(ctx, p.AdminID, gameID, p.Amount)
		if err != nil {
			metricSettleErrors.Add(1)
			log.Error().Err(err).
				Str("game_id", gameID).
				Str("admin_id", p.AdminID).
				Str("amount", p.Amount.String()).
				Int("written", len(res.Entries)).
				Msg("settlement entry write failed")
			return res, apperr.Internal("settle game", err)
		}
		if !written {
			res.Skipped++
			metricEntriesSkipped.Add(1)
			continue
		}
		res.Entries = append(res.Entries, *w)
		metricEntriesWritten.Add(1)
	}
	log.Info().
		Str("game_id", gameID).
		Int("card_no", card.CardNo).
		Str("multiplier", card.Multiplier.String()).
		Int("entries", len(res.Entries)).
		Int("skipped", res.Skipped).
		Msg("game settled")
	return res, nil
}

// AddAdminWinning records a manual winning and credits the admin's wallet in
// the same transaction. It returns the new balance.
func (e *Engine) AddAdminWinning(ctx context.Context, adminID, gameID string, amount decimal.Decimal) (*store.AdminWinning, decimal.Decimal, error) {
	adminID = strings.TrimSpace(adminID)
	gameID = strings.TrimSpace(gameID)
	if adminID == "" || gameID == "" || !amount.IsPositive() {
		return nil, decimal.Zero, apperr.InvalidInput("admin_id, game_id and a positive amount are required")
	}
	metricManualTotal.Add(1)
	w, bal, err := e.ledger.CreditManual(ctx, adminID, gameID, amount)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Error().Err(err).Str("admin_id", adminID).Str("game_id", gameID).Msg("manual winning failed")
		}
		return nil, decimal.Zero, apperr.FromStore("add admin winning", "admin", err)
	}
	log.Info().
		Str("admin_id", adminID).
		Str("game_id", gameID).
		Str("amount", amount.String()).
		Str("balance", bal.String()).
		Msg("manual winning credited")
	return w, bal, nil
}

// BackfillAdminWinnings recomputes the admin's payout for every game they bet
// in and appends one entry per paying game. Existing entries are not
// consulted, so running it twice doubles the rows.
func (e *Engine) BackfillAdminWinnings(ctx context.Context, adminID string) (*BackfillResult, error) {
	adminID = strings.TrimSpace(adminID)
	if adminID == "" {
		return nil, apperr.InvalidInput("admin_id is required")
	}
	if _, err := e.store.GetAdmin(ctx, adminID); err != nil {
		return nil, apperr.FromStore("backfill winnings", "admin", err)
	}
	metricBackfillTotal.Add(1)

	games, err := e.store.ListGamesByAdmin(ctx, store.GameFilter{AdminID: adminID})
	if err != nil {
		return nil, apperr.Internal("backfill winnings", err)
	}
	ids := make([]string, 0, len(games))
	for _, g := range games {
		ids = append(ids, g.GameID)
	}
	cards, err := e.store.ListWinningCardsForGames(ctx, ids)
	if err != nil {
		return nil, apperr.Internal("backfill winnings", err)
	}
	byGame := groupCards(cards)

	res := &BackfillResult{AdminID: adminID, TotalWinnings: decimal.Zero, Entries: []store.AdminWinning{}}
	for i := range games {
		g := &games[i]
		card, ok := WinningCard(byGame[g.GameID])
		if !ok {
			continue
		}
		for _, p := range gamePayouts(g, card, adminID) {
			w, err := e.ledger.RecordBackfill(ctx, adminID, g.GameID, p.Amount)
			if err != nil {
				log.Error().Err(err).Str("admin_id", adminID).Str("game_id", g.GameID).Msg("backfill entry write failed")
				return nil, apperr.Internal("backfill winnings", err)
			}
			res.Entries = append(res.Entries, *w)
			res.TotalWinnings = res.TotalWinnings.Add(p.Amount)
			metricBackfillEntries.Add(1)
		}
	}
	log.Info().
		Str("admin_id", adminID).
		Int("games", len(games)).
		Int("entries", len(res.Entries)).
		Str("total", res.TotalWinnings.String()).
		Msg("winnings backfilled")
	return res, nil
}

func groupCards(cards []store.WinningCard) map[string][]store.WinningCard {
	out := make(map[string][]store.WinningCard)
	for _, c := range cards {
		out[c.GameID] = append(out[c.GameID], c)
	}
	return out
}
