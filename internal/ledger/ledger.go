// Package ledger records admin winnings. Every write is an append; wallet
// balances only move through CreditManual.
package ledger

import (
	"context"

	"card-admin/internal/store"

	"github.com/shopspring/decimal"
)

// Store is the slice of persistence the ledger writes through.
type Store interface {
	InsertWinning(ctx context.Context, w *store.AdminWinning) (bool, error)
	CreditWinning(ctx context.Context, w *store.AdminWinning) (decimal.Decimal, error)
	ListWinnings(ctx context.Context, f store.WinningFilter, limit, offset int) ([]store.AdminWinning, error)
	SumWinnings(ctx context.Context, f store.WinningFilter) (decimal.Decimal, int, error)
}

type Ledger struct {
	Store Store
}

func New(s Store) *Ledger {
	return &Ledger{Store: s}
}

// RecordSettlement appends a settlement payout. ok is false when the game was
// already settled for the admin and nothing was written.
func (l *Ledger) RecordSettlement(ctx context.Context, adminID, gameID string, amount decimal.Decimal) (*store.AdminWinning, bool, error) {
	return l.insert(ctx, adminID, gameID, amount, store.WinningSourceSettlement)
}

// RecordBackfill appends unconditionally.
func (l *Ledger) RecordBackfill(ctx context.Context, adminID, gameID string, amount decimal.Decimal) (*store.AdminWinning, error) {
	w, _, err := l.insert(ctx, adminID, gameID, amount, store.WinningSourceBackfill)
	return w, err
}

func (l *Ledger) insert(ctx context.Context, adminID, gameID string, amount decimal.Decimal, source string) (*store.AdminWinning, bool, error) {
	w := &store.AdminWinning{AdminID: adminID, GameID: gameID, WinningAmount: amount, Source: source}
	ok, err := l.Store.InsertWinning(ctx, w)
	if err != nil || !ok {
		return nil, ok, err
	}
	return w, true, nil
}

// CreditManual appends a manual entry and credits the wallet atomically.
func (l *Ledger) CreditManual(ctx context.Context, adminID, gameID string, amount decimal.Decimal) (*store.AdminWinning, decimal.Decimal, error) {
	w := &store.AdminWinning{AdminID: adminID, GameID: gameID, WinningAmount: amount, Source: store.WinningSourceManual}
	bal, err := l.Store.CreditWinning(ctx, w)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return w, bal, nil
}

func (l *Ledger) List(ctx context.Context, f store.WinningFilter, limit, offset int) ([]store.AdminWinning, error) {
	return l.Store.ListWinnings(ctx, f, limit, offset)
}

func (l *Ledger) Sum(ctx context.Context, f store.WinningFilter) (decimal.Decimal, int, error) {
	return l.Store.SumWinnings(ctx, f)
}
