package memstore

import (
	"context"
	"errors"
	"sort"

	"card-admin/internal/store"

	"github.com/shopspring/decimal"
)

func (s *Store) prepare(w *store.AdminWinning) {
	if w.ID == "" {
		w.ID = store.NewID()
	}
	if w.CreatedAt.IsZero() {
		w.CreatedAt = s.now()
	}
}

// InsertWinning mirrors the partial unique index on settlement rows.
func (s *Store) InsertWinning(_ context.Context, w *store.AdminWinning) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w.Source == store.WinningSourceSettlement {
		for _, e := range s.winnings {
			if e.Source == store.WinningSourceSettlement && e.AdminID == w.AdminID && e.GameID == w.GameID {
				return false, nil
			}
		}
	}
	s.prepare(w)
	s.winnings = append(s.winnings, *w)
	return true, nil
}

func (s *Store) CreditWinning(_ context.Context, w *store.AdminWinning) (decimal.Decimal, error) {
	if !w.WinningAmount.IsPositive() {
		return decimal.Zero, errors.New("amount must be positive")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.admins[w.AdminID]
	if !ok {
		return decimal.Zero, store.ErrNotFound
	}
	s.prepare(w)
	s.winnings = append(s.winnings, *w)
	a.Wallet = a.Wallet.Add(w.WinningAmount)
	return a.Wallet, nil
}

func (s *Store) match(f store.WinningFilter) []store.AdminWinning {
	var games map[string]struct{}
	if f.GameIDs != nil {
		games = toSet(f.GameIDs)
	}
	out := []store.AdminWinning{}
	for _, e := range s.winnings {
		if f.AdminID != "" && e.AdminID != f.AdminID {
			continue
		}
		if games != nil {
			if _, ok := games[e.GameID]; !ok {
				continue
			}
		}
		if f.Source != "" && e.Source != f.Source {
			continue
		}
		if f.From != nil && e.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && e.CreatedAt.After(*f.To) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (s *Store) ListWinnings(_ context.Context, f store.WinningFilter, limit, offset int) ([]store.AdminWinning, error) {
	if limit <= 0 {
		limit = 50
	}
	s.mu.RLock()
	out := s.match(f)
	s.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return page(out, limit, offset), nil
}

func (s *Store) SumWinnings(_ context.Context, f store.WinningFilter) (decimal.Decimal, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := decimal.Zero
	rows := s.match(f)
	for _, e := range rows {
		total = total.Add(e.WinningAmount)
	}
	return total, len(rows), nil
}
