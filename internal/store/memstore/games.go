package memstore

import (
	"context"
	"errors"
	"sort"

	"card-admin/internal/store"

	"github.com/shopspring/decimal"
)

func cloneGame(g *store.Game) store.Game {
	cp := *g
	cp.Bets = make([]store.Bet, len(g.Bets))
	for i, b := range g.Bets {
		cp.Bets[i] = store.Bet{AdminID: b.AdminID, Stakes: append([]store.Stake(nil), b.Stakes...)}
	}
	return cp
}

func (s *Store) CreateGame(_ context.Context, g *store.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if g.GameID == "" {
		g.GameID = store.NewID()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = s.now()
	}
	for _, existing := range s.games {
		if existing.GameID == g.GameID {
			return errors.New("game already exists")
		}
	}
	cp := cloneGame(g)
	s.games = append(s.games, &cp)
	return nil
}

func (s *Store) GetGame(_ context.Context, gameID string) (*store.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.games {
		if g.GameID == gameID {
			cp := cloneGame(g)
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) GetLatestGame(_ context.Context) (*store.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var latest *store.Game
	for _, g := range s.games {
		if latest == nil || g.CreatedAt.After(latest.CreatedAt) ||
			(g.CreatedAt.Equal(latest.CreatedAt) && g.GameNo > latest.GameNo) {
			latest = g
		}
	}
	if latest == nil {
		return nil, store.ErrNotFound
	}
	return &store.Game{GameID: latest.GameID, GameNo: latest.GameNo, CreatedAt: latest.CreatedAt}, nil
}

func (s *Store) ListGamesByAdmin(_ context.Context, f store.GameFilter) ([]store.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []store.Game{}
	for _, g := range s.games {
		if f.From != nil && g.CreatedAt.Before(*f.From) {
			continue
		}
		if f.To != nil && g.CreatedAt.After(*f.To) {
			continue
		}
		for _, b := range g.Bets {
			if b.AdminID == f.AdminID {
				out = append(out, cloneGame(g))
				break
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].GameNo < out[j].GameNo
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) AppendWinningCard(_ context.Context, gameID string, cardNo int, multiplier decimal.Decimal) (*store.WinningCard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cardSeq++
	c := store.WinningCard{Seq: s.cardSeq, GameID: gameID, CardNo: cardNo, Multiplier: multiplier, CreatedAt: s.now()}
	s.cards = append(s.cards, c)
	return &c, nil
}

func (s *Store) ListWinningCards(ctx context.Context, gameID string) ([]store.WinningCard, error) {
	return s.ListWinningCardsForGames(ctx, []string{gameID})
}

func (s *Store) ListWinningCardsForGames(_ context.Context, gameIDs []string) ([]store.WinningCard, error) {
	want := toSet(gameIDs)
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []store.WinningCard{}
	for _, c := range s.cards {
		if _, ok := want[c.GameID]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Store) UpsertGameResult(_ context.Context, r store.GameResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.Winners = append([]store.GameWinner(nil), r.Winners...)
	r.UpdatedAt = s.now()
	s.results[r.GameID] = r
	return nil
}

func (s *Store) ListGameResultsForAdmin(_ context.Context, gameIDs []string, adminID string) ([]store.GameResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []store.GameResult{}
	for _, id := range gameIDs {
		r, ok := s.results[id]
		if !ok {
			continue
		}
		for _, w := range r.Winners {
			if w.AdminID == adminID {
				r.Winners = append([]store.GameWinner(nil), r.Winners...)
				out = append(out, r)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GameID < out[j].GameID })
	return out, nil
}

func toSet(ids []string) map[string]struct{} {
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}
