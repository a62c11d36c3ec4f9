package store

import (
	"context"

	"github.com/shopspring/decimal"
)

// AppendWinningCard records a selection for gameID. Selections are never
// rewritten; a later append supersedes earlier ones.
func (s *Store) AppendWinningCard(ctx context.Context, gameID string, cardNo int, multiplier decimal.Decimal) (*WinningCard, error) {
	c := WinningCard{GameID: gameID, CardNo: cardNo, Multiplier: multiplier}
	err := s.Pool.QueryRow(ctx, `
		INSERT INTO winning_cards (game_id, card_no, multiplier) VALUES ($1,$2,$3)
		RETURNING id, created_at
	`, gameID, cardNo, multiplier).Scan(&c.Seq, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListWinningCards returns the selection log for gameID in append order.
func (s *Store) ListWinningCards(ctx context.Context, gameID string) ([]WinningCard, error) {
	return s.ListWinningCardsForGames(ctx, []string{gameID})
}

func (s *Store) ListWinningCardsForGames(ctx context.Context, gameIDs []string) ([]WinningCard, error) {
	if len(gameIDs) == 0 {
		return []WinningCard{}, nil
	}
	rows, err := s.Pool.Query(ctx, `SELECT id, game_id, card_no, multiplier, created_at FROM winning_cards WHERE game_id = ANY($1) ORDER BY id ASC`, gameIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []WinningCard{}
	for rows.Next() {
		var c WinningCard
		if err := rows.Scan(&c.Seq, &c.GameID, &c.CardNo, &c.Multiplier, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
