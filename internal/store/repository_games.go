package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// CreateGame inserts a game and its bets. Empty GameID and zero CreatedAt
// are filled in.
func (s *Store) CreateGame(ctx context.Context, g *Game) error {
	if g.GameID == "" {
		g.GameID = NewID()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now().UTC()
	}
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `INSERT INTO games (game_id, game_no, created_at) VALUES ($1,$2,$3)`, g.GameID, g.GameNo, g.CreatedAt); err != nil {
		return err
	}
	for i, b := range g.Bets {
		stakes, err := json.Marshal(b.Stakes)
		if err != nil {
			return fmt.Errorf("encode stakes: %w", err)
		}
		if _, err := tx.Exec(ctx, `INSERT INTO bets (game_id, admin_id, position, stakes) VALUES ($1,$2,$3,$4::jsonb)`, g.GameID, b.AdminID, i, string(stakes)); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (s *Store) GetGame(ctx context.Context, gameID string) (*Game, error) {
	var g Game
	err := s.Pool.QueryRow(ctx, `SELECT game_id, game_no, created_at FROM games WHERE game_id = $1`, gameID).Scan(&g.GameID, &g.GameNo, &g.CreatedAt)
	if err != nil {
		return nil, mapNotFound(err)
	}
	bets, err := s.loadBets(ctx, []string{gameID})
	if err != nil {
		return nil, err
	}
	g.Bets = bets[gameID]
	return &g, nil
}

// GetLatestGame returns the most recently created game without its bets.
func (s *Store) GetLatestGame(ctx context.Context) (*Game, error) {
	var g Game
	err := s.Pool.QueryRow(ctx, `SELECT game_id, game_no, created_at FROM games ORDER BY created_at DESC, game_no DESC LIMIT 1`).Scan(&g.GameID, &g.GameNo, &g.CreatedAt)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &g, nil
}

// ListGamesByAdmin returns games holding at least one bet from f.AdminID,
// oldest first, with all of their bets.
func (s *Store) ListGamesByAdmin(ctx context.Context, f GameFilter) ([]Game, error) {
	w := &whereBuilder{}
	w.add("g.game_id IN (SELECT game_id FROM bets WHERE admin_id = $%d)", f.AdminID)
	if f.From != nil {
		w.add("g.created_at >= $%d", timeParam(f.From))
	}
	if f.To != nil {
		w.add("g.created_at <= $%d", timeParam(f.To))
	}
	rows, err := s.Pool.Query(ctx, `SELECT g.game_id, g.game_no, g.created_at FROM games g`+w.String()+` ORDER BY g.created_at ASC, g.game_no ASC`, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Game{}
	ids := []string{}
	for rows.Next() {
		var g Game
		if err := rows.Scan(&g.GameID, &g.GameNo, &g.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, g)
		ids = append(ids, g.GameID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return out, nil
	}
	bets, err := s.loadBets(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Bets = bets[out[i].GameID]
	}
	return out, nil
}

func (s *Store) loadBets(ctx context.Context, gameIDs []string) (map[string][]Bet, error) {
	rows, err := s.Pool.Query(ctx, `SELECT game_id, admin_id, stakes FROM bets WHERE game_id = ANY($1) ORDER BY game_id, position`, gameIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[string][]Bet, len(gameIDs))
	for rows.Next() {
		var (
			gameID string
			b      Bet
			raw    []byte
		)
		if err := rows.Scan(&gameID, &b.AdminID, &raw); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &b.Stakes); err != nil {
			return nil, fmt.Errorf("decode stakes for game %s: %w", gameID, err)
		}
		out[gameID] = append(out[gameID], b)
	}
	return out, rows.Err()
}
