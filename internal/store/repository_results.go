package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// UpsertGameResult stores the finalized winners snapshot for a game.
func (s *Store) UpsertGameResult(ctx context.Context, r GameResult) error {
	winners, err := json.Marshal(r.Winners)
	if err != nil {
		return fmt.Errorf("encode winners: %w", err)
	}
	_, err = s.Pool.Exec(ctx, `
		INSERT INTO admin_game_results (game_id, winners) VALUES ($1,$2::jsonb)
		ON CONFLICT (game_id) DO UPDATE SET winners = EXCLUDED.winners, updated_at = now()
	`, r.GameID, string(winners))
	return err
}

// ListGameResultsForAdmin returns snapshots among gameIDs that list adminID
// as a winner.
func (s *Store) ListGameResultsForAdmin(ctx context.Context, gameIDs []string, adminID string) ([]GameResult, error) {
	if len(gameIDs) == 0 {
		return []GameResult{}, nil
	}
	rows, err := s.Pool.Query(ctx, `
		SELECT game_id, winners, updated_at FROM admin_game_results
		WHERE game_id = ANY($1) AND winners @> jsonb_build_array(jsonb_build_object('admin_id', $2::text))
		ORDER BY game_id
	`, gameIDs, adminID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []GameResult{}
	for rows.Next() {
		var (
			r   GameResult
			raw []byte
		)
		if err := rows.Scan(&r.GameID, &raw, &r.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &r.Winners); err != nil {
			return nil, fmt.Errorf("decode winners for game %s: %w", r.GameID, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
