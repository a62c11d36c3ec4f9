package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const winningColumns = `id, admin_id, game_id, winning_amount, source, created_at`

func prepareWinning(w *AdminWinning) {
	if w.ID == "" {
		w.ID = NewID()
	}
	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now().UTC()
	}
}

// InsertWinning appends w to the ledger. It reports false without error when
// a settlement row for the same admin and game already exists.
func (s *Store) InsertWinning(ctx context.Context, w *AdminWinning) (bool, error) {
	prepareWinning(w)
	var id string
	err := s.Pool.QueryRow(ctx, `
		INSERT INTO admin_winnings (`+winningColumns+`) VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (admin_id, game_id) WHERE source = 'settlement' DO NOTHING
		RETURNING id
	`, w.ID, w.AdminID, w.GameID, w.WinningAmount, w.Source, w.CreatedAt).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreditWinning appends w and increments the admin's wallet in one
// transaction, returning the new balance.
func (s *Store) CreditWinning(ctx context.Context, w *AdminWinning) (decimal.Decimal, error) {
	if !w.WinningAmount.IsPositive() {
		return decimal.Zero, errors.New("amount must be positive")
	}
	prepareWinning(w)
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return decimal.Zero, err
	}
	defer tx.Rollback(ctx)

	var bal decimal.Decimal
	err = tx.QueryRow(ctx, `UPDATE admins SET wallet = wallet + $2 WHERE admin_id = $1 RETURNING wallet`, w.AdminID, w.WinningAmount).Scan(&bal)
	if err != nil {
		return decimal.Zero, mapNotFound(err)
	}
	if _, err := tx.Exec(ctx, `INSERT INTO admin_winnings (`+winningColumns+`) VALUES ($1,$2,$3,$4,$5,$6)`,
		w.ID, w.AdminID, w.GameID, w.WinningAmount, w.Source, w.CreatedAt); err != nil {
		return decimal.Zero, err
	}
	if err := tx.Commit(ctx); err != nil {
		return decimal.Zero, err
	}
	return bal, nil
}

func winningWhere(f WinningFilter) *whereBuilder {
	w := &whereBuilder{}
	if f.AdminID != "" {
		w.add("admin_id = $%d", f.AdminID)
	}
	if f.GameIDs != nil {
		w.add("game_id = ANY($%d)", f.GameIDs)
	}
	if f.Source != "" {
		w.add("source = $%d", f.Source)
	}
	if f.From != nil {
		w.add("created_at >= $%d", timeParam(f.From))
	}
	if f.To != nil {
		w.add("created_at <= $%d", timeParam(f.To))
	}
	return w
}

// ListWinnings returns ledger rows newest first. limit <= 0 means 50.
func (s *Store) ListWinnings(ctx context.Context, f WinningFilter, limit, offset int) ([]AdminWinning, error) {
	if limit <= 0 {
		limit = 50
	}
	w := winningWhere(f)
	q := `SELECT ` + winningColumns + ` FROM admin_winnings` + w.String()
	q += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT %s OFFSET %s", w.next(limit), w.next(offset))
	rows, err := s.Pool.Query(ctx, q, w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []AdminWinning{}
	for rows.Next() {
		var e AdminWinning
		if err := rows.Scan(&e.ID, &e.AdminID, &e.GameID, &e.WinningAmount, &e.Source, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// SumWinnings aggregates matching ledger rows.
func (s *Store) SumWinnings(ctx context.Context, f WinningFilter) (decimal.Decimal, int, error) {
	w := winningWhere(f)
	var (
		total decimal.Decimal
		count int
	)
	err := s.Pool.QueryRow(ctx, `SELECT COALESCE(SUM(winning_amount), 0), COUNT(1) FROM admin_winnings`+w.String(), w.args...).Scan(&total, &count)
	if err != nil {
		return decimal.Zero, 0, err
	}
	return total, count, nil
}
