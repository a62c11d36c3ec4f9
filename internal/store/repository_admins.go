package store

import (
	"context"

	"github.com/shopspring/decimal"
)

const adminColumns = `admin_id, name, email, wallet, is_verified, created_at`

func (s *Store) CreateAdmin(ctx context.Context, name, email string, wallet decimal.Decimal) (string, error) {
	id := NewAdminID()
	_, err := s.Pool.Exec(ctx, `INSERT INTO admins (admin_id, name, email, wallet) VALUES ($1,$2,$3,$4)`, id, name, email, wallet)
	return id, err
}

// EnsureAdmin returns the id of the admin with email, creating it when absent.
func (s *Store) EnsureAdmin(ctx context.Context, name, email string, wallet decimal.Decimal) (string, error) {
	var id string
	err := s.Pool.QueryRow(ctx, `
		INSERT INTO admins (admin_id, name, email, wallet) VALUES ($1,$2,$3,$4)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING admin_id
	`, NewAdminID(), name, email, wallet).Scan(&id)
	return id, err
}

func (s *Store) GetAdmin(ctx context.Context, adminID string) (*Admin, error) {
	row := s.Pool.QueryRow(ctx, `SELECT `+adminColumns+` FROM admins WHERE admin_id = $1`, adminID)
	var a Admin
	if err := row.Scan(&a.AdminID, &a.Name, &a.Email, &a.Wallet, &a.IsVerified, &a.CreatedAt); err != nil {
		return nil, mapNotFound(err)
	}
	return &a, nil
}

func (s *Store) ListAdmins(ctx context.Context, limit, offset int) ([]Admin, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.Pool.Query(ctx, `SELECT `+adminColumns+` FROM admins ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Admin{}
	for rows.Next() {
		var a Admin
		if err := rows.Scan(&a.AdminID, &a.Name, &a.Email, &a.Wallet, &a.IsVerified, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) GetWalletBalance(ctx context.Context, adminID string) (decimal.Decimal, error) {
	var bal decimal.Decimal
	if err := s.Pool.QueryRow(ctx, `SELECT wallet FROM admins WHERE admin_id = $1`, adminID).Scan(&bal); err != nil {
		return decimal.Zero, mapNotFound(err)
	}
	return bal, nil
}

// IncrementWallet adds amount to the admin's wallet in a single statement and
// returns the new balance.
func (s *Store) IncrementWallet(ctx context.Context, adminID string, amount decimal.Decimal) (decimal.Decimal, error) {
	var bal decimal.Decimal
	err := s.Pool.QueryRow(ctx, `UPDATE admins SET wallet = wallet + $2 WHERE admin_id = $1 RETURNING wallet`, adminID, amount).Scan(&bal)
	if err != nil {
		return decimal.Zero, mapNotFound(err)
	}
	return bal, nil
}
