// Package memstore is an in-process implementation of the store methods the
// settlement, reporting and admin services use. It backs STORE_DRIVER=memory
// and the unit tests.
package memstore

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"card-admin/internal/store"

	"github.com/shopspring/decimal"
)

type Store struct {
	mu       sync.RWMutex
	now      func() time.Time
	admins   map[string]*store.Admin
	games    []*store.Game
	cards    []store.WinningCard
	cardSeq  int64
	winnings []store.AdminWinning
	results  map[string]store.GameResult
}

func New() *Store {
	return &Store{
		now:     func() time.Time { return time.Now().UTC() },
		admins:  make(map[string]*store.Admin),
		results: make(map[string]store.GameResult),
	}
}

// SetClock replaces the time source used for generated timestamps.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Close() {}

func (s *Store) CreateAdmin(_ context.Context, name, email string, wallet decimal.Decimal) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.admins {
		if strings.EqualFold(a.Email, email) {
			return "", errors.New("email already in use")
		}
	}
	id := store.NewAdminID()
	s.admins[id] = &store.Admin{AdminID: id, Name: name, Email: email, Wallet: wallet, CreatedAt: s.now()}
	return id, nil
}

func (s *Store) EnsureAdmin(ctx context.Context, name, email string, wallet decimal.Decimal) (string, error) {
	s.mu.RLock()
	for _, a := range s.admins {
		if strings.EqualFold(a.Email, email) {
			s.mu.RUnlock()
			return a.AdminID, nil
		}
	}
	s.mu.RUnlock()
	return s.CreateAdmin(ctx, name, email, wallet)
}

func (s *Store) GetAdmin(_ context.Context, adminID string) (*store.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.admins[adminID]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (s *Store) ListAdmins(_ context.Context, limit, offset int) ([]store.Admin, error) {
	if limit <= 0 {
		limit = 50
	}
	s.mu.RLock()
	out := make([]store.Admin, 0, len(s.admins))
	for _, a := range s.admins {
		out = append(out, *a)
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return page(out, limit, offset), nil
}

func (s *Store) GetWalletBalance(_ context.Context, adminID string) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.admins[adminID]
	if !ok {
		return decimal.Zero, store.ErrNotFound
	}
	return a.Wallet, nil
}

func (s *Store) IncrementWallet(_ context.Context, adminID string, amount decimal.Decimal) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.admins[adminID]
	if !ok {
		return decimal.Zero, store.ErrNotFound
	}
	a.Wallet = a.Wallet.Add(amount)
	return a.Wallet, nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
