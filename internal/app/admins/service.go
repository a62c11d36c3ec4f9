// Package admins serves read-only views of admins and the running game.
package admins

import (
	"context"
	"strings"

	"card-admin/internal/apperr"
	"card-admin/internal/store"
)

type Store interface {
	ListAdmins(ctx context.Context, limit, offset int) ([]store.Admin, error)
	GetAdmin(ctx context.Context, adminID string) (*store.Admin, error)
	GetLatestGame(ctx context.Context) (*store.Game, error)
}

type Service struct {
	store Store
}

func NewService(st Store) *Service {
	return &Service{store: st}
}

func (s *Service) List(ctx context.Context, limit, offset int) (*ListResponse, error) {
	items, err := s.store.ListAdmins(ctx, limit, offset)
	if err != nil {
		return nil, apperr.Internal("list admins", err)
	}
	out := make([]AdminItem, 0, len(items))
	for _, it := range items {
		out = append(out, AdminItem{
			AdminID:   it.AdminID,
			Name:      it.Name,
			Email:     it.Email,
			Wallet:    it.Wallet,
			CreatedAt: it.CreatedAt,
		})
	}
	return &ListResponse{Items: out, Limit: limit, Offset: offset}, nil
}

func (s *Service) Profile(ctx context.Context, adminID string) (*Profile, error) {
	adminID = strings.TrimSpace(adminID)
	if adminID == "" {
		return nil, apperr.InvalidInput("admin_id is required")
	}
	a, err := s.store.GetAdmin(ctx, adminID)
	if err != nil {
		return nil, apperr.FromStore("admin profile", "admin", err)
	}
	return &Profile{
		AdminID:    a.AdminID,
		Name:       a.Name,
		Email:      a.Email,
		Wallet:     a.Wallet,
		IsVerified: a.IsVerified,
		JoinedAt:   a.CreatedAt,
	}, nil
}

// CurrentGame returns the most recently created game.
func (s *Service) CurrentGame(ctx context.Context) (*CurrentGame, error) {
	g, err := s.store.GetLatestGame(ctx)
	if err != nil {
		return nil, apperr.FromStore("current game", "game", err)
	}
	return &CurrentGame{GameID: g.GameID, GameNo: g.GameNo, CreatedAt: g.CreatedAt}, nil
}
