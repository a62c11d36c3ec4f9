package admins

import (
	"context"
	"errors"
	"testing"
	"time"

	"card-admin/internal/apperr"
	"card-admin/internal/store/memstore"
	"card-admin/internal/testutil"
)

func TestProfile(t *testing.T) {
	st := memstore.New()
	id := testutil.MustCreateAdmin(t, st, "ops", 1000)
	svc := NewService(st)

	p, err := svc.Profile(context.Background(), id)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if p.Name != "ops" || p.Email != "ops@example.com" || p.Wallet.IntPart() != 1000 {
		t.Fatalf("unexpected profile: %+v", p)
	}
	if _, err := svc.Profile(context.Background(), "ghost"); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.Profile(context.Background(), ""); !errors.Is(err, apperr.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestListPaginates(t *testing.T) {
	st := memstore.New()
	for _, name := range []string{"a", "b", "c"} {
		testutil.MustCreateAdmin(t, st, name, 0)
	}
	resp, err := NewService(st).List(context.Background(), 2, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(resp.Items) != 2 || resp.Limit != 2 {
		t.Fatalf("unexpected page: %+v", resp)
	}
	resp, _ = NewService(st).List(context.Background(), 2, 2)
	if len(resp.Items) != 1 {
		t.Fatalf("expected one admin on second page, got %d", len(resp.Items))
	}
}

func TestCurrentGame(t *testing.T) {
	st := memstore.New()
	svc := NewService(st)
	if _, err := svc.CurrentGame(context.Background()); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found without games, got %v", err)
	}
	base := time.Date(2026, 1, 2, 3, 0, 0, 0, time.UTC)
	testutil.MustCreateGame(t, st, 7, base)
	latest := testutil.MustCreateGame(t, st, 8, base.Add(time.Minute))

	got, err := svc.CurrentGame(context.Background())
	if err != nil {
		t.Fatalf("current game: %v", err)
	}
	if got.GameID != latest.GameID || got.GameNo != 8 {
		t.Fatalf("unexpected current game: %+v", got)
	}
}
