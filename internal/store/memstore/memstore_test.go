package memstore

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"card-admin/internal/store"

	"github.com/shopspring/decimal"
)

func TestCreditWinningUpdatesWallet(t *testing.T) {
	ctx := context.Background()
	s := New()
	adminID, err := s.CreateAdmin(ctx, "ops", "ops@example.com", decimal.NewFromInt(1000))
	if err != nil {
		t.Fatalf("create admin: %v", err)
	}
	bal, err := s.CreditWinning(ctx, &store.AdminWinning{
		AdminID: adminID, GameID: "g1", WinningAmount: decimal.NewFromInt(500), Source: store.WinningSourceManual,
	})
	if err != nil {
		t.Fatalf("credit: %v", err)
	}
	if !bal.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("expected 1500, got %s", bal)
	}
	if _, err := s.CreditWinning(ctx, &store.AdminWinning{AdminID: "missing", GameID: "g1", WinningAmount: decimal.NewFromInt(1)}); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	total, count, _ := s.SumWinnings(ctx, store.WinningFilter{AdminID: adminID})
	if count != 1 || !total.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("unexpected ledger total=%s count=%d", total, count)
	}
}

func TestInsertWinningSettlementGuard(t *testing.T) {
	ctx := context.Background()
	s := New()
	row := func(source string) *store.AdminWinning {
		return &store.AdminWinning{AdminID: "a1", GameID: "g1", WinningAmount: decimal.NewFromInt(10), Source: source}
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	inserted := 0
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := s.InsertWinning(ctx, row(store.WinningSourceSettlement))
			if err != nil {
				t.Errorf("insert: %v", err)
				return
			}
			if ok {
				mu.Lock()
				inserted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if inserted != 1 {
		t.Fatalf("expected one settlement row, got %d", inserted)
	}

	for i := 0; i < 2; i++ {
		if ok, _ := s.InsertWinning(ctx, row(store.WinningSourceBackfill)); !ok {
			t.Fatalf("backfill rows are not deduplicated")
		}
	}
	_, count, _ := s.SumWinnings(ctx, store.WinningFilter{AdminID: "a1", GameIDs: []string{"g1"}})
	if count != 3 {
		t.Fatalf("expected 3 rows, got %d", count)
	}
}

func TestListGamesByAdminRange(t *testing.T) {
	ctx := context.Background()
	s := New()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, adminID := range []string{"a1", "a2", "a1"} {
		g := &store.Game{
			GameNo:    int64(i + 1),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
			Bets:      []store.Bet{{AdminID: adminID, Stakes: []store.Stake{{CardNo: 1, Amount: decimal.NewFromInt(5)}}}},
		}
		if err := s.CreateGame(ctx, g); err != nil {
			t.Fatalf("create game: %v", err)
		}
	}

	games, err := s.ListGamesByAdmin(ctx, store.GameFilter{AdminID: "a1"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(games) != 2 || games[0].GameNo != 1 || games[1].GameNo != 3 {
		t.Fatalf("unexpected games: %+v", games)
	}

	from := base.Add(30 * time.Minute)
	games, _ = s.ListGamesByAdmin(ctx, store.GameFilter{AdminID: "a1", From: &from})
	if len(games) != 1 || games[0].GameNo != 3 {
		t.Fatalf("unexpected ranged games: %+v", games)
	}

	latest, err := s.GetLatestGame(ctx)
	if err != nil || latest.GameNo != 3 {
		t.Fatalf("latest: %+v %v", latest, err)
	}
}

func TestWinningCardsKeepAppendOrder(t *testing.T) {
	ctx := context.Background()
	s := New()
	if _, err := s.AppendWinningCard(ctx, "g1", 3, decimal.NewFromInt(5)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := s.AppendWinningCard(ctx, "g2", 1, decimal.NewFromInt(1)); err != nil {
		t.Fatalf("append: %v", err)
	}
	last, _ := s.AppendWinningCard(ctx, "g1", 7, decimal.NewFromInt(2))

	cards, _ := s.ListWinningCards(ctx, "g1")
	if len(cards) != 2 || cards[1].Seq != last.Seq || cards[1].CardNo != 7 {
		t.Fatalf("unexpected cards: %+v", cards)
	}
}
