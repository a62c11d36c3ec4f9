package store

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestCreateAndListGamesByAdmin(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	day := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	g1 := &Game{GameNo: 1, CreatedAt: day, Bets: []Bet{
		{AdminID: "a1", Stakes: []Stake{stake(3, 100), stake(5, 50)}},
		{AdminID: "a2", Stakes: []Stake{stake(3, 10)}},
	}}
	g2 := &Game{GameNo: 2, CreatedAt: day.Add(48 * time.Hour), Bets: []Bet{
		{AdminID: "a1", Stakes: []Stake{stake(7, 20)}},
	}}
	g3 := &Game{GameNo: 3, CreatedAt: day, Bets: []Bet{
		{AdminID: "a2", Stakes: []Stake{stake(1, 1)}},
	}}
	for _, g := range []*Game{g1, g2, g3} {
		if err := st.CreateGame(ctx, g); err != nil {
			t.Fatalf("create game: %v", err)
		}
	}

	got, err := st.GetGame(ctx, g1.GameID)
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if len(got.Bets) != 2 || got.Bets[0].AdminID != "a1" || len(got.Bets[0].Stakes) != 2 {
		t.Fatalf("unexpected bets: %+v", got.Bets)
	}
	if !got.Bets[0].Stakes[0].Amount.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("stake amount = %s, want 100", got.Bets[0].Stakes[0].Amount)
	}

	all, err := st.ListGamesByAdmin(ctx, GameFilter{AdminID: "a1"})
	if err != nil {
		t.Fatalf("list games: %v", err)
	}
	if len(all) != 2 || all[0].GameID != g1.GameID || all[1].GameID != g2.GameID {
		t.Fatalf("unexpected games: %+v", all)
	}

	from := day.Add(-time.Hour)
	to := day.Add(time.Hour)
	ranged, err := st.ListGamesByAdmin(ctx, GameFilter{AdminID: "a1", From: &from, To: &to})
	if err != nil {
		t.Fatalf("list ranged games: %v", err)
	}
	if len(ranged) != 1 || len(ranged[0].Bets) != 2 {
		t.Fatalf("expected g1 with both bets, got %+v", ranged)
	}

	latest, err := st.GetLatestGame(ctx)
	if err != nil {
		t.Fatalf("latest game: %v", err)
	}
	if latest.GameID != g2.GameID {
		t.Fatalf("latest = %s, want %s", latest.GameID, g2.GameID)
	}

	if _, err := st.GetGame(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWinningCardsKeepAppendOrder(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	if _, err := st.AppendWinningCard(ctx, "g1", 3, decimal.NewFromInt(5)); err != nil {
		t.Fatalf("append card: %v", err)
	}
	if _, err := st.AppendWinningCard(ctx, "g1", 7, decimal.NewFromInt(2)); err != nil {
		t.Fatalf("append card: %v", err)
	}
	cards, err := st.ListWinningCards(ctx, "g1")
	if err != nil {
		t.Fatalf("list cards: %v", err)
	}
	if len(cards) != 2 || cards[1].CardNo != 7 || cards[0].Seq >= cards[1].Seq {
		t.Fatalf("unexpected card log: %+v", cards)
	}
}
