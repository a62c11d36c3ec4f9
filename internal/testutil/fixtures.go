package testutil

import (
	"context"
	"testing"
	"time"

	"card-admin/internal/store"

	"github.com/shopspring/decimal"
)

// GameWriter is satisfied by both the Postgres store and memstore.
type GameWriter interface {
	CreateAdmin(ctx context.Context, name, email string, wallet decimal.Decimal) (string, error)
	CreateGame(ctx context.Context, g *store.Game) error
	AppendWinningCard(ctx context.Context, gameID string, cardNo int, multiplier decimal.Decimal) (*store.WinningCard, error)
}

func Stake(card int, amount int64) store.Stake {
	return store.Stake{CardNo: card, Amount: decimal.NewFromInt(amount)}
}

func Bet(adminID string, stakes ...store.Stake) store.Bet {
	return store.Bet{AdminID: adminID, Stakes: stakes}
}

func MustCreateAdmin(t *testing.T, w GameWriter, name string, wallet int64) string {
	t.Helper()
	id, err := w.CreateAdmin(context.Background(), name, name+"@example.com", decimal.NewFromInt(wallet))
	if err != nil {
		t.Fatalf("create admin %s: %v", name, err)
	}
	return id
}

// MustCreateGame stores a game placed at createdAt. A zero createdAt means now.
func MustCreateGame(t *testing.T, w GameWriter, gameNo int64, createdAt time.Time, bets ...store.Bet) *store.Game {
	t.Helper()
	g := &store.Game{GameNo: gameNo, CreatedAt: createdAt, Bets: bets}
	if err := w.CreateGame(context.Background(), g); err != nil {
		t.Fatalf("create game %d: %v", gameNo, err)
	}
	return g
}

func MustAppendCard(t *testing.T, w GameWriter, gameID string, cardNo int, multiplier int64) {
	t.Helper()
	if _, err := w.AppendWinningCard(context.Background(), gameID, cardNo, decimal.NewFromInt(multiplier)); err != nil {
		t.Fatalf("append winning card: %v", err)
	}
}
