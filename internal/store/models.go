package store

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	WinningSourceSettlement = "settlement"
	WinningSourceManual     = "manual"
	WinningSourceBackfill   = "backfill"

	ResultStatusClaimed   = "claimed"
	ResultStatusUnclaimed = "unclaimed"
)

type Admin struct {
	AdminID    string
	Name       string
	Email      string
	Wallet     decimal.Decimal
	IsVerified bool
	CreatedAt  time.Time
}

// Game is one round with every bet placed in it, in placement order.
type Game struct {
	GameID    string
	GameNo    int64
	CreatedAt time.Time
	Bets      []Bet
}

type Bet struct {
	AdminID string
	Stakes  []Stake
}

type Stake struct {
	CardNo int             `json:"card_no"`
	Amount decimal.Decimal `json:"amount"`
}

// WinningCard is one entry of a game's selection log. Seq is the append
// order; the highest Seq for a game is authoritative.
type WinningCard struct {
	Seq        int64
	GameID     string
	CardNo     int
	Multiplier decimal.Decimal
	CreatedAt  time.Time
}

// AdminWinning is an immutable ledger row.
type AdminWinning struct {
	ID            string          `json:"id"`
	AdminID       string          `json:"admin_id"`
	GameID        string          `json:"game_id"`
	WinningAmount decimal.Decimal `json:"winning_amount"`
	Source        string          `json:"source"`
	CreatedAt     time.Time       `json:"created_at"`
}

type GameResult struct {
	GameID    string
	Winners   []GameWinner
	UpdatedAt time.Time
}

type GameWinner struct {
	AdminID   string          `json:"admin_id"`
	WinAmount decimal.Decimal `json:"win_amount"`
	Status    string          `json:"status"`
}

type GameFilter struct {
	AdminID string
	From    *time.Time
	To      *time.Time
}

type WinningFilter struct {
	AdminID string
	GameIDs []string
	Source  string
	From    *time.Time
	To      *time.Time
}
