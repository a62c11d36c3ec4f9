package admins

import (
	"time"

	"github.com/shopspring/decimal"
)

type ListResponse struct {
	Items  []AdminItem `json:"items"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

type AdminItem struct {
	AdminID   string          `json:"admin_id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Wallet    decimal.Decimal `json:"wallet"`
	CreatedAt time.Time       `json:"created_at"`
}

type Profile struct {
	AdminID    string          `json:"admin_id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Wallet     decimal.Decimal `json:"wallet"`
	IsVerified bool            `json:"is_verified"`
	JoinedAt   time.Time       `json:"joined_at"`
}

type CurrentGame struct {
	GameID    string    `json:"game_id"`
	GameNo    int64     `json:"game_no"`
	CreatedAt time.Time `json:"created_at"`
}
