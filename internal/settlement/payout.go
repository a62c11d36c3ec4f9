package settlement

import (
	"card-admin/internal/store"

	"github.com/shopspring/decimal"
)

// PayoutUnit scales every multiplier: a stake of s on the winning card with
// multiplier m pays s * m * PayoutUnit.
const PayoutUnit = 10

var payoutUnit = decimal.NewFromInt(PayoutUnit)

// WinningCard returns the authoritative card of a game: the last one appended.
func WinningCard(cards []store.WinningCard) (store.WinningCard, bool) {
	var (
		best  store.WinningCard
		found bool
	)
	for _, c := range cards {
		if !found || c.Seq > best.Seq {
			best = c
			found = true
		}
	}
	return best, found
}

// BetPayout sums the payout of the stakes placed on card.CardNo.
func BetPayout(stakes []store.Stake, card store.WinningCard) decimal.Decimal {
	rate := card.Multiplier.Mul(payoutUnit)
	total := decimal.Zero
	for _, s := range stakes {
		if s.CardNo == card.CardNo {
			total = total.Add(s.Amount.Mul(rate))
		}
	}
	return total
}

type adminPayout struct {
	AdminID string
	Amount  decimal.Decimal
}

// gamePayouts folds every bet of g into one payout per admin, in order of
// each admin's first bet. Admins whose payout is zero are dropped.
func gamePayouts(g *store.Game, card store.WinningCard, adminID string) []adminPayout {
	idx := map[string]int{}
	out := []adminPayout{}
	for _, b := range g.Bets {
		if adminID != "" && b.AdminID != adminID {
			continue
		}
		amount := BetPayout(b.Stakes, card)
		i, ok := idx[b.AdminID]
		if !ok {
			i = len(out)
			idx[b.AdminID] = i
			out = append(out, adminPayout{AdminID: b.AdminID, Amount: decimal.Zero})
		}
		out[i].Amount = out[i].Amount.Add(amount)
	}
	paid := out[:0]
	for _, p := range out {
		if p.Amount.IsPositive() {
			paid = append(paid, p)
		}
	}
	return paid
}
