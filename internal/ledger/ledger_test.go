package ledger

import (
	"context"
	"testing"

	"card-admin/internal/store"
	"card-admin/internal/store/memstore"

	"github.com/shopspring/decimal"
)

func TestRecordSettlementOnlyOncePerAdminAndGame(t *testing.T) {
	ctx := context.Background()
	l := New(memstore.New())

	w, ok, err := l.RecordSettlement(ctx, "a1", "g1", decimal.NewFromInt(2000))
	if err != nil || !ok || w == nil {
		t.Fatalf("first record: w=%v ok=%v err=%v", w, ok, err)
	}
	if w.Source != store.WinningSourceSettlement || w.ID == "" {
		t.Fatalf("unexpected entry: %+v", w)
	}
	w, ok, err = l.RecordSettlement(ctx, "a1", "g1", decimal.NewFromInt(2000))
	if err != nil || ok || w != nil {
		t.Fatalf("second record: w=%v ok=%v err=%v", w, ok, err)
	}

	if _, err := l.RecordBackfill(ctx, "a1", "g1", decimal.NewFromInt(2000)); err != nil {
		t.Fatalf("backfill: %v", err)
	}
	total, count, err := l.Sum(ctx, store.WinningFilter{AdminID: "a1"})
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	if count != 2 || !total.Equal(decimal.NewFromInt(4000)) {
		t.Fatalf("unexpected total=%s count=%d", total, count)
	}
}

func TestCreditManual(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	adminID, _ := st.CreateAdmin(ctx, "ops", "ops@example.com", decimal.NewFromInt(1000))
	l := New(st)

	w, bal, err := l.CreditManual(ctx, adminID, "g1", decimal.NewFromInt(500))
	if err != nil {
		t.Fatalf("credit: %v", err)
	}
	if !bal.Equal(decimal.NewFromInt(1500)) || w.Source != store.WinningSourceManual {
		t.Fatalf("unexpected balance=%s entry=%+v", bal, w)
	}
	rows, _ := l.List(ctx, store.WinningFilter{AdminID: adminID}, 10, 0)
	if len(rows) != 1 || rows[0].ID != w.ID {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}
