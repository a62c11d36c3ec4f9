package config

import (
	"testing"
	"time"
)

func TestLoadSettlementDefaults(t *testing.T) {
	cfg, err := LoadSettlement()
	if err != nil {
		t.Fatalf("LoadSettlement() error = %v", err)
	}
	if cfg.ListenEnabled {
		t.Fatal("ListenEnabled should default to false")
	}
	if cfg.ListenChannel != "game_completed" {
		t.Fatalf("ListenChannel = %q, want game_completed", cfg.ListenChannel)
	}
	if cfg.ListenBackoff != 5*time.Second {
		t.Fatalf("ListenBackoff = %v, want 5s", cfg.ListenBackoff)
	}
}

func TestReportLocation(t *testing.T) {
	cfg := ReportConfig{Timezone: "Local"}
	loc, err := cfg.Location()
	if err != nil || loc != time.Local {
		t.Fatalf("Location() = %v, %v; want time.Local", loc, err)
	}

	cfg = ReportConfig{Timezone: "UTC"}
	loc, err = cfg.Location()
	if err != nil {
		t.Fatalf("Location() error = %v", err)
	}
	if loc.String() != "UTC" {
		t.Fatalf("Location() = %s, want UTC", loc)
	}

	cfg = ReportConfig{Timezone: "Nowhere/Special"}
	if _, err := cfg.Location(); err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}
