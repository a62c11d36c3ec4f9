package settlement

import "expvar"

var (
	metricSettleTotal        = expvar.NewInt("settlement_games_total")
	metricSettleErrors       = expvar.NewInt("settlement_errors_total")
	metricEntriesWritten     = expvar.NewInt("settlement_entries_total")
	metricEntriesSkipped     = expvar.NewInt("settlement_entries_skipped_total")
	metricManualTotal        = expvar.NewInt("manual_winnings_total")
	metricBackfillTotal      = expvar.NewInt("backfill_runs_total")
	metricBackfillEntries    = expvar.NewInt("backfill_entries_total")
	metricListenerDelivered  = expvar.NewInt("settlement_listener_notifications_total")
	metricListenerReconnects = expvar.NewInt("settlement_listener_reconnects_total")
)
