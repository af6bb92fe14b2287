package reports

import (
	"context"
)

// Repository defines the aggregation queries behind the reports.
type Repository interface {
	// CurrentStock returns per-material net balance over the whole
	// ledger, nonzero only, ordered by (he_nhom, ma_hang).
	CurrentStock(ctx context.Context) ([]StockRow, error)

	// History returns the limit most recent movements, newest first.
	History(ctx context.Context, limit int) ([]HistoryRow, error)

	// FullReport reconciles opening balance, period in/out and closing
	// balance per material for the given window.
	FullReport(ctx context.Context, period Period) ([]ReportRow, error)
}
