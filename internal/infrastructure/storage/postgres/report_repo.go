package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"tonkho/internal/domain/reports"
)

// ReportRepo implements reports.Repository. Balances are recomputed
// from the ledger on every call; nothing is materialized.
type ReportRepo struct {
	txm     *TxManager
	builder squirrel.StatementBuilderType
}

// NewReportRepo creates a new report repository.
func NewReportRepo(txm *TxManager) *ReportRepo {
	return &ReportRepo{
		txm:     txm,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CurrentStock returns per-material net balance, nonzero only.
func (r *ReportRepo) CurrentStock(ctx context.Context) ([]reports.StockRow, error) {
	sql := `
		SELECT
			m.he_nhom,
			m.ma_hang,
			COALESCE(SUM(CASE WHEN t.type = 'IN' THEN t.quantity ELSE -t.quantity END), 0) AS stock
		FROM materials m
		LEFT JOIN transactions t ON t.material_id = m.id
		GROUP BY m.id, m.he_nhom, m.ma_hang
		HAVING COALESCE(SUM(CASE WHEN t.type = 'IN' THEN t.quantity ELSE -t.quantity END), 0) <> 0
		ORDER BY m.he_nhom, m.ma_hang
	`

	var rows []reports.StockRow
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &rows, sql); err != nil {
		return nil, fmt.Errorf("select stock: %w", err)
	}

	return rows, nil
}

// historyQuery builds the movement history select. Ordered newest
// first with id as the deterministic tiebreak.
func (r *ReportRepo) historyQuery(limit int) (string, []any, error) {
	return r.builder.Select("t.created_at", "m.ma_hang", "t.type", "t.quantity").
		From(transactionsTable + " t").
		Join(materialsTable + " m ON m.id = t.material_id").
		OrderBy("t.created_at DESC", "t.id DESC").
		Limit(uint64(limit)).
		ToSql()
}

// History returns the limit most recent movements, newest first.
func (r *ReportRepo) History(ctx context.Context, limit int) ([]reports.HistoryRow, error) {
	sql, args, err := r.historyQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []reports.HistoryRow
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select history: %w", err)
	}

	return rows, nil
}

// FullReport reconciles opening, period in/out, and closing balance per
// material over a calendar-date window, inclusive on both ends.
// Timestamps are truncated to dates for comparison. Only materials with
// nonzero closing balance are returned.
func (r *ReportRepo) FullReport(ctx context.Context, period reports.Period) ([]reports.ReportRow, error) {
	sql := `
		WITH opening AS (
			SELECT
				material_id,
				SUM(CASE WHEN type = 'IN' THEN quantity ELSE -quantity END) AS opening_stock
			FROM transactions
			WHERE created_at::date < $1
			GROUP BY material_id
		),
		period AS (
			SELECT
				material_id,
				SUM(CASE WHEN type = 'IN' THEN quantity ELSE 0 END) AS period_in,
				SUM(CASE WHEN type = 'OUT' THEN quantity ELSE 0 END) AS period_out
			FROM transactions
			WHERE created_at::date BETWEEN $1 AND $2
			GROUP BY material_id
		)
		SELECT
			m.he_nhom,
			m.ma_hang,
			COALESCE(o.opening_stock, 0) AS ton_dau,
			COALESCE(p.period_in, 0) AS nhap,
			COALESCE(p.period_out, 0) AS xuat,
			COALESCE(o.opening_stock, 0)
			  + COALESCE(p.period_in, 0)
			  - COALESCE(p.period_out, 0) AS ton_cuoi
		FROM materials m
		LEFT JOIN opening o ON o.material_id = m.id
		LEFT JOIN period p ON p.material_id = m.id
		WHERE
			COALESCE(o.opening_stock, 0)
		  + COALESCE(p.period_in, 0)
		  - COALESCE(p.period_out, 0) <> 0
		ORDER BY m.he_nhom, m.ma_hang
	`

	var rows []reports.ReportRow
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &rows, sql, period.From, period.To); err != nil {
		return nil, fmt.Errorf("select full report: %w", err)
	}

	return rows, nil
}

// Ensure interface compliance.
var _ reports.Repository = (*ReportRepo)(nil)
