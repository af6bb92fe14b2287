package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"tonkho/internal/domain/ledger"
)

const transactionsTable = "transactions"

// LedgerRepo implements ledger.Repository.
type LedgerRepo struct {
	txm     *TxManager
	builder squirrel.StatementBuilderType
}

// NewLedgerRepo creates a new ledger repository.
func NewLedgerRepo(txm *TxManager) *LedgerRepo {
	return &LedgerRepo{
		txm:     txm,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Insert appends one movement row. created_at is assigned by the store.
func (r *LedgerRepo) Insert(ctx context.Context, materialID int64, dir ledger.Direction, qty int64) error {
	q := r.builder.Insert(transactionsTable).
		Columns("material_id", "type", "quantity").
		Values(materialID, string(dir), qty)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}

	return nil
}

// DeleteAll removes every ledger row.
func (r *LedgerRepo) DeleteAll(ctx context.Context) (int64, error) {
	querier := r.txm.GetQuerier(ctx)
	tag, err := querier.Exec(ctx, "DELETE FROM transactions")
	if err != nil {
		return 0, fmt.Errorf("delete movements: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Count returns the number of ledger rows.
func (r *LedgerRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	querier := r.txm.GetQuerier(ctx)
	if err := querier.QueryRow(ctx, "SELECT COUNT(*) FROM transactions").Scan(&count); err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return count, nil
}

// Ensure interface compliance.
var _ ledger.Repository = (*LedgerRepo)(nil)
