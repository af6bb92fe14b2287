package reports

import (
	"context"
	"fmt"

	"tonkho/internal/core/apperror"
	"tonkho/internal/core/tx"
)

// Service provides report generation over the ledger.
type Service struct {
	repo Repository
	txm  tx.ReadOnlyManager
}

// NewService creates a new reports service.
func NewService(repo Repository, txm tx.ReadOnlyManager) *Service {
	return &Service{repo: repo, txm: txm}
}

// CurrentStock computes net stock per material across the entire ledger.
func (s *Service) CurrentStock(ctx context.Context) ([]StockRow, error) {
	var rows []StockRow
	err := s.txm.ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		rows, err = s.repo.CurrentStock(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("current stock: %w", err)
	}
	return rows, nil
}

// History returns the most recent movements, newest first.
// Non-positive limits fall back to DefaultHistoryLimit.
func (s *Service) History(ctx context.Context, limit int) ([]HistoryRow, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	var rows []HistoryRow
	err := s.txm.ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		rows, err = s.repo.History(ctx, limit)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("movement history: %w", err)
	}
	return rows, nil
}

// FullReport produces the period reconciliation. The window must be
// ordered: from-date not after to-date.
func (s *Service) FullReport(ctx context.Context, period Period) ([]ReportRow, error) {
	if period.From.After(period.To) {
		return nil, apperror.NewValidation("from_date must not be after to_date")
	}

	var rows []ReportRow
	err := s.txm.ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		rows, err = s.repo.FullReport(ctx, period)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("full report: %w", err)
	}
	return rows, nil
}
