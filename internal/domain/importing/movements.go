package importing

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"tonkho/internal/core/apperror"
	"tonkho/internal/domain/ledger"
	"tonkho/pkg/logger"
)

// MovementRow is one parsed spreadsheet row of the Excel stock-in
// import. Qty keeps the raw cell text; parsing is part of row
// validation so a bad cell fails only its own row.
type MovementRow struct {
	// Row is the 1-based sheet row (header = row 1, data starts at 2).
	Row  int
	Code string
	Qty  string
}

// ImportMovements appends one IN movement per valid row. Rows with an
// empty code or a non-positive or non-numeric quantity are skipped;
// rows whose code is not in the catalog are errors and produce no
// ledger row. All successful rows commit in one transaction.
func (s *Service) ImportMovements(ctx context.Context, rows []MovementRow) (*Summary, error) {
	summary := &Summary{}

	err := s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		for _, r := range rows {
			code := strings.TrimSpace(r.Code)
			if code == "" {
				summary.record(OutcomeSkippedInvalid, r.Row, code, "empty material code")
				continue
			}

			qty, err := strconv.ParseInt(strings.TrimSpace(r.Qty), 10, 64)
			if err != nil {
				summary.record(OutcomeSkippedInvalid, r.Row, code, fmt.Sprintf("bad quantity %q", r.Qty))
				continue
			}
			if qty <= 0 {
				summary.record(OutcomeSkippedInvalid, r.Row, code, "quantity must be positive")
				continue
			}

			if err := s.ledger.RecordByCode(ctx, code, ledger.DirectionIn, qty); err != nil {
				if apperror.IsNotFound(err) {
					summary.record(OutcomeErrorUnresolved, r.Row, code, "material code not found")
					continue
				}
				return fmt.Errorf("row %d: record %s: %w", r.Row, code, err)
			}
			summary.record(OutcomeInserted, r.Row, code, "")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "excel import finished",
		"rows", len(rows),
		"inserted", summary.Inserted,
		"skipped", summary.Skipped(),
		"errors", summary.Failed(),
	)

	return summary, nil
}
