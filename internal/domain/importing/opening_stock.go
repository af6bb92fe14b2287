package importing

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"tonkho/internal/core/apperror"
	"tonkho/internal/domain/ledger"
	"tonkho/pkg/logger"
)

// OpeningStockRecord is one row of the opening balance seed file.
type OpeningStockRecord struct {
	Code string `json:"Mã Hàng hóa"`
	Qty  any    `json:"Số lượng"`
}

type openingStockSeedFile struct {
	Data []OpeningStockRecord `json:"Data"`
}

// ImportOpeningStockFile seeds opening balances as IN movements from a
// JSON file. A missing file or missing "Data" key aborts the operation.
func (s *Service) ImportOpeningStockFile(ctx context.Context, path string) (*Summary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}

	var file openingStockSeedFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	if file.Data == nil {
		return nil, apperror.NewValidation(`seed file is missing the "Data" key`).
			WithDetail("file", path)
	}

	return s.ImportOpeningStock(ctx, file.Data)
}

// ImportOpeningStock appends one IN movement per valid record. Empty
// codes and non-positive quantities are skipped; codes absent from the
// catalog count as errors. All inserted rows commit together.
func (s *Service) ImportOpeningStock(ctx context.Context, records []OpeningStockRecord) (*Summary, error) {
	summary := &Summary{}

	err := s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		for i, rec := range records {
			row := i + 1
			code := strings.TrimSpace(rec.Code)

			qty, err := coerceInt(rec.Qty)
			if err != nil {
				summary.record(OutcomeError, row, code, fmt.Sprintf("bad quantity: %v", rec.Qty))
				continue
			}

			if code == "" || qty <= 0 {
				summary.record(OutcomeSkippedInvalid, row, code, "empty code or non-positive quantity")
				continue
			}

			if err := s.ledger.RecordByCode(ctx, code, ledger.DirectionIn, qty); err != nil {
				if apperror.IsNotFound(err) {
					summary.record(OutcomeErrorUnresolved, row, code, "material code not found")
					continue
				}
				return fmt.Errorf("row %d: record %s: %w", row, code, err)
			}
			summary.record(OutcomeInserted, row, code, "")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "opening stock import finished",
		"inserted", summary.Inserted,
		"skipped", summary.Skipped(),
		"errors", summary.Failed(),
	)

	return summary, nil
}

// coerceInt converts the loosely typed quantity field (number, numeric
// string) to an int64, truncating fractions.
func coerceInt(v any) (int64, error) {
	switch val := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return int64(val), nil
	case int64:
		return val, nil
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, err
		}
		return int64(f), nil
	default:
		return 0, fmt.Errorf("unsupported quantity type %T", v)
	}
}
