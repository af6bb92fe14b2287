package importing

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"tonkho/internal/core/apperror"
	"tonkho/internal/domain/materials"
	"tonkho/pkg/logger"
)

// CatalogRecord is one row of the catalog seed file. JSON keys match the
// exported spreadsheet the seed file comes from.
type CatalogRecord struct {
	Code   string `json:"Mã Hàng hóa"`
	Group  string `json:"Hệ Nhôm"`
	Name   string `json:"Tên Hàng hóa"`
	Unit   string `json:"ĐVT"`
	Color  string `json:"Màu"`
	Weight any    `json:"Khối lượng (kg/thanh)"`
	Price  any    `json:"Đơn giá"`
}

type catalogSeedFile struct {
	Data []CatalogRecord `json:"Data"`
}

// ImportCatalogFile reads a catalog seed file and imports its records.
// A missing file or missing "Data" key aborts the whole operation.
func (s *Service) ImportCatalogFile(ctx context.Context, path string) (*Summary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}

	var file catalogSeedFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	if file.Data == nil {
		return nil, apperror.NewValidation(`seed file is missing the "Data" key`).
			WithDetail("file", path)
	}

	return s.ImportCatalog(ctx, file.Data)
}

// ImportCatalog inserts catalog records row by row inside one
// transaction. Re-running the same import inserts nothing: rows whose
// code already exists are counted as skipped duplicates.
func (s *Service) ImportCatalog(ctx context.Context, records []CatalogRecord) (*Summary, error) {
	summary := &Summary{}

	err := s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		for i, rec := range records {
			row := i + 1
			code := strings.TrimSpace(rec.Code)

			if code == "" {
				summary.record(OutcomeSkippedInvalid, row, code, "empty material code")
				continue
			}

			exists, err := s.materials.ExistsByCode(ctx, code)
			if err != nil {
				return fmt.Errorf("row %d: check code %s: %w", row, code, err)
			}
			if exists {
				summary.record(OutcomeSkippedDuplicate, row, code, "")
				continue
			}

			m := materials.New(rec.Group, code, rec.Name, rec.Unit, rec.Color,
				coerceDecimal(rec.Weight), coerceDecimal(rec.Price))
			if err := m.Validate(ctx); err != nil {
				summary.record(OutcomeSkippedInvalid, row, code, err.Error())
				continue
			}

			if err := s.materials.Create(ctx, m); err != nil {
				return fmt.Errorf("row %d: insert %s: %w", row, code, err)
			}
			summary.record(OutcomeInserted, row, code, "")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "catalog import finished",
		"inserted", summary.Inserted,
		"skipped", summary.Skipped(),
		"errors", summary.Failed(),
	)

	return summary, nil
}

// coerceDecimal converts the loosely typed numeric fields of the seed
// file (number, numeric string, empty, absent) to a decimal, defaulting
// to zero.
func coerceDecimal(v any) decimal.Decimal {
	switch val := v.(type) {
	case nil:
		return decimal.Zero
	case float64:
		return decimal.NewFromFloat(val)
	case int64:
		return decimal.NewFromInt(val)
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return decimal.Zero
		}
		d, err := decimal.NewFromString(trimmed)
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}
