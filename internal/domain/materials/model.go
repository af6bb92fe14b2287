// Package materials provides the aluminum profile catalog.
// A material identifies one stock-keeping unit; rows are created once
// (by bulk import) and never updated or deleted.
package materials

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"tonkho/internal/core/apperror"
)

// Material represents one catalog entry. Column and JSON names keep the
// Vietnamese field names the rest of the system (seed files, frontend)
// already uses.
type Material struct {
	ID     int64           `db:"id" json:"id"`
	Group  string          `db:"he_nhom" json:"he_nhom"`
	Code   string          `db:"ma_hang" json:"ma_hang"`
	Name   string          `db:"ten_hang" json:"ten_hang"`
	Unit   string          `db:"don_vi" json:"don_vi"`
	Color  string          `db:"mau" json:"mau"`
	Weight decimal.Decimal `db:"khoi_luong" json:"khoi_luong"` // kg per bar
	Price  decimal.Decimal `db:"don_gia" json:"don_gia"`
}

// New creates a Material with trimmed string fields.
func New(group, code, name, unit, color string, weight, price decimal.Decimal) *Material {
	return &Material{
		Group:  strings.TrimSpace(group),
		Code:   strings.TrimSpace(code),
		Name:   strings.TrimSpace(name),
		Unit:   strings.TrimSpace(unit),
		Color:  strings.TrimSpace(color),
		Weight: weight,
		Price:  price,
	}
}

// Validate checks catalog invariants before insert.
func (m *Material) Validate(ctx context.Context) error {
	if strings.TrimSpace(m.Code) == "" {
		return apperror.NewValidation("material code must not be empty").
			WithDetail("field", "ma_hang")
	}
	if m.Weight.IsNegative() {
		return apperror.NewValidation("weight cannot be negative").
			WithDetail("field", "khoi_luong")
	}
	if m.Price.IsNegative() {
		return apperror.NewValidation("price cannot be negative").
			WithDetail("field", "don_gia")
	}
	return nil
}
