package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"tonkho/internal/core/apperror"
	"tonkho/internal/domain/materials"
)

const materialsTable = "materials"

var materialColumns = []string{
	"id", "he_nhom", "ma_hang", "ten_hang", "don_vi", "mau", "khoi_luong", "don_gia",
}

// MaterialRepo implements materials.Repository.
type MaterialRepo struct {
	txm     *TxManager
	builder squirrel.StatementBuilderType
}

// NewMaterialRepo creates a new catalog repository.
func NewMaterialRepo(txm *TxManager) *MaterialRepo {
	return &MaterialRepo{
		txm:     txm,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// listQuery builds the full catalog select in display order.
func (r *MaterialRepo) listQuery() (string, []any, error) {
	return r.builder.Select(materialColumns...).
		From(materialsTable).
		OrderBy("he_nhom", "ma_hang").
		ToSql()
}

// List returns all materials ordered by (he_nhom, ma_hang).
func (r *MaterialRepo) List(ctx context.Context) ([]materials.Material, error) {
	sql, args, err := r.listQuery()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []materials.Material
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &items, sql, args...); err != nil {
		return nil, fmt.Errorf("select materials: %w", err)
	}

	return items, nil
}

// GetByID retrieves a material by internal id.
func (r *MaterialRepo) GetByID(ctx context.Context, id int64) (*materials.Material, error) {
	q := r.builder.Select(materialColumns...).
		From(materialsTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var m materials.Material
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &m, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("material", id)
		}
		return nil, fmt.Errorf("get material: %w", err)
	}

	return &m, nil
}

// FindIDByCode resolves a material code to its internal id.
func (r *MaterialRepo) FindIDByCode(ctx context.Context, code string) (int64, error) {
	q := r.builder.Select("id").
		From(materialsTable).
		Where(squirrel.Eq{"ma_hang": code}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var id int64
	querier := r.txm.GetQuerier(ctx)
	if err := querier.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperror.NewNotFound("material", code)
		}
		return 0, fmt.Errorf("find material by code: %w", err)
	}

	return id, nil
}

// ExistsByCode reports whether a material with the code is present.
func (r *MaterialRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	_, err := r.FindIDByCode(ctx, code)
	if err != nil {
		if apperror.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Create inserts a new material and fills in the generated id.
func (r *MaterialRepo) Create(ctx context.Context, m *materials.Material) error {
	q := r.builder.Insert(materialsTable).
		Columns("he_nhom", "ma_hang", "ten_hang", "don_vi", "mau", "khoi_luong", "don_gia").
		Values(m.Group, m.Code, m.Name, m.Unit, m.Color, m.Weight, m.Price).
		Suffix("RETURNING id")

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if err := querier.QueryRow(ctx, sql, args...).Scan(&m.ID); err != nil {
		return fmt.Errorf("insert material: %w", err)
	}

	return nil
}

// Count returns the number of catalog rows.
func (r *MaterialRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	querier := r.txm.GetQuerier(ctx)
	if err := querier.QueryRow(ctx, "SELECT COUNT(*) FROM materials").Scan(&count); err != nil {
		return 0, fmt.Errorf("count materials: %w", err)
	}
	return count, nil
}

// Ensure interface compliance.
var _ materials.Repository = (*MaterialRepo)(nil)
