package ledger

import (
	"context"
	"fmt"
	"strings"

	"tonkho/internal/core/apperror"
	"tonkho/internal/core/tx"
	"tonkho/internal/domain/materials"
	"tonkho/pkg/logger"
)

// Service provides the single write boundary for the ledger.
// Quantity positivity and direction validity are enforced here for every
// entry point: manual in/out calls, the Excel importer, and the
// opening-stock importer.
type Service struct {
	repo      Repository
	materials materials.Repository
	txm       tx.Manager
}

// NewService creates a new ledger service.
func NewService(repo Repository, materialsRepo materials.Repository, txm tx.Manager) *Service {
	return &Service{repo: repo, materials: materialsRepo, txm: txm}
}

// Record appends one movement for a material identified by internal id.
func (s *Service) Record(ctx context.Context, materialID int64, dir Direction, qty int64) error {
	if !dir.Valid() {
		return apperror.NewValidation("direction must be IN or OUT").
			WithDetail("type", string(dir))
	}
	if qty <= 0 {
		return apperror.NewValidation("quantity must be a positive integer").
			WithDetail("qty", qty)
	}

	err := s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.materials.GetByID(ctx, materialID); err != nil {
			return err
		}
		return s.repo.Insert(ctx, materialID, dir, qty)
	})
	if err != nil {
		return fmt.Errorf("record movement: %w", err)
	}

	logger.Info(ctx, "recorded stock movement",
		"material_id", materialID,
		"type", string(dir),
		"qty", qty,
	)

	return nil
}

// RecordByCode appends one movement for a material identified by its
// human-readable code. Used by the code-keyed bulk import paths.
func (s *Service) RecordByCode(ctx context.Context, code string, dir Direction, qty int64) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return apperror.NewValidation("material code must not be empty")
	}
	if !dir.Valid() {
		return apperror.NewValidation("direction must be IN or OUT").
			WithDetail("type", string(dir))
	}
	if qty <= 0 {
		return apperror.NewValidation("quantity must be a positive integer").
			WithDetail("qty", qty)
	}

	return s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		materialID, err := s.materials.FindIDByCode(ctx, code)
		if err != nil {
			return err
		}
		return s.repo.Insert(ctx, materialID, dir, qty)
	})
}

// ClearAll deletes every ledger row. The catalog is untouched.
// There is no confirmation step and no undo.
func (s *Service) ClearAll(ctx context.Context) (int64, error) {
	var deleted int64
	err := s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		deleted, err = s.repo.DeleteAll(ctx)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("clear ledger: %w", err)
	}

	logger.Warn(ctx, "ledger cleared", "rows_deleted", deleted)
	return deleted, nil
}

// Count returns the current number of ledger rows.
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
