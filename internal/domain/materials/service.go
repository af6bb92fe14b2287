package materials

import (
	"context"
	"fmt"

	"tonkho/internal/core/tx"
)

// Service provides business operations for the materials catalog.
type Service struct {
	repo Repository
	txm  tx.ReadOnlyManager
}

// NewService creates a new catalog service.
func NewService(repo Repository, txm tx.ReadOnlyManager) *Service {
	return &Service{repo: repo, txm: txm}
}

// List returns the full catalog ordered by (he_nhom, ma_hang).
func (s *Service) List(ctx context.Context) ([]Material, error) {
	var items []Material
	err := s.txm.ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		items, err = s.repo.List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	return items, nil
}
