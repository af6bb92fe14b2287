package importing

import (
	"tonkho/internal/core/tx"
	"tonkho/internal/domain/ledger"
	"tonkho/internal/domain/materials"
)

// Service runs the batch importers. Each run is wrapped in a single
// storage transaction: row failures are counted without aborting the
// batch, and all successful rows commit together at the end.
type Service struct {
	materials materials.Repository
	ledger    *ledger.Service
	txm       tx.Manager
}

// NewService creates a new import service.
func NewService(materialsRepo materials.Repository, ledgerService *ledger.Service, txm tx.Manager) *Service {
	return &Service{
		materials: materialsRepo,
		ledger:    ledgerService,
		txm:       txm,
	}
}
