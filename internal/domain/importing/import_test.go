package importing

import (
	"context"
	"testing"

	"tonkho/internal/core/apperror"
	"tonkho/internal/domain/ledger"
	"tonkho/internal/domain/materials"
)

// Mock objects
type fakeTxManager struct{}

func (fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeMaterialRepo struct {
	byCode map[string]int64
	nextID int64
}

func newFakeMaterialRepo(codes ...string) *fakeMaterialRepo {
	r := &fakeMaterialRepo{byCode: make(map[string]int64)}
	for _, code := range codes {
		r.nextID++
		r.byCode[code] = r.nextID
	}
	return r
}

func (r *fakeMaterialRepo) List(ctx context.Context) ([]materials.Material, error) {
	return nil, nil
}

func (r *fakeMaterialRepo) GetByID(ctx context.Context, id int64) (*materials.Material, error) {
	for code, mid := range r.byCode {
		if mid == id {
			return &materials.Material{ID: id, Code: code}, nil
		}
	}
	return nil, apperror.NewNotFound("material", id)
}

func (r *fakeMaterialRepo) FindIDByCode(ctx context.Context, code string) (int64, error) {
	id, ok := r.byCode[code]
	if !ok {
		return 0, apperror.NewNotFound("material", code)
	}
	return id, nil
}

func (r *fakeMaterialRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	_, ok := r.byCode[code]
	return ok, nil
}

func (r *fakeMaterialRepo) Create(ctx context.Context, m *materials.Material) error {
	r.nextID++
	m.ID = r.nextID
	r.byCode[m.Code] = m.ID
	return nil
}

func (r *fakeMaterialRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.byCode)), nil
}

type fakeEntry struct {
	materialID int64
	dir        ledger.Direction
	qty        int64
}

type fakeLedgerRepo struct {
	entries []fakeEntry
}

func (r *fakeLedgerRepo) Insert(ctx context.Context, materialID int64, dir ledger.Direction, qty int64) error {
	r.entries = append(r.entries, fakeEntry{materialID, dir, qty})
	return nil
}

func (r *fakeLedgerRepo) DeleteAll(ctx context.Context) (int64, error) {
	n := int64(len(r.entries))
	r.entries = nil
	return n, nil
}

func (r *fakeLedgerRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.entries)), nil
}

func newTestImporter(mats *fakeMaterialRepo, ledgerRepo *fakeLedgerRepo) *Service {
	txm := fakeTxManager{}
	ledgerService := ledger.NewService(ledgerRepo, mats, txm)
	return NewService(mats, ledgerService, txm)
}

func TestImportCatalog(t *testing.T) {
	mats := newFakeMaterialRepo("EXISTS-1")
	svc := newTestImporter(mats, &fakeLedgerRepo{})

	records := []CatalogRecord{
		{Code: "N-K55-3318", Group: "K55", Name: "Nẹp kính", Unit: "Cây", Weight: 1.25, Price: 100000.0},
		{Code: "EXISTS-1", Group: "K55", Name: "already there"},
		{Code: "", Group: "K55", Name: "no code"},
		{Code: "NEG-W", Group: "K55", Name: "bad weight", Weight: -1.0},
	}

	summary, err := svc.ImportCatalog(context.Background(), records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Inserted != 1 {
		t.Errorf("expected 1 inserted, got %d", summary.Inserted)
	}
	if summary.SkippedDuplicate != 1 {
		t.Errorf("expected 1 duplicate skip, got %d", summary.SkippedDuplicate)
	}
	if summary.SkippedInvalid != 2 {
		t.Errorf("expected 2 invalid skips, got %d", summary.SkippedInvalid)
	}

	count, _ := mats.Count(context.Background())
	if count != 2 {
		t.Errorf("expected catalog of 2, got %d", count)
	}
}

func TestImportCatalog_Rerun(t *testing.T) {
	mats := newFakeMaterialRepo()
	svc := newTestImporter(mats, &fakeLedgerRepo{})
	ctx := context.Background()

	records := []CatalogRecord{
		{Code: "A-1", Group: "K55"},
		{Code: "B-2", Group: "K60"},
	}

	first, err := svc.ImportCatalog(ctx, records)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first.Inserted != 2 {
		t.Fatalf("first run: expected 2 inserted, got %d", first.Inserted)
	}

	second, err := svc.ImportCatalog(ctx, records)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second.Inserted != 0 || second.SkippedDuplicate != 2 {
		t.Errorf("re-run must skip everything: %+v", second)
	}

	count, _ := mats.Count(ctx)
	if count != 2 {
		t.Errorf("re-run must not grow the catalog, got %d rows", count)
	}
}

func TestImportOpeningStock(t *testing.T) {
	mats := newFakeMaterialRepo("N-K55-3318")
	ledgerRepo := &fakeLedgerRepo{}
	svc := newTestImporter(mats, ledgerRepo)

	records := []OpeningStockRecord{
		{Code: "N-K55-3318", Qty: float64(25)},
		{Code: "MISSING", Qty: float64(10)},
		{Code: "", Qty: float64(5)},
		{Code: "N-K55-3318", Qty: float64(0)},
		{Code: "N-K55-3318", Qty: "abc"},
	}

	summary, err := svc.ImportOpeningStock(context.Background(), records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Inserted != 1 {
		t.Errorf("expected 1 inserted, got %d", summary.Inserted)
	}
	if summary.SkippedInvalid != 2 {
		t.Errorf("expected 2 invalid skips, got %d", summary.SkippedInvalid)
	}
	if summary.Failed() != 2 {
		t.Fatalf("expected 2 errors (unresolved code, bad quantity), got %d", summary.Failed())
	}

	// The unresolved code must produce no ledger row.
	if len(ledgerRepo.entries) != 1 {
		t.Fatalf("expected exactly 1 ledger entry, got %d", len(ledgerRepo.entries))
	}
	if e := ledgerRepo.entries[0]; e.dir != ledger.DirectionIn || e.qty != 25 {
		t.Errorf("entry mismatch: %+v", e)
	}
}

func TestImportMovements(t *testing.T) {
	mats := newFakeMaterialRepo("N-K55-3318", "G-K55-3313")
	ledgerRepo := &fakeLedgerRepo{}
	svc := newTestImporter(mats, ledgerRepo)

	rows := []MovementRow{
		{Row: 2, Code: "N-K55-3318", Qty: "10"},
		{Row: 3, Code: "G-K55-3313", Qty: "5"},
		{Row: 4, Code: "", Qty: "3"},
		{Row: 5, Code: "N-K55-3318", Qty: "abc"},
		{Row: 6, Code: "N-K55-3318", Qty: "-2"},
		{Row: 7, Code: "UNKNOWN", Qty: "4"},
	}

	summary, err := svc.ImportMovements(context.Background(), rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Inserted != 2 {
		t.Errorf("expected 2 inserted, got %d", summary.Inserted)
	}
	if summary.SkippedInvalid != 3 {
		t.Errorf("expected 3 invalid skips, got %d", summary.SkippedInvalid)
	}
	if summary.Failed() != 1 {
		t.Fatalf("expected 1 error row, got %d", summary.Failed())
	}
	if e := summary.Errors[0]; e.Row != 7 || e.Code != "UNKNOWN" {
		t.Errorf("error row mismatch: %+v", e)
	}

	if len(ledgerRepo.entries) != 2 {
		t.Errorf("expected 2 ledger entries, got %d", len(ledgerRepo.entries))
	}
	for _, e := range ledgerRepo.entries {
		if e.dir != ledger.DirectionIn {
			t.Errorf("excel import must record IN movements, got %s", e.dir)
		}
	}
}

func TestSummaryCounters(t *testing.T) {
	s := &Summary{}
	s.record(OutcomeInserted, 1, "A", "")
	s.record(OutcomeSkippedDuplicate, 2, "B", "")
	s.record(OutcomeSkippedInvalid, 3, "C", "bad")
	s.record(OutcomeErrorUnresolved, 4, "D", "not found")
	s.record(OutcomeError, 5, "E", "boom")

	if s.Inserted != 1 || s.Skipped() != 2 || s.Failed() != 2 {
		t.Errorf("counter mismatch: %+v", s)
	}
}
