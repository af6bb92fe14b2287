package ledger

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"tonkho/internal/core/apperror"
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
	items map[int64]*materials.Material
}

func newFakeMaterialRepo(items ...*materials.Material) *fakeMaterialRepo {
	r := &fakeMaterialRepo{items: make(map[int64]*materials.Material)}
	for _, m := range items {
		r.items[m.ID] = m
	}
	return r
}

func (r *fakeMaterialRepo) List(ctx context.Context) ([]materials.Material, error) {
	out := make([]materials.Material, 0, len(r.items))
	for _, m := range r.items {
		out = append(out, *m)
	}
	return out, nil
}

func (r *fakeMaterialRepo) GetByID(ctx context.Context, id int64) (*materials.Material, error) {
	m, ok := r.items[id]
	if !ok {
		return nil, apperror.NewNotFound("material", id)
	}
	return m, nil
}

func (r *fakeMaterialRepo) FindIDByCode(ctx context.Context, code string) (int64, error) {
	for id, m := range r.items {
		if m.Code == code {
			return id, nil
		}
	}
	return 0, apperror.NewNotFound("material", code)
}

func (r *fakeMaterialRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	_, err := r.FindIDByCode(ctx, code)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *fakeMaterialRepo) Create(ctx context.Context, m *materials.Material) error {
	m.ID = int64(len(r.items) + 1)
	r.items[m.ID] = m
	return nil
}

func (r *fakeMaterialRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.items)), nil
}

type fakeEntry struct {
	materialID int64
	dir        Direction
	qty        int64
}

type fakeLedgerRepo struct {
	entries []fakeEntry
}

func (r *fakeLedgerRepo) Insert(ctx context.Context, materialID int64, dir Direction, qty int64) error {
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

func testMaterial(id int64, code string) *materials.Material {
	m := materials.New("K55", code, "profile", "Cây", "Trắng", decimal.Zero, decimal.Zero)
	m.ID = id
	return m
}

func newTestService(repo *fakeLedgerRepo, mats *fakeMaterialRepo) *Service {
	return NewService(repo, mats, fakeTxManager{})
}

func TestRecord_Validation(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		qty  int64
	}{
		{"zero quantity", DirectionIn, 0},
		{"negative quantity", DirectionIn, -5},
		{"zero quantity out", DirectionOut, 0},
		{"bad direction", Direction("SIDEWAYS"), 1},
		{"empty direction", Direction(""), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeLedgerRepo{}
			svc := newTestService(repo, newFakeMaterialRepo(testMaterial(1, "N-K55-3318")))

			err := svc.Record(context.Background(), 1, tt.dir, tt.qty)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !apperror.IsValidation(err) {
				t.Errorf("expected VALIDATION error, got %v", err)
			}
			if len(repo.entries) != 0 {
				t.Errorf("invalid movement must not be persisted, found %d entries", len(repo.entries))
			}
		})
	}
}

func TestRecord_UnknownMaterial(t *testing.T) {
	repo := &fakeLedgerRepo{}
	svc := newTestService(repo, newFakeMaterialRepo())

	err := svc.Record(context.Background(), 42, DirectionIn, 10)
	if err == nil {
		t.Fatal("expected error for unknown material")
	}
	if !apperror.IsNotFound(err) {
		t.Errorf("expected NOT_FOUND error, got %v", err)
	}
	if len(repo.entries) != 0 {
		t.Errorf("expected no entries, found %d", len(repo.entries))
	}
}

func TestRecord_Success(t *testing.T) {
	repo := &fakeLedgerRepo{}
	svc := newTestService(repo, newFakeMaterialRepo(testMaterial(7, "G-K55-3313")))

	if err := svc.Record(context.Background(), 7, DirectionOut, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(repo.entries))
	}
	got := repo.entries[0]
	if got.materialID != 7 || got.dir != DirectionOut || got.qty != 3 {
		t.Errorf("entry mismatch: %+v", got)
	}
}

func TestRecordByCode(t *testing.T) {
	repo := &fakeLedgerRepo{}
	svc := newTestService(repo, newFakeMaterialRepo(testMaterial(5, "N-K55-3318")))
	ctx := context.Background()

	if err := svc.RecordByCode(ctx, "  N-K55-3318  ", DirectionIn, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.entries) != 1 || repo.entries[0].materialID != 5 {
		t.Fatalf("expected entry for material 5, got %+v", repo.entries)
	}

	if err := svc.RecordByCode(ctx, "", DirectionIn, 10); !apperror.IsValidation(err) {
		t.Errorf("empty code: expected VALIDATION error, got %v", err)
	}

	if err := svc.RecordByCode(ctx, "MISSING", DirectionIn, 10); !apperror.IsNotFound(err) {
		t.Errorf("unknown code: expected NOT_FOUND error, got %v", err)
	}

	if len(repo.entries) != 1 {
		t.Errorf("failed calls must not persist entries, found %d", len(repo.entries))
	}
}

func TestClearAll(t *testing.T) {
	repo := &fakeLedgerRepo{entries: []fakeEntry{
		{1, DirectionIn, 10},
		{1, DirectionOut, 4},
	}}
	svc := newTestService(repo, newFakeMaterialRepo())

	deleted, err := svc.ClearAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 2 {
		t.Errorf("expected 2 deleted rows, got %d", deleted)
	}

	count, _ := svc.Count(context.Background())
	if count != 0 {
		t.Errorf("expected empty ledger, got %d rows", count)
	}
}

func TestDirectionValid(t *testing.T) {
	if !DirectionIn.Valid() || !DirectionOut.Valid() {
		t.Error("IN and OUT must be valid directions")
	}
	if Direction("in").Valid() {
		t.Error("direction is case sensitive, lowercase must be rejected")
	}
}
