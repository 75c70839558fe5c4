package ledger

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"advent/internal/catalog"
	"advent/internal/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return storage.NewStore(db, nil)
}

func TestHydrateEmptyStore(t *testing.T) {
	ctx := context.Background()
	l := New(newTestStore(t))
	l.Hydrate(ctx)

	if !l.Hydrated() {
		t.Fatalf("expected hydrated")
	}
	if l.Count() != 0 {
		t.Fatalf("fresh ledger count=%d, want 0", l.Count())
	}
}

func TestRedeemPersistsAcrossHydration(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	l := New(store)
	l.Hydrate(ctx)
	now := time.Date(2025, time.December, 5, 18, 30, 0, 0, time.UTC)
	l.Redeem(ctx, 5, now)
	l.Redeem(ctx, 3, now.Add(time.Hour))

	// Fresh ledger over the same store sees the same state.
	l2 := New(store)
	l2.Hydrate(ctx)
	if !l2.IsRedeemed(5) || !l2.IsRedeemed(3) {
		t.Fatalf("redeemed state lost across hydration")
	}
	at, ok := l2.RedeemedAt(5)
	if !ok || !at.Equal(now) {
		t.Fatalf("RedeemedAt(5)=%v,%v, want %v", at, ok, now)
	}
}

func TestRedeemIsIdempotent(t *testing.T) {
	ctx := context.Background()
	l := New(newTestStore(t))
	l.Hydrate(ctx)

	first := time.Date(2025, time.December, 5, 12, 0, 0, 0, time.UTC)
	l.Redeem(ctx, 5, first)
	l.Redeem(ctx, 5, first.Add(48*time.Hour))

	if l.Count() != 1 {
		t.Fatalf("count=%d, want 1", l.Count())
	}
	at, _ := l.RedeemedAt(5)
	if !at.Equal(first) {
		t.Fatalf("second redeem overwrote timestamp: %v, want %v", at, first)
	}
}

func TestResetClearsState(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	l := New(store)
	l.Hydrate(ctx)

	now := time.Now()
	for id := 1; id <= 6; id++ {
		l.Redeem(ctx, id, now)
	}
	l.Reset(ctx)

	for id := 1; id <= 6; id++ {
		if l.IsRedeemed(id) {
			t.Fatalf("coupon %d still redeemed after reset", id)
		}
	}

	l2 := New(store)
	l2.Hydrate(ctx)
	if l2.Count() != 0 {
		t.Fatalf("reset did not persist: count=%d", l2.Count())
	}
}

func TestReplaceSwapsSetAndKeepsTimestamps(t *testing.T) {
	ctx := context.Background()
	l := New(newTestStore(t))
	l.Hydrate(ctx)

	orig := time.Date(2025, time.December, 2, 9, 0, 0, 0, time.UTC)
	l.Redeem(ctx, 2, orig)
	l.Redeem(ctx, 4, orig)

	importTime := orig.Add(72 * time.Hour)
	l.Replace(ctx, []int{2, 7}, importTime)

	if l.IsRedeemed(4) {
		t.Fatalf("replace kept coupon 4")
	}
	if !l.IsRedeemed(7) {
		t.Fatalf("replace missed coupon 7")
	}
	if at, _ := l.RedeemedAt(2); !at.Equal(orig) {
		t.Fatalf("replace lost original timestamp for retained id: %v", at)
	}
	if at, _ := l.RedeemedAt(7); !at.Equal(importTime) {
		t.Fatalf("replace should stamp new ids with import time, got %v", at)
	}
}

func TestMalformedPersistedStateReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	store.Set(ctx, storage.KeyRedeemedIDs, `{"not":"an array"}`)
	store.Set(ctx, storage.KeyRedeemedDates, `garbage`)

	l := New(store)
	l.Hydrate(ctx)
	if l.Count() != 0 {
		t.Fatalf("corrupted state should hydrate empty, got count=%d", l.Count())
	}
}

func TestOrphanTimestampsDropOnHydrate(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	// Hand-edited or older state can carry a timestamp without its ID.
	store.Set(ctx, storage.KeyRedeemedIDs, `[1]`)
	store.Set(ctx, storage.KeyRedeemedDates, `{"1":"2025-12-01T10:00:00Z","9":"2025-12-09T10:00:00Z"}`)

	l := New(store)
	l.Hydrate(ctx)
	if _, ok := l.RedeemedAt(9); ok {
		t.Fatalf("timestamp for unredeemed id 9 should be dropped")
	}
	if _, ok := l.RedeemedAt(1); !ok {
		t.Fatalf("timestamp for redeemed id 1 should survive")
	}
}

func TestStatsConsistency(t *testing.T) {
	ctx := context.Background()
	c := catalog.MustBuiltin()
	l := New(newTestStore(t))
	l.Hydrate(ctx)

	now := time.Now()
	for id := 1; id <= 12; id++ {
		l.Redeem(ctx, id, now)

		s := l.Stats(c)
		if s.Redeemed+s.Remaining != s.Total {
			t.Fatalf("redeemed(%d)+remaining(%d) != total(%d)", s.Redeemed, s.Remaining, s.Total)
		}
	}

	s := l.Stats(c)
	if s.Total != 24 || s.Redeemed != 12 {
		t.Fatalf("stats = %d/%d, want 12/24", s.Redeemed, s.Total)
	}
	if s.Percentage != 50 {
		t.Fatalf("percentage=%d, want 50", s.Percentage)
	}

	catTotal := 0
	for _, n := range s.CategoryCounts {
		catTotal += n
	}
	if catTotal != s.Total {
		t.Fatalf("category counts sum to %d, want %d", catTotal, s.Total)
	}
}

func TestStatsEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	c, err := catalog.New(nil)
	if err != nil {
		t.Fatalf("empty catalog: %v", err)
	}
	l := New(newTestStore(t))
	l.Hydrate(ctx)

	s := l.Stats(c)
	if s.Percentage != 0 {
		t.Fatalf("empty catalog percentage=%d, want 0 (no division by zero)", s.Percentage)
	}
}

func TestAutosaveStopIsIdempotent(t *testing.T) {
	ctx := context.Background()
	l := New(newTestStore(t))
	l.Hydrate(ctx)

	stop := l.StartAutosave(ctx, time.Minute)
	stop()
	stop() // second call must not panic
}
