package engine

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"advent/internal/calendar"
	"advent/internal/catalog"
	"advent/internal/ledger"
	"advent/internal/storage"
)

func newTestService(t *testing.T, now time.Time) (*Service, *ledger.Ledger) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	led := ledger.New(storage.NewStore(db, nil))
	led.Hydrate(ctx)
	svc := NewService(catalog.MustBuiltin(), calendar.Fixed(now), led)
	return svc, led
}

func dec(day int) time.Time {
	return time.Date(2025, time.December, day, 10, 0, 0, 0, time.UTC)
}

func TestDoorFiveScenario(t *testing.T) {
	ctx := context.Background()

	// December 3: door 5 locked, two days out.
	svc, led := newTestService(t, dec(3))
	door, err := svc.Door(5)
	if err != nil {
		t.Fatalf("Door(5): %v", err)
	}
	if door.Status != StatusLocked {
		t.Fatalf("Dec 3: status=%s, want locked", door.Status)
	}
	if door.DaysUntil != 2 {
		t.Fatalf("Dec 3: daysUntil=%d, want 2", door.DaysUntil)
	}
	if _, err := svc.Redeem(ctx, 5, nil); err == nil {
		t.Fatalf("expected locked-door error on Dec 3")
	}
	if led.IsRedeemed(5) {
		t.Fatalf("rejected redeem must not reach the ledger")
	}

	// December 5: door 5 unlocks.
	svc5 := NewService(svc.Catalog(), calendar.Fixed(dec(5)), led)
	door, _ = svc5.Door(5)
	if door.Status != StatusUnlocked {
		t.Fatalf("Dec 5: status=%s, want unlocked", door.Status)
	}
	if !door.IsToday {
		t.Fatalf("Dec 5 should be door 5's day")
	}
	if _, err := svc5.Redeem(ctx, 5, nil); err != nil {
		t.Fatalf("redeem on Dec 5: %v", err)
	}
	door, _ = svc5.Door(5)
	if door.Status != StatusRedeemed {
		t.Fatalf("after redeem: status=%s, want redeemed", door.Status)
	}

	// December 1 next year: redeemed dominates the clock.
	nextYear := NewService(svc.Catalog(), calendar.Fixed(time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC)), led)
	door, _ = nextYear.Door(5)
	if door.Status != StatusRedeemed {
		t.Fatalf("next year: status=%s, want redeemed (sticky)", door.Status)
	}
}

func TestRedeemedDominatesLockedClock(t *testing.T) {
	ctx := context.Background()
	svc, led := newTestService(t, dec(24))

	if _, err := svc.Redeem(ctx, 10, nil); err != nil {
		t.Fatalf("redeem: %v", err)
	}

	// Re-evaluate in July: the clock says locked, the ledger wins.
	july := NewService(svc.Catalog(), calendar.Fixed(time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)), led)
	door, _ := july.Door(10)
	if door.Status != StatusRedeemed {
		t.Fatalf("July: status=%s, want redeemed", door.Status)
	}
}

func TestRedeemIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, dec(10))

	first, err := svc.Redeem(ctx, 7, nil)
	if err != nil {
		t.Fatalf("first redeem: %v", err)
	}
	second, err := svc.Redeem(ctx, 7, nil)
	if err != nil {
		t.Fatalf("second redeem: %v", err)
	}
	if !second.AlreadyRedeemed {
		t.Fatalf("second redeem should report AlreadyRedeemed")
	}
	if !second.RedeemedAt.Equal(first.RedeemedAt) {
		t.Fatalf("second redeem changed timestamp: %v != %v", second.RedeemedAt, first.RedeemedAt)
	}
}

func TestRedeemUnknownCoupon(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, dec(10))

	if _, err := svc.Redeem(ctx, 99, nil); err == nil {
		t.Fatalf("expected unknown-coupon error")
	}
}

func TestDoorsReturnsFullCatalog(t *testing.T) {
	svc, _ := newTestService(t, dec(6))
	doors := svc.Doors()
	if len(doors) != 24 {
		t.Fatalf("len(doors)=%d, want 24", len(doors))
	}
	for _, d := range doors {
		want := StatusLocked
		if d.Coupon.Day <= 6 {
			want = StatusUnlocked
		}
		if d.Status != want {
			t.Fatalf("door %d: status=%s, want %s", d.Coupon.Day, d.Status, want)
		}
	}
}

func TestMilestonesFireOncePerSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, dec(24))

	ms := NewMilestones(svc.Catalog().Len())

	var fired []Milestone
	for id := 1; id <= 24; id++ {
		res, err := svc.Redeem(ctx, id, ms)
		if err != nil {
			t.Fatalf("redeem %d: %v", id, err)
		}
		fired = append(fired, res.Milestones...)
	}

	if len(fired) != 2 {
		t.Fatalf("fired %d milestones, want 2 (half, all)", len(fired))
	}
	if fired[0].ID != "half" || fired[1].ID != "all" {
		t.Fatalf("milestone order = %s, %s", fired[0].ID, fired[1].ID)
	}

	// Re-evaluating the same count must not re-fire.
	if again := ms.Cross(24); len(again) != 0 {
		t.Fatalf("milestones re-fired: %v", again)
	}
}

func TestAchievements(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, dec(24))

	find := func(id string) Achievement {
		for _, a := range svc.Achievements() {
			if a.ID == id {
				return a
			}
		}
		t.Fatalf("achievement %s not defined", id)
		return Achievement{}
	}

	if find("first_door").Earned {
		t.Fatalf("first_door earned on empty ledger")
	}

	if _, err := svc.Redeem(ctx, 5, nil); err != nil {
		t.Fatalf("redeem: %v", err)
	}
	if !find("first_door").Earned {
		t.Fatalf("first_door not earned after one redemption")
	}

	// Door 24 redeemed on Dec 24 earns the on-the-day badge.
	if _, err := svc.Redeem(ctx, 24, nil); err != nil {
		t.Fatalf("redeem 24: %v", err)
	}
	if !find("on_the_day").Earned {
		t.Fatalf("on_the_day not earned for same-day redemption")
	}

	// Redeem every home coupon for the category badge.
	for _, cp := range svc.Catalog().All() {
		if cp.Category == catalog.CategoryHome {
			if _, err := svc.Redeem(ctx, cp.ID, nil); err != nil {
				t.Fatalf("redeem %d: %v", cp.ID, err)
			}
		}
	}
	if !find("homebody").Earned {
		t.Fatalf("homebody not earned with all home coupons redeemed")
	}
	if find("completionist").Earned {
		t.Fatalf("completionist earned prematurely")
	}
}
