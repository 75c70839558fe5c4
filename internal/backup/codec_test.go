package backup

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"advent/internal/ledger"
	"advent/internal/storage"
)

func newTestLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	l := ledger.New(storage.NewStore(db, nil))
	l.Hydrate(ctx)
	return l
}

func fixedNow() time.Time {
	return time.Date(2025, time.December, 10, 20, 0, 0, 0, time.UTC)
}

func TestExportReflectsLedger(t *testing.T) {
	ctx := context.Background()
	led := newTestLedger(t)
	led.Redeem(ctx, 2, fixedNow())
	led.Redeem(ctx, 5, fixedNow())
	led.Redeem(ctx, 1, fixedNow())

	c := NewCodec(led, fixedNow)
	doc := c.Export()

	if !reflect.DeepEqual(doc.RedeemedCoupons, []int{1, 2, 5}) {
		t.Fatalf("RedeemedCoupons=%v, want [1 2 5]", doc.RedeemedCoupons)
	}
	if doc.Version != Version {
		t.Fatalf("Version=%q, want %q", doc.Version, Version)
	}
	if doc.ExportDate != fixedNow().Format(time.RFC3339) {
		t.Fatalf("ExportDate=%q", doc.ExportDate)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	led := newTestLedger(t)
	for _, id := range []int{3, 9, 17} {
		led.Redeem(ctx, id, fixedNow())
	}

	c := NewCodec(led, fixedNow)
	raw, err := c.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	// Restore the same document into a fresh ledger.
	led2 := newTestLedger(t)
	c2 := NewCodec(led2, fixedNow)
	res, err := c2.Import(ctx, raw)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if res.Imported != 3 || res.VersionMismatch {
		t.Fatalf("result=%+v", res)
	}
	if !reflect.DeepEqual(led2.RedeemedIDs(), []int{3, 9, 17}) {
		t.Fatalf("round trip lost ids: %v", led2.RedeemedIDs())
	}
}

func TestImportReplacesNotMerges(t *testing.T) {
	ctx := context.Background()
	led := newTestLedger(t)
	led.Redeem(ctx, 1, fixedNow())
	led.Redeem(ctx, 2, fixedNow())

	c := NewCodec(led, fixedNow)
	if _, err := c.Import(ctx, []byte(`{"redeemedCoupons":[8],"exportDate":"2025-12-01T00:00:00Z","version":"1.0.0"}`)); err != nil {
		t.Fatalf("Import: %v", err)
	}

	if !reflect.DeepEqual(led.RedeemedIDs(), []int{8}) {
		t.Fatalf("import should replace prior state, got %v", led.RedeemedIDs())
	}
}

func TestImportRejectsInvalidDocuments(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", `not json at all`},
		{"not an object", `[1,2,3]`},
		{"missing redeemedCoupons", `{"exportDate":"2025-01-01T00:00:00Z"}`},
		{"null ids", `{"redeemedCoupons":null,"exportDate":"2025-01-01T00:00:00Z"}`},
		{"string ids", `{"redeemedCoupons":["a","b"],"exportDate":"2025-01-01T00:00:00Z"}`},
		{"fractional ids", `{"redeemedCoupons":[1.5],"exportDate":"2025-01-01T00:00:00Z"}`},
		{"ids not a list", `{"redeemedCoupons":{"1":true},"exportDate":"2025-01-01T00:00:00Z"}`},
		{"missing exportDate", `{"redeemedCoupons":[1]}`},
		{"exportDate not a string", `{"redeemedCoupons":[1],"exportDate":17}`},
		{"null exportDate", `{"redeemedCoupons":[1],"exportDate":null}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			led := newTestLedger(t)
			led.Redeem(ctx, 4, fixedNow())

			c := NewCodec(led, fixedNow)
			_, err := c.Import(ctx, []byte(tc.raw))
			if !errors.Is(err, ErrInvalidFormat) {
				t.Fatalf("err=%v, want ErrInvalidFormat", err)
			}
			// Atomicity: prior state untouched.
			if !led.IsRedeemed(4) || led.Count() != 1 {
				t.Fatalf("failed import mutated the ledger: %v", led.RedeemedIDs())
			}
		})
	}
}

func TestImportVersionMismatchIsNonFatal(t *testing.T) {
	ctx := context.Background()
	led := newTestLedger(t)
	c := NewCodec(led, fixedNow)

	res, err := c.Import(ctx, []byte(`{"redeemedCoupons":[2],"exportDate":"2024-12-01T00:00:00Z","version":"0.9.0"}`))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if !res.VersionMismatch {
		t.Fatalf("expected VersionMismatch warning")
	}
	if res.DocumentVersion != "0.9.0" {
		t.Fatalf("DocumentVersion=%q", res.DocumentVersion)
	}
	if !led.IsRedeemed(2) {
		t.Fatalf("version-mismatch import should still apply")
	}
}

func TestCheckFile(t *testing.T) {
	if err := CheckFile("backup.json", 512); err != nil {
		t.Fatalf("valid file rejected: %v", err)
	}
	if err := CheckFile("backup.txt", 512); !errors.Is(err, ErrWrongExtension) {
		t.Fatalf("err=%v, want ErrWrongExtension", err)
	}
	if err := CheckFile("backup.json", MaxImportSize+1); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("err=%v, want ErrFileTooLarge", err)
	}
}

func TestResetRequiresConfirmation(t *testing.T) {
	ctx := context.Background()
	led := newTestLedger(t)
	led.Redeem(ctx, 6, fixedNow())
	c := NewCodec(led, fixedNow)

	if err := c.Reset(ctx, false); !errors.Is(err, ErrNotConfirmed) {
		t.Fatalf("err=%v, want ErrNotConfirmed", err)
	}
	if !led.IsRedeemed(6) {
		t.Fatalf("unconfirmed reset cleared state")
	}

	if err := c.Reset(ctx, true); err != nil {
		t.Fatalf("confirmed reset: %v", err)
	}
	if led.Count() != 0 {
		t.Fatalf("reset left %d redemptions", led.Count())
	}
}
