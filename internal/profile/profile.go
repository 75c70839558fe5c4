// Package profile handles personalization state: the display name, the
// first-visit marker and the per-day unlock notification markers. None of it
// affects unlock/redeem logic; it shares the ledger's persistence substrate
// and hydration timing, nothing more.
package profile

import (
	"context"
	"fmt"
	"strings"
	"time"

	"advent/internal/storage"
)

type Profile struct {
	store *storage.Store
}

func New(store *storage.Store) *Profile {
	return &Profile{store: store}
}

// Name returns the stored display name, if set.
func (p *Profile) Name(ctx context.Context) (string, bool) {
	v, ok := p.store.Get(ctx, storage.KeyDisplayName)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

// SetName persists the display name. Empty names are ignored.
func (p *Profile) SetName(ctx context.Context, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	return p.store.Set(ctx, storage.KeyDisplayName, name)
}

// EnsureFirstVisit records the first-visit timestamp once and returns it.
func (p *Profile) EnsureFirstVisit(ctx context.Context, now time.Time) time.Time {
	if v, ok := p.store.Get(ctx, storage.KeyFirstVisit); ok {
		if ts, err := time.Parse(time.RFC3339, v); err == nil {
			return ts
		}
	}
	p.store.Set(ctx, storage.KeyFirstVisit, now.Format(time.RFC3339))
	return now
}

func dayNotifiedKey(day int) string {
	return fmt.Sprintf("day-notified-%d", day)
}

// DayNotified reports whether the "door open today" notice already fired for
// the given calendar day.
func (p *Profile) DayNotified(ctx context.Context, day int) bool {
	v, ok := p.store.Get(ctx, dayNotifiedKey(day))
	return ok && v == "true"
}

// MarkDayNotified records that the daily-unlock notice fired for the day, so
// reloads within the same day stay quiet.
func (p *Profile) MarkDayNotified(ctx context.Context, day int) bool {
	return p.store.Set(ctx, dayNotifiedKey(day), "true")
}
