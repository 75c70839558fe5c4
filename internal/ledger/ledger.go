// Package ledger is the single source of truth for which coupons have been
// redeemed and when. Every "is this redeemed" read anywhere in the system goes
// through this package.
package ledger

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"sync"
	"time"

	"advent/internal/storage"
)

// Ledger owns the redeemed-ID set and the parallel redemption-time map. It is
// created empty, hydrated once from the store before first read, and mutated
// only through Redeem, Replace and Reset. Safe for concurrent use; the HTTP
// surface serves requests in parallel.
type Ledger struct {
	store *storage.Store

	mu         sync.RWMutex
	redeemed   map[int]struct{}
	redeemedAt map[int]time.Time
	hydrated   bool
}

func New(store *storage.Store) *Ledger {
	return &Ledger{
		store:      store,
		redeemed:   map[int]struct{}{},
		redeemedAt: map[int]time.Time{},
	}
}

// Hydrate loads persisted state. Missing or malformed values yield empty state;
// hydration never fails. Callers gate rendering on Hydrated to avoid a flash of
// default-locked state.
func (l *Ledger) Hydrate(ctx context.Context) {
	ids := l.loadIDs(ctx)
	dates := l.loadDates(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.redeemed = make(map[int]struct{}, len(ids))
	for _, id := range ids {
		l.redeemed[id] = struct{}{}
	}
	// redeemedAt keys must stay a subset of redeemed; drop orphan timestamps
	// (possible in state written by older builds or edited by hand).
	l.redeemedAt = make(map[int]time.Time, len(dates))
	for id, ts := range dates {
		if _, ok := l.redeemed[id]; ok {
			l.redeemedAt[id] = ts
		}
	}
	l.hydrated = true
}

func (l *Ledger) loadIDs(ctx context.Context) []int {
	raw, ok := l.store.Get(ctx, storage.KeyRedeemedIDs)
	if !ok {
		return nil
	}
	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		// Corrupted state reads as absent.
		return nil
	}
	return ids
}

func (l *Ledger) loadDates(ctx context.Context) map[int]time.Time {
	raw, ok := l.store.Get(ctx, storage.KeyRedeemedDates)
	if !ok {
		return nil
	}
	var m map[string]string
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil
	}
	out := make(map[int]time.Time, len(m))
	for k, v := range m {
		id, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			continue
		}
		out[id] = ts
	}
	return out
}

func (l *Ledger) Hydrated() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.hydrated
}

// IsRedeemed is an O(1) membership test.
func (l *Ledger) IsRedeemed(id int) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.redeemed[id]
	return ok
}

// RedeemedAt returns the redemption time for id, if redeemed.
func (l *Ledger) RedeemedAt(id int) (time.Time, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	ts, ok := l.redeemedAt[id]
	return ts, ok
}

// RedeemedIDs returns the redeemed coupon IDs in ascending order.
func (l *Ledger) RedeemedIDs() []int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	ids := make([]int, 0, len(l.redeemed))
	for id := range l.redeemed {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Count returns the number of redeemed coupons.
func (l *Ledger) Count() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.redeemed)
}

// Redeem marks id redeemed at now and persists. Redeeming an already-redeemed
// id is a no-op and never overwrites the original timestamp.
func (l *Ledger) Redeem(ctx context.Context, id int, now time.Time) {
	l.mu.Lock()
	if _, ok := l.redeemed[id]; ok {
		l.mu.Unlock()
		return
	}
	l.redeemed[id] = struct{}{}
	l.redeemedAt[id] = now
	l.mu.Unlock()

	l.Persist(ctx)
}

// Replace swaps the redeemed set wholesale (backup restore). Timestamps of IDs
// that survive the replace are kept; new IDs get now.
func (l *Ledger) Replace(ctx context.Context, ids []int, now time.Time) {
	l.mu.Lock()
	next := make(map[int]struct{}, len(ids))
	nextAt := make(map[int]time.Time, len(ids))
	for _, id := range ids {
		next[id] = struct{}{}
		if ts, ok := l.redeemedAt[id]; ok {
			nextAt[id] = ts
		} else {
			nextAt[id] = now
		}
	}
	l.redeemed = next
	l.redeemedAt = nextAt
	l.hydrated = true
	l.mu.Unlock()

	l.Persist(ctx)
}

// Reset clears all redemption state and removes the persisted keys. A
// subsequent Hydrate yields empty state.
func (l *Ledger) Reset(ctx context.Context) {
	l.mu.Lock()
	l.redeemed = map[int]struct{}{}
	l.redeemedAt = map[int]time.Time{}
	l.mu.Unlock()

	l.store.Remove(ctx, storage.KeyRedeemedIDs)
	l.store.Remove(ctx, storage.KeyRedeemedDates)
}

// Persist writes both maps to the store. Best effort: a failed write is logged
// by the store and retried by the autosave ticker.
func (l *Ledger) Persist(ctx context.Context) {
	l.mu.RLock()
	ids := make([]int, 0, len(l.redeemed))
	for id := range l.redeemed {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	dates := make(map[string]string, len(l.redeemedAt))
	for id, ts := range l.redeemedAt {
		dates[strconv.Itoa(id)] = ts.Format(time.RFC3339)
	}
	l.mu.RUnlock()

	idsJSON, err := json.Marshal(ids)
	if err != nil {
		return
	}
	datesJSON, err := json.Marshal(dates)
	if err != nil {
		return
	}
	l.store.SetMany(ctx, map[string]string{
		storage.KeyRedeemedIDs:   string(idsJSON),
		storage.KeyRedeemedDates: string(datesJSON),
	})
}

// DefaultAutosaveInterval is the redundant-persist period.
const DefaultAutosaveInterval = 30 * time.Second

// StartAutosave persists the ledger every interval as a safety net against a
// missed write. The returned stop function cancels the ticker; callers must
// invoke it on teardown.
func (l *Ledger) StartAutosave(ctx context.Context, interval time.Duration) (stop func()) {
	if interval <= 0 {
		interval = DefaultAutosaveInterval
	}
	done := make(chan struct{})
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				l.Persist(ctx)
			case <-done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}
