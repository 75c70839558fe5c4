package storage

import (
	"context"
	"database/sql"
	"log/slog"
)

// Well-known keys. Values are JSON-encoded unless noted otherwise.
const (
	KeyRedeemedIDs   = "redeemed-coupon-ids" // JSON array of ints
	KeyRedeemedDates = "redeemed-dates"      // JSON object, id -> RFC3339
	KeyDisplayName   = "display-name"        // plain string
	KeyAuthFlag      = "session-auth-flag"   // literal "true"
	KeyFirstVisit    = "first-visit-marker"  // RFC3339 string
)

// Store is the failure-contained key-value store. The backing storage may be
// unavailable (missing file permissions, disk full, corrupted db); Store turns
// every such failure into "absent" or false, logs it once per operation, and
// never propagates an error. Consumers treat absent as "use default".
type Store struct {
	kv  *KVRepo
	log *slog.Logger
}

func NewStore(db *sql.DB, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{kv: NewKVRepo(db), log: log}
}

// Get returns the stored value. A failed read and a never-set key are
// indistinguishable to the caller by design.
func (s *Store) Get(ctx context.Context, key string) (string, bool) {
	v, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.log.Warn("store read failed", "key", key, "err", err)
		return "", false
	}
	return v, ok
}

// Set persists the value, reporting success. The caller is responsible for
// surfacing a user-visible warning on false.
func (s *Store) Set(ctx context.Context, key, value string) bool {
	if err := s.kv.Put(ctx, key, value); err != nil {
		s.log.Warn("store write failed", "key", key, "err", err)
		return false
	}
	return true
}

// SetMany persists all pairs atomically, reporting success.
func (s *Store) SetMany(ctx context.Context, pairs map[string]string) bool {
	if err := s.kv.PutMany(ctx, pairs); err != nil {
		s.log.Warn("store multi-write failed", "keys", len(pairs), "err", err)
		return false
	}
	return true
}

// Remove deletes the key, reporting success.
func (s *Store) Remove(ctx context.Context, key string) bool {
	if err := s.kv.Delete(ctx, key); err != nil {
		s.log.Warn("store remove failed", "key", key, "err", err)
		return false
	}
	return true
}
