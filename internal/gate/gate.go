// Package gate implements the one-time shared-secret date challenge in front
// of the calendar. It is a sentimental gate, not a security boundary: no
// lockout, no rate limiting, the secret lives in the binary.
package gate

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"advent/internal/storage"
)

// The fixed date triple, zero-padded. Change these to your own date before
// handing the calendar over.
const (
	secretDay   = "24"
	secretMonth = "12"
	secretYear  = "2019"
)

type Gate struct {
	store *storage.Store
}

func New(store *storage.Store) *Gate {
	return &Gate{store: store}
}

// Authenticate compares the zero-padded candidate triple against the fixed
// secret. On match the authenticated flag is persisted and the gate is
// bypassed on all future loads; on mismatch nothing is stored.
func (g *Gate) Authenticate(ctx context.Context, day, month, year string) bool {
	if pad2(day) != secretDay || pad2(month) != secretMonth || strings.TrimSpace(year) != secretYear {
		return false
	}
	g.store.Set(ctx, storage.KeyAuthFlag, "true")
	return true
}

// IsAuthenticated reports whether the gate has been passed on this device.
// The app never resets the flag itself; only clearing the store does.
func (g *Gate) IsAuthenticated(ctx context.Context) bool {
	v, ok := g.store.Get(ctx, storage.KeyAuthFlag)
	return ok && v == "true"
}

func pad2(s string) string {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return fmt.Sprintf("%02d", n)
	}
	return s
}
