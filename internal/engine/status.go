// Package engine implements the unlock/redeem state machine over the clock
// oracle and the redemption ledger, plus the derived milestone and achievement
// models.
package engine

import (
	"advent/internal/calendar"
	"advent/internal/catalog"
	"advent/internal/ledger"
)

type DoorStatus string

const (
	StatusLocked   DoorStatus = "locked"
	StatusUnlocked DoorStatus = "unlocked"
	StatusRedeemed DoorStatus = "redeemed"
)

// Status computes the door state for a coupon. The machine is stateless and
// recomputed fresh on every evaluation. Redeemed dominates: once the ledger has
// the ID, the clock is never consulted again, so a redeemed door can never
// revert to Unlocked or Locked across a year boundary.
func Status(cp *catalog.Coupon, oracle calendar.Oracle, led *ledger.Ledger) DoorStatus {
	if led.IsRedeemed(cp.ID) {
		return StatusRedeemed
	}
	if oracle.IsUnlocked(cp.Day) {
		return StatusUnlocked
	}
	return StatusLocked
}

// Door is the per-door read model consumed by every renderer (CLI, TUI, HTTP).
type Door struct {
	Coupon    catalog.Coupon `json:"coupon"`
	Status    DoorStatus     `json:"status"`
	DaysUntil int            `json:"daysUntil"`
	IsToday   bool           `json:"isToday"`
}
