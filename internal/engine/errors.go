package engine

import "fmt"

// LockedDoorError indicates an attempt to redeem a door that has not unlocked
// yet. The ledger itself is idempotent but knows nothing about lock state, so
// the calling layer relies on this check before any mutation happens. A locked
// redeem is never persisted.
type LockedDoorError struct {
	Day       int
	DaysUntil int
}

func (e LockedDoorError) Error() string {
	if e.DaysUntil == 1 {
		return fmt.Sprintf("door %d is not yet available (opens tomorrow)", e.Day)
	}
	return fmt.Sprintf("door %d is not yet available (opens in %d days)", e.Day, e.DaysUntil)
}

// UnknownCouponError indicates an ID with no catalog entry.
type UnknownCouponError struct {
	ID int
}

func (e UnknownCouponError) Error() string {
	return fmt.Sprintf("unknown coupon: %d", e.ID)
}
