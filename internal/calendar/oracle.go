// Package calendar derives calendar facts from the wall clock. It holds no
// state; every function is a pure function of Now.
package calendar

import (
	"time"

	"advent/internal/catalog"
)

// UnlockMonth is the only month in which doors can unlock.
const UnlockMonth = time.December

// Oracle answers calendar questions relative to an injectable clock.
// The zero-value Now falls back to time.Now.
type Oracle struct {
	Now func() time.Time
}

// System returns an oracle on the real clock.
func System() Oracle {
	return Oracle{Now: time.Now}
}

// Fixed returns an oracle pinned to t. Used by tests and the demo mode.
func Fixed(t time.Time) Oracle {
	return Oracle{Now: func() time.Time { return t }}
}

func (o Oracle) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

// IsUnlockMonth reports whether the current month is December.
func (o Oracle) IsUnlockMonth() bool {
	return o.now().Month() == UnlockMonth
}

// CurrentDayOfMonth returns the day of the month, 1..31.
func (o Oracle) CurrentDayOfMonth() int {
	return o.now().Day()
}

// IsUnlocked reports whether the door for the given December day is open.
// Outside December every door is locked.
func (o Oracle) IsUnlocked(day int) bool {
	return o.IsUnlockMonth() && o.CurrentDayOfMonth() >= day
}

// DaysUntilUnlock returns how many days remain until the door for the given
// day unlocks. Inside December this is max(0, day - today). Outside December
// it is the real day count to the next December 1 plus the door's offset.
func (o Oracle) DaysUntilUnlock(day int) int {
	now := o.now()
	if now.Month() == UnlockMonth {
		d := day - now.Day()
		if d < 0 {
			return 0
		}
		return d
	}

	year := now.Year()
	dec1 := time.Date(year, UnlockMonth, 1, 0, 0, 0, 0, now.Location())
	if now.After(dec1) {
		// Month() != December here means only January..November is possible,
		// but guard anyway.
		dec1 = time.Date(year+1, UnlockMonth, 1, 0, 0, 0, 0, now.Location())
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	toDec1 := int(dec1.Sub(today).Hours() / 24)
	return toDec1 + (day - 1)
}

// IsToday reports whether the given December day is today.
func (o Oracle) IsToday(day int) bool {
	return o.IsUnlockMonth() && o.CurrentDayOfMonth() == day
}

// UnlockedCount returns how many catalog doors are currently unlocked.
func (o Oracle) UnlockedCount(c *catalog.Catalog) int {
	if !o.IsUnlockMonth() {
		return 0
	}
	today := o.CurrentDayOfMonth()
	n := 0
	for _, cp := range c.All() {
		if cp.Day <= today {
			n++
		}
	}
	return n
}
