package ledger

import (
	"math"

	"advent/internal/catalog"
)

// Stats is the derived read model over the ledger and a catalog.
type Stats struct {
	Total              int                      `json:"total"`
	Redeemed           int                      `json:"redeemed"`
	Remaining          int                      `json:"remaining"`
	Percentage         int                      `json:"percentage"`
	CategoryCounts     map[catalog.Category]int `json:"categoryCounts"`
	RedeemedByCategory map[catalog.Category]int `json:"redeemedByCategory"`
}

// Stats computes counts, completion percentage and per-category breakdowns.
// Pure derivation; calling it never mutates ledger state.
func (l *Ledger) Stats(c *catalog.Catalog) Stats {
	s := Stats{
		Total:              c.Len(),
		CategoryCounts:     map[catalog.Category]int{},
		RedeemedByCategory: map[catalog.Category]int{},
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, cp := range c.All() {
		s.CategoryCounts[cp.Category]++
		if _, ok := l.redeemed[cp.ID]; ok {
			s.Redeemed++
			s.RedeemedByCategory[cp.Category]++
		}
	}
	s.Remaining = s.Total - s.Redeemed
	if s.Total > 0 {
		s.Percentage = int(math.Round(float64(s.Redeemed) / float64(s.Total) * 100))
	}
	return s
}
