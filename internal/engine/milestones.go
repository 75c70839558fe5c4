package engine

import "sync"

// Milestone is a one-time celebratory threshold crossing.
type Milestone struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Milestones tracks which celebration thresholds have fired this session.
// Fired-state is deliberately separate from the ledger: it is never persisted,
// so re-rendering the same ledger state does not re-fire a toast, and a fresh
// session starts clean.
type Milestones struct {
	total int

	mu    sync.Mutex
	fired map[string]bool
}

func NewMilestones(total int) *Milestones {
	return &Milestones{total: total, fired: map[string]bool{}}
}

// Cross returns the milestones newly crossed at the given redeemed count. Each
// milestone is reported at most once per session.
func (m *Milestones) Cross(redeemedCount int) []Milestone {
	if m.total == 0 {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Milestone
	half := (m.total + 1) / 2
	if redeemedCount >= half && !m.fired["half"] {
		m.fired["half"] = true
		out = append(out, Milestone{ID: "half", Message: "Halfway there! Half of all coupons redeemed."})
	}
	if redeemedCount >= m.total && !m.fired["all"] {
		m.fired["all"] = true
		out = append(out, Milestone{ID: "all", Message: "Calendar complete! Every coupon redeemed. 🎄"})
	}
	return out
}
