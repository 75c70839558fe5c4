package engine

import (
	"context"
	"time"

	"advent/internal/calendar"
	"advent/internal/catalog"
	"advent/internal/ledger"
)

// Service wires the catalog, oracle and ledger into the user-facing redeem
// flow. One Service per running app, constructed once, ledger hydrated once
// before first read.
type Service struct {
	catalog *catalog.Catalog
	oracle  calendar.Oracle
	ledger  *ledger.Ledger
}

func NewService(c *catalog.Catalog, oracle calendar.Oracle, led *ledger.Ledger) *Service {
	return &Service{catalog: c, oracle: oracle, ledger: led}
}

func (s *Service) Catalog() *catalog.Catalog { return s.catalog }
func (s *Service) Ledger() *ledger.Ledger    { return s.ledger }
func (s *Service) Oracle() calendar.Oracle   { return s.oracle }

// Door returns the read model for one coupon ID.
func (s *Service) Door(id int) (*Door, error) {
	cp, ok := s.catalog.ByID(id)
	if !ok {
		return nil, UnknownCouponError{ID: id}
	}
	return &Door{
		Coupon:    *cp,
		Status:    Status(cp, s.oracle, s.ledger),
		DaysUntil: s.oracle.DaysUntilUnlock(cp.Day),
		IsToday:   s.oracle.IsToday(cp.Day),
	}, nil
}

// Doors returns all doors in catalog order.
func (s *Service) Doors() []Door {
	all := s.catalog.All()
	out := make([]Door, 0, len(all))
	for i := range all {
		cp := &all[i]
		out = append(out, Door{
			Coupon:    *cp,
			Status:    Status(cp, s.oracle, s.ledger),
			DaysUntil: s.oracle.DaysUntilUnlock(cp.Day),
			IsToday:   s.oracle.IsToday(cp.Day),
		})
	}
	return out
}

// RedeemResult reports the outcome of a redeem call.
type RedeemResult struct {
	Coupon          catalog.Coupon
	RedeemedAt      time.Time
	AlreadyRedeemed bool
	Milestones      []Milestone
}

// Redeem performs the only legal user-initiated transition,
// Unlocked -> Redeemed. Locked doors are rejected before the ledger is
// touched; already-redeemed doors are a safe no-op.
func (s *Service) Redeem(ctx context.Context, id int, milestones *Milestones) (*RedeemResult, error) {
	cp, ok := s.catalog.ByID(id)
	if !ok {
		return nil, UnknownCouponError{ID: id}
	}

	if s.ledger.IsRedeemed(id) {
		at, _ := s.ledger.RedeemedAt(id)
		return &RedeemResult{Coupon: *cp, RedeemedAt: at, AlreadyRedeemed: true}, nil
	}

	if !s.oracle.IsUnlocked(cp.Day) {
		return nil, LockedDoorError{Day: cp.Day, DaysUntil: s.oracle.DaysUntilUnlock(cp.Day)}
	}

	now := s.oracle.Now()
	s.ledger.Redeem(ctx, id, now)

	res := &RedeemResult{Coupon: *cp, RedeemedAt: now}
	if milestones != nil {
		res.Milestones = milestones.Cross(s.ledger.Count())
	}
	return res, nil
}

// Stats returns the derived statistics over the full catalog.
func (s *Service) Stats() ledger.Stats {
	return s.ledger.Stats(s.catalog)
}
