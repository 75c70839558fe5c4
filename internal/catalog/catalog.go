// Package catalog holds the static coupon catalog. Coupons are defined once at
// build time and never created or destroyed at runtime; every other package
// treats the catalog as a read-only shared reference.
package catalog

import "fmt"

type Category string

const (
	CategoryRomantic   Category = "romantic"
	CategoryRelaxation Category = "relaxation"
	CategoryAdventure  Category = "adventure"
	CategoryHome       Category = "home"
	CategoryCreative   Category = "creative"
	CategorySurprise   Category = "surprise"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryRomantic, CategoryRelaxation, CategoryAdventure, CategoryHome, CategoryCreative, CategorySurprise:
		return true
	default:
		return false
	}
}

// Categories lists all categories in display order.
func Categories() []Category {
	return []Category{
		CategoryRomantic,
		CategoryRelaxation,
		CategoryAdventure,
		CategoryHome,
		CategoryCreative,
		CategorySurprise,
	}
}

type Difficulty string

const (
	DifficultyEasy    Difficulty = "easy"
	DifficultyMedium  Difficulty = "medium"
	DifficultySpecial Difficulty = "special"
)

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultySpecial:
		return true
	default:
		return false
	}
}

// Coupon is one gift coupon behind a calendar door. ID identifies the coupon in
// the redemption ledger; Day is the December date its door unlocks. The builtin
// catalog keeps id == day, but lookups never rely on that.
type Coupon struct {
	ID                 int
	Day                int
	Title              string
	Description        string
	Emoji              string
	ValidUntil         string // advisory only, never enforced
	Category           Category
	Difficulty         Difficulty
	Tags               []string
	RedeemInstructions string
}

// Catalog provides indexed access to a fixed coupon set.
type Catalog struct {
	coupons []Coupon
	byID    map[int]*Coupon
	byDay   map[int]*Coupon
}

func New(coupons []Coupon) (*Catalog, error) {
	c := &Catalog{
		coupons: coupons,
		byID:    make(map[int]*Coupon, len(coupons)),
		byDay:   make(map[int]*Coupon, len(coupons)),
	}
	for i := range c.coupons {
		cp := &c.coupons[i]
		if _, dup := c.byID[cp.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate coupon id %d", cp.ID)
		}
		if _, dup := c.byDay[cp.Day]; dup {
			return nil, fmt.Errorf("catalog: duplicate coupon day %d", cp.Day)
		}
		if cp.Day < 1 || cp.Day > 24 {
			return nil, fmt.Errorf("catalog: coupon %d has day %d out of range", cp.ID, cp.Day)
		}
		if !cp.Category.IsValid() {
			return nil, fmt.Errorf("catalog: coupon %d has invalid category %q", cp.ID, cp.Category)
		}
		if !cp.Difficulty.IsValid() {
			return nil, fmt.Errorf("catalog: coupon %d has invalid difficulty %q", cp.ID, cp.Difficulty)
		}
		c.byID[cp.ID] = cp
		c.byDay[cp.Day] = cp
	}
	return c, nil
}

// MustBuiltin returns the reference catalog and panics on a defect in the
// builtin table. The builtin table is validated by tests, so a panic here means
// a broken build, not a runtime condition.
func MustBuiltin() *Catalog {
	c, err := New(Builtin())
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) ByID(id int) (*Coupon, bool) {
	cp, ok := c.byID[id]
	return cp, ok
}

func (c *Catalog) ByDay(day int) (*Coupon, bool) {
	cp, ok := c.byDay[day]
	return cp, ok
}

func (c *Catalog) Len() int { return len(c.coupons) }

// All returns the coupons in catalog order. Callers must not mutate entries.
func (c *Catalog) All() []Coupon { return c.coupons }
