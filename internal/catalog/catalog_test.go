package catalog

import "testing"

func TestBuiltinIsValid(t *testing.T) {
	c, err := New(Builtin())
	if err != nil {
		t.Fatalf("builtin catalog invalid: %v", err)
	}
	if c.Len() != 24 {
		t.Fatalf("builtin catalog has %d coupons, want 24", c.Len())
	}
}

func TestLookupsAreIndependent(t *testing.T) {
	// id and day deliberately diverge; lookups must not assume id == day.
	c, err := New([]Coupon{
		{ID: 101, Day: 3, Title: "a", Category: CategoryHome, Difficulty: DifficultyEasy},
		{ID: 102, Day: 7, Title: "b", Category: CategorySurprise, Difficulty: DifficultySpecial},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	byID, ok := c.ByID(102)
	if !ok || byID.Day != 7 {
		t.Fatalf("ByID(102) = %+v, %v", byID, ok)
	}
	byDay, ok := c.ByDay(3)
	if !ok || byDay.ID != 101 {
		t.Fatalf("ByDay(3) = %+v, %v", byDay, ok)
	}
	if _, ok := c.ByID(3); ok {
		t.Fatalf("ByID(3) should not resolve via day")
	}
	if _, ok := c.ByDay(101); ok {
		t.Fatalf("ByDay(101) should not resolve via id")
	}
}

func TestNewRejectsDefects(t *testing.T) {
	cases := []struct {
		name    string
		coupons []Coupon
	}{
		{"duplicate id", []Coupon{
			{ID: 1, Day: 1, Category: CategoryHome, Difficulty: DifficultyEasy},
			{ID: 1, Day: 2, Category: CategoryHome, Difficulty: DifficultyEasy},
		}},
		{"duplicate day", []Coupon{
			{ID: 1, Day: 1, Category: CategoryHome, Difficulty: DifficultyEasy},
			{ID: 2, Day: 1, Category: CategoryHome, Difficulty: DifficultyEasy},
		}},
		{"day out of range", []Coupon{
			{ID: 1, Day: 25, Category: CategoryHome, Difficulty: DifficultyEasy},
		}},
		{"bad category", []Coupon{
			{ID: 1, Day: 1, Category: "party", Difficulty: DifficultyEasy},
		}},
		{"bad difficulty", []Coupon{
			{ID: 1, Day: 1, Category: CategoryHome, Difficulty: "brutal"},
		}},
	}
	for _, tc := range cases {
		if _, err := New(tc.coupons); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}
