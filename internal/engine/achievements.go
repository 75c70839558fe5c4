package engine

import (
	"fmt"
	"time"

	"advent/internal/catalog"
	"advent/internal/ledger"
)

// Achievement represents a badge the calendar owner can earn.
type Achievement struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Earned      bool   `json:"earned"`
}

// AchievementChecker calculates which achievements have been earned. All
// checks are pure derivations from ledger plus catalog; nothing is stored.
type AchievementChecker struct {
	catalog *catalog.Catalog
	ledger  *ledger.Ledger
}

func NewAchievementChecker(c *catalog.Catalog, led *ledger.Ledger) *AchievementChecker {
	return &AchievementChecker{catalog: c, ledger: led}
}

// GetAchievements returns all achievements with their earned status.
func (c *AchievementChecker) GetAchievements() []Achievement {
	total := c.catalog.Len()
	half := (total + 1) / 2

	achievements := []Achievement{
		// Count milestones
		c.countAchievement("first_door", "First Door", "Redeem your first coupon", "🚪", 1),
		c.countAchievement("warming_up", "Warming Up", "Redeem 5 coupons", "🔥", 5),
		c.countAchievement("halfway", "Halfway There", "Redeem half of all coupons", "🌗", half),
		c.countAchievement("completionist", "Completionist", "Redeem every coupon", "🏆", total),

		// Category completions
		c.categoryAchievement("hopeless_romantic", "Hopeless Romantic", "Redeem all romantic coupons", "💞", catalog.CategoryRomantic),
		c.categoryAchievement("zen_master", "Zen Master", "Redeem all relaxation coupons", "🧘", catalog.CategoryRelaxation),
		c.categoryAchievement("explorer", "Explorer", "Redeem all adventure coupons", "🧭", catalog.CategoryAdventure),
		c.categoryAchievement("homebody", "Homebody", "Redeem all home coupons", "🏠", catalog.CategoryHome),
		c.categoryAchievement("muse", "Muse", "Redeem all creative coupons", "🎨", catalog.CategoryCreative),
		c.categoryAchievement("thrill_seeker", "Thrill Seeker", "Redeem all surprise coupons", "🎁", catalog.CategorySurprise),

		// Timing
		c.onTheDayAchievement("on_the_day", "Right On Time", "Redeem a coupon on the day its door opened", "⏰"),
	}

	return achievements
}

// CountEarned returns how many achievements have been earned.
func (c *AchievementChecker) CountEarned() int {
	count := 0
	for _, a := range c.GetAchievements() {
		if a.Earned {
			count++
		}
	}
	return count
}

// CountTotal returns total number of achievements.
func (c *AchievementChecker) CountTotal() int {
	return len(c.GetAchievements())
}

func (c *AchievementChecker) countAchievement(id, name, desc, icon string, count int) Achievement {
	earned := c.ledger.Count() >= count && count > 0
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) categoryAchievement(id, name, desc, icon string, cat catalog.Category) Achievement {
	totalInCat := 0
	redeemedInCat := 0
	for _, cp := range c.catalog.All() {
		if cp.Category != cat {
			continue
		}
		totalInCat++
		if c.ledger.IsRedeemed(cp.ID) {
			redeemedInCat++
		}
	}
	earned := totalInCat > 0 && redeemedInCat == totalInCat
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) onTheDayAchievement(id, name, desc, icon string) Achievement {
	earned := false
	for _, cp := range c.catalog.All() {
		at, ok := c.ledger.RedeemedAt(cp.ID)
		if !ok {
			continue
		}
		if at.Month() == time.December && at.Day() == cp.Day {
			earned = true
			break
		}
	}
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

// Achievements is a convenience accessor on the service.
func (s *Service) Achievements() []Achievement {
	return NewAchievementChecker(s.catalog, s.ledger).GetAchievements()
}

// AchievementSummary renders a short "earned/total" string for status views.
func (s *Service) AchievementSummary() string {
	c := NewAchievementChecker(s.catalog, s.ledger)
	return fmt.Sprintf("%d/%d", c.CountEarned(), c.CountTotal())
}
