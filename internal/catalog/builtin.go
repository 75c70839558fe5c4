package catalog

// Builtin returns the 24-coupon reference catalog. One coupon per December day,
// id == day throughout.
func Builtin() []Coupon {
	return []Coupon{
		{
			ID: 1, Day: 1,
			Title:       "Breakfast in Bed",
			Description: "A full breakfast served to you in bed, no getting up allowed.",
			Emoji:       "🥐",
			ValidUntil:  "2026-12-31",
			Category:    CategoryHome,
			Difficulty:  DifficultyEasy,
			Tags:        []string{"morning", "food"},
		},
		{
			ID: 2, Day: 2,
			Title:       "Movie Night, Your Pick",
			Description: "You choose the film, the snacks, and the blanket arrangement.",
			Emoji:       "🎬",
			ValidUntil:  "2026-12-31",
			Category:    CategoryRelaxation,
			Difficulty:  DifficultyEasy,
			Tags:        []string{"evening", "cozy"},
		},
		{
			ID: 3, Day: 3,
			Title:       "Winter Walk & Hot Chocolate",
			Description: "A walk through the city lights, ending at the best hot chocolate in town.",
			Emoji:       "☕",
			ValidUntil:  "2027-02-28",
			Category:    CategoryAdventure,
			Difficulty:  DifficultyEasy,
			Tags:        []string{"outdoors", "winter"},
		},
		{
			ID: 4, Day: 4,
			Title:       "Massage Evening",
			Description: "Thirty minutes of back massage with proper oil and no complaining.",
			Emoji:       "💆",
			ValidUntil:  "2026-12-31",
			Category:    CategoryRelaxation,
			Difficulty:  DifficultyMedium,
			Tags:        []string{"evening", "wellness"},
		},
		{
			ID: 5, Day: 5,
			Title:       "Cooking Together",
			Description: "We cook a three-course dinner together, recipe of your choice.",
			Emoji:       "🍳",
			ValidUntil:  "2026-12-31",
			Category:    CategoryHome,
			Difficulty:  DifficultyMedium,
			Tags:        []string{"food", "together"},
		},
		{
			ID: 6, Day: 6,
			Title:       "Love Letter",
			Description: "A handwritten letter, sealed, to be read wherever you like.",
			Emoji:       "💌",
			ValidUntil:  "2027-12-31",
			Category:    CategoryRomantic,
			Difficulty:  DifficultyEasy,
			Tags:        []string{"keepsake"},
		},
		{
			ID: 7, Day: 7,
			Title:       "Board Game Marathon",
			Description: "An evening of board games. Winner gets bragging rights until New Year.",
			Emoji:       "🎲",
			ValidUntil:  "2026-12-31",
			Category:    CategoryHome,
			Difficulty:  DifficultyEasy,
			Tags:        []string{"evening", "games"},
		},
		{
			ID: 8, Day: 8,
			Title:       "Photo Session",
			Description: "A small photo walk; I take portraits of you at your favorite spots.",
			Emoji:       "📸",
			ValidUntil:  "2027-06-30",
			Category:    CategoryCreative,
			Difficulty:  DifficultyMedium,
			Tags:        []string{"outdoors", "keepsake"},
		},
		{
			ID: 9, Day: 9,
			Title:       "Breakfast Date Out",
			Description: "A proper weekend breakfast date at a café of your choosing.",
			Emoji:       "🥞",
			ValidUntil:  "2027-03-31",
			Category:    CategoryAdventure,
			Difficulty:  DifficultyEasy,
			Tags:        []string{"morning", "food"},
		},
		{
			ID: 10, Day: 10,
			Title:       "Chore Takeover",
			Description: "I take over all your chores for one full day. No exceptions.",
			Emoji:       "🧹",
			ValidUntil:  "2026-12-31",
			Category:    CategoryHome,
			Difficulty:  DifficultyMedium,
			Tags:        []string{"practical"},
		},
		{
			ID: 11, Day: 11,
			Title:       "Stargazing Drive",
			Description: "A night drive out of the city with blankets, a thermos, and the stars.",
			Emoji:       "🌌",
			ValidUntil:  "2027-08-31",
			Category:    CategoryAdventure,
			Difficulty:  DifficultyMedium,
			Tags:        []string{"night", "outdoors"},
		},
		{
			ID: 12, Day: 12,
			Title:       "Spa Evening at Home",
			Description: "Candles, bath, face masks, calm playlist. The full home spa program.",
			Emoji:       "🛁",
			ValidUntil:  "2026-12-31",
			Category:    CategoryRelaxation,
			Difficulty:  DifficultyMedium,
			Tags:        []string{"evening", "wellness"},
		},
		{
			ID: 13, Day: 13,
			Title:       "Playlist of Us",
			Description: "A curated playlist of songs that mean something to us, with liner notes.",
			Emoji:       "🎧",
			ValidUntil:  "2027-12-31",
			Category:    CategoryCreative,
			Difficulty:  DifficultyEasy,
			Tags:        []string{"keepsake", "music"},
		},
		{
			ID: 14, Day: 14,
			Title:              "Surprise Mini-Date",
			Description:        "Two hours, destination secret. Dress warm.",
			Emoji:              "🎁",
			ValidUntil:         "2027-02-28",
			Category:           CategorySurprise,
			Difficulty:         DifficultySpecial,
			Tags:               []string{"secret"},
			RedeemInstructions: "Give me 24 hours notice so the surprise can be arranged.",
		},
		{
			ID: 15, Day: 15,
			Title:       "Bookstore Budget",
			Description: "A bookstore visit where you pick any book and it is on me.",
			Emoji:       "📚",
			ValidUntil:  "2027-06-30",
			Category:    CategoryAdventure,
			Difficulty:  DifficultyEasy,
			Tags:        []string{"shopping"},
		},
		{
			ID: 16, Day: 16,
			Title:       "Dance in the Kitchen",
			Description: "One slow dance in the kitchen to a song of your choice. Non-negotiable.",
			Emoji:       "💃",
			ValidUntil:  "2027-12-31",
			Category:    CategoryRomantic,
			Difficulty:  DifficultyEasy,
			Tags:        []string{"silly", "music"},
		},
		{
			ID: 17, Day: 17,
			Title:       "Museum or Gallery Day",
			Description: "An afternoon at the exhibition of your choice, audio guide included.",
			Emoji:       "🖼️",
			ValidUntil:  "2027-09-30",
			Category:    CategoryCreative,
			Difficulty:  DifficultyMedium,
			Tags:        []string{"culture", "outdoors"},
		},
		{
			ID: 18, Day: 18,
			Title:       "Baking Day",
			Description: "We bake cookies from scratch and you get to lick the bowl.",
			Emoji:       "🍪",
			ValidUntil:  "2026-12-31",
			Category:    CategoryHome,
			Difficulty:  DifficultyEasy,
			Tags:        []string{"food", "together"},
		},
		{
			ID: 19, Day: 19,
			Title:       "Tech Support for a Day",
			Description: "Phone cleanup, backups, that printer problem. All of it, cheerfully.",
			Emoji:       "🔧",
			ValidUntil:  "2027-12-31",
			Category:    CategorySurprise,
			Difficulty:  DifficultyMedium,
			Tags:        []string{"practical"},
		},
		{
			ID: 20, Day: 20,
			Title:              "Candlelight Dinner",
			Description:        "A proper candlelight dinner at home, three courses, phones off.",
			Emoji:              "🕯️",
			ValidUntil:         "2027-02-28",
			Category:           CategoryRomantic,
			Difficulty:         DifficultySpecial,
			Tags:               []string{"evening", "food"},
			RedeemInstructions: "Pick an evening at least two days ahead so groceries can happen.",
		},
		{
			ID: 21, Day: 21,
			Title:       "Ice Skating",
			Description: "A trip to the ice rink. Falling down together is part of the program.",
			Emoji:       "⛸️",
			ValidUntil:  "2027-02-28",
			Category:    CategoryAdventure,
			Difficulty:  DifficultyMedium,
			Tags:        []string{"winter", "outdoors"},
		},
		{
			ID: 22, Day: 22,
			Title:       "Memory Lane Evening",
			Description: "We go through old photos and tell each other the stories behind them.",
			Emoji:       "🗂️",
			ValidUntil:  "2027-12-31",
			Category:    CategoryRomantic,
			Difficulty:  DifficultyEasy,
			Tags:        []string{"keepsake", "evening"},
		},
		{
			ID: 23, Day: 23,
			Title:       "Day Trip, Destination Roulette",
			Description: "We each write three destinations, draw one from a hat, and go.",
			Emoji:       "🚆",
			ValidUntil:  "2027-10-31",
			Category:    CategorySurprise,
			Difficulty:  DifficultySpecial,
			Tags:        []string{"travel", "secret"},
		},
		{
			ID: 24, Day: 24,
			Title:              "Christmas Eve Wish",
			Description:        "One wish, within reason, granted on the spot. Choose wisely.",
			Emoji:              "🎄",
			ValidUntil:         "2026-12-26",
			Category:           CategorySurprise,
			Difficulty:         DifficultySpecial,
			Tags:               []string{"christmas"},
			RedeemInstructions: "Redeemable on December 24th only by tradition, but the ledger won't stop you.",
		},
	}
}
