package progression

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/bunkeboy/landlord/internal/domain"
)

// Evaluate runs every catalog rule not yet in unlocked against the stats
// snapshot and returns the newly earned achievements. Rules are evaluated in
// catalog insertion order and never affect each other within a pass, so
// re-running with the emitted ids added to unlocked produces nothing new.
func Evaluate(stats domain.UserStats, unlocked map[string]bool, catalog []domain.AchievementRule, userID string, now time.Time) []domain.Achievement {
	var earned []domain.Achievement

	for _, rule := range catalog {
		if unlocked[rule.ID] {
			continue
		}
		if rule.Selector == nil {
			continue
		}

		metric := rule.Selector(stats)
		if metric < rule.RequiredValue {
			continue
		}

		earned = append(earned, domain.Achievement{
			ID:         uuid.NewString(),
			UserID:     userID,
			Type:       rule.ID,
			EarnedDate: now,
			Metadata: map[string]string{
				"progress": strconv.FormatInt(metric, 10),
				"target":   strconv.FormatInt(rule.RequiredValue, 10),
			},
			IsNew: true,
		})
	}

	return earned
}

// AchievementProgress returns completion as a percentage clamped to [0,100].
// A non-positive target is treated as "undefined" and yields 0 rather than
// an error.
func AchievementProgress(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	pct := current / target * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// AchievementDescription returns the medieval banner for a progress percentage.
func AchievementDescription(pct float64) string {
	switch {
	case pct <= 0:
		return "Thy quest awaits."
	case pct <= 25:
		return "The journey has just begun."
	case pct <= 50:
		return "Halfway to glory!"
	case pct <= 75:
		return "Victory is within sight!"
	case pct < 100:
		return "The final battle approaches!"
	default:
		return "The kingdom is yours!"
	}
}

// ─── Achievement Catalog ────────────────────────────────────────────────────
// The full LandLord rule set. Loaded once at startup and treated as
// process-wide read-only configuration; order here is evaluation order.

// Catalog returns the static achievement catalog.
func Catalog() []domain.AchievementRule {
	return []domain.AchievementRule{
		// ── Noble Quests ───────────────────────────────────────────────
		{
			ID: "first_quest", Category: domain.CatQuests, RequiredValue: 1,
			Selector: func(s domain.UserStats) int64 { return int64(s.QuestsCompleted) },
			Badge: domain.Badge{
				Name:        "Squire's First Quest",
				Description: "You've completed your first quest. Many more adventures await!",
				ImageName:   "badge_first_quest",
				Rarity:      domain.RarityCommon,
				GoldReward:  50,
			},
		},
		{
			ID: "quest_master", Category: domain.CatQuests, RequiredValue: 50,
			Selector: func(s domain.UserStats) int64 { return int64(s.QuestsCompleted) },
			Badge: domain.Badge{
				Name:        "Royal Taskmaster",
				Description: "A true hero of the realm! You've completed 50 quests.",
				ImageName:   "badge_quest_master",
				Rarity:      domain.RarityEpic,
				GoldReward:  500,
			},
		},
		{
			ID: "quest_completionist", Category: domain.CatQuests, RequiredValue: 100,
			Selector: func(s domain.UserStats) int64 { return int64(s.QuestsCompleted) },
			Badge: domain.Badge{
				Name:        "Quest Completionist",
				Description: "One hundred quests fulfilled in service of the realm.",
				ImageName:   "badge_quest_completionist",
				Rarity:      domain.RarityLegendary,
				GoldReward:  1000,
			},
		},

		// ── Territory Claims ───────────────────────────────────────────
		{
			ID: "first_listing", Category: domain.CatListings, RequiredValue: 1,
			Selector: func(s domain.UserStats) int64 { return int64(s.PropertiesListed) },
			Badge: domain.Badge{
				Name:        "Property Herald",
				Description: "You've staked your first claim by listing a property.",
				ImageName:   "badge_first_listing",
				Rarity:      domain.RarityCommon,
				GoldReward:  100,
			},
		},
		{
			ID: "listing_mogul", Category: domain.CatListings, RequiredValue: 10,
			Selector: func(s domain.UserStats) int64 { return int64(s.PropertiesListed) },
			Badge: domain.Badge{
				Name:        "Territory Expander",
				Description: "Your influence grows! You've listed 10 properties.",
				ImageName:   "badge_listing_mogul",
				Rarity:      domain.RarityRare,
				GoldReward:  300,
			},
		},

		// ── Royal Decrees ──────────────────────────────────────────────
		{
			ID: "first_sale", Category: domain.CatTransactions, RequiredValue: 1,
			Selector: func(s domain.UserStats) int64 { return int64(s.PropertiesSold) },
			Badge: domain.Badge{
				Name:        "First Transaction",
				Description: "You've closed your first deal. The first of many conquests!",
				ImageName:   "badge_first_sale",
				Rarity:      domain.RarityCommon,
				GoldReward:  100,
			},
		},
		{
			ID: "closing_master", Category: domain.CatTransactions, RequiredValue: 10,
			Selector: func(s domain.UserStats) int64 { return int64(s.PropertiesSold) },
			Badge: domain.Badge{
				Name:        "Master Negotiator",
				Description: "A skilled diplomat! You've closed 10 deals.",
				ImageName:   "badge_closing_master",
				Rarity:      domain.RarityRare,
				GoldReward:  300,
			},
		},
		{
			ID: "sales_master", Category: domain.CatTransactions, RequiredValue: 25,
			Selector: func(s domain.UserStats) int64 { return int64(s.PropertiesSold) },
			Badge: domain.Badge{
				Name:        "Master Merchant",
				Description: "Twenty-five kingdoms changed hands under your seal.",
				ImageName:   "badge_sales_master",
				Rarity:      domain.RarityEpic,
				GoldReward:  500,
			},
		},
		{
			ID: "million_gold_agent", Category: domain.CatTransactions, RequiredValue: 1000000,
			Selector: func(s domain.UserStats) int64 { return s.SalesVolume },
			Badge: domain.Badge{
				Name:        "Million Gold Agent",
				Description: "Your wealth is legendary! You've reached $1M in sales volume.",
				ImageName:   "badge_million_dollar",
				Rarity:      domain.RarityLegendary,
				GoldReward:  1000,
			},
		},

		// ── Treasury ───────────────────────────────────────────────────
		{
			ID: "gold_collector", Category: domain.CatGold, RequiredValue: 1000,
			Selector: func(s domain.UserStats) int64 { return s.GoldEarned },
			Badge: domain.Badge{
				Name:        "Gold Collector",
				Description: "Your coffers begin to fill. You've earned 1,000 gold.",
				ImageName:   "badge_gold_collector",
				Rarity:      domain.RarityUncommon,
				GoldReward:  100,
			},
		},
		{
			ID: "gold_hoarder", Category: domain.CatGold, RequiredValue: 10000,
			Selector: func(s domain.UserStats) int64 { return s.GoldEarned },
			Badge: domain.Badge{
				Name:        "Dragon's Hoard",
				Description: "Your wealth rivals that of dragons! You've earned 10,000 gold.",
				ImageName:   "badge_gold_hoarder",
				Rarity:      domain.RarityRare,
				GoldReward:  500,
			},
		},
		{
			ID: "royal_treasury", Category: domain.CatGold, RequiredValue: 100000,
			Selector: func(s domain.UserStats) int64 { return s.GoldEarned },
			Badge: domain.Badge{
				Name:        "Royal Treasury",
				Description: "Your wealth is the envy of kingdoms! You've earned 100,000 gold.",
				ImageName:   "badge_royal_treasury",
				Rarity:      domain.RarityLegendary,
				GoldReward:  1000,
			},
		},

		// ── Loyal Service ──────────────────────────────────────────────
		{
			ID: "week_streak", Category: domain.CatStreaks, RequiredValue: 7,
			Selector: func(s domain.UserStats) int64 { return int64(s.CurrentStreakDays) },
			Badge: domain.Badge{
				Name:        "Week of Dedication",
				Description: "A week of loyal service! You've maintained a 7-day streak.",
				ImageName:   "badge_week_streak",
				Rarity:      domain.RarityUncommon,
				GoldReward:  100,
			},
		},
		{
			ID: "month_streak", Category: domain.CatStreaks, RequiredValue: 30,
			Selector: func(s domain.UserStats) int64 { return int64(s.CurrentStreakDays) },
			Badge: domain.Badge{
				Name:        "Month of Loyalty",
				Description: "A month of dedication! You've maintained a 30-day streak.",
				ImageName:   "badge_month_streak",
				Rarity:      domain.RarityRare,
				GoldReward:  300,
			},
		},
		{
			ID: "season_streak", Category: domain.CatStreaks, RequiredValue: 90,
			Selector: func(s domain.UserStats) int64 { return int64(s.CurrentStreakDays) },
			Badge: domain.Badge{
				Name:        "Season of Devotion",
				Description: "A season of unwavering commitment! You've maintained a 90-day streak.",
				ImageName:   "badge_season_streak",
				Rarity:      domain.RarityEpic,
				GoldReward:  500,
			},
		},

		// ── Noble Ranks ────────────────────────────────────────────────
		// Rank achievements compare raw XP against the rank thresholds so
		// the selector stays monotone like every other rule.
		{
			ID: "knighthood", Category: domain.CatRanks, RequiredValue: int64(domain.RankKnight.RequiredXP()),
			Selector: func(s domain.UserStats) int64 { return int64(s.ExperiencePoints) },
			Badge: domain.Badge{
				Name:        "Knighthood Achieved",
				Description: "You've been knighted for your service to the realm.",
				ImageName:   "badge_knighthood",
				Rarity:      domain.RarityUncommon,
				GoldReward:  200,
			},
		},
		{
			ID: "barony", Category: domain.CatRanks, RequiredValue: int64(domain.RankBaron.RequiredXP()),
			Selector: func(s domain.UserStats) int64 { return int64(s.ExperiencePoints) },
			Badge: domain.Badge{
				Name:        "Barony Claimed",
				Description: "Your influence grows! You've been granted the title of Baron.",
				ImageName:   "badge_barony",
				Rarity:      domain.RarityRare,
				GoldReward:  300,
			},
		},
		{
			ID: "dukedom", Category: domain.CatRanks, RequiredValue: int64(domain.RankDuke.RequiredXP()),
			Selector: func(s domain.UserStats) int64 { return int64(s.ExperiencePoints) },
			Badge: domain.Badge{
				Name:        "Dukedom Established",
				Description: "Your power is recognized throughout the land! You've been granted the title of Duke.",
				ImageName:   "badge_dukedom",
				Rarity:      domain.RarityEpic,
				GoldReward:  500,
			},
		},
		{
			ID: "royalty", Category: domain.CatRanks, RequiredValue: int64(domain.RankRoyalty.RequiredXP()),
			Selector: func(s domain.UserStats) int64 { return int64(s.ExperiencePoints) },
			Badge: domain.Badge{
				Name:        "Royalty Ascended",
				Description: "The highest honor! You've ascended to Royalty status.",
				ImageName:   "badge_royalty",
				Rarity:      domain.RarityLegendary,
				GoldReward:  1000,
			},
		},
		{
			ID: "reach_level_10", Category: domain.CatRanks, RequiredValue: 10,
			Selector: func(s domain.UserStats) int64 { return int64(s.Level) },
			Badge: domain.Badge{
				Name:        "Rising Knight",
				Description: "You've reached level 10!",
				ImageName:   "badge_reach_level_10",
				Rarity:      domain.RarityUncommon,
				GoldReward:  200,
			},
		},
		{
			ID: "reach_level_25", Category: domain.CatRanks, RequiredValue: 25,
			Selector: func(s domain.UserStats) int64 { return int64(s.Level) },
			Badge: domain.Badge{
				Name:        "Established Noble",
				Description: "You've reached level 25!",
				ImageName:   "badge_reach_level_25",
				Rarity:      domain.RarityRare,
				GoldReward:  300,
			},
		},
		{
			ID: "reach_level_50", Category: domain.CatRanks, RequiredValue: 50,
			Selector: func(s domain.UserStats) int64 { return int64(s.Level) },
			Badge: domain.Badge{
				Name:        "Legendary Royalty",
				Description: "You've reached level 50!",
				ImageName:   "badge_reach_level_50",
				Rarity:      domain.RarityEpic,
				GoldReward:  500,
			},
		},
	}
}

// RuleByID looks up a catalog rule, or false when the id is unknown.
func RuleByID(catalog []domain.AchievementRule, id string) (domain.AchievementRule, bool) {
	for _, rule := range catalog {
		if rule.ID == id {
			return rule, true
		}
	}
	return domain.AchievementRule{}, false
}
