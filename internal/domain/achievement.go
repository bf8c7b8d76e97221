package domain

import "time"

// ─── Badge Rarity ───────────────────────────────────────────────────────────

// Rarity is a fixed ordinal used for display and reward scaling only; the
// evaluator never branches on it.
type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityUncommon  Rarity = "Uncommon"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
)

// Color returns the display color hex for this rarity.
func (r Rarity) Color() string {
	switch r {
	case RarityUncommon:
		return "#00AA00"
	case RarityRare:
		return "#0070DD"
	case RarityEpic:
		return "#A335EE"
	case RarityLegendary:
		return "#FF8000"
	default:
		return "#808080"
	}
}

// ─── Achievement Category ───────────────────────────────────────────────────

// AchievementCategory groups achievements by theme.
type AchievementCategory string

const (
	CatQuests       AchievementCategory = "quests"
	CatListings     AchievementCategory = "listings"
	CatTransactions AchievementCategory = "transactions"
	CatGold         AchievementCategory = "gold"
	CatStreaks      AchievementCategory = "streaks"
	CatRanks        AchievementCategory = "ranks"
)

// DisplayName returns the medieval banner for this category.
func (c AchievementCategory) DisplayName() string {
	switch c {
	case CatQuests:
		return "Noble Quests"
	case CatListings:
		return "Territory Claims"
	case CatTransactions:
		return "Royal Decrees"
	case CatGold:
		return "Treasury"
	case CatStreaks:
		return "Loyal Service"
	case CatRanks:
		return "Noble Ranks"
	default:
		return string(c)
	}
}

// ─── Badge ──────────────────────────────────────────────────────────────────

// Badge is the display metadata attached to an achievement rule.
type Badge struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageName   string `json:"image_name"`
	Rarity      Rarity `json:"rarity"`
	GoldReward  int    `json:"gold_reward"`
}

// ─── Achievement Rule ───────────────────────────────────────────────────────

// AchievementRule is a static catalog entry: a metric selector, the value
// that satisfies it, and the badge earned. The catalog is process-wide
// read-only configuration loaded once at startup.
type AchievementRule struct {
	ID            string                `json:"id"`
	Category      AchievementCategory   `json:"category"`
	RequiredValue int64                 `json:"required_value"`
	Badge         Badge                 `json:"badge"`
	Selector      func(UserStats) int64 `json:"-"`
}

// ─── Achievement ────────────────────────────────────────────────────────────

// Achievement is an earned instance. Created once when a rule's threshold is
// first satisfied; never deleted. IsNew flips to false when viewed.
type Achievement struct {
	ID         string            `json:"id"`
	UserID     string            `json:"user_id"`
	Type       string            `json:"type"`
	EarnedDate time.Time         `json:"earned_date"`
	Metadata   map[string]string `json:"metadata"`
	IsNew      bool              `json:"is_new"`
}
