// Package domain holds the pure types of the LandLord progression engine.
// Nothing in this package touches storage or the network; the engine operates
// on value snapshots and returns new ones.
package domain

import "time"

// ─── Rank Types ─────────────────────────────────────────────────────────────

// Rank is a medieval tier derived from cumulative XP.
type Rank string

const (
	RankSquire  Rank = "Squire"
	RankKnight  Rank = "Knight"
	RankBaron   Rank = "Baron"
	RankDuke    Rank = "Duke"
	RankRoyalty Rank = "Royalty"
)

// Ranks is the ordered progression ladder, lowest first.
var Ranks = []Rank{RankSquire, RankKnight, RankBaron, RankDuke, RankRoyalty}

// rankThresholds maps each rank to the minimum cumulative XP that earns it.
var rankThresholds = map[Rank]int{
	RankSquire:  0,
	RankKnight:  300,
	RankBaron:   1000,
	RankDuke:    3000,
	RankRoyalty: 10000,
}

// RequiredXP returns the minimum cumulative XP for this rank.
func (r Rank) RequiredXP() int {
	return rankThresholds[r]
}

// Icon returns the display icon tag for this rank.
func (r Rank) Icon() string {
	switch r {
	case RankKnight:
		return "shield"
	case RankBaron:
		return "flag"
	case RankDuke:
		return "crown"
	case RankRoyalty:
		return "star"
	default:
		return "person"
	}
}

// TitlePrefixes are cycled through by level to build a user's full title.
// The prefix is chosen by (level/5) mod 10, independent of rank — a known
// product quirk ("Divine Squire" is possible) that is preserved on purpose.
var TitlePrefixes = []string{
	"Novice",
	"Apprentice",
	"Skilled",
	"Veteran",
	"Master",
	"Grand",
	"Royal",
	"Legendary",
	"Mythical",
	"Divine",
}

// ─── User Progress ──────────────────────────────────────────────────────────

// UserProgress is the complete progression snapshot for a single user.
// The engine receives one, never mutates it, and returns a new one.
// Level, rank and title are always derived from ExperiencePoints, never stored.
type UserProgress struct {
	UserID            string           `json:"user_id"`
	ExperiencePoints  int              `json:"experience_points"`
	GoldBalance       int              `json:"gold_balance"`
	ShieldCount       int              `json:"shield_count"`
	LastShieldLostAt  time.Time        `json:"last_shield_lost_at"`
	HeartCount        int              `json:"heart_count"`
	LastHeartLostAt   time.Time        `json:"last_heart_lost_at"`
	CurrentStreakDays int              `json:"current_streak_days"`
	LastActiveDate    time.Time        `json:"last_active_date"`
	Counters          ActivityCounters `json:"counters"`
	UnlockedIDs       []string         `json:"unlocked_achievement_ids"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// HasUnlocked reports whether the achievement id is already unlocked.
func (p UserProgress) HasUnlocked(id string) bool {
	for _, u := range p.UnlockedIDs {
		if u == id {
			return true
		}
	}
	return false
}

// UnlockedSet returns the unlocked achievement ids as a set.
func (p UserProgress) UnlockedSet() map[string]bool {
	set := make(map[string]bool, len(p.UnlockedIDs))
	for _, id := range p.UnlockedIDs {
		set[id] = true
	}
	return set
}

// ActivityCounters are the lifetime counters achievement rules compare against.
// They only ever grow.
type ActivityCounters struct {
	QuestsCompleted  int   `json:"quests_completed"`
	PropertiesListed int   `json:"properties_listed"`
	PropertiesSold   int   `json:"properties_sold"`
	ClientMeetings   int   `json:"client_meetings"`
	SalesVolume      int64 `json:"sales_volume"`
	GoldEarned       int64 `json:"gold_earned"`
}

// UserStats is the read-only snapshot fed to achievement selectors.
// It combines the stored counters with the derived progression values.
type UserStats struct {
	QuestsCompleted   int   `json:"quests_completed"`
	PropertiesListed  int   `json:"properties_listed"`
	PropertiesSold    int   `json:"properties_sold"`
	ClientMeetings    int   `json:"client_meetings"`
	SalesVolume       int64 `json:"sales_volume"`
	GoldEarned        int64 `json:"gold_earned"`
	CurrentStreakDays int   `json:"current_streak_days"`
	ExperiencePoints  int   `json:"experience_points"`
	Level             int   `json:"level"`
}

// ─── Reward Events ──────────────────────────────────────────────────────────

// RewardSource categorizes how gold/XP was earned.
type RewardSource string

const (
	SourceQuest       RewardSource = "QUEST"
	SourceStreak      RewardSource = "STREAK"
	SourceAchievement RewardSource = "ACHIEVEMENT"
)

// Reward is a gold/XP delta produced by the calculator.
type Reward struct {
	Gold int `json:"gold"`
	XP   int `json:"xp"`
}
