// Package progression implements the LandLord progression engine: reward
// calculation, leveling, streak tracking, resource regeneration, and
// achievement evaluation. Every calculation is a pure function over an
// explicit snapshot, parameterized by a Rules value so tests and deployments
// can re-tune the ruleset without recompiling.
package progression

// Rules holds the tunable constants of the progression ruleset.
type Rules struct {
	// Leveling
	XPPerLevel int `toml:"xp_per_level"`
	MaxLevel   int `toml:"max_level"`

	// Quest rewards
	BaseGoldReward         int     `toml:"base_gold_reward"`
	BaseXPReward           int     `toml:"base_xp_reward"`
	SpecialQuestMultiplier float64 `toml:"special_quest_multiplier"`

	// Streak bonuses
	GoldPerStreakDay int `toml:"gold_per_streak_day"`
	XPPerStreakDay   int `toml:"xp_per_streak_day"`
	MaxStreakDays    int `toml:"max_streak_days"`

	// Shields and hearts
	MaxShields       int `toml:"max_shields"`
	MaxHearts        int `toml:"max_hearts"`
	ShieldRegenHours int `toml:"shield_regen_hours"`
	HeartRegenHours  int `toml:"heart_regen_hours"`
}

// DefaultRules returns the production ruleset.
func DefaultRules() Rules {
	return Rules{
		XPPerLevel:             100,
		MaxLevel:               50,
		BaseGoldReward:         20,
		BaseXPReward:           10,
		SpecialQuestMultiplier: 2.0,
		GoldPerStreakDay:       5,
		XPPerStreakDay:         2,
		MaxStreakDays:          50,
		MaxShields:             3,
		MaxHearts:              5,
		ShieldRegenHours:       4,
		HeartRegenHours:        2,
	}
}
