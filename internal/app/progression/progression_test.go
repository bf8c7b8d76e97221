package progression_test

import (
	"testing"
	"time"

	"github.com/bunkeboy/landlord/internal/app/progression"
	"github.com/bunkeboy/landlord/internal/domain"
)

var rules = progression.DefaultRules()

// ═══════════════════════════════════════════════════════════════════════════
// Reward Calculation
// ═══════════════════════════════════════════════════════════════════════════

func TestComputeReward_ByDifficulty(t *testing.T) {
	tests := []struct {
		activity domain.ActivityType
		gold     int
		xp       int
	}{
		{domain.ActivityShowing, 20, 10},     // difficulty 1
		{domain.ActivityOffer, 40, 20},       // difficulty 2
		{domain.ActivityListing, 60, 30},     // difficulty 3
		{domain.ActivityClosing, 80, 40},     // difficulty 4
		{domain.ActivityTraining, 20, 10},    // difficulty 1
		{domain.ActivityProspecting, 40, 20}, // difficulty 2
		{domain.ActivityMarketing, 40, 20},   // difficulty 2
	}

	for _, tt := range tests {
		t.Run(string(tt.activity), func(t *testing.T) {
			reward, err := rules.ComputeReward(domain.Quest{Type: tt.activity})
			if err != nil {
				t.Fatalf("ComputeReward: %v", err)
			}
			if reward.Gold != tt.gold {
				t.Errorf("gold = %d, want %d", reward.Gold, tt.gold)
			}
			if reward.XP != tt.xp {
				t.Errorf("xp = %d, want %d", reward.XP, tt.xp)
			}
		})
	}
}

func TestComputeReward_SpecialDoubles(t *testing.T) {
	reward, err := rules.ComputeReward(domain.Quest{
		Type:           domain.ActivityListing,
		IsSpecialQuest: true,
	})
	if err != nil {
		t.Fatalf("ComputeReward: %v", err)
	}
	if reward.Gold != 120 {
		t.Errorf("gold = %d, want 120", reward.Gold)
	}
	if reward.XP != 60 {
		t.Errorf("xp = %d, want 60", reward.XP)
	}
}

func TestComputeReward_UnknownType(t *testing.T) {
	_, err := rules.ComputeReward(domain.Quest{Type: "jousting"})
	if err != domain.ErrUnknownActivityType {
		t.Errorf("err = %v, want ErrUnknownActivityType", err)
	}
}

func TestComputeReward_IgnoresStoredRewardFields(t *testing.T) {
	// The stored reward fields are display hints; the calculation only uses
	// the activity type and the special flag.
	reward, err := rules.ComputeReward(domain.Quest{
		Type:       domain.ActivityShowing,
		GoldReward: 9999,
		XPReward:   9999,
	})
	if err != nil {
		t.Fatalf("ComputeReward: %v", err)
	}
	if reward.Gold != 20 || reward.XP != 10 {
		t.Errorf("reward = %+v, want 20 gold / 10 xp", reward)
	}
}

func TestStreakBonus_CapsAtMaxDays(t *testing.T) {
	tests := []struct {
		days int
		gold int
		xp   int
	}{
		{0, 0, 0},
		{1, 5, 2},
		{2, 10, 4},
		{50, 250, 100},
		{51, 250, 100}, // capped
		{365, 250, 100},
		{-3, 0, 0},
	}

	for _, tt := range tests {
		if got := rules.StreakBonus(tt.days); got != tt.gold {
			t.Errorf("StreakBonus(%d) = %d, want %d", tt.days, got, tt.gold)
		}
		if got := rules.StreakXPBonus(tt.days); got != tt.xp {
			t.Errorf("StreakXPBonus(%d) = %d, want %d", tt.days, got, tt.xp)
		}
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Leveling and Ranks
// ═══════════════════════════════════════════════════════════════════════════

func TestCalculateLevel_Boundaries(t *testing.T) {
	tests := []struct {
		xp    int
		level int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{101, 2},
		{999, 10},
		{4899, 49},
		{4900, 50},
		{5000, 50},      // saturated
		{1_000_000, 50}, // XP keeps growing, level does not
		{-10, 1},
	}

	for _, tt := range tests {
		if got := rules.CalculateLevel(tt.xp); got != tt.level {
			t.Errorf("CalculateLevel(%d) = %d, want %d", tt.xp, got, tt.level)
		}
	}
}

func TestXPForNextLevel(t *testing.T) {
	if got := rules.XPForNextLevel(0); got != 100 {
		t.Errorf("XPForNextLevel(0) = %d, want 100", got)
	}
	if got := rules.XPForNextLevel(150); got != 50 {
		t.Errorf("XPForNextLevel(150) = %d, want 50", got)
	}
	if got := rules.XPForNextLevel(5000); got != 0 {
		t.Errorf("XPForNextLevel at max = %d, want 0", got)
	}
}

func TestLevelProgress(t *testing.T) {
	if got := rules.LevelProgress(0); got != 0 {
		t.Errorf("LevelProgress(0) = %v, want 0", got)
	}
	if got := rules.LevelProgress(150); got != 50 {
		t.Errorf("LevelProgress(150) = %v, want 50", got)
	}
	if got := rules.LevelProgress(10_000); got != 100 {
		t.Errorf("LevelProgress at max = %v, want 100", got)
	}
}

func TestRankForXP_Thresholds(t *testing.T) {
	tests := []struct {
		xp   int
		rank domain.Rank
	}{
		{0, domain.RankSquire},
		{299, domain.RankSquire},
		{300, domain.RankKnight},
		{999, domain.RankKnight},
		{1000, domain.RankBaron},
		{2999, domain.RankBaron},
		{3000, domain.RankDuke},
		{9999, domain.RankDuke},
		{10000, domain.RankRoyalty},
		{1_000_000, domain.RankRoyalty},
	}

	for _, tt := range tests {
		if got := progression.RankForXP(tt.xp); got != tt.rank {
			t.Errorf("RankForXP(%d) = %s, want %s", tt.xp, got, tt.rank)
		}
	}
}

func TestNextRankForXP(t *testing.T) {
	next, ok := progression.NextRankForXP(0)
	if !ok || next != domain.RankKnight {
		t.Errorf("NextRankForXP(0) = %s, %v, want Knight", next, ok)
	}

	gap, ok := progression.XPForNextRank(250)
	if !ok || gap != 50 {
		t.Errorf("XPForNextRank(250) = %d, %v, want 50", gap, ok)
	}

	if _, ok := progression.NextRankForXP(10000); ok {
		t.Error("NextRankForXP at Royalty should report no next rank")
	}
	if _, ok := progression.XPForNextRank(20000); ok {
		t.Error("XPForNextRank at Royalty should report no next rank")
	}
}

func TestTitleForXP_PrefixCyclesWithLevel(t *testing.T) {
	// Level 1 (xp 0): prefix index (1/5)%10 = 0 → Novice Squire.
	if got := rules.TitleForXP(0); got != "Novice Squire" {
		t.Errorf("TitleForXP(0) = %q, want %q", got, "Novice Squire")
	}

	// Level 26 (xp 2500): index (26/5)%10 = 5 → Grand; 2500 XP is Baron.
	if got := rules.TitleForXP(2500); got != "Grand Baron" {
		t.Errorf("TitleForXP(2500) = %q, want %q", got, "Grand Baron")
	}

	// The prefix cycles independently of rank: level 50 wraps back to index
	// 0, so a Duke at the level cap reads as Novice Duke.
	if got := rules.TitleForXP(4999); got != "Novice Duke" {
		t.Errorf("TitleForXP(4999) = %q, want %q", got, "Novice Duke")
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Streak Tracking
// ═══════════════════════════════════════════════════════════════════════════

func TestIsStreakActive(t *testing.T) {
	now := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

	if progression.IsStreakActive(time.Time{}, now) {
		t.Error("zero last-active should be inactive")
	}
	if !progression.IsStreakActive(now.Add(-2*time.Hour), now) {
		t.Error("same day should be active")
	}
	if !progression.IsStreakActive(now.AddDate(0, 0, -1), now) {
		t.Error("yesterday should be active")
	}
	if progression.IsStreakActive(now.AddDate(0, 0, -2), now) {
		t.Error("two days ago should be inactive")
	}
}

func TestDaysBetween_CalendarBoundaries(t *testing.T) {
	// One minute across midnight is still one calendar day apart.
	a := time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC)
	b := time.Date(2025, 6, 2, 0, 1, 0, 0, time.UTC)
	if got := progression.DaysBetween(a, b); got != 1 {
		t.Errorf("DaysBetween = %d, want 1", got)
	}

	// Nearly 24h inside the same day is zero days apart.
	c := time.Date(2025, 6, 1, 0, 1, 0, 0, time.UTC)
	d := time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC)
	if got := progression.DaysBetween(c, d); got != 0 {
		t.Errorf("DaysBetween = %d, want 0", got)
	}

	if got := progression.DaysBetween(b, a); got != -1 {
		t.Errorf("DaysBetween reversed = %d, want -1", got)
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Regeneration
// ═══════════════════════════════════════════════════════════════════════════

func TestShouldRegenerateShield_Window(t *testing.T) {
	lost := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	if rules.ShouldRegenerateShield(2, lost, lost.Add(3*time.Hour+59*time.Minute)) {
		t.Error("window not elapsed, should not regenerate")
	}
	if !rules.ShouldRegenerateShield(2, lost, lost.Add(4*time.Hour)) {
		t.Error("window elapsed, should regenerate")
	}
	if rules.ShouldRegenerateShield(3, lost, lost.Add(24*time.Hour)) {
		t.Error("at max, should never regenerate")
	}
	if rules.ShouldRegenerateShield(0, time.Time{}, lost) {
		t.Error("no recorded loss, should not regenerate")
	}
}

func TestShouldRegenerateHeart_Window(t *testing.T) {
	lost := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	if rules.ShouldRegenerateHeart(4, lost, lost.Add(119*time.Minute)) {
		t.Error("window not elapsed, should not regenerate")
	}
	if !rules.ShouldRegenerateHeart(4, lost, lost.Add(2*time.Hour)) {
		t.Error("window elapsed, should regenerate")
	}
}

func TestNextRegenerationTime(t *testing.T) {
	lost := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	at, ok := progression.NextRegenerationTime(2, 3, lost, 4)
	if !ok {
		t.Fatal("expected a next regeneration time")
	}
	if want := lost.Add(4 * time.Hour); !at.Equal(want) {
		t.Errorf("next = %v, want %v", at, want)
	}

	if _, ok := progression.NextRegenerationTime(3, 3, lost, 4); ok {
		t.Error("full resource should have no next regeneration time")
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Achievement Evaluation
// ═══════════════════════════════════════════════════════════════════════════

func TestEvaluate_FreshUserUnlocksNothing(t *testing.T) {
	got := progression.Evaluate(domain.UserStats{Level: 1}, nil, progression.Catalog(), "agent-1", time.Now())
	if len(got) != 0 {
		t.Errorf("fresh user unlocked %d achievements, want 0", len(got))
	}
}

func TestEvaluate_FirstQuest(t *testing.T) {
	stats := domain.UserStats{QuestsCompleted: 1, Level: 1}
	got := progression.Evaluate(stats, nil, progression.Catalog(), "agent-1", time.Now())

	if len(got) != 1 {
		t.Fatalf("unlocked %d, want 1", len(got))
	}
	a := got[0]
	if a.Type != "first_quest" {
		t.Errorf("type = %q, want first_quest", a.Type)
	}
	if a.UserID != "agent-1" {
		t.Errorf("user = %q, want agent-1", a.UserID)
	}
	if !a.IsNew {
		t.Error("fresh unlock should be new")
	}
	if a.Metadata["progress"] != "1" || a.Metadata["target"] != "1" {
		t.Errorf("metadata = %v, want progress/target 1", a.Metadata)
	}
	if a.ID == "" {
		t.Error("expected generated instance id")
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	stats := domain.UserStats{QuestsCompleted: 60, Level: 1}
	catalog := progression.Catalog()

	first := progression.Evaluate(stats, nil, catalog, "agent-1", time.Now())
	if len(first) != 2 {
		t.Fatalf("unlocked %d, want 2 (first_quest, quest_master)", len(first))
	}

	unlocked := map[string]bool{}
	for _, a := range first {
		unlocked[a.Type] = true
	}
	second := progression.Evaluate(stats, unlocked, catalog, "agent-1", time.Now())
	if len(second) != 0 {
		t.Errorf("re-evaluation unlocked %d, want 0", len(second))
	}
}

func TestEvaluate_CatalogOrder(t *testing.T) {
	stats := domain.UserStats{QuestsCompleted: 100, Level: 1}
	got := progression.Evaluate(stats, nil, progression.Catalog(), "agent-1", time.Now())

	want := []string{"first_quest", "quest_master", "quest_completionist"}
	if len(got) != len(want) {
		t.Fatalf("unlocked %d, want %d", len(got), len(want))
	}
	for i, a := range got {
		if a.Type != want[i] {
			t.Errorf("unlocked[%d] = %q, want %q", i, a.Type, want[i])
		}
	}
}

func TestEvaluate_RankAchievementsUseXP(t *testing.T) {
	stats := domain.UserStats{ExperiencePoints: 1000, Level: 11}
	got := progression.Evaluate(stats, nil, progression.Catalog(), "agent-1", time.Now())

	types := map[string]bool{}
	for _, a := range got {
		types[a.Type] = true
	}
	if !types["knighthood"] || !types["barony"] {
		t.Errorf("expected knighthood and barony at 1000 XP, got %v", types)
	}
	if types["dukedom"] {
		t.Error("dukedom should need 3000 XP")
	}
	if !types["reach_level_10"] {
		t.Error("expected reach_level_10 at level 11")
	}
}

func TestEvaluate_StreakAchievements(t *testing.T) {
	stats := domain.UserStats{CurrentStreakDays: 30, Level: 1}
	got := progression.Evaluate(stats, nil, progression.Catalog(), "agent-1", time.Now())

	types := map[string]bool{}
	for _, a := range got {
		types[a.Type] = true
	}
	if !types["week_streak"] || !types["month_streak"] {
		t.Errorf("expected week and month streak badges, got %v", types)
	}
	if types["season_streak"] {
		t.Error("season_streak should need 90 days")
	}
}

func TestAchievementProgress_Clamps(t *testing.T) {
	if got := progression.AchievementProgress(5, 10); got != 50 {
		t.Errorf("progress = %v, want 50", got)
	}
	if got := progression.AchievementProgress(20, 10); got != 100 {
		t.Errorf("overshoot = %v, want 100", got)
	}
	if got := progression.AchievementProgress(5, 0); got != 0 {
		t.Errorf("zero target = %v, want 0", got)
	}
}

func TestRuleByID(t *testing.T) {
	catalog := progression.Catalog()
	rule, ok := progression.RuleByID(catalog, "royal_treasury")
	if !ok {
		t.Fatal("royal_treasury missing from catalog")
	}
	if rule.RequiredValue != 100000 {
		t.Errorf("required = %d, want 100000", rule.RequiredValue)
	}
	if _, ok := progression.RuleByID(catalog, "nonexistent"); ok {
		t.Error("unknown id should not resolve")
	}
}
