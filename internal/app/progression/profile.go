package progression

import (
	"time"

	"github.com/bunkeboy/landlord/internal/domain"
)

// ProfileSummary is the full derived view of a user's progression, suitable
// for a profile screen: stored snapshot plus every value the engine derives
// from it.
type ProfileSummary struct {
	UserID           string                  `json:"user_id"`
	GoldBalance      int                     `json:"gold_balance"`
	ExperiencePoints int                     `json:"experience_points"`
	Level            int                     `json:"level"`
	LevelProgressPct float64                 `json:"level_progress_pct"`
	XPToNextLevel    int                     `json:"xp_to_next_level"`
	Rank             domain.Rank             `json:"rank"`
	RankIcon         string                  `json:"rank_icon"`
	NextRank         domain.Rank             `json:"next_rank,omitempty"`
	XPToNextRank     int                     `json:"xp_to_next_rank"`
	Title            string                  `json:"title"`
	StreakDays       int                     `json:"streak_days"`
	StreakActive     bool                    `json:"streak_active"`
	StreakBanner     string                  `json:"streak_banner"`
	ShieldCount      int                     `json:"shield_count"`
	HeartCount       int                     `json:"heart_count"`
	NextShieldAt     *time.Time              `json:"next_shield_at,omitempty"`
	NextHeartAt      *time.Time              `json:"next_heart_at,omitempty"`
	Counters         domain.ActivityCounters `json:"counters"`
	AchievementCount int                     `json:"achievement_count"`
	NewAchievements  int                     `json:"new_achievements"`
}

// Summary assembles the profile view for a user at a point in time.
func (s *Service) Summary(userID string, now time.Time) (ProfileSummary, error) {
	p, err := s.store.GetProgress(userID)
	if err != nil {
		return ProfileSummary{}, err
	}
	if p == nil {
		return ProfileSummary{}, domain.ErrUserNotFound
	}

	achievements, err := s.store.ListAchievements(userID)
	if err != nil {
		return ProfileSummary{}, err
	}
	newCount := 0
	for _, a := range achievements {
		if a.IsNew {
			newCount++
		}
	}

	xp := p.ExperiencePoints
	rank := RankForXP(xp)
	sum := ProfileSummary{
		UserID:           p.UserID,
		GoldBalance:      p.GoldBalance,
		ExperiencePoints: xp,
		Level:            s.rules.CalculateLevel(xp),
		LevelProgressPct: s.rules.LevelProgress(xp),
		XPToNextLevel:    s.rules.XPForNextLevel(xp),
		Rank:             rank,
		RankIcon:         rank.Icon(),
		Title:            s.rules.TitleForXP(xp),
		StreakDays:       p.CurrentStreakDays,
		StreakActive:     IsStreakActive(p.LastActiveDate, now),
		StreakBanner:     StreakDescription(p.CurrentStreakDays),
		ShieldCount:      p.ShieldCount,
		HeartCount:       p.HeartCount,
		Counters:         p.Counters,
		AchievementCount: len(achievements),
		NewAchievements:  newCount,
	}
	if next, ok := NextRankForXP(xp); ok {
		sum.NextRank = next
	}
	if gap, ok := XPForNextRank(xp); ok {
		sum.XPToNextRank = gap
	}
	if t, ok := NextRegenerationTime(p.ShieldCount, s.rules.MaxShields, p.LastShieldLostAt, s.rules.ShieldRegenHours); ok {
		sum.NextShieldAt = &t
	}
	if t, ok := NextRegenerationTime(p.HeartCount, s.rules.MaxHearts, p.LastHeartLostAt, s.rules.HeartRegenHours); ok {
		sum.NextHeartAt = &t
	}
	return sum, nil
}
