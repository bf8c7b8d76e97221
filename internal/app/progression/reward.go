package progression

import (
	"github.com/bunkeboy/landlord/internal/domain"
)

// ComputeReward calculates the gold and XP a quest pays on completion.
// Base reward scales with the activity type's difficulty multiplier; special
// quests double it, truncating to integers after multiplication. The quest's
// stored reward fields are display hints only and do not feed the calculation.
// An unknown activity type is a validation error.
func (r Rules) ComputeReward(quest domain.Quest) (domain.Reward, error) {
	info, ok := quest.Type.Info()
	if !ok {
		return domain.Reward{}, domain.ErrUnknownActivityType
	}

	gold := r.BaseGoldReward * info.Difficulty
	xp := r.BaseXPReward * info.Difficulty

	if quest.IsSpecialQuest {
		gold = int(float64(gold) * r.SpecialQuestMultiplier)
		xp = int(float64(xp) * r.SpecialQuestMultiplier)
	}

	return domain.Reward{Gold: gold, XP: xp}, nil
}

// StreakBonus returns the bonus gold for a streak of consecutive days.
// Monotonic in days, capped at MaxStreakDays.
func (r Rules) StreakBonus(days int) int {
	return cappedDays(days, r.MaxStreakDays) * r.GoldPerStreakDay
}

// StreakXPBonus returns the bonus XP for a streak of consecutive days.
func (r Rules) StreakXPBonus(days int) int {
	return cappedDays(days, r.MaxStreakDays) * r.XPPerStreakDay
}

func cappedDays(days, max int) int {
	if days < 0 {
		return 0
	}
	if days > max {
		return max
	}
	return days
}
