package progression

import (
	"fmt"

	"github.com/bunkeboy/landlord/internal/domain"
)

// CalculateLevel converts cumulative XP into a level: one level per
// XPPerLevel, starting at 1, saturating at MaxLevel. Raw XP keeps growing
// past the saturation point — only the level is clamped.
func (r Rules) CalculateLevel(xp int) int {
	if xp < 0 {
		xp = 0
	}
	level := xp/r.XPPerLevel + 1
	if level > r.MaxLevel {
		return r.MaxLevel
	}
	return level
}

// XPForNextLevel returns the XP remaining until the next level, or 0 at max.
func (r Rules) XPForNextLevel(xp int) int {
	level := r.CalculateLevel(xp)
	if level >= r.MaxLevel {
		return 0
	}
	return level*r.XPPerLevel - xp
}

// LevelProgress returns progress toward the next level as a percentage.
// Exactly 100 at max level; in [0,100) otherwise, 0 at level boundaries.
func (r Rules) LevelProgress(xp int) float64 {
	level := r.CalculateLevel(xp)
	if level >= r.MaxLevel {
		return 100.0
	}
	levelStart := (level - 1) * r.XPPerLevel
	span := r.XPPerLevel
	return float64(xp-levelStart) / float64(span) * 100.0
}

// RankForXP returns the highest rank whose threshold the XP satisfies.
// XP ≥ 0 always satisfies Squire.
func RankForXP(xp int) domain.Rank {
	for i := len(domain.Ranks) - 1; i >= 0; i-- {
		if xp >= domain.Ranks[i].RequiredXP() {
			return domain.Ranks[i]
		}
	}
	return domain.RankSquire
}

// NextRankForXP returns the rank after the current one, or false at max rank.
func NextRankForXP(xp int) (domain.Rank, bool) {
	current := RankForXP(xp)
	for i, rank := range domain.Ranks {
		if rank == current {
			if i+1 < len(domain.Ranks) {
				return domain.Ranks[i+1], true
			}
			return "", false
		}
	}
	return "", false
}

// XPForNextRank returns the XP still needed for the next rank, or false at
// max rank. Never negative.
func XPForNextRank(xp int) (int, bool) {
	next, ok := NextRankForXP(xp)
	if !ok {
		return 0, false
	}
	gap := next.RequiredXP() - xp
	if gap < 0 {
		gap = 0
	}
	return gap, true
}

// TitleForXP builds the user's full title: "{prefix} {rank}".
// The prefix cycles with level ((level/5) mod 10) independently of rank, so
// combinations like "Divine Squire" are possible. That is the product rule,
// not a bug.
func (r Rules) TitleForXP(xp int) string {
	level := r.CalculateLevel(xp)
	rank := RankForXP(xp)

	idx := (level / 5) % len(domain.TitlePrefixes)
	return fmt.Sprintf("%s %s", domain.TitlePrefixes[idx], rank)
}
