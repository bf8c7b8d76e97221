package progression

import (
	"fmt"
	"time"
)

// IsStreakActive reports whether a streak survives from lastActive to now.
// Days are compared at UTC start-of-day; a streak survives exactly one
// skipped calendar boundary (active yesterday still counts), two or more
// full days of inactivity break it.
func IsStreakActive(lastActive, now time.Time) bool {
	if lastActive.IsZero() {
		return false
	}
	return DaysBetween(lastActive, now) <= 1
}

// DaysBetween returns the number of calendar-day boundaries between two
// instants, comparing at UTC start-of-day. Negative if b precedes a.
func DaysBetween(a, b time.Time) int {
	dayA := startOfDay(a)
	dayB := startOfDay(b)
	return int(dayB.Sub(dayA).Hours() / 24)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ─── Shield / Heart Regeneration ────────────────────────────────────────────
// Regeneration is a single-step state machine: Depleted(n) moves to
// Depleted(n+1) once a full window has elapsed since the last loss, and Full
// is terminal. One unit per call — callers re-invoke to chain increments;
// there is no batch catch-up for multiple elapsed windows.

// ShouldRegenerate reports whether one unit of a depleted resource is due.
func ShouldRegenerate(current, max int, lastLostAt, now time.Time, regenHours int) bool {
	if current >= max {
		return false
	}
	if lastLostAt.IsZero() {
		return false
	}
	return now.Sub(lastLostAt) >= time.Duration(regenHours)*time.Hour
}

// NextRegenerationTime returns when the next unit regenerates, or false if
// the resource is already full.
func NextRegenerationTime(current, max int, lastLostAt time.Time, regenHours int) (time.Time, bool) {
	if current >= max {
		return time.Time{}, false
	}
	return lastLostAt.Add(time.Duration(regenHours) * time.Hour), true
}

// ShouldRegenerateShield applies the shield window from the ruleset.
func (r Rules) ShouldRegenerateShield(current int, lastLostAt, now time.Time) bool {
	return ShouldRegenerate(current, r.MaxShields, lastLostAt, now, r.ShieldRegenHours)
}

// ShouldRegenerateHeart applies the heart window from the ruleset.
func (r Rules) ShouldRegenerateHeart(current int, lastLostAt, now time.Time) bool {
	return ShouldRegenerate(current, r.MaxHearts, lastLostAt, now, r.HeartRegenHours)
}

// ─── Flavor Text ────────────────────────────────────────────────────────────

// StreakDescription returns the medieval-themed banner for a streak length.
func StreakDescription(days int) string {
	switch {
	case days <= 0:
		return "Thy quest has not yet begun."
	case days == 1:
		return "Thy first day of conquest."
	case days <= 6:
		return fmt.Sprintf("A noble effort of %d days.", days)
	case days <= 13:
		return fmt.Sprintf("A week's campaign of %d days.", days)
	case days <= 29:
		return fmt.Sprintf("A fortnight's crusade of %d days.", days)
	case days <= 99:
		return fmt.Sprintf("A month's siege of %d days.", days)
	default:
		return fmt.Sprintf("A legendary conquest of %d days!", days)
	}
}
