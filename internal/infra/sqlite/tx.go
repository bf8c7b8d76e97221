package sqlite

import (
	"database/sql"

	"github.com/bunkeboy/landlord/internal/domain"
)

// ─── Transactional Writes ───────────────────────────────────────────────────
// Operations that touch more than one table commit atomically, so a failure
// mid-write never leaves a completed quest without its reward or a reward
// without its achievements.

// SaveQuestCompletion persists a completed quest, its newly unlocked
// achievements, and the updated snapshot in one transaction.
func (d *DB) SaveQuestCompletion(q domain.Quest, unlocked []domain.Achievement, p domain.UserProgress) error {
	return d.transact(func(tx *sql.Tx) error {
		if err := saveQuest(tx, q); err != nil {
			return err
		}
		if err := insertAchievements(tx, unlocked); err != nil {
			return err
		}
		return saveProgress(tx, p)
	})
}

// SaveDailyActivity persists streak achievements and the updated snapshot in
// one transaction.
func (d *DB) SaveDailyActivity(unlocked []domain.Achievement, p domain.UserProgress) error {
	return d.transact(func(tx *sql.Tx) error {
		if err := insertAchievements(tx, unlocked); err != nil {
			return err
		}
		return saveProgress(tx, p)
	})
}

// SaveSaleOutcome persists sale achievements, the year's accumulated goal
// progress, and the updated snapshot in one transaction.
func (d *DB) SaveSaleOutcome(unlocked []domain.Achievement, gp domain.GoalProgress, p domain.UserProgress) error {
	return d.transact(func(tx *sql.Tx) error {
		if err := insertAchievements(tx, unlocked); err != nil {
			return err
		}
		if err := saveGoalProgress(tx, gp); err != nil {
			return err
		}
		return saveProgress(tx, p)
	})
}

func insertAchievements(e execer, unlocked []domain.Achievement) error {
	for _, a := range unlocked {
		if err := insertAchievement(e, a); err != nil {
			return err
		}
	}
	return nil
}

func (d *DB) transact(fn func(*sql.Tx) error) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
