package sqlite

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/bunkeboy/landlord/internal/domain"
)

// ─── Achievements ───────────────────────────────────────────────────────────

// InsertAchievement records an earned achievement. Idempotent per
// (user, type): re-inserting an already earned achievement is a no-op.
func (d *DB) InsertAchievement(a domain.Achievement) error {
	return insertAchievement(d.db, a)
}

func insertAchievement(e execer, a domain.Achievement) error {
	meta := "{}"
	if len(a.Metadata) > 0 {
		b, err := json.Marshal(a.Metadata)
		if err != nil {
			return err
		}
		meta = string(b)
	}
	_, err := e.Exec(
		`INSERT OR IGNORE INTO achievements (id, user_id, type, earned_date, metadata, is_new)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.UserID, a.Type, a.EarnedDate.Unix(), meta, a.IsNew,
	)
	return err
}

// ListAchievements returns a user's earned achievements, newest first.
func (d *DB) ListAchievements(userID string) ([]domain.Achievement, error) {
	rows, err := d.db.Query(
		`SELECT id, user_id, type, earned_date, metadata, is_new
		 FROM achievements WHERE user_id = ? ORDER BY earned_date DESC, type ASC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var achievements []domain.Achievement
	for rows.Next() {
		var a domain.Achievement
		var earned int64
		var meta string
		if err := rows.Scan(&a.ID, &a.UserID, &a.Type, &earned, &meta, &a.IsNew); err != nil {
			return nil, err
		}
		a.EarnedDate = time.Unix(earned, 0).UTC()
		if meta != "" && meta != "{}" {
			if err := json.Unmarshal([]byte(meta), &a.Metadata); err != nil {
				return nil, err
			}
		}
		achievements = append(achievements, a)
	}
	return achievements, rows.Err()
}

// MarkAchievementSeen clears the new flag on an earned achievement.
func (d *DB) MarkAchievementSeen(userID, achievementID string) error {
	result, err := d.db.Exec(
		`UPDATE achievements SET is_new = 0 WHERE user_id = ? AND id = ?`,
		userID, achievementID,
	)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return domain.ErrAchievementNotFound
	}
	return nil
}

// AchievementCount returns how many achievements a user has earned.
func (d *DB) AchievementCount(userID string) (int, error) {
	var count int
	err := d.db.QueryRow(
		`SELECT COUNT(*) FROM achievements WHERE user_id = ?`, userID,
	).Scan(&count)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return count, err
}
