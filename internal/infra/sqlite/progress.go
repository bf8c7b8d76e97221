package sqlite

import (
	"database/sql"
	"time"

	"github.com/bunkeboy/landlord/internal/domain"
)

// ─── User Progress ──────────────────────────────────────────────────────────

// GetProgress retrieves the progression snapshot for a user, with the
// unlocked achievement ids joined in. Returns nil without error when the
// user has no row.
func (d *DB) GetProgress(userID string) (*domain.UserProgress, error) {
	row := d.db.QueryRow(
		`SELECT user_id, experience_points, gold_balance,
		        shield_count, last_shield_lost_at, heart_count, last_heart_lost_at,
		        current_streak_days, last_active_date,
		        quests_completed, properties_listed, properties_sold,
		        client_meetings, sales_volume, gold_earned,
		        created_at, updated_at
		 FROM user_progress WHERE user_id = ?`, userID,
	)

	var p domain.UserProgress
	var shieldLost, heartLost, lastActive sql.NullInt64
	var createdAt, updatedAt int64
	err := row.Scan(&p.UserID, &p.ExperiencePoints, &p.GoldBalance,
		&p.ShieldCount, &shieldLost, &p.HeartCount, &heartLost,
		&p.CurrentStreakDays, &lastActive,
		&p.Counters.QuestsCompleted, &p.Counters.PropertiesListed, &p.Counters.PropertiesSold,
		&p.Counters.ClientMeetings, &p.Counters.SalesVolume, &p.Counters.GoldEarned,
		&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	p.LastShieldLostAt = unixOrZero(shieldLost)
	p.LastHeartLostAt = unixOrZero(heartLost)
	p.LastActiveDate = unixOrZero(lastActive)
	p.CreatedAt = time.Unix(createdAt, 0).UTC()
	p.UpdatedAt = time.Unix(updatedAt, 0).UTC()

	rows, err := d.db.Query(
		`SELECT type FROM achievements WHERE user_id = ? ORDER BY earned_date ASC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		p.UnlockedIDs = append(p.UnlockedIDs, id)
	}
	return &p, rows.Err()
}

// SaveProgress inserts or replaces a user's progression snapshot. Unlocked
// achievement ids live in the achievements table and are not written here.
func (d *DB) SaveProgress(p domain.UserProgress) error {
	return saveProgress(d.db, p)
}

func saveProgress(e execer, p domain.UserProgress) error {
	_, err := e.Exec(
		`INSERT INTO user_progress (user_id, experience_points, gold_balance,
			shield_count, last_shield_lost_at, heart_count, last_heart_lost_at,
			current_streak_days, last_active_date,
			quests_completed, properties_listed, properties_sold,
			client_meetings, sales_volume, gold_earned,
			created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
			experience_points=excluded.experience_points,
			gold_balance=excluded.gold_balance,
			shield_count=excluded.shield_count,
			last_shield_lost_at=excluded.last_shield_lost_at,
			heart_count=excluded.heart_count,
			last_heart_lost_at=excluded.last_heart_lost_at,
			current_streak_days=excluded.current_streak_days,
			last_active_date=excluded.last_active_date,
			quests_completed=excluded.quests_completed,
			properties_listed=excluded.properties_listed,
			properties_sold=excluded.properties_sold,
			client_meetings=excluded.client_meetings,
			sales_volume=excluded.sales_volume,
			gold_earned=excluded.gold_earned,
			updated_at=excluded.updated_at`,
		p.UserID, p.ExperiencePoints, p.GoldBalance,
		p.ShieldCount, nullableUnix(p.LastShieldLostAt), p.HeartCount, nullableUnix(p.LastHeartLostAt),
		p.CurrentStreakDays, nullableUnix(p.LastActiveDate),
		p.Counters.QuestsCompleted, p.Counters.PropertiesListed, p.Counters.PropertiesSold,
		p.Counters.ClientMeetings, p.Counters.SalesVolume, p.Counters.GoldEarned,
		p.CreatedAt.Unix(), p.UpdatedAt.Unix(),
	)
	return err
}
