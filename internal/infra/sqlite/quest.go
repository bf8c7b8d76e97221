package sqlite

import (
	"database/sql"
	"time"

	"github.com/bunkeboy/landlord/internal/domain"
)

// ─── Quests ─────────────────────────────────────────────────────────────────

// SaveQuest inserts or replaces a quest.
func (d *DB) SaveQuest(q domain.Quest) error {
	return saveQuest(d.db, q)
}

func saveQuest(e execer, q domain.Quest) error {
	_, err := e.Exec(
		`INSERT INTO quests (id, user_id, title, description, type, status, date,
			gold_reward, xp_reward, is_special, completed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			title=excluded.title,
			description=excluded.description,
			type=excluded.type,
			status=excluded.status,
			date=excluded.date,
			gold_reward=excluded.gold_reward,
			xp_reward=excluded.xp_reward,
			is_special=excluded.is_special,
			completed_at=excluded.completed_at`,
		q.ID, q.UserID, q.Title, q.Description, string(q.Type), string(q.Status),
		q.Date.Unix(), q.GoldReward, q.XPReward, q.IsSpecialQuest,
		nullableUnix(q.CompletedAt),
	)
	return err
}

// GetQuest retrieves a quest by owner and id. Returns nil when not found.
func (d *DB) GetQuest(userID, questID string) (*domain.Quest, error) {
	row := d.db.QueryRow(
		`SELECT id, user_id, title, description, type, status, date,
		        gold_reward, xp_reward, is_special, completed_at
		 FROM quests WHERE user_id = ? AND id = ?`, userID, questID,
	)
	return scanQuest(row)
}

// ListQuests returns a user's quests for a calendar day (UTC), newest first.
// A zero day returns every quest the user has.
func (d *DB) ListQuests(userID string, day time.Time) ([]domain.Quest, error) {
	var rows *sql.Rows
	var err error
	if day.IsZero() {
		rows, err = d.db.Query(
			`SELECT id, user_id, title, description, type, status, date,
			        gold_reward, xp_reward, is_special, completed_at
			 FROM quests WHERE user_id = ? ORDER BY date DESC`, userID,
		)
	} else {
		y, m, dd := day.UTC().Date()
		start := time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 0, 1)
		rows, err = d.db.Query(
			`SELECT id, user_id, title, description, type, status, date,
			        gold_reward, xp_reward, is_special, completed_at
			 FROM quests WHERE user_id = ? AND date >= ? AND date < ? ORDER BY date DESC`,
			userID, start.Unix(), end.Unix(),
		)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quests []domain.Quest
	for rows.Next() {
		q, err := scanQuest(rows)
		if err != nil {
			return nil, err
		}
		quests = append(quests, *q)
	}
	return quests, rows.Err()
}

func scanQuest(s scanner) (*domain.Quest, error) {
	var q domain.Quest
	var date int64
	var completedAt sql.NullInt64
	err := s.Scan(&q.ID, &q.UserID, &q.Title, &q.Description, &q.Type, &q.Status,
		&date, &q.GoldReward, &q.XPReward, &q.IsSpecialQuest, &completedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	q.Date = time.Unix(date, 0).UTC()
	q.CompletedAt = unixOrZero(completedAt)
	return &q, nil
}
