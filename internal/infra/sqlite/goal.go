package sqlite

import (
	"database/sql"
	"time"

	"github.com/bunkeboy/landlord/internal/domain"
)

// ─── Annual Goals ───────────────────────────────────────────────────────────

// SaveAnnualGoal inserts or replaces a yearly target.
func (d *DB) SaveAnnualGoal(g domain.AnnualGoal) error {
	_, err := d.db.Exec(
		`INSERT INTO annual_goals (user_id, year, gci_target, volume_target, transaction_target, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(user_id, year) DO UPDATE SET
			gci_target=excluded.gci_target,
			volume_target=excluded.volume_target,
			transaction_target=excluded.transaction_target,
			updated_at=excluded.updated_at`,
		g.UserID, g.Year, g.GCITarget, g.VolumeTarget, g.TransactionTarget,
		g.CreatedAt.Unix(), g.UpdatedAt.Unix(),
	)
	return err
}

// GetAnnualGoal retrieves a yearly target. Returns nil when not set.
func (d *DB) GetAnnualGoal(userID string, year int) (*domain.AnnualGoal, error) {
	row := d.db.QueryRow(
		`SELECT user_id, year, gci_target, volume_target, transaction_target, created_at, updated_at
		 FROM annual_goals WHERE user_id = ? AND year = ?`, userID, year,
	)
	var g domain.AnnualGoal
	var createdAt, updatedAt int64
	err := row.Scan(&g.UserID, &g.Year, &g.GCITarget, &g.VolumeTarget,
		&g.TransactionTarget, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	g.CreatedAt = time.Unix(createdAt, 0).UTC()
	g.UpdatedAt = time.Unix(updatedAt, 0).UTC()
	return &g, nil
}

// SaveGoalProgress inserts or replaces a year's accumulated actuals.
func (d *DB) SaveGoalProgress(p domain.GoalProgress) error {
	return saveGoalProgress(d.db, p)
}

func saveGoalProgress(e execer, p domain.GoalProgress) error {
	_, err := e.Exec(
		`INSERT INTO goal_progress (user_id, year, current_gci, current_volume, current_transactions, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(user_id, year) DO UPDATE SET
			current_gci=excluded.current_gci,
			current_volume=excluded.current_volume,
			current_transactions=excluded.current_transactions,
			updated_at=excluded.updated_at`,
		p.UserID, p.Year, p.CurrentGCI, p.CurrentVolume, p.CurrentTransactions,
		p.UpdatedAt.Unix(),
	)
	return err
}

// GetGoalProgress retrieves a year's accumulated actuals. Returns nil when
// no sales have been recorded and no goal was ever set for the year.
func (d *DB) GetGoalProgress(userID string, year int) (*domain.GoalProgress, error) {
	row := d.db.QueryRow(
		`SELECT user_id, year, current_gci, current_volume, current_transactions, updated_at
		 FROM goal_progress WHERE user_id = ? AND year = ?`, userID, year,
	)
	var p domain.GoalProgress
	var updatedAt int64
	err := row.Scan(&p.UserID, &p.Year, &p.CurrentGCI, &p.CurrentVolume,
		&p.CurrentTransactions, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.UpdatedAt = time.Unix(updatedAt, 0).UTC()
	return &p, nil
}
