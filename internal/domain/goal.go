package domain

import "time"

// ─── Annual Goal ────────────────────────────────────────────────────────────

// AnnualGoal is a user's yearly performance target: gross commission income,
// sales volume, and transaction count.
type AnnualGoal struct {
	UserID            string    `json:"user_id"`
	Year              int       `json:"year"`
	GCITarget         float64   `json:"gci_target"`
	VolumeTarget      float64   `json:"volume_target"`
	TransactionTarget int       `json:"transaction_target"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// AverageTransactionValue is the volume target spread over the transaction target.
func (g AnnualGoal) AverageTransactionValue() float64 {
	if g.TransactionTarget <= 0 {
		return 0
	}
	return g.VolumeTarget / float64(g.TransactionTarget)
}

// AverageCommission is the GCI target per transaction.
func (g AnnualGoal) AverageCommission() float64 {
	if g.TransactionTarget <= 0 {
		return 0
	}
	return g.GCITarget / float64(g.TransactionTarget)
}

// EffectiveCommissionRate is GCI as a percentage of volume.
func (g AnnualGoal) EffectiveCommissionRate() float64 {
	if g.VolumeTarget <= 0 {
		return 0
	}
	return g.GCITarget / g.VolumeTarget * 100
}

// MonthlyGCITarget is one twelfth of the annual GCI target.
func (g AnnualGoal) MonthlyGCITarget() float64 { return g.GCITarget / 12 }

// MonthlyVolumeTarget is one twelfth of the annual volume target.
func (g AnnualGoal) MonthlyVolumeTarget() float64 { return g.VolumeTarget / 12 }

// MonthlyTransactionTarget is one twelfth of the annual transaction target.
func (g AnnualGoal) MonthlyTransactionTarget() float64 {
	return float64(g.TransactionTarget) / 12
}

// ─── Goal Progress ──────────────────────────────────────────────────────────

// GoalProgress accumulates a user's actuals against an annual goal.
type GoalProgress struct {
	UserID              string    `json:"user_id"`
	Year                int       `json:"year"`
	CurrentGCI          float64   `json:"current_gci"`
	CurrentVolume       float64   `json:"current_volume"`
	CurrentTransactions int       `json:"current_transactions"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// GCIPct returns GCI progress as a clamped percentage of target.
func (p GoalProgress) GCIPct(target float64) float64 {
	return clampedPct(p.CurrentGCI, target)
}

// VolumePct returns volume progress as a clamped percentage of target.
func (p GoalProgress) VolumePct(target float64) float64 {
	return clampedPct(p.CurrentVolume, target)
}

// TransactionPct returns transaction progress as a clamped percentage of target.
func (p GoalProgress) TransactionPct(target int) float64 {
	return clampedPct(float64(p.CurrentTransactions), float64(target))
}

// OverallPct averages the three progress percentages against a goal.
func (p GoalProgress) OverallPct(g AnnualGoal) float64 {
	return (p.GCIPct(g.GCITarget) + p.VolumePct(g.VolumeTarget) + p.TransactionPct(g.TransactionTarget)) / 3
}

// Banner returns the medieval-themed description of overall progress.
func (p GoalProgress) Banner(g AnnualGoal) string {
	pct := p.OverallPct(g)
	switch {
	case pct < 10:
		return "Your quest has just begun, brave knight!"
	case pct < 25:
		return "The kingdom grows slowly but surely."
	case pct < 50:
		return "Halfway to conquering the realm!"
	case pct < 75:
		return "Victory is within sight!"
	case pct < 100:
		return "The crown is nearly yours!"
	default:
		return "All hail the conquering hero!"
	}
}

// clampedPct returns current/target as a percentage clamped to [0,100].
// Zero or negative targets yield 0 rather than an error.
func clampedPct(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	pct := current / target * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}
