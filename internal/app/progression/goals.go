package progression

import (
	"time"

	"github.com/bunkeboy/landlord/internal/domain"
)

// GoalSummary is an annual goal joined with its accumulated progress and the
// derived monthly pacing targets.
type GoalSummary struct {
	Goal                     domain.AnnualGoal   `json:"goal"`
	Progress                 domain.GoalProgress `json:"progress"`
	GCIPct                   float64             `json:"gci_pct"`
	VolumePct                float64             `json:"volume_pct"`
	TransactionPct           float64             `json:"transaction_pct"`
	OverallPct               float64             `json:"overall_pct"`
	Banner                   string              `json:"banner"`
	MonthlyGCITarget         float64             `json:"monthly_gci_target"`
	MonthlyVolumeTarget      float64             `json:"monthly_volume_target"`
	MonthlyTransactionTarget float64             `json:"monthly_transaction_target"`
}

// SetAnnualGoal validates and stores a yearly target, creating the matching
// progress row if one does not exist yet.
func (s *Service) SetAnnualGoal(g domain.AnnualGoal, now time.Time) (domain.AnnualGoal, error) {
	if g.GCITarget < 0 || g.VolumeTarget < 0 || g.TransactionTarget < 0 {
		return domain.AnnualGoal{}, domain.ErrInvalidGoal
	}
	if g.Year < 2000 || g.Year > 2100 {
		return domain.AnnualGoal{}, domain.ErrInvalidPeriod
	}
	now = storeTime(now)

	existing, err := s.store.GetAnnualGoal(g.UserID, g.Year)
	if err != nil {
		return domain.AnnualGoal{}, err
	}
	if existing != nil {
		g.CreatedAt = existing.CreatedAt
	} else {
		g.CreatedAt = now
	}
	g.UpdatedAt = now
	if err := s.store.SaveAnnualGoal(g); err != nil {
		return domain.AnnualGoal{}, err
	}

	gp, err := s.store.GetGoalProgress(g.UserID, g.Year)
	if err != nil {
		return domain.AnnualGoal{}, err
	}
	if gp == nil {
		fresh := domain.GoalProgress{UserID: g.UserID, Year: g.Year, UpdatedAt: now}
		if err := s.store.SaveGoalProgress(fresh); err != nil {
			return domain.AnnualGoal{}, err
		}
	}
	return g, nil
}

// GoalSummary returns the joined goal/progress view for a year.
func (s *Service) GoalSummary(userID string, year int) (GoalSummary, error) {
	goal, err := s.store.GetAnnualGoal(userID, year)
	if err != nil {
		return GoalSummary{}, err
	}
	if goal == nil {
		return GoalSummary{}, domain.ErrGoalNotFound
	}
	gp, err := s.store.GetGoalProgress(userID, year)
	if err != nil {
		return GoalSummary{}, err
	}
	if gp == nil {
		gp = &domain.GoalProgress{UserID: userID, Year: year}
	}

	return GoalSummary{
		Goal:                     *goal,
		Progress:                 *gp,
		GCIPct:                   gp.GCIPct(goal.GCITarget),
		VolumePct:                gp.VolumePct(goal.VolumeTarget),
		TransactionPct:           gp.TransactionPct(goal.TransactionTarget),
		OverallPct:               gp.OverallPct(*goal),
		Banner:                   gp.Banner(*goal),
		MonthlyGCITarget:         goal.MonthlyGCITarget(),
		MonthlyVolumeTarget:      goal.MonthlyVolumeTarget(),
		MonthlyTransactionTarget: goal.MonthlyTransactionTarget(),
	}, nil
}
