package progression

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bunkeboy/landlord/internal/domain"
	"github.com/bunkeboy/landlord/internal/infra/metrics"
)

// Store is the persistence surface the service needs. Implemented by
// infra/sqlite; tests substitute an in-memory version.
type Store interface {
	GetProgress(userID string) (*domain.UserProgress, error)
	SaveProgress(p domain.UserProgress) error

	GetQuest(userID, questID string) (*domain.Quest, error)
	SaveQuest(q domain.Quest) error
	ListQuests(userID string, day time.Time) ([]domain.Quest, error)

	InsertAchievement(a domain.Achievement) error
	ListAchievements(userID string) ([]domain.Achievement, error)
	MarkAchievementSeen(userID, achievementID string) error

	GetAnnualGoal(userID string, year int) (*domain.AnnualGoal, error)
	SaveAnnualGoal(g domain.AnnualGoal) error
	GetGoalProgress(userID string, year int) (*domain.GoalProgress, error)
	SaveGoalProgress(p domain.GoalProgress) error

	// Multi-table writes; each commits atomically.
	SaveQuestCompletion(q domain.Quest, unlocked []domain.Achievement, p domain.UserProgress) error
	SaveDailyActivity(unlocked []domain.Achievement, p domain.UserProgress) error
	SaveSaleOutcome(unlocked []domain.Achievement, gp domain.GoalProgress, p domain.UserProgress) error
}

// storeTime normalizes a timestamp to the UTC second precision the store
// keeps, so the results an operation returns match what a reload produces.
func storeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

// Service orchestrates the progression engine: each operation loads a
// snapshot, computes with the pure functions, persists the new snapshot, and
// returns an event-style result describing what changed.
type Service struct {
	store   Store
	rules   Rules
	catalog []domain.AchievementRule
}

// NewService creates a progression service with the built-in achievement
// catalog.
func NewService(store Store, rules Rules) *Service {
	return &Service{store: store, rules: rules, catalog: Catalog()}
}

// Rules returns the active ruleset.
func (s *Service) Rules() Rules { return s.rules }

// Catalog returns the achievement catalog the service evaluates against.
func (s *Service) Catalog() []domain.AchievementRule { return s.catalog }

// ─── User Lifecycle ─────────────────────────────────────────────────────────

// CreateUser initializes a fresh progression snapshot: zero gold and XP,
// shields and hearts at their caps, no streak.
func (s *Service) CreateUser(userID string, now time.Time) (domain.UserProgress, error) {
	now = storeTime(now)
	existing, err := s.store.GetProgress(userID)
	if err != nil {
		return domain.UserProgress{}, err
	}
	if existing != nil {
		return domain.UserProgress{}, domain.ErrUserExists
	}

	p := domain.UserProgress{
		UserID:      userID,
		ShieldCount: s.rules.MaxShields,
		HeartCount:  s.rules.MaxHearts,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.SaveProgress(p); err != nil {
		return domain.UserProgress{}, err
	}
	return p, nil
}

// Progress returns the stored snapshot for a user.
func (s *Service) Progress(userID string) (domain.UserProgress, error) {
	p, err := s.store.GetProgress(userID)
	if err != nil {
		return domain.UserProgress{}, err
	}
	if p == nil {
		return domain.UserProgress{}, domain.ErrUserNotFound
	}
	return *p, nil
}

// ─── Quest Completion ───────────────────────────────────────────────────────

// QuestResult describes the outcome of a quest completion.
type QuestResult struct {
	Quest     domain.Quest         `json:"quest"`
	Reward    domain.Reward        `json:"reward"`
	NewGold   int                  `json:"new_gold"`
	NewXP     int                  `json:"new_xp"`
	NewLevel  int                  `json:"new_level"`
	LeveledUp bool                 `json:"leveled_up"`
	NewRank   domain.Rank          `json:"new_rank"`
	RankedUp  bool                 `json:"ranked_up"`
	Unlocked  []domain.Achievement `json:"unlocked"`
	BadgeGold int                  `json:"badge_gold"`
	NewTitle  string               `json:"new_title"`
}

// CompleteQuest marks a quest completed and applies its reward. A quest
// submitted without an id is assigned one, so every completion keeps its own
// row. If the quest was previously stored, the stored copy is authoritative;
// completing a quest twice is an error and leaves no trace.
func (s *Service) CompleteQuest(userID string, quest domain.Quest, now time.Time) (QuestResult, error) {
	if err := quest.Validate(); err != nil {
		metrics.QuestsRejected.WithLabelValues("invalid").Inc()
		return QuestResult{}, err
	}
	now = storeTime(now)

	p, err := s.store.GetProgress(userID)
	if err != nil {
		return QuestResult{}, err
	}
	if p == nil {
		return QuestResult{}, domain.ErrUserNotFound
	}

	if quest.ID == "" {
		quest.ID = uuid.NewString()
	}
	stored, err := s.store.GetQuest(userID, quest.ID)
	if err != nil {
		return QuestResult{}, err
	}
	if stored != nil {
		quest = *stored
	}
	quest.UserID = userID
	if quest.Date.IsZero() {
		quest.Date = now
	}
	quest.Date = storeTime(quest.Date)

	if err := quest.Complete(now); err != nil {
		metrics.QuestsRejected.WithLabelValues("already_completed").Inc()
		return QuestResult{}, err
	}

	reward, err := s.rules.ComputeReward(quest)
	if err != nil {
		return QuestResult{}, err
	}

	next := *p
	oldLevel := s.rules.CalculateLevel(next.ExperiencePoints)
	oldRank := RankForXP(next.ExperiencePoints)

	next.GoldBalance += reward.Gold
	next.ExperiencePoints += reward.XP
	next.Counters.QuestsCompleted++
	next.Counters.GoldEarned += int64(reward.Gold)
	switch quest.Type {
	case domain.ActivityListing:
		next.Counters.PropertiesListed++
	case domain.ActivityClosing:
		next.Counters.PropertiesSold++
	case domain.ActivityShowing:
		next.Counters.ClientMeetings++
	}

	unlocked, badgeGold := s.applyAchievements(&next, userID, now)

	newLevel := s.rules.CalculateLevel(next.ExperiencePoints)
	newRank := RankForXP(next.ExperiencePoints)
	next.UpdatedAt = now

	if err := s.store.SaveQuestCompletion(quest, unlocked, next); err != nil {
		return QuestResult{}, fmt.Errorf("save quest completion: %w", err)
	}

	metrics.QuestsCompleted.WithLabelValues(string(quest.Type)).Inc()
	metrics.GoldGranted.WithLabelValues(string(domain.SourceQuest)).Add(float64(reward.Gold))
	metrics.XPGranted.WithLabelValues(string(domain.SourceQuest)).Add(float64(reward.XP))
	if newLevel > oldLevel {
		metrics.LevelUps.Inc()
	}
	if newRank != oldRank {
		metrics.RankPromotions.WithLabelValues(string(newRank)).Inc()
	}

	return QuestResult{
		Quest:     quest,
		Reward:    reward,
		NewGold:   next.GoldBalance,
		NewXP:     next.ExperiencePoints,
		NewLevel:  newLevel,
		LeveledUp: newLevel > oldLevel,
		NewRank:   newRank,
		RankedUp:  newRank != oldRank,
		Unlocked:  unlocked,
		BadgeGold: badgeGold,
		NewTitle:  s.rules.TitleForXP(next.ExperiencePoints),
	}, nil
}

// StartQuest marks a quest in progress without granting a reward. A quest
// submitted without an id is assigned one; a quest that already left
// NotStarted cannot be started again.
func (s *Service) StartQuest(userID string, quest domain.Quest, now time.Time) (domain.Quest, error) {
	if err := quest.Validate(); err != nil {
		return domain.Quest{}, err
	}
	now = storeTime(now)

	p, err := s.store.GetProgress(userID)
	if err != nil {
		return domain.Quest{}, err
	}
	if p == nil {
		return domain.Quest{}, domain.ErrUserNotFound
	}

	if quest.ID == "" {
		quest.ID = uuid.NewString()
	}
	stored, err := s.store.GetQuest(userID, quest.ID)
	if err != nil {
		return domain.Quest{}, err
	}
	if stored != nil {
		quest = *stored
	}
	quest.UserID = userID
	if quest.Date.IsZero() {
		quest.Date = now
	}
	quest.Date = storeTime(quest.Date)

	if err := quest.Start(); err != nil {
		return domain.Quest{}, err
	}
	if err := s.store.SaveQuest(quest); err != nil {
		return domain.Quest{}, fmt.Errorf("save quest: %w", err)
	}
	return quest, nil
}

// Quests returns the user's quests for a given day.
func (s *Service) Quests(userID string, day time.Time) ([]domain.Quest, error) {
	return s.store.ListQuests(userID, day)
}

// ─── Daily Activity / Streaks ───────────────────────────────────────────────

// ActivityResult describes the outcome of recording a day of activity.
type ActivityResult struct {
	StreakContinued bool                 `json:"streak_continued"`
	StreakBroken    bool                 `json:"streak_broken"`
	StreakDays      int                  `json:"streak_days"`
	BonusGold       int                  `json:"bonus_gold"`
	BonusXP         int                  `json:"bonus_xp"`
	Unlocked        []domain.Achievement `json:"unlocked"`
}

// RecordDailyActivity registers that the user was active on the given day.
// Extending a streak by exactly one day pays the streak bonus at the new
// length; a repeat of the same day is a no-op; a gap of two or more days
// resets the streak to 1 with no bonus. The first ever activity starts the
// streak at 1 with no bonus.
func (s *Service) RecordDailyActivity(userID string, day time.Time) (ActivityResult, error) {
	day = storeTime(day)
	p, err := s.store.GetProgress(userID)
	if err != nil {
		return ActivityResult{}, err
	}
	if p == nil {
		return ActivityResult{}, domain.ErrUserNotFound
	}

	next := *p
	var res ActivityResult

	switch {
	case next.LastActiveDate.IsZero():
		next.CurrentStreakDays = 1
	default:
		diff := DaysBetween(next.LastActiveDate, day)
		switch {
		case diff == 0:
			// Already counted today.
			res.StreakDays = next.CurrentStreakDays
			return res, nil
		case diff < 0:
			// Out-of-order day; keep the snapshot as-is.
			res.StreakDays = next.CurrentStreakDays
			return res, nil
		case diff == 1:
			next.CurrentStreakDays++
			res.StreakContinued = true
			res.BonusGold = s.rules.StreakBonus(next.CurrentStreakDays)
			res.BonusXP = s.rules.StreakXPBonus(next.CurrentStreakDays)
		default:
			next.CurrentStreakDays = 1
			res.StreakBroken = true
		}
	}

	next.LastActiveDate = day
	next.GoldBalance += res.BonusGold
	next.ExperiencePoints += res.BonusXP
	next.Counters.GoldEarned += int64(res.BonusGold)

	unlocked, _ := s.applyAchievements(&next, userID, day)
	next.UpdatedAt = day

	if err := s.store.SaveDailyActivity(unlocked, next); err != nil {
		return ActivityResult{}, fmt.Errorf("save daily activity: %w", err)
	}

	if res.StreakContinued {
		metrics.StreaksExtended.Inc()
		metrics.GoldGranted.WithLabelValues(string(domain.SourceStreak)).Add(float64(res.BonusGold))
		metrics.XPGranted.WithLabelValues(string(domain.SourceStreak)).Add(float64(res.BonusXP))
	}
	if res.StreakBroken {
		metrics.StreaksReset.Inc()
	}

	res.StreakDays = next.CurrentStreakDays
	res.Unlocked = unlocked
	return res, nil
}

// ─── Shields and Hearts ─────────────────────────────────────────────────────

// RegenResult describes the outcome of a regeneration check.
type RegenResult struct {
	ShieldsRegenerated int        `json:"shields_regenerated"`
	HeartsRegenerated  int        `json:"hearts_regenerated"`
	ShieldCount        int        `json:"shield_count"`
	HeartCount         int        `json:"heart_count"`
	NextShieldAt       *time.Time `json:"next_shield_at,omitempty"`
	NextHeartAt        *time.Time `json:"next_heart_at,omitempty"`
}

// CheckRegeneration restores at most one shield and one heart if their
// regeneration windows have elapsed. Reaching the cap clears the loss
// timestamp; otherwise the window restarts from this check.
func (s *Service) CheckRegeneration(userID string, now time.Time) (RegenResult, error) {
	now = storeTime(now)
	p, err := s.store.GetProgress(userID)
	if err != nil {
		return RegenResult{}, err
	}
	if p == nil {
		return RegenResult{}, domain.ErrUserNotFound
	}

	next := *p
	var res RegenResult

	if s.rules.ShouldRegenerateShield(next.ShieldCount, next.LastShieldLostAt, now) {
		next.ShieldCount++
		res.ShieldsRegenerated = 1
		if next.ShieldCount >= s.rules.MaxShields {
			next.LastShieldLostAt = time.Time{}
		} else {
			next.LastShieldLostAt = now
		}
		metrics.ShieldsRegenerated.Inc()
	}
	if s.rules.ShouldRegenerateHeart(next.HeartCount, next.LastHeartLostAt, now) {
		next.HeartCount++
		res.HeartsRegenerated = 1
		if next.HeartCount >= s.rules.MaxHearts {
			next.LastHeartLostAt = time.Time{}
		} else {
			next.LastHeartLostAt = now
		}
		metrics.HeartsRegenerated.Inc()
	}

	if res.ShieldsRegenerated > 0 || res.HeartsRegenerated > 0 {
		next.UpdatedAt = now
		if err := s.store.SaveProgress(next); err != nil {
			return RegenResult{}, fmt.Errorf("save progress: %w", err)
		}
	}

	res.ShieldCount = next.ShieldCount
	res.HeartCount = next.HeartCount
	if t, ok := NextRegenerationTime(next.ShieldCount, s.rules.MaxShields, next.LastShieldLostAt, s.rules.ShieldRegenHours); ok {
		res.NextShieldAt = &t
	}
	if t, ok := NextRegenerationTime(next.HeartCount, s.rules.MaxHearts, next.LastHeartLostAt, s.rules.HeartRegenHours); ok {
		res.NextHeartAt = &t
	}
	return res, nil
}

// LoseShield removes one shield and starts its regeneration window. Losing a
// shield at zero is a no-op.
func (s *Service) LoseShield(userID string, now time.Time) (int, error) {
	return s.loseResource(userID, now, false)
}

// LoseHeart removes one heart and starts its regeneration window.
func (s *Service) LoseHeart(userID string, now time.Time) (int, error) {
	return s.loseResource(userID, now, true)
}

func (s *Service) loseResource(userID string, now time.Time, heart bool) (int, error) {
	now = storeTime(now)
	p, err := s.store.GetProgress(userID)
	if err != nil {
		return 0, err
	}
	if p == nil {
		return 0, domain.ErrUserNotFound
	}

	next := *p
	if heart {
		if next.HeartCount <= 0 {
			return 0, nil
		}
		next.HeartCount--
		next.LastHeartLostAt = now
	} else {
		if next.ShieldCount <= 0 {
			return 0, nil
		}
		next.ShieldCount--
		next.LastShieldLostAt = now
	}
	next.UpdatedAt = now
	if err := s.store.SaveProgress(next); err != nil {
		return 0, fmt.Errorf("save progress: %w", err)
	}
	if heart {
		return next.HeartCount, nil
	}
	return next.ShieldCount, nil
}

// ─── Sales ──────────────────────────────────────────────────────────────────

// SaleResult describes the outcome of recording a closed transaction.
type SaleResult struct {
	PropertiesSold int                  `json:"properties_sold"`
	SalesVolume    int64                `json:"sales_volume"`
	Unlocked       []domain.Achievement `json:"unlocked"`
	GoalPct        *float64             `json:"goal_pct,omitempty"`
}

// RecordSale registers a closed transaction: lifetime counters grow, the
// year's goal progress advances if a goal exists, and volume achievements are
// re-evaluated.
func (s *Service) RecordSale(userID string, salePrice, commission float64, now time.Time) (SaleResult, error) {
	if salePrice < 0 || commission < 0 {
		return SaleResult{}, domain.ErrInvalidGoal
	}
	now = storeTime(now)

	p, err := s.store.GetProgress(userID)
	if err != nil {
		return SaleResult{}, err
	}
	if p == nil {
		return SaleResult{}, domain.ErrUserNotFound
	}

	next := *p
	next.Counters.PropertiesSold++
	next.Counters.SalesVolume += int64(salePrice)

	unlocked, _ := s.applyAchievements(&next, userID, now)
	next.UpdatedAt = now

	year := now.UTC().Year()
	gp, err := s.store.GetGoalProgress(userID, year)
	if err != nil {
		return SaleResult{}, err
	}
	if gp == nil {
		gp = &domain.GoalProgress{UserID: userID, Year: year}
	}
	gp.CurrentGCI += commission
	gp.CurrentVolume += salePrice
	gp.CurrentTransactions++
	gp.UpdatedAt = now

	if err := s.store.SaveSaleOutcome(unlocked, *gp, next); err != nil {
		return SaleResult{}, fmt.Errorf("save sale outcome: %w", err)
	}

	res := SaleResult{
		PropertiesSold: next.Counters.PropertiesSold,
		SalesVolume:    next.Counters.SalesVolume,
		Unlocked:       unlocked,
	}
	goal, err := s.store.GetAnnualGoal(userID, year)
	if err != nil {
		return SaleResult{}, err
	}
	if goal != nil {
		pct := gp.OverallPct(*goal)
		res.GoalPct = &pct
	}
	return res, nil
}

// ─── Achievements ───────────────────────────────────────────────────────────

// Achievements returns all achievements the user has earned.
func (s *Service) Achievements(userID string) ([]domain.Achievement, error) {
	return s.store.ListAchievements(userID)
}

// MarkAchievementSeen clears the new-achievement flag.
func (s *Service) MarkAchievementSeen(userID, achievementID string) error {
	return s.store.MarkAchievementSeen(userID, achievementID)
}

// applyAchievements evaluates the catalog against the snapshot, records new
// unlocks on it, and credits badge gold after the evaluation pass so a badge
// reward never cascades into further unlocks within the same pass.
func (s *Service) applyAchievements(p *domain.UserProgress, userID string, now time.Time) ([]domain.Achievement, int) {
	stats := s.statsFor(*p)
	unlocked := Evaluate(stats, p.UnlockedSet(), s.catalog, userID, now)
	if len(unlocked) == 0 {
		return nil, 0
	}

	badgeGold := 0
	for _, a := range unlocked {
		p.UnlockedIDs = append(p.UnlockedIDs, a.Type)
		if rule, ok := RuleByID(s.catalog, a.Type); ok {
			badgeGold += rule.Badge.GoldReward
			metrics.AchievementsUnlocked.WithLabelValues(string(rule.Badge.Rarity)).Inc()
		}
	}
	p.GoldBalance += badgeGold
	p.Counters.GoldEarned += int64(badgeGold)
	if badgeGold > 0 {
		metrics.GoldGranted.WithLabelValues(string(domain.SourceAchievement)).Add(float64(badgeGold))
	}
	return unlocked, badgeGold
}

func (s *Service) statsFor(p domain.UserProgress) domain.UserStats {
	return domain.UserStats{
		QuestsCompleted:   p.Counters.QuestsCompleted,
		PropertiesListed:  p.Counters.PropertiesListed,
		PropertiesSold:    p.Counters.PropertiesSold,
		ClientMeetings:    p.Counters.ClientMeetings,
		SalesVolume:       p.Counters.SalesVolume,
		GoldEarned:        p.Counters.GoldEarned,
		CurrentStreakDays: p.CurrentStreakDays,
		ExperiencePoints:  p.ExperiencePoints,
		Level:             s.rules.CalculateLevel(p.ExperiencePoints),
	}
}
