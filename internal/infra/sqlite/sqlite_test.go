package sqlite

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bunkeboy/landlord/internal/domain"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	dir := t.TempDir()
	db, err := Open(dir)
	require.NoError(t, err, "Open()")
	t.Cleanup(func() { db.Close() })
	return db
}

// ─── Database Lifecycle ─────────────────────────────────────────────────────

func TestOpen_CreatesDatabase(t *testing.T) {
	dir := t.TempDir()
	db, err := Open(dir)
	require.NoError(t, err)
	defer db.Close()

	_, err = os.Stat(filepath.Join(dir, "state.db"))
	require.False(t, os.IsNotExist(err), "state.db should exist")
}

func TestOpen_Ping(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Ping())
}

func TestOpen_Reopen(t *testing.T) {
	dir := t.TempDir()
	db, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, db.SaveProgress(domain.UserProgress{
		UserID:    "agent-1",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}))
	require.NoError(t, db.Close())

	// Migrations are idempotent; data survives reopen.
	db2, err := Open(dir)
	require.NoError(t, err)
	defer db2.Close()
	p, err := db2.GetProgress("agent-1")
	require.NoError(t, err)
	require.NotNil(t, p)
}

// ─── User Progress ──────────────────────────────────────────────────────────

func TestProgress_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	p := domain.UserProgress{
		UserID:            "agent-1",
		ExperiencePoints:  450,
		GoldBalance:       980,
		ShieldCount:       2,
		LastShieldLostAt:  now.Add(-time.Hour),
		HeartCount:        5,
		CurrentStreakDays: 7,
		LastActiveDate:    now.Add(-24 * time.Hour),
		Counters: domain.ActivityCounters{
			QuestsCompleted:  12,
			PropertiesListed: 3,
			PropertiesSold:   2,
			SalesVolume:      900_000,
			GoldEarned:       1200,
		},
		CreatedAt: now.Add(-30 * 24 * time.Hour),
		UpdatedAt: now,
	}
	require.NoError(t, db.SaveProgress(p))

	got, err := db.GetProgress("agent-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, 450, got.ExperiencePoints)
	require.Equal(t, 980, got.GoldBalance)
	require.Equal(t, 2, got.ShieldCount)
	require.False(t, got.LastShieldLostAt.IsZero())
	require.True(t, got.LastHeartLostAt.IsZero(), "never lost a heart")
	require.Equal(t, 7, got.CurrentStreakDays)
	require.Equal(t, 12, got.Counters.QuestsCompleted)
	require.Equal(t, int64(900_000), got.Counters.SalesVolume)
}

func TestProgress_NotFound(t *testing.T) {
	db := newTestDB(t)
	got, err := db.GetProgress("nobody")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestProgress_Upsert(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()

	p := domain.UserProgress{UserID: "agent-1", GoldBalance: 10, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, db.SaveProgress(p))
	p.GoldBalance = 60
	require.NoError(t, db.SaveProgress(p))

	got, err := db.GetProgress("agent-1")
	require.NoError(t, err)
	require.Equal(t, 60, got.GoldBalance)
}

func TestProgress_JoinsUnlockedAchievements(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	require.NoError(t, db.SaveProgress(domain.UserProgress{UserID: "agent-1", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, db.InsertAchievement(domain.Achievement{
		ID: "a1", UserID: "agent-1", Type: "first_quest", EarnedDate: now.Add(-time.Hour), IsNew: true,
	}))
	require.NoError(t, db.InsertAchievement(domain.Achievement{
		ID: "a2", UserID: "agent-1", Type: "first_listing", EarnedDate: now, IsNew: true,
	}))

	got, err := db.GetProgress("agent-1")
	require.NoError(t, err)
	require.Equal(t, []string{"first_quest", "first_listing"}, got.UnlockedIDs)
}

// ─── Quests ─────────────────────────────────────────────────────────────────

func TestQuest_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	day := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

	q := domain.Quest{
		ID:             "q-1",
		UserID:         "agent-1",
		Title:          "List the manor",
		Type:           domain.ActivityListing,
		Status:         domain.QuestNotStarted,
		Date:           day,
		IsSpecialQuest: true,
	}
	require.NoError(t, db.SaveQuest(q))

	got, err := db.GetQuest("agent-1", "q-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, domain.ActivityListing, got.Type)
	require.True(t, got.IsSpecialQuest)
	require.True(t, got.CompletedAt.IsZero())

	require.NoError(t, got.Complete(day.Add(time.Hour)))
	require.NoError(t, db.SaveQuest(*got))

	got, err = db.GetQuest("agent-1", "q-1")
	require.NoError(t, err)
	require.Equal(t, domain.QuestCompleted, got.Status)
	require.False(t, got.CompletedAt.IsZero())
}

func TestQuest_NotFound(t *testing.T) {
	db := newTestDB(t)
	got, err := db.GetQuest("agent-1", "missing")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestListQuests_FiltersByDay(t *testing.T) {
	db := newTestDB(t)
	day1 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	for i, d := range []time.Time{day1, day1.Add(2 * time.Hour), day2} {
		q := domain.Quest{
			ID:     "q-" + string(rune('a'+i)),
			UserID: "agent-1",
			Type:   domain.ActivityShowing,
			Status: domain.QuestNotStarted,
			Date:   d,
		}
		require.NoError(t, db.SaveQuest(q))
	}

	quests, err := db.ListQuests("agent-1", day1)
	require.NoError(t, err)
	require.Len(t, quests, 2)

	all, err := db.ListQuests("agent-1", time.Time{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	none, err := db.ListQuests("agent-2", day1)
	require.NoError(t, err)
	require.Empty(t, none)
}

// ─── Achievements ───────────────────────────────────────────────────────────

func TestInsertAchievement_IdempotentPerType(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()

	a := domain.Achievement{
		ID: "a1", UserID: "agent-1", Type: "first_quest",
		EarnedDate: now, Metadata: map[string]string{"progress": "1"}, IsNew: true,
	}
	require.NoError(t, db.InsertAchievement(a))

	// Same type, different id: ignored.
	a.ID = "a2"
	require.NoError(t, db.InsertAchievement(a))

	list, err := db.ListAchievements("agent-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "a1", list[0].ID)
	require.Equal(t, "1", list[0].Metadata["progress"])
}

func TestMarkAchievementSeen(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	require.NoError(t, db.InsertAchievement(domain.Achievement{
		ID: "a1", UserID: "agent-1", Type: "first_quest", EarnedDate: now, IsNew: true,
	}))

	require.NoError(t, db.MarkAchievementSeen("agent-1", "a1"))

	list, err := db.ListAchievements("agent-1")
	require.NoError(t, err)
	require.False(t, list[0].IsNew)

	err = db.MarkAchievementSeen("agent-1", "missing")
	require.ErrorIs(t, err, domain.ErrAchievementNotFound)
}

func TestAchievementCount(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	require.NoError(t, db.InsertAchievement(domain.Achievement{
		ID: "a1", UserID: "agent-1", Type: "first_quest", EarnedDate: now,
	}))
	require.NoError(t, db.InsertAchievement(domain.Achievement{
		ID: "a2", UserID: "agent-1", Type: "week_streak", EarnedDate: now,
	}))

	n, err := db.AchievementCount("agent-1")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	n, err = db.AchievementCount("agent-2")
	require.NoError(t, err)
	require.Zero(t, n)
}

// ─── Transactional Writes ───────────────────────────────────────────────────

func TestSaveQuestCompletion_WritesAllTables(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	q := domain.Quest{
		ID: "q-1", UserID: "agent-1", Type: domain.ActivityListing,
		Status: domain.QuestCompleted, Date: now, CompletedAt: now,
	}
	a := domain.Achievement{
		ID: "a-1", UserID: "agent-1", Type: "first_quest", EarnedDate: now, IsNew: true,
	}
	p := domain.UserProgress{
		UserID: "agent-1", GoldBalance: 110, ExperiencePoints: 30,
		Counters:  domain.ActivityCounters{QuestsCompleted: 1, PropertiesListed: 1},
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, db.SaveQuestCompletion(q, []domain.Achievement{a}, p))

	gotQ, err := db.GetQuest("agent-1", "q-1")
	require.NoError(t, err)
	require.NotNil(t, gotQ)
	require.Equal(t, domain.QuestCompleted, gotQ.Status)

	gotP, err := db.GetProgress("agent-1")
	require.NoError(t, err)
	require.Equal(t, 110, gotP.GoldBalance)
	require.Equal(t, []string{"first_quest"}, gotP.UnlockedIDs)
}

func TestSaveSaleOutcome_WritesAllTables(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	a := domain.Achievement{
		ID: "a-1", UserID: "agent-1", Type: "first_sale", EarnedDate: now, IsNew: true,
	}
	gp := domain.GoalProgress{
		UserID: "agent-1", Year: 2025,
		CurrentGCI: 15_000, CurrentVolume: 500_000, CurrentTransactions: 1,
		UpdatedAt: now,
	}
	p := domain.UserProgress{
		UserID:    "agent-1",
		Counters:  domain.ActivityCounters{PropertiesSold: 1, SalesVolume: 500_000},
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, db.SaveSaleOutcome([]domain.Achievement{a}, gp, p))

	gotGP, err := db.GetGoalProgress("agent-1", 2025)
	require.NoError(t, err)
	require.NotNil(t, gotGP)
	require.Equal(t, 1, gotGP.CurrentTransactions)

	gotP, err := db.GetProgress("agent-1")
	require.NoError(t, err)
	require.Equal(t, int64(500_000), gotP.Counters.SalesVolume)
	require.Equal(t, []string{"first_sale"}, gotP.UnlockedIDs)
}

func TestSaveDailyActivity_WritesAllTables(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	a := domain.Achievement{
		ID: "a-1", UserID: "agent-1", Type: "week_streak", EarnedDate: now, IsNew: true,
	}
	p := domain.UserProgress{
		UserID: "agent-1", CurrentStreakDays: 7, LastActiveDate: now,
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, db.SaveDailyActivity([]domain.Achievement{a}, p))

	gotP, err := db.GetProgress("agent-1")
	require.NoError(t, err)
	require.Equal(t, 7, gotP.CurrentStreakDays)
	require.Equal(t, []string{"week_streak"}, gotP.UnlockedIDs)
}

// ─── Goals ──────────────────────────────────────────────────────────────────

func TestAnnualGoal_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()

	g := domain.AnnualGoal{
		UserID: "agent-1", Year: 2025,
		GCITarget: 120_000, VolumeTarget: 4_000_000, TransactionTarget: 24,
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, db.SaveAnnualGoal(g))

	got, err := db.GetAnnualGoal("agent-1", 2025)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, 120_000.0, got.GCITarget)
	require.Equal(t, 24, got.TransactionTarget)

	missing, err := db.GetAnnualGoal("agent-1", 2024)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestGoalProgress_Accumulates(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()

	p := domain.GoalProgress{UserID: "agent-1", Year: 2025, UpdatedAt: now}
	require.NoError(t, db.SaveGoalProgress(p))

	p.CurrentGCI = 9000
	p.CurrentVolume = 300_000
	p.CurrentTransactions = 2
	require.NoError(t, db.SaveGoalProgress(p))

	got, err := db.GetGoalProgress("agent-1", 2025)
	require.NoError(t, err)
	require.Equal(t, 9000.0, got.CurrentGCI)
	require.Equal(t, 2, got.CurrentTransactions)
}
