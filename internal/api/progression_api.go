package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bunkeboy/landlord/internal/domain"
)

// statusFor maps domain errors onto HTTP status codes: validation errors are
// 400, not-found 404, duplicates 409, everything else 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrQuestNotFound),
		errors.Is(err, domain.ErrGoalNotFound),
		errors.Is(err, domain.ErrAchievementNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUserExists),
		errors.Is(err, domain.ErrQuestAlreadyCompleted):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnknownActivityType),
		errors.Is(err, domain.ErrNegativeReward),
		errors.Is(err, domain.ErrInvalidQuestTransition),
		errors.Is(err, domain.ErrInvalidGoal),
		errors.Is(err, domain.ErrInvalidPeriod):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeDomainError(w http.ResponseWriter, err error) {
	writeError(w, statusFor(err), err.Error())
}

// ─── Users ──────────────────────────────────────────────────────────────────

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	p, err := s.svc.CreateUser(userID, time.Now().UTC())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	sum, err := s.svc.Summary(userID, time.Now().UTC())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

// ─── Quests ─────────────────────────────────────────────────────────────────

func (s *Server) handleListQuests(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var day time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		day = parsed
	}

	quests, err := s.svc.Quests(userID, day)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if quests == nil {
		quests = []domain.Quest{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"quests": quests})
}

func (s *Server) handleStartQuest(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var quest domain.Quest
	if err := json.NewDecoder(r.Body).Decode(&quest); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	started, err := s.svc.StartQuest(userID, quest, time.Now().UTC())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, started)
}

func (s *Server) handleCompleteQuest(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var quest domain.Quest
	if err := json.NewDecoder(r.Body).Decode(&quest); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.svc.CompleteQuest(userID, quest, time.Now().UTC())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// ─── Streaks / Activity ─────────────────────────────────────────────────────

func (s *Server) handleActivity(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var body struct {
		ActivityDate string `json:"activity_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	day := time.Now().UTC()
	if body.ActivityDate != "" {
		parsed, err := time.Parse(time.RFC3339, body.ActivityDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "activity_date must be RFC3339")
			return
		}
		day = parsed
	}

	result, err := s.svc.RecordDailyActivity(userID, day)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// ─── Regeneration / Resources ───────────────────────────────────────────────

func (s *Server) handleRegeneration(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	now := time.Now().UTC()
	var body struct {
		Now string `json:"now"`
	}
	// Body is optional.
	if err := json.NewDecoder(r.Body).Decode(&body); err == nil && body.Now != "" {
		parsed, err := time.Parse(time.RFC3339, body.Now)
		if err != nil {
			writeError(w, http.StatusBadRequest, "now must be RFC3339")
			return
		}
		now = parsed
	}

	result, err := s.svc.CheckRegeneration(userID, now)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleLoseShield(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	remaining, err := s.svc.LoseShield(userID, time.Now().UTC())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"shield_count": remaining})
}

func (s *Server) handleLoseHeart(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	remaining, err := s.svc.LoseHeart(userID, time.Now().UTC())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"heart_count": remaining})
}

// ─── Sales ──────────────────────────────────────────────────────────────────

func (s *Server) handleSale(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var body struct {
		SalePrice  float64 `json:"sale_price"`
		Commission float64 `json:"commission"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.svc.RecordSale(userID, body.SalePrice, body.Commission, time.Now().UTC())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// ─── Achievements ───────────────────────────────────────────────────────────

func (s *Server) handleAchievements(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	achievements, err := s.svc.Achievements(userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if achievements == nil {
		achievements = []domain.Achievement{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"achievements": achievements})
}

func (s *Server) handleAchievementSeen(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	achievementID := chi.URLParam(r, "achievementID")
	if err := s.svc.MarkAchievementSeen(userID, achievementID); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"achievements": s.svc.Catalog(),
	})
}

// ─── Goals ──────────────────────────────────────────────────────────────────

func (s *Server) handleGoalSummary(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "year must be an integer")
		return
	}

	sum, err := s.svc.GoalSummary(userID, year)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (s *Server) handleSetGoal(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var goal domain.AnnualGoal
	if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	goal.UserID = userID

	saved, err := s.svc.SetAnnualGoal(goal, time.Now().UTC())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}
