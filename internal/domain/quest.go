package domain

import "time"

// ─── Activity Types ─────────────────────────────────────────────────────────

// ActivityType categorizes the real-estate activity behind a quest.
type ActivityType string

const (
	ActivityListing     ActivityType = "listing"
	ActivityShowing     ActivityType = "showing"
	ActivityOffer       ActivityType = "offer"
	ActivityClosing     ActivityType = "closing"
	ActivityProspecting ActivityType = "prospecting"
	ActivityTraining    ActivityType = "training"
	ActivityMarketing   ActivityType = "marketing"
)

// ActivityInfo is the static record for an activity type: its difficulty
// multiplier and display metadata.
type ActivityInfo struct {
	Difficulty   int    `json:"difficulty"`
	MedievalName string `json:"medieval_name"`
	Icon         string `json:"icon"`
}

// activityTable is the single source of truth for activity metadata.
// Difficulty is always in [1,4].
var activityTable = map[ActivityType]ActivityInfo{
	ActivityListing:     {Difficulty: 3, MedievalName: "Claim Land", Icon: "flag"},
	ActivityShowing:     {Difficulty: 1, MedievalName: "Royal Tour", Icon: "columns"},
	ActivityOffer:       {Difficulty: 2, MedievalName: "Treaty Proposal", Icon: "doc"},
	ActivityClosing:     {Difficulty: 4, MedievalName: "Kingdom Acquisition", Icon: "seal"},
	ActivityProspecting: {Difficulty: 2, MedievalName: "Scout Mission", Icon: "binoculars"},
	ActivityTraining:    {Difficulty: 1, MedievalName: "Knight Training", Icon: "book"},
	ActivityMarketing:   {Difficulty: 2, MedievalName: "Town Crier", Icon: "megaphone"},
}

// Info returns the static record for this activity type.
// The second return is false for unknown types; callers treat that as a
// validation error, not a recoverable condition.
func (t ActivityType) Info() (ActivityInfo, bool) {
	info, ok := activityTable[t]
	return info, ok
}

// Valid reports whether the activity type is part of the catalog.
func (t ActivityType) Valid() bool {
	_, ok := activityTable[t]
	return ok
}

// ActivityTypes returns all known activity types in a stable order.
func ActivityTypes() []ActivityType {
	return []ActivityType{
		ActivityListing, ActivityShowing, ActivityOffer, ActivityClosing,
		ActivityProspecting, ActivityTraining, ActivityMarketing,
	}
}

// ─── Quest Status ───────────────────────────────────────────────────────────

// QuestStatus is the one-way quest state machine:
// NotStarted → InProgress → Completed. Completed is terminal.
type QuestStatus string

const (
	QuestNotStarted QuestStatus = "not_started"
	QuestInProgress QuestStatus = "in_progress"
	QuestCompleted  QuestStatus = "completed"
)

// Label returns the medieval status banner.
func (s QuestStatus) Label() string {
	switch s {
	case QuestInProgress:
		return "On Quest"
	case QuestCompleted:
		return "Victory"
	default:
		return "Quest Awaits"
	}
}

// ─── Quest ──────────────────────────────────────────────────────────────────

// Quest is a unit of user activity that yields gold and XP on completion.
// Immutable except for the status transition.
type Quest struct {
	ID             string       `json:"id"`
	UserID         string       `json:"user_id"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Type           ActivityType `json:"type"`
	Status         QuestStatus  `json:"status"`
	Date           time.Time    `json:"date"`
	GoldReward     int          `json:"gold_reward"`
	XPReward       int          `json:"xp_reward"`
	IsSpecialQuest bool         `json:"is_special_quest"`
	CompletedAt    time.Time    `json:"completed_at"`
}

// Start moves the quest from NotStarted to InProgress.
func (q *Quest) Start() error {
	if q.Status != QuestNotStarted {
		return ErrInvalidQuestTransition
	}
	q.Status = QuestInProgress
	return nil
}

// Complete marks the quest Completed and stamps CompletedAt.
// Completed is terminal; completing twice is an error.
func (q *Quest) Complete(at time.Time) error {
	if q.Status == QuestCompleted {
		return ErrQuestAlreadyCompleted
	}
	q.Status = QuestCompleted
	q.CompletedAt = at
	return nil
}

// Validate checks the quest's structural invariants.
func (q Quest) Validate() error {
	if !q.Type.Valid() {
		return ErrUnknownActivityType
	}
	if q.GoldReward < 0 || q.XPReward < 0 {
		return ErrNegativeReward
	}
	return nil
}
