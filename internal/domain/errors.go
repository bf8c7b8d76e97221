package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure — no infrastructure dependency.
// Validation errors are fatal to the single operation and never mutate stored
// state; not-found errors are reported to the caller without retry;
// persistence failures are wrapped by the storage layer and surfaced as-is.

var (
	// User errors
	ErrUserNotFound = errors.New("user progress not found")
	ErrUserExists   = errors.New("user progress already exists")

	// Quest errors
	ErrQuestNotFound          = errors.New("quest not found")
	ErrQuestAlreadyCompleted  = errors.New("quest already completed")
	ErrInvalidQuestTransition = errors.New("invalid quest status transition")
	ErrUnknownActivityType    = errors.New("unknown activity type")
	ErrNegativeReward         = errors.New("quest reward must not be negative")

	// Goal errors
	ErrGoalNotFound  = errors.New("goal not found")
	ErrInvalidGoal   = errors.New("goal targets must not be negative")
	ErrInvalidPeriod = errors.New("goal year out of range")

	// Achievement errors
	ErrAchievementNotFound = errors.New("achievement not found")
)
