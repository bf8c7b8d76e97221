// Package metrics provides Prometheus metrics for LandLord — counters and
// gauges for quests, rewards, leveling, streaks, achievements, and resource
// regeneration.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Quests ─────────────────────────────────────────────────────────────────

// QuestsCompleted tracks completed quests by activity type.
var QuestsCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "landlord",
	Name:      "quests_completed_total",
	Help:      "Total completed quests.",
}, []string{"type"})

// QuestsRejected tracks quest completions refused by validation.
var QuestsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "landlord",
	Name:      "quests_rejected_total",
	Help:      "Total quest completions rejected.",
}, []string{"reason"})

// ─── Rewards ────────────────────────────────────────────────────────────────

// GoldGranted tracks gold granted by source (QUEST, STREAK, ACHIEVEMENT).
var GoldGranted = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "landlord",
	Name:      "gold_granted_total",
	Help:      "Total gold granted.",
}, []string{"source"})

// XPGranted tracks experience points granted by source.
var XPGranted = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "landlord",
	Name:      "xp_granted_total",
	Help:      "Total experience points granted.",
}, []string{"source"})

// ─── Leveling ───────────────────────────────────────────────────────────────

// LevelUps tracks level-up events.
var LevelUps = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "landlord",
	Name:      "level_ups_total",
	Help:      "Total level-up events.",
})

// RankPromotions tracks rank promotions by new rank.
var RankPromotions = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "landlord",
	Name:      "rank_promotions_total",
	Help:      "Total rank promotions.",
}, []string{"rank"})

// ─── Streaks ────────────────────────────────────────────────────────────────

// StreaksExtended tracks daily activity that extended a streak.
var StreaksExtended = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "landlord",
	Name:      "streaks_extended_total",
	Help:      "Total streak extensions.",
})

// StreaksReset tracks streaks broken by inactivity.
var StreaksReset = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "landlord",
	Name:      "streaks_reset_total",
	Help:      "Total streaks reset after missed days.",
})

// ─── Achievements ───────────────────────────────────────────────────────────

// AchievementsUnlocked tracks achievements unlocked by badge rarity.
var AchievementsUnlocked = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "landlord",
	Name:      "achievements_unlocked_total",
	Help:      "Total achievements unlocked.",
}, []string{"rarity"})

// ─── Regeneration ───────────────────────────────────────────────────────────

// ShieldsRegenerated tracks shield regeneration events.
var ShieldsRegenerated = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "landlord",
	Name:      "shields_regenerated_total",
	Help:      "Total shields regenerated.",
})

// HeartsRegenerated tracks heart regeneration events.
var HeartsRegenerated = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "landlord",
	Name:      "hearts_regenerated_total",
	Help:      "Total hearts regenerated.",
})

// ─── HTTP ───────────────────────────────────────────────────────────────────

// HTTPRequests tracks API requests by route and status code.
var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "landlord",
	Name:      "http_requests_total",
	Help:      "Total HTTP requests served.",
}, []string{"route", "status"})

// HTTPLatency tracks API request duration in seconds.
var HTTPLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "landlord",
	Name:      "http_request_duration_seconds",
	Help:      "HTTP request duration in seconds.",
	Buckets:   prometheus.DefBuckets,
}, []string{"route"})
