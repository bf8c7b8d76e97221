package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func gatheredNames(t *testing.T) map[string]bool {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	return names
}

func TestQuestMetrics(t *testing.T) {
	QuestsCompleted.WithLabelValues("listing").Inc()
	QuestsRejected.WithLabelValues("invalid").Inc()

	names := gatheredNames(t)
	for _, name := range []string{
		"landlord_quests_completed_total",
		"landlord_quests_rejected_total",
	} {
		if !names[name] {
			t.Errorf("metric %q not found", name)
		}
	}
}

func TestRewardMetrics(t *testing.T) {
	GoldGranted.WithLabelValues("QUEST").Add(60)
	XPGranted.WithLabelValues("STREAK").Add(4)

	names := gatheredNames(t)
	if !names["landlord_gold_granted_total"] {
		t.Error("landlord_gold_granted_total not found")
	}
	if !names["landlord_xp_granted_total"] {
		t.Error("landlord_xp_granted_total not found")
	}
}

func TestProgressionMetrics(t *testing.T) {
	LevelUps.Inc()
	RankPromotions.WithLabelValues("Knight").Inc()
	StreaksExtended.Inc()
	StreaksReset.Inc()
	AchievementsUnlocked.WithLabelValues("rare").Inc()
	ShieldsRegenerated.Inc()
	HeartsRegenerated.Inc()

	names := gatheredNames(t)
	for _, name := range []string{
		"landlord_level_ups_total",
		"landlord_rank_promotions_total",
		"landlord_streaks_extended_total",
		"landlord_streaks_reset_total",
		"landlord_achievements_unlocked_total",
		"landlord_shields_regenerated_total",
		"landlord_hearts_regenerated_total",
	} {
		if !names[name] {
			t.Errorf("metric %q not found", name)
		}
	}
}

func TestHTTPMetrics(t *testing.T) {
	HTTPRequests.WithLabelValues("/api/version", "200").Inc()
	HTTPLatency.WithLabelValues("/api/version").Observe(0.003)

	names := gatheredNames(t)
	if !names["landlord_http_requests_total"] {
		t.Error("landlord_http_requests_total not found")
	}
	if !names["landlord_http_request_duration_seconds"] {
		t.Error("landlord_http_request_duration_seconds not found")
	}
}

func TestAllMetricsGatherable(t *testing.T) {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}

	count := 0
	for _, f := range families {
		if len(f.GetName()) > 9 && f.GetName()[:9] == "landlord_" {
			count++
		}
	}
	if count < 12 {
		t.Errorf("expected at least 12 landlord_ metric families, got %d", count)
	}
}
