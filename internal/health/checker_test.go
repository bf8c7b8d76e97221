package health

import (
	"context"
	"testing"

	"github.com/bunkeboy/landlord/internal/infra/sqlite"
)

func newTestChecker(t *testing.T) *Checker {
	t.Helper()
	dir := t.TempDir()
	db, err := sqlite.Open(dir)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewChecker(db, dir)
}

func TestChecker_AllHealthy(t *testing.T) {
	c := newTestChecker(t)
	c.runAll(context.Background())

	if !c.IsHealthy() {
		t.Error("expected all checks healthy")
	}
	statuses := c.Statuses()
	if len(statuses) != 2 {
		t.Fatalf("statuses = %d, want 2", len(statuses))
	}
	for _, s := range statuses {
		if !s.Healthy {
			t.Errorf("check %s unhealthy: %s", s.Name, s.Error)
		}
		if s.CheckedAt.IsZero() {
			t.Errorf("check %s missing timestamp", s.Name)
		}
	}
}

func TestChecker_BeforeFirstRun(t *testing.T) {
	c := newTestChecker(t)

	// No results yet counts as healthy.
	if !c.IsHealthy() {
		t.Error("empty checker should report healthy")
	}
	if len(c.Statuses()) != 0 {
		t.Error("expected no statuses before first run")
	}
}

func TestChecker_ClosedDB(t *testing.T) {
	dir := t.TempDir()
	db, err := sqlite.Open(dir)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	c := NewChecker(db, dir)
	db.Close()

	c.runAll(context.Background())
	if c.IsHealthy() {
		t.Error("expected sqlite check to fail after close")
	}
}
