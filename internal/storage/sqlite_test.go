package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Mode: "campaign", Outcome: OutcomeDefeat, Score: 150, Level: 1, Ticks: 900},
		{Mode: "campaign", Outcome: OutcomeVictory, Score: 1200, Level: 3, Ticks: 8000},
		{Mode: "bonus", Outcome: OutcomeBossDefeated, Score: 1050, Level: 999, Ticks: 3000},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(top))
	}
	if top[0].Score != 1200 || top[1].Score != 1050 || top[2].Score != 150 {
		t.Errorf("Runs not sorted by score: %+v", top)
	}
	if top[1].Mode != "bonus" || top[1].Level != 999 || top[1].Ticks != 3000 {
		t.Errorf("Run fields not round-tripped: %+v", top[1])
	}

	limited, err := store.TopRuns(2)
	if err != nil {
		t.Fatalf("TopRuns(2) failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 runs with limit, got %d", len(limited))
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 4; i++ {
		store.SaveRun(Run{Mode: "campaign", Outcome: OutcomeDefeat, Score: i * 10, Level: 1})
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 40 || recent[1].Score != 30 {
		t.Errorf("Expected newest first [40 30], got %+v", recent)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty store failed: %v", err)
	}
	if stats.Runs != 0 || stats.HighScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveRun(Run{Mode: "campaign", Outcome: OutcomeDefeat, Score: 100, Level: 1})
	store.SaveRun(Run{Mode: "campaign", Outcome: OutcomeDefeat, Score: 300, Level: 2})
	store.SaveRun(Run{Mode: "campaign", Outcome: OutcomeVictory, Score: 1400, Level: 3})
	store.SaveRun(Run{Mode: "bonus", Outcome: OutcomeBossDefeated, Score: 1000, Level: 999})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 4 || stats.HighScore != 1400 {
		t.Errorf("Expected 4 runs with high 1400, got %+v", stats)
	}
	if stats.AvgScore != 700 {
		t.Errorf("Expected average 700, got %v", stats.AvgScore)
	}
	if stats.Defeats != 2 || stats.Victories != 1 || stats.BossKills != 1 {
		t.Errorf("Outcome counts wrong: %+v", stats)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Mode: "campaign", Outcome: OutcomeDefeat, Score: 100, Level: 1})
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
