package storage

import (
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}

	if err := store.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	res := GameResult{
		GameID:     "beginner",
		Won:        true,
		DurationMs: 42000,
		Rows:       9,
		Cols:       9,
		Mines:      10,
	}

	id, err := store.SaveResult(res)
	if err != nil {
		t.Fatalf("SaveResult() error: %v", err)
	}
	if id <= 0 {
		t.Errorf("SaveResult() returned id %d, expected positive", id)
	}

	results, err := store.BestTimes("beginner", 10)
	if err != nil {
		t.Fatalf("BestTimes() error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("BestTimes() returned %d results, expected 1", len(results))
	}

	got := results[0]
	if got.GameID != "beginner" || !got.Won || got.DurationMs != 42000 {
		t.Errorf("retrieved result = %+v", got)
	}
	if got.Rows != 9 || got.Cols != 9 || got.Mines != 10 {
		t.Errorf("retrieved board = %dx%d/%d", got.Rows, got.Cols, got.Mines)
	}
}

func TestStoreBestTimesOrderAndFilter(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	// Wins in shuffled order, plus a faster loss that must not appear.
	durations := []struct {
		ms  int
		won bool
	}{
		{90000, true},
		{30000, true},
		{5000, false},
		{60000, true},
	}
	for _, d := range durations {
		_, err := store.SaveResult(GameResult{
			GameID: "intermediate", Won: d.won, DurationMs: d.ms,
			Rows: 16, Cols: 16, Mines: 40,
		})
		if err != nil {
			t.Fatalf("SaveResult() error: %v", err)
		}
	}

	results, err := store.BestTimes("intermediate", 10)
	if err != nil {
		t.Fatalf("BestTimes() error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("BestTimes() returned %d results, expected 3 wins", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].DurationMs < results[i-1].DurationMs {
			t.Errorf("results not sorted ascending: %d before %d",
				results[i-1].DurationMs, results[i].DurationMs)
		}
	}
	if results[0].DurationMs != 30000 {
		t.Errorf("fastest win = %dms, expected 30000", results[0].DurationMs)
	}
}

func TestStoreBestTimesLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	for i := 0; i < 15; i++ {
		_, err := store.SaveResult(GameResult{
			GameID: "beginner", Won: true, DurationMs: (i + 1) * 1000,
			Rows: 9, Cols: 9, Mines: 10,
		})
		if err != nil {
			t.Fatalf("SaveResult() error: %v", err)
		}
	}

	results, err := store.BestTimes("beginner", 5)
	if err != nil {
		t.Fatalf("BestTimes() error: %v", err)
	}
	if len(results) != 5 {
		t.Errorf("BestTimes(5) returned %d results", len(results))
	}
}

func TestStoreBestTime(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	// No games yet
	best, err := store.BestTime("expert")
	if err != nil {
		t.Fatalf("BestTime() error: %v", err)
	}
	if best != 0 {
		t.Errorf("BestTime() with no games = %d, expected 0", best)
	}

	// A loss alone yields no best time
	store.SaveResult(GameResult{GameID: "expert", Won: false, DurationMs: 1000, Rows: 16, Cols: 30, Mines: 99})
	best, err = store.BestTime("expert")
	if err != nil {
		t.Fatalf("BestTime() error: %v", err)
	}
	if best != 0 {
		t.Errorf("BestTime() with only losses = %d, expected 0", best)
	}

	store.SaveResult(GameResult{GameID: "expert", Won: true, DurationMs: 180000, Rows: 16, Cols: 30, Mines: 99})
	store.SaveResult(GameResult{GameID: "expert", Won: true, DurationMs: 150000, Rows: 16, Cols: 30, Mines: 99})

	best, err = store.BestTime("expert")
	if err != nil {
		t.Fatalf("BestTime() error: %v", err)
	}
	if best != 150000 {
		t.Errorf("BestTime() = %d, expected 150000", best)
	}
}

func TestStoreStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	for _, r := range []GameResult{
		{GameID: "beginner", Won: true, DurationMs: 50000, Rows: 9, Cols: 9, Mines: 10},
		{GameID: "beginner", Won: false, DurationMs: 12000, Rows: 9, Cols: 9, Mines: 10},
		{GameID: "beginner", Won: true, DurationMs: 35000, Rows: 9, Cols: 9, Mines: 10},
		{GameID: "expert", Won: false, DurationMs: 8000, Rows: 16, Cols: 30, Mines: 99},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() error: %v", err)
		}
	}

	stats, err := store.Stats("beginner")
	if err != nil {
		t.Fatalf("Stats() error: %v", err)
	}
	if stats.Games != 3 {
		t.Errorf("Games = %d, expected 3", stats.Games)
	}
	if stats.Wins != 2 {
		t.Errorf("Wins = %d, expected 2", stats.Wins)
	}
	if stats.BestTimeMs != 35000 {
		t.Errorf("BestTimeMs = %d, expected 35000", stats.BestTimeMs)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed is zero, expected a timestamp")
	}

	empty, err := store.Stats("intermediate")
	if err != nil {
		t.Fatalf("Stats() error for empty variant: %v", err)
	}
	if empty.Games != 0 || empty.Wins != 0 || empty.BestTimeMs != 0 {
		t.Errorf("empty stats = %+v", empty)
	}
}

func TestStoreRecentResults(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	for i := 0; i < 4; i++ {
		_, err := store.SaveResult(GameResult{
			GameID: "beginner", Won: i%2 == 0, DurationMs: (i + 1) * 1000,
			Rows: 9, Cols: 9, Mines: 10,
		})
		if err != nil {
			t.Fatalf("SaveResult() error: %v", err)
		}
	}

	results, err := store.RecentResults("beginner", 3)
	if err != nil {
		t.Fatalf("RecentResults() error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("RecentResults(3) returned %d results", len(results))
	}
	// Newest insert (duration 4000) comes first
	if results[0].DurationMs != 4000 {
		t.Errorf("newest result duration = %d, expected 4000", results[0].DurationMs)
	}
}

func TestStoreClearResults(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	store.SaveResult(GameResult{GameID: "beginner", Won: true, DurationMs: 1000, Rows: 9, Cols: 9, Mines: 10})
	store.SaveResult(GameResult{GameID: "expert", Won: true, DurationMs: 2000, Rows: 16, Cols: 30, Mines: 99})

	if err := store.ClearResults("beginner"); err != nil {
		t.Fatalf("ClearResults() error: %v", err)
	}

	cleared, err := store.Stats("beginner")
	if err != nil {
		t.Fatalf("Stats() error: %v", err)
	}
	if cleared.Games != 0 {
		t.Errorf("beginner games after clear = %d, expected 0", cleared.Games)
	}

	kept, err := store.Stats("expert")
	if err != nil {
		t.Fatalf("Stats() error: %v", err)
	}
	if kept.Games != 1 {
		t.Errorf("expert games after clearing beginner = %d, expected 1", kept.Games)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// A relative path under a temp dir, shaped like a tilde path after
	// expansion, just verifies nested directory creation.
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path error: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveResult(GameResult{
		GameID: "beginner", Won: true, DurationMs: 1000, Rows: 9, Cols: 9, Mines: 10,
	}); err != nil {
		t.Errorf("SaveResult() after nested Open error: %v", err)
	}
}
