package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "sessions.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestSaveAndTopSessions(t *testing.T) {
	store := openTemp(t)

	sessions := []Session{
		{Outcome: "game_over", Reason: "player 1 x enemy", Score: 40, Kills: 4, Ticks: 900, Seed: 1},
		{Outcome: "game_clear", Reason: "boss x beam", Score: 260, Kills: 12, Ticks: 2100, Seed: 2},
		{Outcome: "quit", Score: 40, Ticks: 300, Seed: 3},
		{Outcome: "boss_defeat", Reason: "player 1 x boss beam", Score: 90, Kills: 9, Ticks: 1400, Seed: 4},
	}
	for _, sess := range sessions {
		if _, err := store.SaveSession(sess); err != nil {
			t.Fatalf("SaveSession(%+v) failed: %v", sess, err)
		}
	}

	top, err := store.TopSessions(3)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("got %d sessions, expected 3", len(top))
	}
	wantSeeds := []int64{2, 4, 1} // равные очки: раньше записанная впереди
	for i, want := range wantSeeds {
		if top[i].Seed != want {
			t.Errorf("top[%d].Seed = %d, expected %d", i, top[i].Seed, want)
		}
	}
	if top[0].Outcome != "game_clear" || top[0].Reason != "boss x beam" || top[0].Kills != 12 {
		t.Errorf("top[0] = %+v, fields not round-tripped", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}
}

func TestSaveSessionRequiresOutcome(t *testing.T) {
	store := openTemp(t)
	if _, err := store.SaveSession(Session{Score: 10}); err == nil {
		t.Fatal("expected error for empty outcome")
	}
}

func TestHighScoreEmpty(t *testing.T) {
	store := openTemp(t)
	score, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("HighScore() on empty db = %d, expected 0", score)
	}
}

func TestStats(t *testing.T) {
	store := openTemp(t)
	for _, sess := range []Session{
		{Outcome: "game_over", Score: 10, Kills: 1},
		{Outcome: "game_over", Score: 30, Kills: 3},
		{Outcome: "game_clear", Score: 200, Kills: 8},
	} {
		if _, err := store.SaveSession(sess); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Sessions != 3 {
		t.Errorf("Sessions = %d, expected 3", stats.Sessions)
	}
	if stats.HighScore != 200 {
		t.Errorf("HighScore = %d, expected 200", stats.HighScore)
	}
	if stats.AvgScore != 80 {
		t.Errorf("AvgScore = %v, expected 80", stats.AvgScore)
	}
	if stats.TotalKills != 12 {
		t.Errorf("TotalKills = %d, expected 12", stats.TotalKills)
	}
	if stats.Outcomes["game_over"] != 2 || stats.Outcomes["game_clear"] != 1 {
		t.Errorf("Outcomes = %v", stats.Outcomes)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not populated")
	}
}
