package storage

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/.arcade/scores.db")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".arcade", "scores.db"); got != want {
		t.Errorf("ExpandPath = %q, expected %q", got, want)
	}
	if got, _ := ExpandPath("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed to %q", got)
	}
}

func TestStoreSaveAndTopScores(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	entries := []ScoreEntry{
		{GameID: "avoider", Score: 100, Balls: 6},
		{GameID: "avoider", Score: 50, Balls: 3, Difficulty: "easy"},
		{GameID: "avoider", Score: 200, Balls: 12, Difficulty: "hard"},
		{GameID: "other", Score: 500},
	}
	for _, e := range entries {
		if _, err := store.SaveScore(ctx, e); err != nil {
			t.Fatalf("SaveScore(%+v) failed: %v", e, err)
		}
	}

	scores, err := store.TopScores(ctx, "avoider", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(scores))
	}

	want := []struct {
		score, balls int
		difficulty   string
	}{
		{200, 12, "hard"},
		{100, 6, "normal"},
		{50, 3, "easy"},
	}
	for i, w := range want {
		got := scores[i]
		if got.Score != w.score || got.Balls != w.balls || got.Difficulty != w.difficulty {
			t.Errorf("score %d = %+v, expected %+v", i, got, w)
		}
		if got.CreatedAt.IsZero() {
			t.Errorf("score %d has no timestamp", i)
		}
	}

	top, err := store.TopScores(ctx, "avoider", 2)
	if err != nil || len(top) != 2 {
		t.Errorf("limit 2 gave %d scores, err %v", len(top), err)
	}
}

func TestStoreSaveRejectsEmptyGame(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveScore(context.Background(), ScoreEntry{Score: 1}); err == nil {
		t.Error("expected error for empty game id")
	}
}

func TestStoreHighScoreAndClear(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	if hs, err := store.HighScore(ctx, "avoider"); err != nil || hs != 0 {
		t.Fatalf("empty HighScore = %d, %v", hs, err)
	}

	for _, s := range []int{30, 90, 60} {
		if _, err := store.SaveScore(ctx, ScoreEntry{GameID: "avoider", Score: s}); err != nil {
			t.Fatal(err)
		}
	}
	if hs, _ := store.HighScore(ctx, "avoider"); hs != 90 {
		t.Errorf("HighScore = %d, expected 90", hs)
	}

	n, err := store.ClearScores(ctx, "avoider")
	if err != nil || n != 3 {
		t.Fatalf("ClearScores = %d, %v", n, err)
	}
	if hs, _ := store.HighScore(ctx, "avoider"); hs != 0 {
		t.Errorf("HighScore after clear = %d", hs)
	}
}

func TestStoreAllGamesStats(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	for _, e := range []ScoreEntry{
		{GameID: "avoider", Score: 10, Balls: 3},
		{GameID: "avoider", Score: 30, Balls: 12},
		{GameID: "stillroot", Score: 1},
	} {
		if _, err := store.SaveScore(ctx, e); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := store.AllGamesStats(ctx)
	if err != nil {
		t.Fatalf("AllGamesStats: %v", err)
	}
	av := stats["avoider"]
	if av == nil || av.GamesCount != 2 || av.HighScore != 30 || av.AvgScore != 20 || av.MaxBalls != 12 {
		t.Errorf("avoider stats = %+v", av)
	}
	if stats["stillroot"] == nil || len(stats) != 2 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestStoreMigratesVersionOneDatabase(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "old.db")

	// Lay down a database in the original single-table layout.
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	stmts := []string{
		`CREATE TABLE scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`INSERT INTO scores (game_id, score) VALUES ('avoider', 42)`,
		`PRAGMA user_version = 1`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			t.Fatalf("%s: %v", strings.Fields(s)[0], err)
		}
	}
	db.Close()

	store, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open() on v1 database: %v", err)
	}
	defer store.Close()

	scores, err := store.TopScores(ctx, "avoider", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Score != 42 || scores[0].Difficulty != "normal" || scores[0].Balls != 0 {
		t.Errorf("migrated scores = %+v", scores)
	}
}
