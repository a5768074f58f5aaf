package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "runs.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	store.Close()
}

func TestSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(61.5, 4, 120, 7, 600); err != nil {
		t.Fatalf("SaveRun returned error: %v", err)
	}
	if _, err := store.SaveRun(122.0, 8, 260, 11, 1400); err != nil {
		t.Fatalf("SaveRun returned error: %v", err)
	}
	if _, err := store.SaveRun(30.0, 2, 40, 3, 180); err != nil {
		t.Fatalf("SaveRun returned error: %v", err)
	}

	runs, err := store.TopRuns(2)
	if err != nil {
		t.Fatalf("TopRuns returned error: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("len(runs) = %d, want 2", len(runs))
	}
	if runs[0].Score != 1400 || runs[1].Score != 600 {
		t.Errorf("scores = %d, %d, want 1400, 600", runs[0].Score, runs[1].Score)
	}
	if runs[0].Wave != 8 || runs[0].Kills != 260 || runs[0].Level != 11 {
		t.Errorf("top run = %+v, want wave 8 / kills 260 / level 11", runs[0])
	}
	if runs[0].Duration != 122.0 {
		t.Errorf("top run duration = %v, want 122", runs[0].Duration)
	}
	if runs[0].ID == "" {
		t.Error("run ID should not be empty")
	}
	if runs[0].CreatedAt.IsZero() {
		t.Error("created_at should be populated")
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	score, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore returned error: %v", err)
	}
	if score != 0 {
		t.Errorf("empty store high score = %d, want 0", score)
	}

	if _, err := store.SaveRun(45, 3, 80, 5, 420); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveRun(90, 6, 190, 9, 975); err != nil {
		t.Fatal(err)
	}

	score, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore returned error: %v", err)
	}
	if score != 975 {
		t.Errorf("high score = %d, want 975", score)
	}
}

func TestTopRunsDefaultLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 12; i++ {
		if _, err := store.SaveRun(float64(i), 1, i, 1, i*10); err != nil {
			t.Fatal(err)
		}
	}
	runs, err := store.TopRuns(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 10 {
		t.Errorf("len(runs) = %d, want default limit 10", len(runs))
	}
}
