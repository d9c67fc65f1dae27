package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-anglers/internal/replay"
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

func sampleRecording(score int) replay.Recording {
	return replay.Recording{
		GameID:   "anglers",
		Seed:     42,
		Config:   []byte("rules:\n  winning_score: 10\n"),
		Score:    score,
		Won:      score > 10,
		GameOver: true,
		Frames: []replay.Frame{
			{Delta: 16 * time.Millisecond, Held: 1 << 1},
			{Delta: 17 * time.Millisecond, Actions: 1 << 3},
			{Delta: 1500 * time.Microsecond},
		},
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndLoadReplay(t *testing.T) {
	store := openTestStore(t)
	rec := sampleRecording(12)

	id, err := store.SaveReplay(rec)
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("id = %q, want a UUID", id)
	}

	got, err := store.LoadReplay(id)
	if err != nil {
		t.Fatalf("LoadReplay() failed: %v", err)
	}

	if got.ID != id || got.GameID != "anglers" || got.Seed != 42 {
		t.Errorf("header = %q/%q/%d", got.ID, got.GameID, got.Seed)
	}
	if got.Score != 12 || !got.Won || !got.GameOver {
		t.Errorf("outcome = score %d won %v over %v", got.Score, got.Won, got.GameOver)
	}
	if string(got.Config) != string(rec.Config) {
		t.Errorf("config = %q", got.Config)
	}
	if len(got.Frames) != len(rec.Frames) {
		t.Fatalf("frames = %d, want %d", len(got.Frames), len(rec.Frames))
	}
	for i := range rec.Frames {
		if got.Frames[i] != rec.Frames[i] {
			t.Errorf("frame %d = %+v, want %+v", i, got.Frames[i], rec.Frames[i])
		}
	}
}

func TestStoreLoadByPrefix(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveReplay(sampleRecording(3))
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}

	got, err := store.LoadReplay(id[:8])
	if err != nil {
		t.Fatalf("LoadReplay(prefix) failed: %v", err)
	}
	if got.ID != id {
		t.Errorf("loaded %q, want %q", got.ID, id)
	}
}

func TestStoreLoadMissingReplay(t *testing.T) {
	store := openTestStore(t)

	_, err := store.LoadReplay("does-not-exist")
	if !errors.Is(err, ErrReplayNotFound) {
		t.Errorf("expected ErrReplayNotFound, got %v", err)
	}
}

func TestStoreListReplays(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{1, 5, 11} {
		if _, err := store.SaveReplay(sampleRecording(score)); err != nil {
			t.Fatalf("SaveReplay() failed: %v", err)
		}
	}

	list, err := store.ListReplays(10)
	if err != nil {
		t.Fatalf("ListReplays() failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("Expected 3 replays, got %d", len(list))
	}

	// Newest first
	if list[0].Score != 11 || list[2].Score != 1 {
		t.Errorf("order = %d, %d, %d", list[0].Score, list[1].Score, list[2].Score)
	}
	if list[0].Frames != 3 {
		t.Errorf("frame count = %d, want 3", list[0].Frames)
	}
	if want := 34500 * time.Microsecond; list[0].Duration != want {
		t.Errorf("duration = %v, want %v", list[0].Duration, want)
	}

	limited, err := store.ListReplays(2)
	if err != nil {
		t.Fatalf("ListReplays() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 replays with limit, got %d", len(limited))
	}
}

func TestStoreDeleteReplay(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveReplay(sampleRecording(4))
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}

	if err := store.DeleteReplay(id); err != nil {
		t.Fatalf("DeleteReplay() failed: %v", err)
	}
	if _, err := store.LoadReplay(id); !errors.Is(err, ErrReplayNotFound) {
		t.Errorf("expected ErrReplayNotFound after delete, got %v", err)
	}

	var frames int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM replay_frames").Scan(&frames); err != nil {
		t.Fatalf("count frames: %v", err)
	}
	if frames != 0 {
		t.Errorf("frames left after delete: %d", frames)
	}
}

func TestStoreWildcardIDsMatchNothing(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveReplay(sampleRecording(5)); err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}

	for _, id := range []string{"%", "_", "%%", "", "________"} {
		t.Run("load "+id, func(t *testing.T) {
			if _, err := store.LoadReplay(id); !errors.Is(err, ErrReplayNotFound) {
				t.Errorf("LoadReplay(%q) = %v, want ErrReplayNotFound", id, err)
			}
		})
	}

	if err := store.DeleteReplay("_"); !errors.Is(err, ErrReplayNotFound) {
		t.Errorf("DeleteReplay(\"_\") = %v, want ErrReplayNotFound", err)
	}
	if err := store.DeleteReplay("%"); !errors.Is(err, ErrReplayNotFound) {
		t.Errorf("DeleteReplay(\"%%\") = %v, want ErrReplayNotFound", err)
	}

	list, err := store.ListReplays(10)
	if err != nil {
		t.Fatalf("ListReplays() failed: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("replays left = %d, want 1", len(list))
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	id, err := store.SaveReplay(sampleRecording(7))
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if _, err := store.LoadReplay(id); err != nil {
		t.Errorf("LoadReplay() after reopen failed: %v", err)
	}
}
