package store

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

func TestSampleRepository(t *testing.T) {
	s := newTestStore(t)
	repo := s.Samples()

	t.Run("create and get", func(t *testing.T) {
		data := json.RawMessage(`{"points":[{"x":0.5,"y":0.5,"z":0}]}`)
		created, err := repo.Create("rock", data)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if created.ID == "" {
			t.Error("created sample has empty ID")
		}

		got, err := repo.GetByID(created.ID)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if got.Label != "rock" {
			t.Errorf("label = %q, want %q", got.Label, "rock")
		}
		if string(got.Data) != string(data) {
			t.Errorf("data = %s, want %s", got.Data, data)
		}
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := repo.GetByID("no-such-id")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("list filters by label", func(t *testing.T) {
		if _, err := repo.Create("paper", json.RawMessage(`{}`)); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if _, err := repo.Create("paper", json.RawMessage(`{}`)); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		papers, err := repo.List("paper")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(papers) != 2 {
			t.Errorf("len(papers) = %d, want 2", len(papers))
		}

		all, err := repo.List("")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(all) != 3 {
			t.Errorf("len(all) = %d, want 3", len(all))
		}
	})

	t.Run("count by label", func(t *testing.T) {
		counts, err := repo.CountByLabel()
		if err != nil {
			t.Fatalf("CountByLabel failed: %v", err)
		}
		if counts["rock"] != 1 || counts["paper"] != 2 {
			t.Errorf("counts = %v, want rock:1 paper:2", counts)
		}
	})

	t.Run("rejects unknown label", func(t *testing.T) {
		_, err := repo.Create("lizard", json.RawMessage(`{}`))
		if err == nil {
			t.Error("Create accepted a label outside the allowed set")
		}
	})

	t.Run("delete", func(t *testing.T) {
		created, err := repo.Create("scissors", json.RawMessage(`{}`))
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		if err := repo.Delete(created.ID); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := repo.GetByID(created.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("sample still present after delete: %v", err)
		}

		if err := repo.Delete(created.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("second delete err = %v, want ErrNotFound", err)
		}
	})
}

func TestSettingRepository(t *testing.T) {
	s := newTestStore(t)
	repo := s.Settings()

	t.Run("get missing", func(t *testing.T) {
		_, err := repo.Get("camera_id")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("set and get", func(t *testing.T) {
		if err := repo.Set("camera_id", "1"); err != nil {
			t.Fatalf("Set failed: %v", err)
		}

		got, err := repo.Get("camera_id")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got != "1" {
			t.Errorf("value = %q, want %q", got, "1")
		}
	})

	t.Run("set overwrites", func(t *testing.T) {
		if err := repo.Set("camera_id", "2"); err != nil {
			t.Fatalf("Set failed: %v", err)
		}

		got, err := repo.Get("camera_id")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got != "2" {
			t.Errorf("value = %q, want %q", got, "2")
		}
	})
}
