package store

import (
	"path/filepath"
	"testing"
	"time"

	"taskboard/internal/models"
)

// newTestStore creates a store backed by a temp-dir sqlite file with a fixed
// clock so date-based filters are deterministic.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	s.now = func() time.Time {
		return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	}
	return s
}

func strPtr(s string) *string {
	return &s
}

// mustCreateTask seeds a task and fails the test on error.
func mustCreateTask(t *testing.T, s *Store, in models.TaskCreate) *models.Task {
	t.Helper()
	task, err := s.CreateTask(in)
	if err != nil {
		t.Fatalf("creating task %q: %v", in.Content, err)
	}
	return task
}

// mustCreateGroup seeds a group and fails the test on error.
func mustCreateGroup(t *testing.T, s *Store, name string) *models.Group {
	t.Helper()
	group, err := s.CreateGroup(models.GroupCreate{Name: name})
	if err != nil {
		t.Fatalf("creating group %q: %v", name, err)
	}
	return group
}

// mustCreateTag seeds a tag and fails the test on error.
func mustCreateTag(t *testing.T, s *Store, name string) *models.Tag {
	t.Helper()
	tag, err := s.CreateTag(models.TagCreate{Name: name})
	if err != nil {
		t.Fatalf("creating tag %q: %v", name, err)
	}
	return tag
}

func taskIDs(tasks []models.Task) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}
