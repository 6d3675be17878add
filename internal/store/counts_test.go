package store

import (
	"testing"

	"taskboard/internal/models"
)

func TestSummaryCounts(t *testing.T) {
	s := newTestStore(t)

	empty, err := s.SummaryCounts()
	if err != nil {
		t.Fatalf("summary counts: %v", err)
	}
	if empty.Total != 0 || empty.Pending != 0 || empty.Completed != 0 {
		t.Errorf("empty store counts = %+v, want zeros", empty)
	}

	mustCreateTask(t, s, models.TaskCreate{Content: "a"})
	mustCreateTask(t, s, models.TaskCreate{Content: "b"})
	done := mustCreateTask(t, s, models.TaskCreate{Content: "c"})
	if _, err := s.UpdateTask(done.ID, models.TaskUpdate{
		Status: models.Field[string]{Set: true, Value: models.StatusDone},
	}); err != nil {
		t.Fatalf("marking done: %v", err)
	}

	got, err := s.SummaryCounts()
	if err != nil {
		t.Fatalf("summary counts: %v", err)
	}
	if got.Total != 3 || got.Pending != 2 || got.Completed != 1 {
		t.Errorf("counts = %+v, want {3 2 1}", got)
	}
}

func TestCounts(t *testing.T) {
	s := newTestStore(t)
	work := mustCreateGroup(t, s, "work")
	home := mustCreateGroup(t, s, "home")

	// Clock is pinned to 2026-08-30.
	mustCreateTask(t, s, models.TaskCreate{Content: "due today", GroupID: &work.ID, DueDate: strPtr("2026-08-30")})
	mustCreateTask(t, s, models.TaskCreate{Content: "later", GroupID: &work.ID, DueDate: strPtr("2026-09-10")})
	mustCreateTask(t, s, models.TaskCreate{Content: "at home", GroupID: &home.ID})
	mustCreateTask(t, s, models.TaskCreate{Content: "loose"})

	got, err := s.Counts()
	if err != nil {
		t.Fatalf("counts: %v", err)
	}

	if got.Total != 4 || got.Pending != 4 || got.Completed != 0 {
		t.Errorf("summary part = %+v, want total 4, pending 4, completed 0", got)
	}
	if got.Today != 1 {
		t.Errorf("today = %d, want 1", got.Today)
	}
	if got.Upcoming != 1 {
		t.Errorf("upcoming = %d, want 1", got.Upcoming)
	}

	// Per-group totals sum to the number of grouped tasks.
	perGroup := map[string]int{}
	sum := 0
	for _, gc := range got.PerGroup {
		perGroup[gc.GroupID] = gc.Count
		sum += gc.Count
	}
	if sum != 3 {
		t.Errorf("per_group sum = %d, want 3", sum)
	}
	if perGroup[work.ID] != 2 || perGroup[home.ID] != 1 {
		t.Errorf("per_group = %v, want work=2 home=1", perGroup)
	}
}

func TestCountsReflectLatestState(t *testing.T) {
	s := newTestStore(t)

	task := mustCreateTask(t, s, models.TaskCreate{Content: "x"})
	before, err := s.Counts()
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if before.Total != 1 {
		t.Fatalf("total = %d, want 1", before.Total)
	}

	if err := s.DeleteTask(task.ID); err != nil {
		t.Fatalf("deleting task: %v", err)
	}
	after, err := s.Counts()
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if after.Total != 0 {
		t.Errorf("total after delete = %d, want 0 (no caching)", after.Total)
	}
}
