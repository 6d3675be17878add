package store

import (
	"errors"
	"reflect"
	"testing"

	"taskboard/internal/models"
)

func TestCreateTag(t *testing.T) {
	s := newTestStore(t)

	tag, err := s.CreateTag(models.TagCreate{Name: " urgent ", Color: "#f00"})
	if err != nil {
		t.Fatalf("creating tag: %v", err)
	}
	if tag.Name != "urgent" {
		t.Errorf("name = %q, want trimmed %q", tag.Name, "urgent")
	}
	if tag.Color != "#f00" {
		t.Errorf("color = %q, want %q", tag.Color, "#f00")
	}
}

func TestCreateTagEmptyName(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.CreateTag(models.TagCreate{Name: "\t "}); !errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}

func TestCreateTagDuplicateName(t *testing.T) {
	s := newTestStore(t)
	mustCreateTag(t, s, "work")

	if _, err := s.CreateTag(models.TagCreate{Name: "work"}); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate name: err = %v, want ErrConflict", err)
	}

	// Uniqueness is case-sensitive; a different casing is a new tag.
	if _, err := s.CreateTag(models.TagCreate{Name: "Work"}); err != nil {
		t.Errorf("different casing: err = %v, want nil", err)
	}

	tags, err := s.ListTags()
	if err != nil {
		t.Fatalf("listing tags: %v", err)
	}
	if len(tags) != 2 {
		t.Errorf("store has %d tags, want 2", len(tags))
	}
}

func TestUpdateTag(t *testing.T) {
	s := newTestStore(t)
	tag := mustCreateTag(t, s, "old")
	other := mustCreateTag(t, s, "taken")

	got, err := s.UpdateTag(tag.ID, models.TagUpdate{
		Name: models.Field[string]{Set: true, Value: " renamed "},
	})
	if err != nil {
		t.Fatalf("updating tag: %v", err)
	}
	if got.Name != "renamed" {
		t.Errorf("name = %q, want %q", got.Name, "renamed")
	}

	if _, err := s.UpdateTag(tag.ID, models.TagUpdate{
		Name: models.Field[string]{Set: true, Value: "  "},
	}); !errors.Is(err, ErrInvalid) {
		t.Errorf("blank name: err = %v, want ErrInvalid", err)
	}

	if _, err := s.UpdateTag(tag.ID, models.TagUpdate{
		Name: models.Field[string]{Set: true, Value: other.Name},
	}); !errors.Is(err, ErrConflict) {
		t.Errorf("collision: err = %v, want ErrConflict", err)
	}

	// Renaming a tag to its own current name is not a collision.
	if _, err := s.UpdateTag(tag.ID, models.TagUpdate{
		Name: models.Field[string]{Set: true, Value: "renamed"},
	}); err != nil {
		t.Errorf("self rename: err = %v, want nil", err)
	}

	if _, err := s.UpdateTag("missing", models.TagUpdate{
		Color: models.Field[string]{Set: true, Value: "#000"},
	}); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing id: err = %v, want ErrNotFound", err)
	}
}

func TestDeleteTagStripsFromTasks(t *testing.T) {
	s := newTestStore(t)
	doomed := mustCreateTag(t, s, "doomed")
	kept := mustCreateTag(t, s, "kept")

	t1 := mustCreateTask(t, s, models.TaskCreate{Content: "one", Tags: []string{doomed.ID, kept.ID}})
	t3 := mustCreateTask(t, s, models.TaskCreate{Content: "three", Tags: []string{doomed.ID}})

	if err := s.DeleteTag(doomed.ID); err != nil {
		t.Fatalf("deleting tag: %v", err)
	}

	got1, err := s.GetTask(t1.ID)
	if err != nil {
		t.Fatalf("task deleted as a side effect: %v", err)
	}
	if want := []string{kept.ID}; !reflect.DeepEqual(got1.Tags, want) {
		t.Errorf("t1 tags = %v, want %v", got1.Tags, want)
	}
	if got1.Content != t1.Content || got1.Status != t1.Status {
		t.Error("t1 changed beyond tag detachment")
	}

	got3, err := s.GetTask(t3.ID)
	if err != nil {
		t.Fatalf("task deleted as a side effect: %v", err)
	}
	if len(got3.Tags) != 0 {
		t.Errorf("t3 tags = %v, want empty", got3.Tags)
	}

	tags, err := s.ListTags()
	if err != nil {
		t.Fatalf("listing tags: %v", err)
	}
	if len(tags) != 1 || tags[0].ID != kept.ID {
		t.Errorf("tags = %+v, want only %s", tags, kept.ID)
	}
}

func TestDeleteTagNotFound(t *testing.T) {
	s := newTestStore(t)

	if err := s.DeleteTag("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
