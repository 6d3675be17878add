package store

import (
	"database/sql"
	"fmt"
	"strings"

	"taskboard/internal/models"
)

// queryRower is satisfied by both *sql.DB and *sql.Tx.
type queryRower interface {
	QueryRow(query string, args ...any) *sql.Row
}

// CreateTask creates a new task. Content must be non-empty after trimming.
// A referenced group and all referenced tags must exist at write time.
func (s *Store) CreateTask(in models.TaskCreate) (*models.Task, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, fmt.Errorf("%w: content is required", ErrInvalid)
	}

	priority := in.Priority
	if priority == "" {
		priority = models.DefaultPriority
	}

	id := s.newID()
	now := s.now()

	err := s.inTx(func(tx *sql.Tx) error {
		if err := checkGroupRef(tx, in.GroupID); err != nil {
			return err
		}
		if err := checkTagRefs(tx, in.Tags); err != nil {
			return err
		}

		_, err := tx.Exec(`
			INSERT INTO tasks (id, content, group_id, status, due_date, time_range, priority, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, id, in.Content, in.GroupID, models.StatusPending, in.DueDate, in.TimeRange, priority, now, now)
		if err != nil {
			return storageErr(err)
		}

		return replaceTaskTags(tx, id, in.Tags)
	})
	if err != nil {
		return nil, err
	}

	return s.GetTask(id)
}

// GetTask retrieves a task by id with its tags.
func (s *Store) GetTask(id string) (*models.Task, error) {
	t := &models.Task{}
	err := s.db.QueryRow(`
		SELECT id, content, group_id, status, due_date, time_range, priority, created_at, updated_at
		FROM tasks WHERE id = ?
	`, id).Scan(&t.ID, &t.Content, &t.GroupID, &t.Status, &t.DueDate, &t.TimeRange, &t.Priority, &t.CreatedAt, &t.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: task %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, storageErr(err)
	}

	tags, err := s.taskTags(id)
	if err != nil {
		return nil, err
	}
	t.Tags = tags

	return t, nil
}

const taskColumns = "id, content, group_id, status, due_date, time_range, priority, created_at, updated_at"

// ListTasks returns all tasks in insertion order.
func (s *Store) ListTasks() ([]models.Task, error) {
	return s.queryTasks("SELECT " + taskColumns + " FROM tasks ORDER BY rowid")
}

// ListTasksToday returns tasks due on the current date.
func (s *Store) ListTasksToday() ([]models.Task, error) {
	return s.queryTasks("SELECT "+taskColumns+" FROM tasks WHERE due_date = ? ORDER BY rowid", s.today())
}

// ListTasksUpcoming returns tasks with a due date strictly after the current
// date. ISO dates compare correctly as strings.
func (s *Store) ListTasksUpcoming() ([]models.Task, error) {
	return s.queryTasks("SELECT "+taskColumns+" FROM tasks WHERE due_date IS NOT NULL AND due_date > ? ORDER BY rowid", s.today())
}

// ListTasksPending returns tasks that are not done yet.
func (s *Store) ListTasksPending() ([]models.Task, error) {
	return s.queryTasks("SELECT "+taskColumns+" FROM tasks WHERE status = ? ORDER BY rowid", models.StatusPending)
}

// ListTasksCompleted returns tasks marked done.
func (s *Store) ListTasksCompleted() ([]models.Task, error) {
	return s.queryTasks("SELECT "+taskColumns+" FROM tasks WHERE status = ? ORDER BY rowid", models.StatusDone)
}

// ListTasksByGroup returns the tasks attached to one group.
func (s *Store) ListTasksByGroup(groupID string) ([]models.Task, error) {
	return s.queryTasks("SELECT "+taskColumns+" FROM tasks WHERE group_id = ? ORDER BY rowid", groupID)
}

// ListTasksByTag returns the tasks carrying one tag.
func (s *Store) ListTasksByTag(tagID string) ([]models.Task, error) {
	return s.queryTasks(`
		SELECT DISTINCT t.id, t.content, t.group_id, t.status, t.due_date, t.time_range, t.priority, t.created_at, t.updated_at
		FROM tasks t
		JOIN task_tags tt ON t.id = tt.task_id
		WHERE tt.tag_id = ?
		ORDER BY t.rowid
	`, tagID)
}

// UpdateTask applies a partial update. Validation completes before any field
// is written: an invalid status rejects the whole request, leaving every
// field untouched. Content that trims to empty is ignored rather than
// rejected, keeping the original value. A successful update always refreshes
// updated_at.
func (s *Store) UpdateTask(id string, in models.TaskUpdate) (*models.Task, error) {
	if in.Status.Set && in.Status.Value != models.StatusPending && in.Status.Value != models.StatusDone {
		return nil, fmt.Errorf("%w: status must be either %q or %q", ErrInvalid, models.StatusPending, models.StatusDone)
	}

	err := s.inTx(func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRow("SELECT COUNT(*) FROM tasks WHERE id = ?", id).Scan(&exists)
		if err != nil {
			return storageErr(err)
		}
		if exists == 0 {
			return fmt.Errorf("%w: task %s", ErrNotFound, id)
		}

		if in.GroupID.Set {
			if err := checkGroupRef(tx, in.GroupID.Value); err != nil {
				return err
			}
		}
		if in.Tags.Set {
			if err := checkTagRefs(tx, in.Tags.Value); err != nil {
				return err
			}
		}

		set := []string{"updated_at = ?"}
		args := []any{s.now()}

		if in.Content.Set && strings.TrimSpace(in.Content.Value) != "" {
			set = append(set, "content = ?")
			args = append(args, in.Content.Value)
		}
		if in.GroupID.Set {
			set = append(set, "group_id = ?")
			args = append(args, in.GroupID.Value)
		}
		if in.Status.Set {
			set = append(set, "status = ?")
			args = append(args, in.Status.Value)
		}
		if in.DueDate.Set {
			set = append(set, "due_date = ?")
			args = append(args, in.DueDate.Value)
		}
		if in.TimeRange.Set {
			set = append(set, "time_range = ?")
			args = append(args, in.TimeRange.Value)
		}
		if in.Priority.Set {
			set = append(set, "priority = ?")
			args = append(args, in.Priority.Value)
		}

		args = append(args, id)
		if _, err := tx.Exec("UPDATE tasks SET "+strings.Join(set, ", ")+" WHERE id = ?", args...); err != nil {
			return storageErr(err)
		}

		if in.Tags.Set {
			if _, err := tx.Exec("DELETE FROM task_tags WHERE task_id = ?", id); err != nil {
				return storageErr(err)
			}
			return replaceTaskTags(tx, id, in.Tags.Value)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetTask(id)
}

// DeleteTask removes a task and its tag attachments. Deleting a missing id
// reports ErrNotFound, repeatably.
func (s *Store) DeleteTask(id string) error {
	return s.inTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM task_tags WHERE task_id = ?", id); err != nil {
			return storageErr(err)
		}
		res, err := tx.Exec("DELETE FROM tasks WHERE id = ?", id)
		if err != nil {
			return storageErr(err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return storageErr(err)
		}
		if n == 0 {
			return fmt.Errorf("%w: task %s", ErrNotFound, id)
		}
		return nil
	})
}

// queryTasks runs a task select and loads tags for each row.
func (s *Store) queryTasks(query string, args ...any) ([]models.Task, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Content, &t.GroupID, &t.Status, &t.DueDate, &t.TimeRange, &t.Priority, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, storageErr(err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}

	for i := range tasks {
		tags, err := s.taskTags(tasks[i].ID)
		if err != nil {
			return nil, err
		}
		tasks[i].Tags = tags
	}

	return tasks, nil
}

// taskTags returns the tag ids attached to a task, in attachment order.
func (s *Store) taskTags(taskID string) ([]string, error) {
	rows, err := s.db.Query("SELECT tag_id FROM task_tags WHERE task_id = ? ORDER BY position", taskID)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	tags := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, storageErr(err)
		}
		tags = append(tags, id)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}
	return tags, nil
}

// replaceTaskTags inserts the task's tag list. Callers clear existing rows
// first when replacing.
func replaceTaskTags(tx *sql.Tx, taskID string, tags []string) error {
	for i, tagID := range tags {
		if _, err := tx.Exec("INSERT INTO task_tags (task_id, tag_id, position) VALUES (?, ?, ?)", taskID, tagID, i); err != nil {
			return storageErr(err)
		}
	}
	return nil
}

// checkGroupRef verifies a non-null group reference points at an existing
// group.
func checkGroupRef(q queryRower, groupID *string) error {
	if groupID == nil {
		return nil
	}
	var n int
	if err := q.QueryRow("SELECT COUNT(*) FROM groups WHERE id = ?", *groupID).Scan(&n); err != nil {
		return storageErr(err)
	}
	if n == 0 {
		return fmt.Errorf("%w: unknown group %s", ErrInvalid, *groupID)
	}
	return nil
}

// checkTagRefs verifies every tag id exists.
func checkTagRefs(q queryRower, tags []string) error {
	for _, tagID := range tags {
		var n int
		if err := q.QueryRow("SELECT COUNT(*) FROM tags WHERE id = ?", tagID).Scan(&n); err != nil {
			return storageErr(err)
		}
		if n == 0 {
			return fmt.Errorf("%w: unknown tag %s", ErrInvalid, tagID)
		}
	}
	return nil
}
