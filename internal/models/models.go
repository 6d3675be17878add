package models

import (
	"encoding/json"
	"time"
)

// Task status values accepted by the store.
const (
	StatusPending = "pending"
	StatusDone    = "done"
)

// DefaultPriority is applied when a task is created without one.
const DefaultPriority = "medium"

// Group represents a named category a task may belong to
type Group struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"created_at"`
}

// Tag represents a reusable label that can be applied to tasks.
// Names are unique across the store, case-sensitive.
type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// Task represents a single task
type Task struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	GroupID   *string   `json:"group_id"`
	Status    string    `json:"status"`
	DueDate   *string   `json:"due_date"` // ISO YYYY-MM-DD
	TimeRange *string   `json:"time_range"`
	Priority  string    `json:"priority"`
	Tags      []string  `json:"tags"` // tag ids, attachment order
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TaskCreate carries the fields accepted when creating a task.
type TaskCreate struct {
	Content   string   `json:"content"`
	GroupID   *string  `json:"group_id"`
	DueDate   *string  `json:"due_date"`
	TimeRange *string  `json:"time_range"`
	Priority  string   `json:"priority"`
	Tags      []string `json:"tags"`
}

// GroupCreate carries the fields accepted when creating a group.
type GroupCreate struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// TagCreate carries the fields accepted when creating a tag.
type TagCreate struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Field distinguishes a JSON key that was present in a request body from one
// that was absent. UnmarshalJSON only runs for keys that appear in the
// payload, so Set is false exactly when the key was omitted. With a pointer
// value type, Set with a nil Value means an explicit null.
type Field[T any] struct {
	Set   bool
	Value T
}

// UnmarshalJSON records presence and decodes the value.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	return json.Unmarshal(data, &f.Value)
}

// TaskUpdate is a partial task mutation: only fields present in the request
// are applied.
type TaskUpdate struct {
	Content   Field[string]   `json:"content"`
	GroupID   Field[*string]  `json:"group_id"`
	Status    Field[string]   `json:"status"`
	DueDate   Field[*string]  `json:"due_date"`
	TimeRange Field[*string]  `json:"time_range"`
	Priority  Field[string]   `json:"priority"`
	Tags      Field[[]string] `json:"tags"`
}

// TagUpdate is a partial tag mutation.
type TagUpdate struct {
	Name  Field[string] `json:"name"`
	Color Field[string] `json:"color"`
}

// GroupCount is the number of tasks attached to one group.
type GroupCount struct {
	GroupID string `json:"group_id"`
	Count   int    `json:"count"`
}

// SummaryCounts are the lightweight aggregate counters.
type SummaryCounts struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}

// Counts are the full aggregate counters, including per-group totals.
type Counts struct {
	Total     int          `json:"total"`
	Pending   int          `json:"pending"`
	Completed int          `json:"completed"`
	Today     int          `json:"today"`
	Upcoming  int          `json:"upcoming"`
	PerGroup  []GroupCount `json:"per_group"`
}
