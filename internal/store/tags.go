package store

import (
	"database/sql"
	"fmt"
	"strings"

	"taskboard/internal/models"
)

// CreateTag creates a new tag. The name is trimmed, must be non-empty, and
// must not collide (case-sensitively) with an existing tag's name.
func (s *Store) CreateTag(in models.TagCreate) (*models.Tag, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalid)
	}

	id := s.newID()
	err := s.inTx(func(tx *sql.Tx) error {
		if err := checkTagName(tx, name, ""); err != nil {
			return err
		}
		if _, err := tx.Exec(`
			INSERT INTO tags (id, name, color, created_at) VALUES (?, ?, ?, ?)
		`, id, name, in.Color, s.now()); err != nil {
			return storageErr(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetTag(id)
}

// GetTag retrieves a tag by id.
func (s *Store) GetTag(id string) (*models.Tag, error) {
	t := &models.Tag{}
	err := s.db.QueryRow("SELECT id, name, color, created_at FROM tags WHERE id = ?", id).
		Scan(&t.ID, &t.Name, &t.Color, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: tag %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, storageErr(err)
	}
	return t, nil
}

// ListTags returns all tags in insertion order.
func (s *Store) ListTags() ([]models.Tag, error) {
	rows, err := s.db.Query("SELECT id, name, color, created_at FROM tags ORDER BY rowid")
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	tags := []models.Tag{}
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color, &t.CreatedAt); err != nil {
			return nil, storageErr(err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}
	return tags, nil
}

// UpdateTag applies a partial update to a tag. A supplied name is trimmed,
// must be non-empty, and must not collide with a different tag's name.
func (s *Store) UpdateTag(id string, in models.TagUpdate) (*models.Tag, error) {
	var name string
	if in.Name.Set {
		name = strings.TrimSpace(in.Name.Value)
		if name == "" {
			return nil, fmt.Errorf("%w: name is required", ErrInvalid)
		}
	}

	err := s.inTx(func(tx *sql.Tx) error {
		var n int
		if err := tx.QueryRow("SELECT COUNT(*) FROM tags WHERE id = ?", id).Scan(&n); err != nil {
			return storageErr(err)
		}
		if n == 0 {
			return fmt.Errorf("%w: tag %s", ErrNotFound, id)
		}

		if in.Name.Set {
			if err := checkTagName(tx, name, id); err != nil {
				return err
			}
			if _, err := tx.Exec("UPDATE tags SET name = ? WHERE id = ?", name, id); err != nil {
				return storageErr(err)
			}
		}
		if in.Color.Set {
			if _, err := tx.Exec("UPDATE tags SET color = ? WHERE id = ?", in.Color.Value, id); err != nil {
				return storageErr(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetTag(id)
}

// DeleteTag removes a tag and strips its id from every task's tag list in
// the same transaction (cascading detachment; no task is deleted). Deleting
// a missing id reports ErrNotFound.
func (s *Store) DeleteTag(id string) error {
	return s.inTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM task_tags WHERE tag_id = ?", id); err != nil {
			return storageErr(err)
		}
		res, err := tx.Exec("DELETE FROM tags WHERE id = ?", id)
		if err != nil {
			return storageErr(err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return storageErr(err)
		}
		if n == 0 {
			return fmt.Errorf("%w: tag %s", ErrNotFound, id)
		}
		return nil
	})
}

// checkTagName reports ErrConflict when name belongs to a tag other than
// selfID.
func checkTagName(q queryRower, name, selfID string) error {
	var n int
	if err := q.QueryRow("SELECT COUNT(*) FROM tags WHERE name = ? AND id != ?", name, selfID).Scan(&n); err != nil {
		return storageErr(err)
	}
	if n > 0 {
		return fmt.Errorf("%w: tag name %q already exists", ErrConflict, name)
	}
	return nil
}
