package store

import (
	"database/sql"
	"fmt"
	"strings"

	"taskboard/internal/models"
)

// Defaults applied when a group is created without a color or icon.
const (
	DefaultGroupColor = "#6b7280"
	DefaultGroupIcon  = "📁"
)

// CreateGroup creates a new group. The name is trimmed and must be
// non-empty; color and icon fall back to defaults when omitted.
func (s *Store) CreateGroup(in models.GroupCreate) (*models.Group, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalid)
	}

	color := in.Color
	if color == "" {
		color = DefaultGroupColor
	}
	icon := in.Icon
	if icon == "" {
		icon = DefaultGroupIcon
	}

	id := s.newID()
	_, err := s.db.Exec(`
		INSERT INTO groups (id, name, color, icon, created_at) VALUES (?, ?, ?, ?, ?)
	`, id, name, color, icon, s.now())
	if err != nil {
		return nil, storageErr(err)
	}

	return s.GetGroup(id)
}

// GetGroup retrieves a group by id.
func (s *Store) GetGroup(id string) (*models.Group, error) {
	g := &models.Group{}
	err := s.db.QueryRow(`
		SELECT id, name, color, icon, created_at FROM groups WHERE id = ?
	`, id).Scan(&g.ID, &g.Name, &g.Color, &g.Icon, &g.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: group %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, storageErr(err)
	}
	return g, nil
}

// ListGroups returns all groups in insertion order.
func (s *Store) ListGroups() ([]models.Group, error) {
	rows, err := s.db.Query("SELECT id, name, color, icon, created_at FROM groups ORDER BY rowid")
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	groups := []models.Group{}
	for rows.Next() {
		var g models.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.Color, &g.Icon, &g.CreatedAt); err != nil {
			return nil, storageErr(err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}
	return groups, nil
}

// DeleteGroup removes a group and detaches every task that referenced it
// (group_id becomes null; no task is deleted). Detachment and removal happen
// in one transaction, so readers see either both or neither. Deleting a
// missing id succeeds silently.
func (s *Store) DeleteGroup(id string) error {
	return s.inTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec("UPDATE tasks SET group_id = NULL WHERE group_id = ?", id); err != nil {
			return storageErr(err)
		}
		if _, err := tx.Exec("DELETE FROM groups WHERE id = ?", id); err != nil {
			return storageErr(err)
		}
		return nil
	})
}
