package store

import (
	"taskboard/internal/models"
)

// SummaryCounts returns total/pending/completed task counters. Computed
// fresh on every call; nothing is cached.
func (s *Store) SummaryCounts() (*models.SummaryCounts, error) {
	c := &models.SummaryCounts{}
	err := s.db.QueryRow(`
		SELECT COUNT(*),
		       COUNT(CASE WHEN status = ? THEN 1 END),
		       COUNT(CASE WHEN status = ? THEN 1 END)
		FROM tasks
	`, models.StatusPending, models.StatusDone).Scan(&c.Total, &c.Pending, &c.Completed)
	if err != nil {
		return nil, storageErr(err)
	}
	return c, nil
}

// Counts returns the full aggregate view: the summary counters plus
// due-today, upcoming, and per-group totals over the current store state.
func (s *Store) Counts() (*models.Counts, error) {
	c := &models.Counts{PerGroup: []models.GroupCount{}}

	today := s.today()
	err := s.db.QueryRow(`
		SELECT COUNT(*),
		       COUNT(CASE WHEN status = ? THEN 1 END),
		       COUNT(CASE WHEN status = ? THEN 1 END),
		       COUNT(CASE WHEN due_date = ? THEN 1 END),
		       COUNT(CASE WHEN due_date IS NOT NULL AND due_date > ? THEN 1 END)
		FROM tasks
	`, models.StatusPending, models.StatusDone, today, today).
		Scan(&c.Total, &c.Pending, &c.Completed, &c.Today, &c.Upcoming)
	if err != nil {
		return nil, storageErr(err)
	}

	rows, err := s.db.Query(`
		SELECT group_id, COUNT(*)
		FROM tasks
		WHERE group_id IS NOT NULL
		GROUP BY group_id
	`)
	if err != nil {
		return nil, storageErr(err)
	}
	defer rows.Close()

	for rows.Next() {
		var gc models.GroupCount
		if err := rows.Scan(&gc.GroupID, &gc.Count); err != nil {
			return nil, storageErr(err)
		}
		c.PerGroup = append(c.PerGroup, gc)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(err)
	}

	return c, nil
}
