package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/hackbright/projecttracker/internal/tracker"
)

// GetProject retrieves a project by title.
func (d *DB) GetProject(title string) (*tracker.Project, error) {
	var p tracker.Project
	err := d.db.QueryRow(d.rebind(`
		SELECT title, description, max_grade
		FROM projects
		WHERE title = ?
		ORDER BY id
		LIMIT 1
	`), title).Scan(&p.Title, &p.Description, &p.MaxGrade)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", tracker.ErrProjectNotFound, title)
		}
		return nil, fmt.Errorf("querying project %s: %w", title, err)
	}
	return &p, nil
}

// AddProject inserts a project unless one with the same title exists,
// in which case it returns tracker.ErrDuplicateProject and writes nothing.
// The count and the insert share one transaction.
func (d *DB) AddProject(p tracker.Project) error {
	return d.withTx(func(tx *sql.Tx) error {
		var count int
		err := tx.QueryRow(d.rebind(`SELECT COUNT(*) FROM projects WHERE title = ?`), p.Title).Scan(&count)
		if err != nil {
			return fmt.Errorf("counting projects: %w", err)
		}
		if count != 0 {
			return tracker.ErrDuplicateProject
		}

		_, err = tx.Exec(d.rebind(`
			INSERT INTO projects (title, description, max_grade)
			VALUES (?, ?, ?)
		`), p.Title, p.Description, p.MaxGrade)
		if err != nil {
			return fmt.Errorf("inserting project %s: %w", p.Title, err)
		}
		return nil
	})
}

// CountProjects returns the number of projects with the given title.
func (d *DB) CountProjects(title string) (int, error) {
	var count int
	err := d.db.QueryRow(d.rebind(`SELECT COUNT(*) FROM projects WHERE title = ?`), title).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting projects: %w", err)
	}
	return count, nil
}
