package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/hackbright/projecttracker/internal/tracker"
)

// GetStudent retrieves a student by GitHub account name.
// When the same account was registered more than once, the first row wins.
func (d *DB) GetStudent(github string) (*tracker.Student, error) {
	var s tracker.Student
	err := d.db.QueryRow(d.rebind(`
		SELECT first_name, last_name, github
		FROM students
		WHERE github = ?
		ORDER BY id
		LIMIT 1
	`), github).Scan(&s.FirstName, &s.LastName, &s.GitHub)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", tracker.ErrStudentNotFound, github)
		}
		return nil, fmt.Errorf("querying student %s: %w", github, err)
	}
	return &s, nil
}

// AddStudent inserts a student row. No duplicate check is made.
func (d *DB) AddStudent(s tracker.Student) error {
	return d.withTx(func(tx *sql.Tx) error {
		_, err := tx.Exec(d.rebind(`
			INSERT INTO students (first_name, last_name, github)
			VALUES (?, ?, ?)
		`), s.FirstName, s.LastName, s.GitHub)
		if err != nil {
			return fmt.Errorf("inserting student %s: %w", s.GitHub, err)
		}
		return nil
	})
}
