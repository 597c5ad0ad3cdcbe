package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/hackbright/projecttracker/internal/tracker"
)

// GetGrade retrieves the grade a student received on a project.
// If the pair was graded more than once, the most recent grade is returned.
func (d *DB) GetGrade(github, title string) (*tracker.Grade, error) {
	var g tracker.Grade
	err := d.db.QueryRow(d.rebind(`
		SELECT student_github, project_title, grade
		FROM grades
		WHERE student_github = ? AND project_title = ?
		ORDER BY id DESC
		LIMIT 1
	`), github, title).Scan(&g.StudentGitHub, &g.ProjectTitle, &g.Grade)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s on %s", tracker.ErrGradeNotFound, github, title)
		}
		return nil, fmt.Errorf("querying grade for %s on %s: %w", github, title, err)
	}
	return &g, nil
}

// AssignGrade inserts a grade row. The student and project are not checked
// and an existing grade for the same pair is kept alongside the new one.
func (d *DB) AssignGrade(g tracker.Grade) error {
	return d.withTx(func(tx *sql.Tx) error {
		_, err := tx.Exec(d.rebind(`
			INSERT INTO grades (student_github, project_title, grade)
			VALUES (?, ?, ?)
		`), g.StudentGitHub, g.ProjectTitle, g.Grade)
		if err != nil {
			return fmt.Errorf("inserting grade for %s on %s: %w", g.StudentGitHub, g.ProjectTitle, err)
		}
		return nil
	})
}

// ListGrades returns every grade recorded for a student, in insertion order.
func (d *DB) ListGrades(github string) ([]tracker.Grade, error) {
	rows, err := d.db.Query(d.rebind(`
		SELECT student_github, project_title, grade
		FROM grades
		WHERE student_github = ?
		ORDER BY id
	`), github)
	if err != nil {
		return nil, fmt.Errorf("querying grades for %s: %w", github, err)
	}
	defer rows.Close()

	return scanGrades(rows)
}

// scanGrades scans multiple grades from rows.
func scanGrades(rows *sql.Rows) ([]tracker.Grade, error) {
	var grades []tracker.Grade
	for rows.Next() {
		var g tracker.Grade
		if err := rows.Scan(&g.StudentGitHub, &g.ProjectTitle, &g.Grade); err != nil {
			return nil, err
		}
		grades = append(grades, g)
	}
	return grades, rows.Err()
}
