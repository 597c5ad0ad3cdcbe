// Package tracker defines the core domain types for students, projects, and grades.
package tracker

import "errors"

// Student is a registered student, identified by GitHub account name.
type Student struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	GitHub    string `json:"github"`
}

// Project is a class project, identified by title.
type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	MaxGrade    int    `json:"max_grade"`
}

// Grade is the score a student received on a project.
// Neither reference is checked for existence and the score is not
// bounded by the project's MaxGrade.
type Grade struct {
	StudentGitHub string  `json:"student_github"`
	ProjectTitle  string  `json:"project_title"`
	Grade         float64 `json:"grade"`
}

// Lookup and write errors.
var (
	ErrStudentNotFound  = errors.New("student not found")
	ErrProjectNotFound  = errors.New("project not found")
	ErrGradeNotFound    = errors.New("grade not found")
	ErrDuplicateProject = errors.New("project with this title already exists")
)

// FullName returns "First Last".
func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// IsNotFound reports whether err is one of the lookup misses.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrStudentNotFound) ||
		errors.Is(err, ErrProjectNotFound) ||
		errors.Is(err, ErrGradeNotFound)
}
