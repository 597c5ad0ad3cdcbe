package shell

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hackbright/projecttracker/internal/tracker"
)

// Dispatcher errors. Both are recoverable: they are reported and the loop continues.
var (
	ErrInvalidArguments = errors.New("invalid arguments")
	ErrUnknownCommand   = errors.New("unknown command")
)

// ArgError describes a command invoked with arguments it cannot use.
type ArgError struct {
	Command string
	Usage   string
	Reason  string
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("%s: %s", e.Command, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidArguments) hold.
func (e *ArgError) Unwrap() error {
	return ErrInvalidArguments
}

const (
	usageGiveGrade  = "give_grade <github> <title> <grade>"
	usageAddProject = "add_project <title> [description words...] <max_grade>"
)

// variadic marks a command that validates its own argument count.
const variadic = -1

// command is one entry in the fixed vocabulary.
type command struct {
	name     string
	usage    string
	summary  string
	arity    int
	run      func(sh *Shell, args []string) error
	notFound func(args []string) string
}

// commands is the loop vocabulary, in help order. quit and help are handled
// by the shell itself.
var commands = []command{
	{
		name:     "student",
		usage:    "student <github>",
		summary:  "show a student",
		arity:    1,
		run:      runStudent,
		notFound: func(args []string) string { return "No such student: " + args[0] },
	},
	{
		name:    "new_student",
		usage:   "new_student <first> <last> <github>",
		summary: "register a student",
		arity:   3,
		run:     runNewStudent,
	},
	{
		name:     "get_project",
		usage:    "get_project <title>",
		summary:  "show a project",
		arity:    1,
		run:      runGetProject,
		notFound: func(args []string) string { return "No such project: " + args[0] },
	},
	{
		name:     "get_grade",
		usage:    "get_grade <github> <title>",
		summary:  "show a student's grade on a project",
		arity:    2,
		run:      runGetGrade,
		notFound: func(args []string) string { return fmt.Sprintf("No grade for %s on %s", args[0], args[1]) },
	},
	{
		name:    "give_grade",
		usage:   usageGiveGrade,
		summary: "record a grade",
		arity:   3,
		run:     runGiveGrade,
	},
	{
		name:    "all_grades",
		usage:   "all_grades <github>",
		summary: "list every grade for a student",
		arity:   1,
		run:     runAllGrades,
	},
	{
		name:    "add_project",
		usage:   usageAddProject,
		summary: "register a project unless the title exists",
		arity:   variadic,
		run:     runAddProject,
	},
}

// lookupCommand finds a command by name.
func lookupCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

// checkArity validates the argument count of a fixed-arity command.
func (c command) checkArity(args []string) error {
	if c.arity == variadic || len(args) == c.arity {
		return nil
	}
	return &ArgError{
		Command: c.name,
		Usage:   c.usage,
		Reason:  fmt.Sprintf("expected %d argument(s), got %d", c.arity, len(args)),
	}
}

// ProjectArgs holds the fields of an add_project command line.
type ProjectArgs struct {
	Title       string
	Description string
	MaxGrade    string
}

// ParseProjectArgs applies the add_project rule: the first token is the title,
// the last is the max grade, and everything in between is joined with single
// spaces as the description. At least two tokens are required.
func ParseProjectArgs(args []string) (ProjectArgs, error) {
	if len(args) < 2 {
		return ProjectArgs{}, &ArgError{
			Command: "add_project",
			Usage:   usageAddProject,
			Reason:  fmt.Sprintf("expected at least 2 arguments, got %d", len(args)),
		}
	}
	return ProjectArgs{
		Title:       args[0],
		Description: strings.Join(args[1:len(args)-1], " "),
		MaxGrade:    args[len(args)-1],
	}, nil
}

// parseMaxGrade parses the integer max_grade field of add_project.
func parseMaxGrade(value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &ArgError{
			Command: "add_project",
			Usage:   usageAddProject,
			Reason:  fmt.Sprintf("max_grade must be an integer, got %q", value),
		}
	}
	return n, nil
}

// parseGrade parses the grade field of give_grade. Any finite number is
// accepted; it is not checked against the project's max grade.
func parseGrade(value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &ArgError{
			Command: "give_grade",
			Usage:   usageGiveGrade,
			Reason:  fmt.Sprintf("grade must be a number, got %q", value),
		}
	}
	return f, nil
}

// formatGrade renders a grade without trailing zeros or exponent: 92.5, 10.
func formatGrade(g float64) string {
	return strconv.FormatFloat(g, 'f', -1, 64)
}

func runStudent(sh *Shell, args []string) error {
	s, err := sh.store.GetStudent(args[0])
	if err != nil {
		return err
	}
	sh.printf("Student: %s\nGithub account: %s\n", s.FullName(), s.GitHub)
	return nil
}

func runNewStudent(sh *Shell, args []string) error {
	s := tracker.Student{FirstName: args[0], LastName: args[1], GitHub: args[2]}
	if err := sh.store.AddStudent(s); err != nil {
		return err
	}
	sh.printf("Successfully added student: %s\n", s.FullName())
	return nil
}

func runGetProject(sh *Shell, args []string) error {
	p, err := sh.store.GetProject(args[0])
	if err != nil {
		return err
	}
	sh.printf("Project Title: %s\nProject Description: %s\nMax Grade: %d\n", p.Title, p.Description, p.MaxGrade)
	return nil
}

func runGetGrade(sh *Shell, args []string) error {
	g, err := sh.store.GetGrade(args[0], args[1])
	if err != nil {
		return err
	}
	sh.printf("Grade for %s on %s project: %s\n", g.StudentGitHub, g.ProjectTitle, formatGrade(g.Grade))
	return nil
}

func runGiveGrade(sh *Shell, args []string) error {
	score, err := parseGrade(args[2])
	if err != nil {
		return err
	}
	g := tracker.Grade{StudentGitHub: args[0], ProjectTitle: args[1], Grade: score}
	if err := sh.store.AssignGrade(g); err != nil {
		return err
	}
	sh.printf("Successfully added grade of %s to %s\n", formatGrade(g.Grade), g.StudentGitHub)
	return nil
}

func runAllGrades(sh *Shell, args []string) error {
	grades, err := sh.store.ListGrades(args[0])
	if err != nil {
		return err
	}
	sh.printf("%s grades:\n", args[0])
	for _, g := range grades {
		sh.printf("Grade for %s is %s\n", g.ProjectTitle, formatGrade(g.Grade))
	}
	return nil
}

func runAddProject(sh *Shell, args []string) error {
	pa, err := ParseProjectArgs(args)
	if err != nil {
		return err
	}
	maxGrade, err := parseMaxGrade(pa.MaxGrade)
	if err != nil {
		return err
	}
	p := tracker.Project{Title: pa.Title, Description: pa.Description, MaxGrade: maxGrade}
	if err := sh.store.AddProject(p); err != nil {
		return err
	}
	sh.printf("Successfully added new project %s\n", p.Title)
	return nil
}
