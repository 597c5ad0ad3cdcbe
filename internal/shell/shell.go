// Package shell implements the interactive command loop: it reads one line at a
// time, routes it to the data access layer, and renders the outcome.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hackbright/projecttracker/internal/tracker"
)

// DefaultPrompt is printed before each line is read.
const DefaultPrompt = "HBA Database> "

var (
	// ErrQuit is returned by Execute when the line asks the loop to stop.
	ErrQuit = errors.New("quit")
	// ErrInput wraps a failure to read from the input stream.
	ErrInput = errors.New("reading input")
)

// Store is the data access the shell drives.
type Store interface {
	GetStudent(github string) (*tracker.Student, error)
	AddStudent(s tracker.Student) error
	GetProject(title string) (*tracker.Project, error)
	AddProject(p tracker.Project) error
	GetGrade(github, title string) (*tracker.Grade, error)
	AssignGrade(g tracker.Grade) error
	ListGrades(github string) ([]tracker.Grade, error)
}

// Shell routes command lines to a Store and writes results to out.
type Shell struct {
	store  Store
	out    io.Writer
	prompt string
}

// New creates a Shell. An empty prompt disables prompting.
func New(store Store, out io.Writer, prompt string) *Shell {
	return &Shell{store: store, out: out, prompt: prompt}
}

// Run reads lines from in until quit or end of input. Lines have no length
// limit. Recoverable outcomes are reported and the loop continues; a store
// failure stops the loop and is returned, as is a read error wrapped in
// ErrInput.
func (sh *Shell) Run(in io.Reader) error {
	reader := bufio.NewReader(in)
	for {
		if sh.prompt != "" {
			sh.printf("%s", sh.prompt)
		}
		line, readErr := reader.ReadString('\n')
		if readErr != nil {
			if !errors.Is(readErr, io.EOF) {
				return fmt.Errorf("%w: %w", ErrInput, readErr)
			}
			if line == "" {
				return nil
			}
		}

		// A final line without a newline still runs before the loop ends.
		err := sh.Execute(line)
		switch {
		case errors.Is(err, ErrQuit):
			return nil
		case err != nil && !IsRecoverable(err):
			return err
		}
		if readErr != nil {
			return nil
		}
	}
}

// Execute runs a single command line and renders its outcome.
//
// It returns nil on success, ErrQuit for quit, the (already reported)
// recoverable error for not-found, duplicate, invalid-argument and unknown
// command outcomes, and any store failure unreported.
func (sh *Shell) Execute(line string) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil
	}
	name, args := tokens[0], tokens[1:]

	switch name {
	case "quit":
		return ErrQuit
	case "help":
		sh.printHelp()
		return nil
	}

	cmd, ok := lookupCommand(name)
	if !ok {
		sh.printf("Invalid Entry. Try again.\n")
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	err := cmd.checkArity(args)
	if err == nil {
		err = cmd.run(sh, args)
	}
	if err != nil {
		sh.report(cmd, args, err)
	}
	return err
}

// report renders a recoverable error. Store failures are left to the caller.
func (sh *Shell) report(cmd command, args []string, err error) {
	var argErr *ArgError
	switch {
	case errors.As(err, &argErr):
		sh.printf("Invalid arguments: %s\nUsage: %s\n", argErr.Reason, argErr.Usage)
	case tracker.IsNotFound(err) && cmd.notFound != nil:
		sh.printf("%s\n", cmd.notFound(args))
	case errors.Is(err, tracker.ErrDuplicateProject):
		sh.printf("This project already exists\n")
	}
}

// IsRecoverable reports whether err is an outcome the loop reports and survives.
func IsRecoverable(err error) bool {
	return tracker.IsNotFound(err) ||
		errors.Is(err, tracker.ErrDuplicateProject) ||
		errors.Is(err, ErrInvalidArguments) ||
		errors.Is(err, ErrUnknownCommand)
}

func (sh *Shell) printHelp() {
	sh.printf("Commands:\n")
	for _, c := range commands {
		sh.printf("  %-55s %s\n", c.usage, c.summary)
	}
	sh.printf("  %-55s %s\n", "help", "list commands")
	sh.printf("  %-55s %s\n", "quit", "exit")
}

func (sh *Shell) printf(format string, args ...interface{}) {
	fmt.Fprintf(sh.out, format, args...)
}
