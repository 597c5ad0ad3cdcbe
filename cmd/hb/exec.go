package main

import (
	"errors"
	"strings"

	"github.com/hackbright/projecttracker/internal/shell"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(execCmd)
	// Everything after the command name belongs to the command, e.g. a grade of -5
	execCmd.Flags().SetInterspersed(false)
}

var execCmd = &cobra.Command{
	Use:   "exec <command> [args...]",
	Short: "Run a single loop command and exit",
	Long: `Run one command from the loop vocabulary without starting the loop.

Examples:
  hb exec student jhacks
  hb exec add_project Markov Tweets from Markov chains 50

Exits 1 when the command is unknown, has the wrong arguments, matches
nothing, or names a project that already exists.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExec,
}

func runExec(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	sh := shell.New(db, cmd.OutOrStdout(), "")
	err = sh.Execute(strings.Join(args, " "))
	switch {
	case err == nil, errors.Is(err, shell.ErrQuit):
		return nil
	case shell.IsRecoverable(err):
		// Already reported on stdout
		return &exitErr{code: ExitError, err: err, quiet: true}
	default:
		return storeFailure(err)
	}
}
