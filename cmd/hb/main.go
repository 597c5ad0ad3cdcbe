// Package main provides the hb CLI entry point.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hackbright/projecttracker/internal/config"
	"github.com/hackbright/projecttracker/internal/shell"
	"github.com/hackbright/projecttracker/internal/storage"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// Flag overrides for the store and prompt.
var (
	flagDriver   string
	flagDSN      string
	flagNoPrompt bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		var e *exitErr
		if !errors.As(err, &e) || !e.quiet {
			fmt.Fprintf(os.Stderr, "error: %s\n", err)
		}
		os.Exit(exitCode(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "hb",
	Short: "Track students, projects, and grades",
	Long: `hb is an interactive front-end for a database of students, class
projects, and the grades students receive on them.

Run without arguments to start the command loop:

  HBA Database> new_student Jane Hacker jhacks
  HBA Database> add_project Markov Tweets from Markov chains 50
  HBA Database> give_grade jhacks Markov 42
  HBA Database> all_grades jhacks
  HBA Database> quit

Type 'help' in the loop for the full command list.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runLoop,
}

func init() {
	// Store settings may come from a .env file in the working directory
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&flagDriver, "driver", "", "Store driver: sqlite or postgres (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDSN, "dsn", "", "Store DSN: SQLite file path or Postgres connection string (overrides config)")
	rootCmd.Flags().BoolVar(&flagNoPrompt, "no-prompt", false, "Do not print a prompt before each line")
	rootCmd.Version = Version
}

func runLoop(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	prompt := cfg.Prompt
	if flagNoPrompt {
		prompt = ""
	}

	sh := shell.New(db, cmd.OutOrStdout(), prompt)
	err = sh.Run(cmd.InOrStdin())
	switch {
	case err == nil:
		return nil
	case errors.Is(err, shell.ErrInput):
		return err
	default:
		return storeFailure(err)
	}
}

// mustLoadConfig loads configuration and applies flag overrides, exits on error.
func mustLoadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	if flagDriver != "" {
		cfg.Driver = flagDriver
	}
	if flagDSN != "" {
		cfg.DSN = config.ExpandTilde(flagDSN)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, config.HelpfulConfigMessage())
		exitWithError(ExitConfigError, "%v", err)
	}
	return cfg
}

// openStore opens the store described by cfg.
// The caller is responsible for calling Close() on the returned DB.
func openStore(cfg *config.Config) (*storage.DB, error) {
	if err := cfg.EnsureDataDir(); err != nil {
		return nil, &exitErr{code: ExitConfigError, err: err}
	}
	db, err := storage.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, storeFailure(err)
	}
	return db, nil
}

// exitErr carries a specific exit code back to main.
type exitErr struct {
	code  int
	err   error
	quiet bool // already reported to the user
}

func (e *exitErr) Error() string { return e.err.Error() }
func (e *exitErr) Unwrap() error { return e.err }

func storeFailure(err error) error {
	return &exitErr{code: ExitStoreError, err: fmt.Errorf("store failure: %w", err)}
}

// exitCode maps an error returned from a command to a process exit code.
func exitCode(err error) int {
	var e *exitErr
	if errors.As(err, &e) {
		return e.code
	}
	return ExitError
}
