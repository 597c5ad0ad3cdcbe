package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the students, projects, and grades tables",
	Long: `Create the store schema if it does not exist yet and print where the
store lives. Existing tables are left untouched; there are no migrations.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s store at %s\n", db.Driver(), cfg.RedactedDSN())
	return nil
}
