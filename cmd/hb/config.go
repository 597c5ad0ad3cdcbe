package main

import (
	"encoding/json"
	"fmt"

	"github.com/hackbright/projecttracker/internal/config"
	"github.com/spf13/cobra"
)

var configJSON bool

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().BoolVar(&configJSON, "json", false, "Output as JSON")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the configuration hb will use, after applying the config file,
environment (HB_DB_DRIVER, HB_DB_DSN, HB_PROMPT, .env), and flags.

Passwords in Postgres DSNs are redacted.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

// ConfigResponse is the response for the config command.
type ConfigResponse struct {
	ConfigFile string `json:"config_file"`
	Driver     string `json:"driver"`
	DSN        string `json:"dsn"`
	Prompt     string `json:"prompt"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	resp := ConfigResponse{
		ConfigFile: config.Path(),
		Driver:     cfg.Driver,
		DSN:        cfg.RedactedDSN(),
		Prompt:     cfg.Prompt,
	}

	if configJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "config-file: %s\n", resp.ConfigFile)
	fmt.Fprintf(out, "driver:      %s\n", resp.Driver)
	fmt.Fprintf(out, "dsn:         %s\n", resp.DSN)
	fmt.Fprintf(out, "prompt:      %q\n", resp.Prompt)
	return nil
}
