// Package main is the entry point for the profilectl CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/janisto/profile-maps/internal/platform/config"
	applog "github.com/janisto/profile-maps/internal/platform/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	defer func() { _ = applog.Sync() }()
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// options are shared by every subcommand. Flags override the environment.
type options struct {
	cfg      *config.Config
	seedFile string
	dbPath   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "profilectl",
		Short: "profilectl - inspect the profile directory and its settings",
		Long: `profilectl works with the same seed data and settings database as the
profile maps server.

Profile commands read the seed (embedded, SEED_FILE or --seed). Theme commands
read and write the SQLite settings database (SETTINGS_SQLITE_PATH or --db).`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			opts.cfg = cfg
			if !cmd.Flags().Changed("seed") {
				opts.seedFile = cfg.SeedFile
			}
			if !cmd.Flags().Changed("db") {
				opts.dbPath = cfg.SQLitePath
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetVersionTemplate("profilectl version {{.Version}}\n")

	root.PersistentFlags().StringVar(&opts.seedFile, "seed", "", "seed YAML file (default: embedded seed)")
	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "SQLite settings database")

	root.AddCommand(
		newListCmd(opts),
		newSearchCmd(opts),
		newShowCmd(opts),
		newSeedCmd(),
		newThemeCmd(opts),
	)
	return root
}
