package main

import (
	"fmt"

	"github.com/spf13/cobra"

	settingsvc "github.com/janisto/profile-maps/internal/service/settings"
)

func newThemeCmd(opts *options) *cobra.Command {
	theme := &cobra.Command{
		Use:   "theme",
		Short: "Read or change the UI theme",
	}

	run := func(fn func(cmd *cobra.Command, svc *settingsvc.ThemeService, args []string) (settingsvc.ThemeSetting, error)) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			store, err := settingsvc.NewSQLiteStore(cmd.Context(), opts.dbPath)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			fallback, err := settingsvc.ParseTheme(opts.cfg.DefaultTheme)
			if err != nil {
				return err
			}
			s, err := fn(cmd, settingsvc.NewThemeService(store, fallback), args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s.Theme)
			return err
		}
	}

	theme.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Print the current theme",
			Args:  cobra.NoArgs,
			RunE: run(func(cmd *cobra.Command, svc *settingsvc.ThemeService, _ []string) (settingsvc.ThemeSetting, error) {
				return svc.Theme(cmd.Context())
			}),
		},
		&cobra.Command{
			Use:       "set <light|dark>",
			Short:     "Store a theme",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{string(settingsvc.ThemeLight), string(settingsvc.ThemeDark)},
			RunE: run(func(cmd *cobra.Command, svc *settingsvc.ThemeService, args []string) (settingsvc.ThemeSetting, error) {
				t, err := settingsvc.ParseTheme(args[0])
				if err != nil {
					return settingsvc.ThemeSetting{}, err
				}
				return svc.SetTheme(cmd.Context(), t)
			}),
		},
		&cobra.Command{
			Use:   "toggle",
			Short: "Switch between light and dark",
			Args:  cobra.NoArgs,
			RunE: run(func(cmd *cobra.Command, svc *settingsvc.ThemeService, _ []string) (settingsvc.ThemeSetting, error) {
				return svc.Toggle(cmd.Context())
			}),
		},
	)
	return theme
}
