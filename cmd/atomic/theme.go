package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/atomic/internal/theme"
)

func newThemeCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the preferred colour theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printTheme(cmd, rootFlags.app.cell.Get())
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:       "set <light|dark|system>",
		Short:     "Set and persist the theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(theme.Light), string(theme.Dark), string(theme.System)},
		RunE: func(cmd *cobra.Command, args []string) error {
			app := rootFlags.app
			mode, err := theme.ParseMode(args[0])
			if err != nil {
				return newCommandError("set theme", args[0], err, "Use light, dark or system.")
			}

			// Save even when the cell already holds mode: it may come from ATOMIC_THEME.
			if err := app.cell.Set(mode); err != nil {
				return newCommandError("set theme", args[0], err, "Use light, dark or system.")
			}
			if err := saveTheme(app, mode); err != nil {
				return newCommandError("set theme", app.settingsPath, err, "Check that the settings file is writable.")
			}
			printTheme(cmd, app.cell.Get())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Advance to the next theme (light, dark, system) and persist it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := rootFlags.app
			mode := app.cell.Toggle()
			if err := saveTheme(app, mode); err != nil {
				return newCommandError("toggle theme", app.settingsPath, err, "Check that the settings file is writable.")
			}
			printTheme(cmd, mode)
			return nil
		},
	})

	return cmd
}

func printTheme(cmd *cobra.Command, mode theme.Mode) {
	icon := mode.Icon()
	if !stdoutIsTerminal(cmd) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", mode)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", icon, mode.Label())
}
