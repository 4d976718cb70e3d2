package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose      bool
	logLevel     string
	logFormat    string
	configPath   string
	settingsPath string

	// app is populated by the persistent pre-run hook.
	app *appContext
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "atomic",
		Short:         "Atomic resolves design-system components to utility classes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags)
			if err != nil {
				return err
			}
			flags.app = app
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Override the log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Override the log format (json, console)")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Component document to register alongside the builtins")
	cmd.PersistentFlags().StringVar(&flags.settingsPath, "settings", "", "Settings file (defaults to $ATOMIC_SETTINGS or the user config dir)")

	cmd.AddCommand(newClassesCmd(flags))
	cmd.AddCommand(newCatalogCmd(flags))
	cmd.AddCommand(newPaginateCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newSchemaCmd())
	cmd.AddCommand(newShowcaseCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
