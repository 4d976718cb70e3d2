package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/atomic/internal/showcase"
)

type showcaseOptions struct {
	pageSize int
}

func newShowcaseCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &showcaseOptions{}

	cmd := &cobra.Command{
		Use:   "showcase",
		Short: "Browse components interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := rootFlags.app

			stop := persistTheme(app)
			defer stop()

			model := showcase.NewModel(app.registry, app.cell, showcase.Options{
				PageSize:   opts.pageSize,
				MaxVisible: app.settings.MaxVisiblePages,
				Unicode:    stdoutIsTerminal(cmd),
			})

			program := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := program.Run(); err != nil {
				return newCommandError("run showcase", "terminal UI", err, "Run from an interactive terminal.")
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.pageSize, "page-size", showcase.DefaultPageSize, "Components listed per page")

	return cmd
}
