package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/atomic/internal/catalog"
	"github.com/alexisbeaulieu97/atomic/internal/config"
)

type catalogOptions struct {
	jsonOutput bool
}

type catalogRow struct {
	Name    string   `json:"name"`
	Level   string   `json:"level"`
	Axes    []string `json:"axes"`
	Summary string   `json:"summary,omitempty"`
	Custom  bool     `json:"custom"`
}

func newCatalogCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &catalogOptions{}

	cmd := &cobra.Command{
		Use:     "catalog",
		Aliases: []string{"ls"},
		Short:   "List registered components",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(cmd, rootFlags.app, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	cmd.AddCommand(newDescribeCmd(rootFlags))
	cmd.AddCommand(newExportCmd(rootFlags))

	return cmd
}

func runCatalog(cmd *cobra.Command, app *appContext, opts *catalogOptions) error {
	entries := app.registry.Entries()
	rows := make([]catalogRow, len(entries))
	for i, entry := range entries {
		rows[i] = catalogRow{
			Name:    entry.Name,
			Level:   string(entry.Level),
			Axes:    entry.Spec.AxisNames(),
			Summary: entry.Summary,
			Custom:  entry.Custom,
		}
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(rows)
	}

	if len(rows) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No components registered.")
		return nil
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tLEVEL\tAXES\tSUMMARY")
	for _, row := range rows {
		name := row.Name
		if row.Custom {
			name += "*"
		}
		axes := strings.Join(row.Axes, ",")
		if axes == "" {
			axes = "-"
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", name, row.Level, axes, row.Summary)
	}
	return writer.Flush()
}

type describeOptions struct {
	raw bool
}

func newDescribeCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &describeOptions{}

	cmd := &cobra.Command{
		Use:   "describe <component>",
		Short: "Show a component's axes, defaults and compound rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := rootFlags.app.registry.Lookup(args[0])
			if err != nil {
				return newCommandError("describe component", args[0], err, "Run 'atomic catalog' to list components.")
			}

			doc := catalog.Describe(entry)
			if opts.raw || !stdoutIsTerminal(cmd) {
				fmt.Fprint(cmd.OutOrStdout(), doc)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderMarkdown(doc))
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.raw, "raw", false, "Print Markdown without terminal styling")

	return cmd
}

// renderMarkdown styles md for the terminal, returning it unchanged when
// glamour cannot render it.
func renderMarkdown(md string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func newExportCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [component...]",
		Short: "Write components as a YAML component document",
		Long: `Export writes the named components, or every registered component, in the
document format accepted by --config.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := rootFlags.app

			entries := app.registry.Entries()
			if len(args) > 0 {
				entries = make([]catalog.Entry, 0, len(args))
				for _, name := range args {
					entry, err := app.registry.Lookup(name)
					if err != nil {
						return newCommandError("export components", name, err, "Run 'atomic catalog' to list components.")
					}
					entries = append(entries, entry)
				}
			}

			app.log.With("components", len(entries)).Debug("exporting components")
			return config.EncodeDocument(cmd.OutOrStdout(), config.ExportDocument(entries))
		},
	}

	return cmd
}
