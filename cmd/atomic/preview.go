package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/atomic/internal/preview"
	"github.com/alexisbeaulieu97/atomic/internal/theme"
	"github.com/alexisbeaulieu97/atomic/internal/variant"
)

type previewOptions struct {
	set   []string
	extra string
	label string
	mode  string
	width int
	demo  bool
}

func newPreviewCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview <component>",
		Short: "Approximate a component selection in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, rootFlags.app, args[0], opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.set, "set", "s", nil, "Axis selection as axis=value (repeatable)")
	cmd.Flags().StringVar(&opts.extra, "extra", "", "Caller classes appended after the resolved classes")
	cmd.Flags().StringVar(&opts.label, "label", "", "Text rendered inside the component (defaults to its name)")
	cmd.Flags().StringVar(&opts.mode, "theme", "", "Theme for this preview only (light, dark, system)")
	cmd.Flags().IntVar(&opts.width, "width", 40, "Width used for full-width components")
	cmd.Flags().BoolVar(&opts.demo, "demo", false, "Render the composite the component belongs to (tab, step, accordion, page-item)")

	return cmd
}

func runPreview(cmd *cobra.Command, app *appContext, name string, opts *previewOptions) error {
	sel, err := parseSelection(opts.set)
	if err != nil {
		return newCommandError("preview component", name, err, "Pass selections as --set axis=value.")
	}

	mode := app.cell.Get()
	if opts.mode != "" {
		mode, err = theme.ParseMode(opts.mode)
		if err != nil {
			return newCommandError("preview component", name, err, "Use light, dark or system.")
		}
	}

	entry, err := app.registry.Lookup(name)
	if err != nil {
		return newCommandError("preview component", name, err, "Run 'atomic catalog' to list components.")
	}

	renderer := preview.New(mode, preview.WithUnicode(stdoutIsTerminal(cmd)), preview.WithWidth(opts.width))
	if opts.demo {
		return runPreviewDemo(cmd, app, renderer, entry.Name, sel)
	}

	classes, err := app.registry.Resolve(entry.Name, sel, variant.Tokens(opts.extra)...)
	if err != nil {
		return newCommandError("preview component", entry.Name, err,
			fmt.Sprintf("Run 'atomic catalog describe %s' to see the allowed values.", entry.Name))
	}

	label := opts.label
	if label == "" {
		label = entry.Name
	}

	res := renderer.Translate(classes)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, res.Style.Render(label))
	fmt.Fprintf(out, "\nclasses: %s\n", classes.String())
	if len(res.Ignored) > 0 {
		fmt.Fprintf(out, "browser only: %s\n", strings.Join(res.Ignored, " "))
	}
	app.log.With("component", entry.Name).With("ignored", len(res.Ignored)).Debug("rendered preview")
	return nil
}

func runPreviewDemo(cmd *cobra.Command, app *appContext, renderer *preview.Renderer, name string, sel variant.Selection) error {
	out, err := renderDemo(renderer, name, sel)
	if errors.Is(err, errNoDemo) {
		return newCommandError("preview component", name, err, "Use --demo with tab, step, step-indicator, accordion or page-item.")
	}
	if err != nil {
		return newCommandError("preview component", name, err,
			fmt.Sprintf("Run 'atomic catalog describe %s' to see the allowed values.", name))
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	app.log.With("component", name).Debug("rendered demo")
	return nil
}
