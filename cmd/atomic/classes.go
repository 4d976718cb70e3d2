package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/atomic/internal/variant"
)

type classesOptions struct {
	set        []string
	extra      string
	jsonOutput bool
}

type classesResult struct {
	Component string            `json:"component"`
	Selection map[string]string `json:"selection"`
	Classes   []string          `json:"classes"`
}

func newClassesCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &classesOptions{}

	cmd := &cobra.Command{
		Use:   "classes <component>",
		Short: "Resolve a component selection to its class list",
		Example: `  atomic classes button --set variant=danger --set size=small
  atomic classes badge --set shape=pill --extra "ml-2" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClasses(cmd, rootFlags.app, args[0], opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.set, "set", "s", nil, "Axis selection as axis=value (repeatable)")
	cmd.Flags().StringVar(&opts.extra, "extra", "", "Caller classes appended after the resolved classes")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runClasses(cmd *cobra.Command, app *appContext, name string, opts *classesOptions) error {
	sel, err := parseSelection(opts.set)
	if err != nil {
		return newCommandError("resolve classes", name, err, "Pass selections as --set axis=value.")
	}

	entry, err := app.registry.Lookup(name)
	if err != nil {
		return newCommandError("resolve classes", name, err, "Run 'atomic catalog' to list components.")
	}

	classes, err := app.registry.Resolve(entry.Name, sel, variant.Tokens(opts.extra)...)
	if err != nil {
		return newCommandError("resolve classes", entry.Name, err,
			fmt.Sprintf("Run 'atomic catalog describe %s' to see the allowed values.", entry.Name))
	}
	app.log.With("component", entry.Name).With("classes", len(classes)).Debug("resolved classes")

	if !opts.jsonOutput {
		fmt.Fprintln(cmd.OutOrStdout(), classes.String())
		return nil
	}

	effective, err := entry.Spec.Effective(sel)
	if err != nil {
		return newCommandError("resolve classes", entry.Name, err, "Check the selected axis values.")
	}
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(classesResult{Component: entry.Name, Selection: effective, Classes: classes})
}

// parseSelection turns axis=value pairs into a selection. Later pairs win.
func parseSelection(pairs []string) (variant.Selection, error) {
	sel := make(variant.Selection, len(pairs))
	for _, pair := range pairs {
		axis, value, ok := strings.Cut(pair, "=")
		axis = strings.TrimSpace(axis)
		value = strings.TrimSpace(value)
		if !ok || axis == "" || value == "" {
			return nil, fmt.Errorf("invalid selection %q: expected axis=value", pair)
		}
		sel[axis] = value
	}
	return sel, nil
}
