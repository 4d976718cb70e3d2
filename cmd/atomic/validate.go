package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/atomic/internal/catalog"
	"github.com/alexisbeaulieu97/atomic/internal/config"
	"github.com/alexisbeaulieu97/atomic/internal/variant"
)

func newValidateCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <document>",
		Short: "Check a component document without registering it",
		Long: `Validate parses a component document, checks every component against the
builtins and resolves every axis combination once.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, rootFlags.app, args[0])
		},
	}

	return cmd
}

func runValidate(cmd *cobra.Command, app *appContext, path string) error {
	doc, err := config.ParseDocument(path)
	if err != nil {
		return newCommandError("validate document", path, err, "Run 'atomic schema' for the document format.")
	}

	reg := catalog.DefaultRegistry()
	if _, err := config.Register(reg, doc); err != nil {
		return newCommandError("validate document", path, err, "Rename components that clash with builtins.")
	}

	combinations := 0
	for _, component := range doc.Components {
		entry, err := reg.Lookup(component.Name)
		if err != nil {
			return newCommandError("validate document", path, err, "Report this as a bug.")
		}
		for _, sel := range entry.Spec.Combinations() {
			if _, err := variant.Resolve(entry.Spec, sel); err != nil {
				return newCommandError("validate document", path, err, "Check defaults and compound rules.")
			}
			combinations++
		}
	}

	app.log.With("path", path).With("combinations", combinations).Debug("document validated")
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d components, %d combinations OK\n", path, len(doc.Components), combinations)
	return nil
}
