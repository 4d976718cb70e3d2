package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/atomic/internal/catalog"
	"github.com/alexisbeaulieu97/atomic/internal/pagination"
	"github.com/alexisbeaulieu97/atomic/internal/preview"
)

type paginateOptions struct {
	current    int
	total      int
	maxVisible int
	bar        bool
	size       string
	jsonOutput bool
}

func newPaginateCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &paginateOptions{}

	cmd := &cobra.Command{
		Use:   "paginate",
		Short: "Compute the page numbers and ellipses shown for a page",
		Example: `  atomic paginate --current 5 --total 10
  atomic paginate --current 1 --total 3 --bar`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPaginate(cmd, rootFlags.app, opts)
		},
	}

	cmd.Flags().IntVar(&opts.current, "current", 1, "Current page (1-based)")
	cmd.Flags().IntVar(&opts.total, "total", 1, "Total number of pages")
	cmd.Flags().IntVar(&opts.maxVisible, "max-visible", 0, "Maximum visible page numbers (defaults to the max_visible_pages setting)")
	cmd.Flags().BoolVar(&opts.bar, "bar", false, "Render the full pagination bar with controls")
	cmd.Flags().StringVar(&opts.size, "size", string(catalog.SizeMedium), "Bar size (small, medium, large)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runPaginate(cmd *cobra.Command, app *appContext, opts *paginateOptions) error {
	maxVisible := opts.maxVisible
	if maxVisible <= 0 {
		maxVisible = app.settings.MaxVisiblePages
	}

	app.log.WithFields(map[string]any{
		"current":     opts.current,
		"total":       opts.total,
		"max_visible": maxVisible,
	}).Debug("computing page range")

	if opts.jsonOutput {
		tokens := pagination.ComputePageRange(opts.current, opts.total, maxVisible)
		out := make([]string, len(tokens))
		for i, tok := range tokens {
			out[i] = tok.String()
		}
		return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
	}

	renderer := preview.New(app.cell.Get(), preview.WithUnicode(stdoutIsTerminal(cmd)))

	if !opts.bar {
		tokens := pagination.ComputePageRange(opts.current, opts.total, maxVisible)
		fmt.Fprintln(cmd.OutOrStdout(), renderer.PageTokens(tokens))
		return nil
	}

	pager := pagination.New(opts.total, pagination.WithCurrent(opts.current), pagination.WithMaxVisible(maxVisible))
	items, err := catalog.PaginationBar(pager, catalog.Size(opts.size))
	if err != nil {
		return newCommandError("render pagination", opts.size, err, "Use small, medium or large.")
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.PaginationBar(items))
	return nil
}
