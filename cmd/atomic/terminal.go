package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/atomic/internal/preview"
)

// stdoutIsTerminal reports whether the command writes to an interactive
// terminal. Buffers used in tests and pipes are not terminals.
func stdoutIsTerminal(cmd *cobra.Command) bool {
	return preview.SupportsUnicode(cmd.OutOrStdout())
}
