package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/rshell-dev/rshell/core/shell"
)

// builtinsCmd lists the shell's builtin commands.
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the builtin commands of the shell.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var names []string
		for name := range shell.AllBuiltins {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
