package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"massnet.org/hexsum/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of hexsum",
		// Skip config and logger setup.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hexsum %s\n", version.GetVersion())
		},
	}
}
