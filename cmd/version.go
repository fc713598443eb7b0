package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/s0up4200/mandrill/mandrill"
)

// versionCmd prints build information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	// No config or API key is needed to print the version.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mandrill %s (built %s)\n", version, buildTime)
		fmt.Fprintf(cmd.OutOrStdout(), "client library %s, %s %s/%s\n", mandrill.Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}
