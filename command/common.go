package command

import (
	"fmt"
	"runtime"

	"github.com/apkin/apkin"
	"github.com/spf13/cobra"
)

// SetCommon wires the flags, logging, and version handling shared by
// every apkin command.
func SetCommon(cmd *cobra.Command, version string) *cobra.Command {
	var verbosity int
	cmd.PersistentFlags().CountVarP(&verbosity, "verbose", "V", fmt.Sprintf("Verbosity for %s.", cmd.Name()))
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cmd.SetContext(
			apkin.WithLogger(
				cmd.Context(), apkin.NewLogger(cmd.ErrOrStderr(), verbosity),
			),
		)
	}

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	cmd.Version = version
	cmd.SetVersionTemplate("{{ .Name }}{{ .Version }} " + runtime.Version() + "\n")

	return cmd
}
