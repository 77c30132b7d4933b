package command

import (
	"github.com/apkin/apkin"
	"github.com/spf13/cobra"
)

// NewApkin returns the root command for apkin
// which acts as its CLI entrypoint.
func NewApkin() *cobra.Command {
	var (
		configPath string
		cmd        = &cobra.Command{
			Use:   "apkin",
			Short: "Inspect APKs with aapt2: badging, icons, renames.",
		}
	)

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "apkin.yml", "Config file for apkin.")

	cmd.AddCommand(
		newInspect(&configPath),
		newIcon(&configPath),
		newRename(&configPath),
		newServe(&configPath),
		newGet(),
	)

	return SetCommon(cmd, apkin.SemVer())
}
