package command

import (
	"fmt"

	"github.com/apkin/apkin"
	"github.com/apkin/apkin/aapt"
	"github.com/apkin/apkin/android"
	"github.com/spf13/cobra"
)

func newRename(configPath *string) *cobra.Command {
	var (
		dryRun bool
		cmd    = &cobra.Command{
			Use:   "rename APK",
			Short: "Rename an APK to <label>_<version>.apk.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var (
					ctx  = cmd.Context()
					name = args[0]
				)

				config, err := apkin.LoadConfig(*configPath)
				if err != nil {
					return err
				}

				aaptCmd := aapt.Command(config.AAPT)
				if config.AAPT == "" {
					if aaptCmd, err = aapt.Find(); err != nil {
						return err
					}
				}

				out, err := aaptCmd.DumpBadging(ctx, name)
				if err != nil {
					return err
				}

				badging, err := android.ParseBadging(out)
				if err != nil {
					return err
				}

				if len(config.Locales) > 0 {
					badging.Label = badging.PreferredLabel(config.Locales...)
				}

				plan := apkin.NewRenamePlan(badging, name)
				if dryRun {
					_, err = fmt.Fprintln(cmd.OutOrStdout(), plan.Target)
					return err
				}

				if err = plan.Apply(); err != nil {
					return err
				}

				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", plan.Source, plan.Target)
				return err
			},
		}
	)

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the target filename without renaming.")

	return cmd
}
