package command

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/apkin/apkin"
	"github.com/apkin/apkin/aapt"
	"github.com/apkin/apkin/android"
	"github.com/spf13/cobra"
)

func newIcon(configPath *string) *cobra.Command {
	var (
		output string
		cmd    = &cobra.Command{
			Use:   "icon APK",
			Short: "Composite an APK's launcher icon and export it as PNG.",
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

				icon, err := apkin.Icon(name, badging)
				if err != nil {
					return err
				}

				if output == "" {
					output = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)) + ".png"
				}

				f, err := os.Create(output)
				if err != nil {
					return err
				}

				if err = android.EncodePNG(f, icon); err != nil {
					_ = f.Close()
					return err
				}

				return f.Close()
			},
		}
	)

	cmd.Flags().StringVarP(&output, "output", "o", "", "Where to write the .png. Defaults to the APK's name.")

	return cmd
}
