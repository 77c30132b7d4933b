package command

import (
	"encoding/json"
	"net/url"
	"os"

	"github.com/apkin/apkin"
	"github.com/apkin/apkin/android"
	"github.com/spf13/cobra"
)

func newGet() *cobra.Command {
	var (
		urlstr   string
		iconPath string
		cmd      = &cobra.Command{
			Use:   "get ID",
			Short: "Fetch a previous inspection from a running `apkin serve`.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var (
					ctx = cmd.Context()
					id  = args[0]
					cli = new(apkin.Client)
				)

				if urlstr != "" {
					var err error
					if cli.Base, err = url.Parse(urlstr); err != nil {
						return err
					}
				}

				inspection, err := cli.GetInspection(ctx, id)
				if err != nil {
					return err
				}

				if iconPath != "" {
					icon, err := cli.GetIcon(ctx, id)
					if err != nil {
						return err
					}

					f, err := os.Create(iconPath)
					if err != nil {
						return err
					}

					if err = android.EncodePNG(f, icon); err != nil {
						_ = f.Close()
						return err
					}

					if err = f.Close(); err != nil {
						return err
					}
				}

				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(inspection)
			},
		}
	)

	cmd.Flags().StringVar(&urlstr, "url", "", "Base URL of the apkin server.")
	cmd.Flags().StringVarP(&iconPath, "icon", "o", "", "Also download the composited icon to this .png.")

	return cmd
}
