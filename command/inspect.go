package command

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/apkin/apkin"
	"github.com/apkin/apkin/android"
	"github.com/spf13/cobra"
)

func newInspect(configPath *string) *cobra.Command {
	var (
		jsonOut  bool
		iconPath string
		raw      bool
		cmd      = &cobra.Command{
			Use:   "inspect APK",
			Short: "Dump an APK's badging as a readable report.",
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

				inspection, icon, err := apkin.Inspect(ctx, name, config.InspectOpts()...)
				if err != nil {
					return err
				}

				if iconPath != "" && icon != nil {
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

				if jsonOut {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(inspection)
				}

				if raw {
					_, err = fmt.Fprintln(cmd.OutOrStdout(), inspection.Badging.Raw)
					return err
				}

				return fprintInspection(cmd.OutOrStdout(), inspection, config.Locales)
			},
		}
	)

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the inspection as JSON.")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the raw aapt2 output instead.")
	cmd.Flags().StringVarP(&iconPath, "icon", "o", "", "Also export the composited icon to this .png.")

	return cmd
}

func fprintInspection(w io.Writer, inspection *apkin.Inspection, locales []string) error {
	b := inspection.Badging

	label := b.Label
	if len(locales) > 0 {
		label = b.PreferredLabel(locales...)
	}

	version := b.VersionName
	if b.VersionCode > 0 {
		if version != "" {
			version += " / "
		}
		version += strconv.Itoa(b.VersionCode)
	}
	if version == "" {
		version = "?"
	}

	fmt.Fprintf(w, "name:      %s\n", label)
	fmt.Fprintf(w, "package:   %s\n", b.Package)
	fmt.Fprintf(w, "version:   %s\n", version)
	fmt.Fprintf(w, "sdk:       min:%s  target:%s  compile:%s\n",
		android.FormatSDK(b.MinSDK), android.FormatSDK(b.TargetSDK), android.FormatSDK(b.CompileSDKVersion))

	if b.LaunchableActivity != "" {
		fmt.Fprintf(w, "activity:  %s\n", b.LaunchableActivity)
	}

	if len(b.NativeCode) > 0 {
		fmt.Fprintf(w, "abis:      %s\n", strings.Join(b.NativeCode, ", "))
	}

	if inspection.Digest != "" {
		fmt.Fprintf(w, "digest:    %s\n", inspection.Digest)
	}

	if inspection.Size > 0 {
		fmt.Fprintf(w, "size:      %d\n", inspection.Size)
	}

	if inspection.SHA256CertFingerprints != "" {
		fmt.Fprintf(w, "cert:      %s\n", inspection.SHA256CertFingerprints)
	}

	if !inspection.HasIcon {
		fmt.Fprintln(w, "icon:      no preview available")
	}

	if len(b.Permissions) > 0 {
		fmt.Fprintf(w, "\n[uses-permission]\n%s\n", strings.Join(b.Permissions, "\n"))
	}

	if len(b.Features) > 0 {
		fmt.Fprintf(w, "\n[uses-feature]\n%s\n", strings.Join(b.Features, "\n"))
	}

	if len(b.ImpliedFeatures) > 0 {
		fmt.Fprintf(w, "\n[uses-implied-feature]\n%s\n", strings.Join(b.ImpliedFeatures, "\n"))
	}

	fmt.Fprintf(w, "\nlocales (%d):  %s\n", len(b.Locales), strings.Join(b.Locales, ", "))
	fmt.Fprintf(w, "screens:      %s\n", strings.Join(b.SupportsScreens, ", "))
	fmt.Fprintf(w, "densities:    %s\n", strings.Join(b.Densities, ", "))

	if b.SupportsAnyDensity != "" {
		fmt.Fprintf(w, "any-density:  %s\n", b.SupportsAnyDensity)
	}

	if len(b.Icons) > 0 {
		fmt.Fprintf(w, "\n[icons by density]\n")

		densities := make([]int, 0, len(b.Icons))
		for density := range b.Icons {
			densities = append(densities, density)
		}
		sort.Ints(densities)

		for _, density := range densities {
			fmt.Fprintf(w, "%d: %s\n", density, b.Icons[density])
		}
	}

	return nil
}
