package command

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/apkin/apkin"
	"github.com/apkin/apkin/internal/apkinhttp"
	"github.com/spf13/cobra"
	"gocloud.dev/blob"
)

func newServe(configPath *string) *cobra.Command {
	var (
		address    string
		bloburlstr string
		cmd        = &cobra.Command{
			Use:   "serve",
			Short: "Serve APK inspections over HTTP.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				var (
					ctx = cmd.Context()
					log = apkin.LoggerFrom(ctx)
				)

				config, err := apkin.LoadConfig(*configPath)
				if err != nil {
					return err
				}

				log.Info("opening bucket " + bloburlstr)
				bucket, err := blob.OpenBucket(ctx, bloburlstr)
				if err != nil {
					return err
				}
				defer bucket.Close()

				var (
					srv = &http.Server{
						ReadHeaderTimeout: time.Second * 5,
						BaseContext: func(_ net.Listener) context.Context {
							return ctx
						},
						Handler: apkinhttp.NewHandler(bucket, config.InspectOpts()...),
					}
					errC = make(chan error)
				)
				defer srv.Close()

				lis, err := net.Listen("tcp", address)
				if err != nil {
					return err
				}
				defer lis.Close()

				go func() {
					log.Info("listening on " + address)
					errC <- srv.Serve(lis)
				}()

				select {
				case <-ctx.Done():
					return ctx.Err()
				case err := <-errC:
					return err
				}
			},
		}
	)

	cmd.Flags().StringVar(&address, "addr", ":8080", "Listen address for apkin.")
	cmd.Flags().StringVar(&bloburlstr, "blob", "mem://", "Blob URL where apkin stores inspections.")

	return cmd
}
