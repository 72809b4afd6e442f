package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stele-cms/stele/pkg/preview"
)

func previewCmd() *cobra.Command {
	var (
		addr     string
		manifest string
		pretty   bool
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Start the element preview server",
		Long: `Start a local server that renders every element in the manifest.

The server watches the manifest for changes and reloads connected
browsers automatically. Rendered elements carry editor preview
attributes so in-place editors can locate them.

Examples:
  stele preview
  stele preview --manifest content/elements.yml --addr :9000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(addr, manifest, pretty, verbose)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8574", "Listen address")
	cmd.Flags().StringVarP(&manifest, "manifest", "m", "elements.yml", "Path to the element manifest")
	cmd.Flags().BoolVar(&pretty, "pretty", true, "Pretty-print rendered HTML")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func runPreview(addr, manifestPath string, pretty, verbose bool) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	srv, err := preview.NewServer(preview.Config{
		ManifestPath: manifestPath,
		Addr:         addr,
		Logger:       logger,
		Pretty:       pretty,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Start(ctx)
}
