package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/vango-dev/tooltips/internal/config"
	"github.com/vango-dev/tooltips/internal/dev"
)

func serveCmd() *cobra.Command {
	var (
		dir      string
		port     int
		host     string
		page     string
		assets   string
		noReload bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview a page with live reload",
		Long: `Serve a page for previewing its tooltips.

The page is served at /, the wasm build at /assets/, a report of
the page's definitions at /api/definitions and metrics at /metrics.
Editing the page re-checks its definitions and reloads the browser.

Examples:
  tooltips serve
  tooltips serve --page demo.html --port 8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(dir)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Dev.Port = port
			}
			if host != "" {
				cfg.Dev.Host = host
			}
			if page != "" {
				cfg.Dev.Page = page
			}
			if assets != "" {
				cfg.Dev.Assets = assets
			}
			if noReload {
				cfg.Dev.HotReload = false
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := dev.NewServer(dev.ServerOptions{Config: cfg})
			return srv.Start(ctx)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", ".", "Project directory")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from tooltips.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from tooltips.json)")
	cmd.Flags().StringVar(&page, "page", "", "Page to serve (default from tooltips.json)")
	cmd.Flags().StringVar(&assets, "assets", "", "Directory served under /assets/")
	cmd.Flags().BoolVar(&noReload, "no-reload", false, "Disable live reload")
	return cmd
}
