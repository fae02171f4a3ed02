package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/welcome/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "welcome: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:           "welcome",
		Short:         "Post-install welcome page for a self-hosted service stack",
		Long:          "Shows every installed service with its address, credentials and docs, plus quick-start steps and common commands. Serve it over HTTP, render it to static files, or browse it in the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := root.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/welcome/config.toml)")
	flags.StringVar(&opts.Manifest, "manifest", "", "manifest URL or file path (overrides config)")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn or error (overrides config)")
	flags.BoolVar(&opts.NoCelebrate, "no-celebrate", false, "disable the first-visit confetti")

	root.AddCommand(newServeCmd(&opts), newRenderCmd(&opts), newTUICmd(&opts))
	return root
}

func newServeCmd(opts *app.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the welcome page over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Serve(cmd.Context(), *opts)
		},
	}
	cmd.Flags().StringVar(&opts.Listen, "listen", "", "listen address (default 127.0.0.1:8080)")
	return cmd
}

func newRenderCmd(opts *app.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the welcome page and its assets to a directory",
		Long: "Write index.html and its static assets to --out. The manifest is read once " +
			"and baked into the page; the browser never fetches data.json, so run " +
			"render again after the manifest changes.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Render(cmd.Context(), *opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s, %d services)\n", opts.OutDir, res.State, res.Services)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.OutDir, "out", app.DefaultOutDir, "output directory")
	return cmd
}

func newTUICmd(opts *app.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse the welcome page in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunTUI(cmd.Context(), *opts)
		},
	}
	cmd.Flags().StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/welcome/prefs.toml)")
	return cmd
}
