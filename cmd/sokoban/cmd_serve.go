package main

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"sokoban/internal/cache"
	"sokoban/internal/server"
)

var (
	serveAddr     string
	serveCacheDir string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the solver over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := cfg.ServerAddr
		if serveAddr != "" {
			addr = serveAddr
		}

		var store *cache.Store
		cacheDir := cfg.CachePath
		if serveCacheDir != "" {
			cacheDir = serveCacheDir
		}
		if cacheDir != "" {
			var err error
			store, err = cache.Open(cache.Config{Path: cacheDir, Logger: slog.Default()})
			if err != nil {
				return err
			}
			defer store.Close()
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		srv := server.New(server.Config{
			Addr:      addr,
			Heuristic: cfg.Heuristic,
			NodeLimit: cfg.NodeLimit,
		}, slog.Default(), store)
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address; overrides config")
	serveCmd.Flags().StringVar(&serveCacheDir, "cache", "", "solution cache directory; overrides config")
	rootCmd.AddCommand(serveCmd)
}
