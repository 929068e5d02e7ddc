package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/site-scribe/internal/config"
	"github.com/jonathan/site-scribe/internal/server"
)

var (
	servePort       int
	serveExportsDir string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the extraction endpoint, snapshot downloads, and extraction history.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides SCRIBE_PORT)")
	serveCmd.Flags().StringVar(&serveExportsDir, "exports-dir", "", "Directory for snapshot artifacts (overrides SCRIBE_EXPORTS_DIR)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveExportsDir != "" {
		cfg.ExportsDir = serveExportsDir
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
