package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/staffing-engine/internal/config"
	"github.com/jonathan/staffing-engine/internal/server"
)

var (
	serveAddr   string
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for project planning, matching, team selection, reconciliation, and health evaluation.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (default :8080)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := &config.Config{ListenAddr: serveAddr}
	if serveConfig != "" {
		fileCfg, err := config.LoadConfig(serveConfig)
		if err != nil {
			return err
		}
		merged := cfg.MergeWithDefaults(*fileCfg)
		cfg = &merged
	}
	cfg.FromEnv()
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = config.DefaultListenAddr
	}

	srv, err := server.New(server.Config{
		Addr:        cfg.ListenAddr,
		DatabaseURL: cfg.DatabaseURL,
		APIKey:      cfg.APIKey,
		Model:       cfg.Model,
		LLMTimeout:  cfg.Timeout(),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
