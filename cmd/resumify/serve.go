package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/resumify/resumify/internal/server"
	"github.com/resumify/resumify/internal/store"
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Start the resume builder HTTP API server",
	RunE:  runServe,
}

var servePort int

func init() {
	serveCommand.Flags().IntVarP(&servePort, "port", "p", 0, "HTTP listen port (overrides config)")
	rootCmd.AddCommand(serveCommand)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	storage, err := store.OpenSQLite(cfg.DataPath)
	if err != nil {
		return fmt.Errorf("failed to open resume database: %w", err)
	}
	defer func() { _ = storage.Close() }()

	srv, err := server.New(server.Config{
		Port:           cfg.Port,
		Storage:        storage,
		TemplatePath:   cfg.TemplatePath,
		ChromePath:     cfg.ChromePath,
		SuggestLatency: time.Duration(cfg.SuggestLatencyMS) * time.Millisecond,
	})
	if err != nil {
		return err
	}

	return srv.Start()
}
