// Package main provides the entry point for the Resumify resume builder.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/resumify/resumify/internal/config"
	"github.com/resumify/resumify/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "resumify",
	Short: "ATS-friendly resume builder",
	Long:  "Resumify builds ATS-friendly resumes: edit structured resume data, preview it as a print-ready page, and export matching DOCX and PDF files.",
}

var (
	flagConfigPath string
	flagDataPath   string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config.json file")
	rootCmd.PersistentFlags().StringVar(&flagDataPath, "data", "", "Path to the resume database file")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig builds the effective configuration from defaults, the optional
// config file, environment variables, and the persistent CLI flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	if flagDataPath != "" {
		cfg.DataPath = flagDataPath
	}
	return cfg, nil
}

// openStore opens the durable document store. The caller must close the
// returned storage.
func openStore(cfg config.Config) (*store.Store, *store.SQLiteStorage, error) {
	storage, err := store.OpenSQLite(cfg.DataPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open resume database: %w", err)
	}
	return store.Open(storage), storage, nil
}
