package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/resumify/resumify/internal/types"
	"github.com/resumify/resumify/schemas"
)

var importCommand = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import a resume document from a JSON file",
	Long:  "Validates the file against the document schema and replaces the stored resume with it. Unknown top-level keys are preserved.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCommand)
}

func runImport(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	if err := schemas.ValidateDocument(raw); err != nil {
		return err
	}

	doc, err := types.ParseDocument(raw)
	if err != nil {
		return fmt.Errorf("invalid document: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, storage, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = storage.Close() }()

	st.ReplaceDocument(doc)
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %s\n", args[0])
	return nil
}
