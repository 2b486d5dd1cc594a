package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/resumify/resumify/internal/preview"
	"github.com/resumify/resumify/internal/printer"
)

var printCommand = &cobra.Command{
	Use:   "print [output.pdf]",
	Short: "Print the resume preview to a PDF file",
	Long:  "Renders the preview page and prints it to PDF through headless Chrome, so the file matches the on-screen preview exactly.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPrint,
}

func init() {
	rootCmd.AddCommand(printCommand)
}

func runPrint(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, storage, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = storage.Close() }()

	doc := st.Document()
	html, err := preview.Render(doc)
	if err != nil {
		return err
	}

	data, err := printer.New(cfg.ChromePath).PDF(cmd.Context(), html)
	if err != nil {
		return err
	}

	path := printer.FileName(doc)
	if len(args) == 1 {
		path = args[0]
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
