package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/resumify/resumify/internal/export"
	"github.com/resumify/resumify/internal/preview"
	"github.com/resumify/resumify/internal/printer"
	"github.com/resumify/resumify/internal/types"
)

var exportCommand = &cobra.Command{
	Use:   "export",
	Short: "Export the resume as DOCX and/or PDF",
	RunE:  runExport,
}

var (
	exportFormat string
	exportOutDir string
)

func init() {
	exportCommand.Flags().StringVarP(&exportFormat, "format", "f", "docx", "Output format: docx, pdf, or both")
	exportCommand.Flags().StringVarP(&exportOutDir, "out", "o", ".", "Output directory")
	rootCmd.AddCommand(exportCommand)
}

func runExport(cmd *cobra.Command, _ []string) error {
	if exportFormat != "docx" && exportFormat != "pdf" && exportFormat != "both" {
		return fmt.Errorf("invalid format %q: must be docx, pdf, or both", exportFormat)
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

	doc := st.Document()

	g, ctx := errgroup.WithContext(cmd.Context())

	if exportFormat == "docx" || exportFormat == "both" {
		g.Go(func() error {
			path, err := exportDOCX(cfg.TemplatePath, doc)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		})
	}

	if exportFormat == "pdf" || exportFormat == "both" {
		g.Go(func() error {
			html, err := preview.Render(doc)
			if err != nil {
				return err
			}
			data, err := printer.New(cfg.ChromePath).PDF(ctx, html)
			if err != nil {
				return err
			}
			path := filepath.Join(exportOutDir, printer.FileName(doc))
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		})
	}

	return g.Wait()
}

func exportDOCX(templatePath string, doc types.ResumeDocument) (string, error) {
	data, err := export.New(templatePath).DOCX(doc)
	if err != nil {
		return "", err
	}
	path := filepath.Join(exportOutDir, export.FileName(doc))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
