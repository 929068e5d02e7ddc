package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/site-scribe/internal/acquire"
	"github.com/jonathan/site-scribe/internal/config"
	"github.com/jonathan/site-scribe/internal/export"
	"github.com/jonathan/site-scribe/internal/extraction"
	"github.com/jonathan/site-scribe/internal/observability"
)

var (
	extractExport  bool
	extractVerbose bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract report fields from a local file or stdin",
	Long: `Run the extraction pipeline on a local site report and print the
structured result as JSON. PDF and HTML files go through the document
strategy chain; anything else is treated as plain text. With no argument,
text is read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().BoolVar(&extractExport, "export", false, "Also write a CSV snapshot and print its locator")
	extractCmd.Flags().BoolVar(&extractVerbose, "verbose", false, "Print a formatted field summary")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}

	engine := extraction.NewEngine()
	report, err := engine.Extract(cmd.Context(), text)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if extractExport {
		cfg, err := config.FromEnv()
		if err != nil {
			return err
		}
		ref, err := export.NewExporter(cfg.ExportsDir).Write(report)
		if err != nil {
			return err
		}
		report.ExportCSVURL = &ref
	}

	if extractVerbose {
		observability.NewPrinter(os.Stderr).PrintReport(report)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// readInput resolves the extraction text from the file argument or stdin.
// Documents run through the acquisition strategy chain; everything else is
// taken as raw text.
func readInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		text := strings.TrimSpace(strings.ToValidUTF8(string(data), "�"))
		if text == "" {
			return "", fmt.Errorf("no text on stdin")
		}
		return text, nil
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf", ".html", ".htm":
		adapter := acquire.NewAdapter(acquire.DefaultChain(), 0)
		text, err := adapter.FromDocument(data)
		if err != nil {
			return "", fmt.Errorf("no text could be extracted from %s: %w", path, err)
		}
		return text, nil
	default:
		text := strings.TrimSpace(strings.ToValidUTF8(string(data), "�"))
		if text == "" {
			return "", fmt.Errorf("%s is empty", path)
		}
		return text, nil
	}
}
