package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/study-summarizer/internal/config"
	"github.com/jonathan/study-summarizer/internal/extraction"
	"github.com/jonathan/study-summarizer/internal/generation"
	"github.com/jonathan/study-summarizer/internal/jobs"
	"github.com/jonathan/study-summarizer/internal/llm"
	"github.com/jonathan/study-summarizer/internal/logging"
	"github.com/jonathan/study-summarizer/internal/observability"
)

var processCmd = &cobra.Command{
	Use:   "process <file>",
	Short: "Summarize a single document without the server",
	Long:  `Run the extraction and generation pipeline on one local file and print the study summary and concept graph.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	path := args[0]
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}

	dispatcher := extraction.NewDispatcher(
		extraction.NewPDFReader(),
		extraction.NewSlideArchiveReader(),
		extraction.NewWordDocReader(),
		extraction.NewTesseractOCR(cfg.Tesseract, cfg.OCRLanguage, logger),
		logger,
	)

	ctx := cmd.Context()
	text, err := dispatcher.Extract(ctx, path)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	if len(strings.TrimSpace(text)) < jobs.MinContentLength {
		return fmt.Errorf("insufficient extractable content in %s", path)
	}

	generator := generation.NewGenerator(cfg.GeminiAPIKey, llm.DefaultConfig(), logger)
	defer generator.Close() //nolint:errcheck

	result, err := generator.Generate(ctx, text)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintSummary(result.Summary)
	printer.PrintConceptGraph(result.ConceptMap)
	return nil
}
