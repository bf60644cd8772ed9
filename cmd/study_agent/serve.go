package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/study-summarizer/internal/config"
	"github.com/jonathan/study-summarizer/internal/extraction"
	"github.com/jonathan/study-summarizer/internal/generation"
	"github.com/jonathan/study-summarizer/internal/jobs"
	"github.com/jonathan/study-summarizer/internal/llm"
	"github.com/jonathan/study-summarizer/internal/logging"
	"github.com/jonathan/study-summarizer/internal/server"
	"github.com/jonathan/study-summarizer/internal/storage"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that accepts document uploads, enqueues summarization jobs, and exposes their status for polling.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if servePort > 0 {
		cfg.Port = servePort
	}

	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	store, err := storage.NewStore(cfg.UploadRoot)
	if err != nil {
		return fmt.Errorf("failed to create upload store: %w", err)
	}

	dispatcher := extraction.NewDispatcher(
		extraction.NewPDFReader(),
		extraction.NewSlideArchiveReader(),
		extraction.NewWordDocReader(),
		extraction.NewTesseractOCR(cfg.Tesseract, cfg.OCRLanguage, logger),
		logger,
	)

	generator := generation.NewGenerator(cfg.GeminiAPIKey, llm.DefaultConfig(), logger)
	defer generator.Close() //nolint:errcheck

	processor := jobs.NewProcessor(store, dispatcher, generator, logger)
	coordinator := jobs.NewCoordinator(jobs.NewRegistry(), processor.Process, cfg.JobTimeout, logger)

	srv := server.New(server.Config{Port: cfg.Port}, coordinator, store, logger)
	return srv.Start()
}
