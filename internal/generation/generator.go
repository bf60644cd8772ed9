// Package generation produces the study summary and concept graph for a job's
// extracted text via two sequential calls to the text-generation backend.
package generation

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jonathan/study-summarizer/internal/llm"
	"github.com/jonathan/study-summarizer/internal/types"
)

// Output-length bounds per call.
const (
	maxSummaryTokens int32 = 2048
	maxGraphTokens   int32 = 1024
)

// Generator runs the two-call generation stage. The backend client is created
// lazily on the first job that needs it and cached for the rest of the
// process lifetime; a missing credential therefore surfaces as a per-job
// failure, not a startup failure.
type Generator struct {
	apiKey string
	config *llm.Config
	logger *slog.Logger

	mu        sync.Mutex
	client    llm.Client
	newClient func(ctx context.Context) (llm.Client, error)
}

// NewGenerator creates a generator backed by the configured credential.
func NewGenerator(apiKey string, config *llm.Config, logger *slog.Logger) *Generator {
	if config == nil {
		config = llm.DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	g := &Generator{
		apiKey: apiKey,
		config: config,
		logger: logger,
	}
	g.newClient = func(ctx context.Context) (llm.Client, error) {
		return llm.NewClient(ctx, g.config, g.apiKey)
	}
	return g
}

// clientFor returns the cached backend client, creating it on first use.
func (g *Generator) clientFor(ctx context.Context) (llm.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil {
		return g.client, nil
	}
	client, err := g.newClient(ctx)
	if err != nil {
		return nil, err
	}
	g.client = client
	return client, nil
}

// Generate produces both artifacts for the given text. The two calls run in
// sequence so each job holds at most one external call at a time. A failed
// summary or graph call fails the job; an unusable graph response does not —
// it degrades the concept map to nil with the summary intact.
func (g *Generator) Generate(ctx context.Context, text string) (*types.JobResult, error) {
	client, err := g.clientFor(ctx)
	if err != nil {
		return nil, err
	}

	summary, err := client.GenerateContent(ctx, buildSummaryPrompt(text), llm.TierStandard, maxSummaryTokens)
	if err != nil {
		return nil, fmt.Errorf("summary generation: %w", err)
	}

	raw, err := client.GenerateContent(ctx, buildGraphPrompt(text), llm.TierLite, maxGraphTokens)
	if err != nil {
		return nil, fmt.Errorf("concept graph generation: %w", err)
	}

	graph, err := ParseConceptGraph(raw)
	if err != nil {
		g.logger.Warn("concept graph degraded to null", "error", err)
		graph = nil
	} else if dangling := graph.DanglingEdges(); len(dangling) > 0 {
		// Passed through uncorrected; the artifact is advisory.
		g.logger.Warn("concept graph has dangling edge references", "count", len(dangling))
	}

	return &types.JobResult{Summary: summary, ConceptMap: graph}, nil
}

// Close releases the cached backend client, if one was ever created.
func (g *Generator) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client == nil {
		return nil
	}
	err := g.client.Close()
	g.client = nil
	return err
}
