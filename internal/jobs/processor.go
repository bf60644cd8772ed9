package jobs

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jonathan/study-summarizer/internal/types"
)

// MinContentLength is the minimum number of characters, after trimming, that
// extracted text must have before generation is attempted.
const MinContentLength = 20

// Resolver maps a stored-file reference to a readable path. Ownership of the
// underlying file belongs to the storage collaborator.
type Resolver interface {
	Resolve(ref string) (string, error)
}

// TextExtractor is the extraction stage: file path in, plain text out.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (string, error)
}

// ArtifactGenerator is the generation stage: extracted text in, summary and
// concept map out.
type ArtifactGenerator interface {
	Generate(ctx context.Context, text string) (*types.JobResult, error)
}

// Processor is the per-job pipeline: resolve, extract, guard, generate.
type Processor struct {
	resolver  Resolver
	extractor TextExtractor
	generator ArtifactGenerator
	logger    *slog.Logger
}

// NewProcessor wires the pipeline stages together.
func NewProcessor(resolver Resolver, extractor TextExtractor, generator ArtifactGenerator, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		resolver:  resolver,
		extractor: extractor,
		generator: generator,
		logger:    logger,
	}
}

// Process runs one job to completion. Any returned error terminates the job
// as failed; the caller (the coordinator) is the containment boundary.
func (p *Processor) Process(ctx context.Context, job types.Job) (*types.JobResult, error) {
	path, err := p.resolver.Resolve(job.SavedLocation)
	if err != nil {
		return nil, err
	}

	text, err := p.extractor.Extract(ctx, path)
	if err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(text)
	if len(trimmed) < MinContentLength {
		return nil, &InsufficientContentError{Length: len(trimmed)}
	}
	p.logger.Debug("extraction complete", "job_id", job.ID, "chars", len(trimmed))

	return p.generator.Generate(ctx, text)
}
