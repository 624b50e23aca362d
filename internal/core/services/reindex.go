package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/refstack-labs/refbase-cli/internal/core/domain"
	"github.com/refstack-labs/refbase-cli/internal/core/ports/driven"
	"github.com/refstack-labs/refbase-cli/internal/core/ports/driving"
	"github.com/refstack-labs/refbase-cli/internal/logger"
)

// DefaultConcurrency is the number of documents processed in parallel
// during a reindex run. Kept small because the embedding provider and
// the store both have throughput limits.
const DefaultConcurrency = 4

// Ensure ReindexService implements the interface.
var _ driving.Reindexer = (*ReindexService)(nil)

// ReindexService reconciles the remote document collection into the
// store: new and changed files are reingested, unchanged files skipped.
type ReindexService struct {
	source     driven.DocumentSource
	store      driven.DocumentStore
	embedder   driven.EmbeddingService
	chunker    driven.Chunker
	extractors map[string]driven.TextExtractor

	concurrency int

	// Status tracking
	mu      sync.Mutex
	running bool
	status  driving.ReindexStatus
}

// ReindexOption configures a ReindexService.
type ReindexOption func(*ReindexService)

// WithConcurrency sets the worker pool size for document processing.
func WithConcurrency(n int) ReindexOption {
	return func(s *ReindexService) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// NewReindexService creates a reindex service. Extractors are keyed by
// the content type they handle; files with no matching extractor fail
// individually rather than aborting the run.
func NewReindexService(
	source driven.DocumentSource,
	store driven.DocumentStore,
	embedder driven.EmbeddingService,
	chunker driven.Chunker,
	extractors []driven.TextExtractor,
	opts ...ReindexOption,
) *ReindexService {
	byType := make(map[string]driven.TextExtractor, len(extractors))
	for _, e := range extractors {
		byType[e.ContentType()] = e
	}

	s := &ReindexService{
		source:      source,
		store:       store,
		embedder:    embedder,
		chunker:     chunker,
		extractors:  byType,
		concurrency: DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reindex runs a full reconciliation pass against the source folder.
// Documents are diffed by checksum and modified time; only new or
// changed files are downloaded and reingested. Per-document failures
// are collected in the report and never abort the run.
func (s *ReindexService) Reindex(ctx context.Context) (*domain.ReindexReport, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	logger.Section("Reindex")

	files, err := s.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list source files: %w", err)
	}

	report := &domain.ReindexReport{ScannedCount: len(files)}
	logger.Info("Scanning %d files", len(files))

	// Diff sequentially, then reingest the changed set in parallel.
	var changed []domain.RemoteFile
	var reportMu sync.Mutex

	for _, file := range files {
		stored, err := s.store.GetDocumentByFileID(ctx, file.ID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			changed = append(changed, file)
		case err != nil:
			report.AddError(file.ID, fmt.Sprintf("lookup document: %v", err))
		case stored.Changed(file):
			changed = append(changed, file)
		default:
			report.SkippedCount++
		}
	}

	logger.Info("Changed: %d, skipped: %d", len(changed), report.SkippedCount)

	jobs := make(chan domain.RemoteFile)
	var wg sync.WaitGroup

	workers := s.concurrency
	if workers > len(changed) {
		workers = len(changed)
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for file := range jobs {
				err := s.ingestDocument(ctx, file)

				reportMu.Lock()
				if err != nil {
					logger.Debug("Failed to ingest %s: %v", file.ID, err)
					report.AddError(file.ID, err.Error())
				} else {
					report.UpdatedCount++
				}
				reportMu.Unlock()

				s.trackProgress(err != nil)
			}
		}()
	}

	for _, file := range changed {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return nil, ctx.Err()
		case jobs <- file:
		}
	}
	close(jobs)
	wg.Wait()

	logger.Info("Reindex complete: %d updated, %d skipped, %d errors",
		report.UpdatedCount, report.SkippedCount, report.ErrorCount)
	return report, nil
}

// RemoveDocument deletes a document and its chunks by external file id.
func (s *ReindexService) RemoveDocument(ctx context.Context, fileID string) error {
	fileID = strings.TrimSpace(fileID)
	if fileID == "" {
		return domain.ErrInvalidInput
	}

	if err := s.store.DeleteDocumentByFileID(ctx, fileID); err != nil {
		return fmt.Errorf("remove document %s: %w", fileID, err)
	}

	logger.Info("Removed document %s", fileID)
	return nil
}

// Status reports progress of the active run, if any.
func (s *ReindexService) Status(_ context.Context) (*driving.ReindexStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Return a copy to avoid race conditions
	status := s.status
	return &status, nil
}

// ingestDocument runs the full pipeline for a single new or changed
// file: download, extract, chunk, embed, and atomically replace the
// stored document and its chunks.
func (s *ReindexService) ingestDocument(ctx context.Context, file domain.RemoteFile) error {
	logger.Debug("Ingesting: %s (%s)", file.Name, file.ID)

	data, err := s.source.Download(ctx, file.ID)
	if err != nil {
		return fmt.Errorf("download: %w", err)
	}

	extractor, ok := s.extractors[file.ContentType]
	if !ok {
		return fmt.Errorf("%w: no extractor for content type %q", domain.ErrInvalidInput, file.ContentType)
	}

	text, err := extractor.Extract(ctx, data)
	if err != nil {
		return fmt.Errorf("extract text: %w", err)
	}

	doc := &domain.Document{
		SourceFileID: file.ID,
		Title:        file.Name,
		ContentType:  file.ContentType,
		Checksum:     file.Checksum,
		ModifiedTime: file.ModifiedTime,
		ViewLink:     file.ViewLink,
		SizeBytes:    file.SizeBytes,
	}

	texts := s.chunker.Split(text)
	if len(texts) == 0 {
		// Empty or whitespace-only content is not an error; the
		// document is recorded with no chunks.
		logger.Debug("No chunks for %s", file.ID)
		return s.store.ReplaceDocument(ctx, doc, nil)
	}

	embeddings, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("embed chunks: %w", err)
	}
	if len(embeddings) != len(texts) {
		return fmt.Errorf("%w: got %d embeddings for %d chunks",
			domain.ErrEmbeddingProvider, len(embeddings), len(texts))
	}

	dims := s.embedder.Dimensions()
	chunks := make([]domain.Chunk, len(texts))
	for i, content := range texts {
		if len(embeddings[i]) != dims {
			return fmt.Errorf("%w: chunk %d has %d dimensions, want %d",
				domain.ErrDimensionMismatch, i, len(embeddings[i]), dims)
		}
		chunks[i] = domain.Chunk{
			Position:  i,
			Content:   content,
			Embedding: embeddings[i],
		}
	}

	if err := s.store.ReplaceDocument(ctx, doc, chunks); err != nil {
		return fmt.Errorf("store document: %w", err)
	}

	logger.Debug("Ingested %s: %d chunks", file.ID, len(chunks))
	return nil
}

// begin marks a run as active, rejecting overlapping runs.
func (s *ReindexService) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return domain.ErrReindexInProgress
	}
	s.running = true
	s.status = driving.ReindexStatus{Running: true}
	return nil
}

// end clears the active run marker.
func (s *ReindexService) end() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	s.status.Running = false
}

// trackProgress updates the live status counters.
func (s *ReindexService) trackProgress(failed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status.DocumentsProcessed++
	if failed {
		s.status.ErrorCount++
	}
}
