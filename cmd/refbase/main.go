// Command refbase keeps a Google Drive folder of PDF documents indexed
// in a local vector store and answers questions with citations.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/refstack-labs/refbase-cli/internal/adapters/driven/config/file"
	"github.com/refstack-labs/refbase-cli/internal/adapters/driven/embedding/openai"
	"github.com/refstack-labs/refbase-cli/internal/adapters/driven/storage/sqlite"
	"github.com/refstack-labs/refbase-cli/internal/adapters/driving/cli"
	"github.com/refstack-labs/refbase-cli/internal/chunker"
	"github.com/refstack-labs/refbase-cli/internal/connectors/google/drive"
	"github.com/refstack-labs/refbase-cli/internal/core/ports/driven"
	"github.com/refstack-labs/refbase-cli/internal/core/services"
	"github.com/refstack-labs/refbase-cli/internal/extractors/pdf"
	"github.com/refstack-labs/refbase-cli/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	var closers []io.Closer
	defer func() {
		for _, c := range closers {
			c.Close() //nolint:errcheck
		}
	}()

	cli.SetVersion(version)
	cli.SetInitializer(func() error {
		wired, err := wire()
		if err != nil {
			return err
		}
		closers = wired
		return nil
	})

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// wire builds the adapters the configuration allows and injects the
// services into the CLI. Missing configuration leaves the dependent
// service unset; its commands then fail with a clear message instead of
// a panic at startup.
func wire() ([]io.Closer, error) {
	cfg, err := file.Load(cli.ConfigDir())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	var closers []io.Closer

	store, err := sqlite.NewStore(cfg.Storage.DataDir)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	closers = append(closers, store)
	cli.SetDocumentLister(store)

	var embedder driven.EmbeddingService
	if cfg.ValidateForRetrieve() == nil {
		e, err := openai.NewEmbeddingService(openai.Config{
			APIKey:     cfg.Embedding.APIKey,
			BaseURL:    cfg.Embedding.BaseURL,
			Model:      cfg.Embedding.Model,
			Dimensions: cfg.Embedding.Dimensions,
		})
		if err != nil {
			return closers, fmt.Errorf("create embedding service: %w", err)
		}
		embedder = e
		closers = append(closers, e)
	} else {
		logger.Debug("Embedding service not configured")
	}

	var retriever *services.RetrievalService
	var reindexer *services.ReindexService

	if embedder != nil {
		retriever = services.NewRetrievalService(store, embedder,
			services.WithTopK(cfg.Retrieval.TopK),
			services.WithMaxDistance(cfg.Retrieval.MaxDistance),
			services.WithMinResults(cfg.Retrieval.MinResults),
		)

		if cfg.ValidateForReindex() == nil {
			source, err := drive.New(context.Background(), drive.Config{
				FolderID:        cfg.Drive.FolderID,
				CredentialsFile: cfg.Drive.CredentialsFile,
			})
			if err != nil {
				return closers, fmt.Errorf("create drive source: %w", err)
			}
			closers = append(closers, source)

			split := chunker.New(
				chunker.WithMaxChars(cfg.Chunking.MaxChars),
				chunker.WithOverlap(cfg.Chunking.OverlapChars),
			)

			reindexer = services.NewReindexService(
				source,
				store,
				embedder,
				split,
				[]driven.TextExtractor{pdf.New()},
				services.WithConcurrency(cfg.Reindex.Concurrency),
			)
		} else {
			logger.Debug("Drive source not configured")
		}
	}

	// Interface-typed nils must stay nil for the CLI's checks.
	switch {
	case reindexer != nil && retriever != nil:
		cli.SetServices(reindexer, retriever)
	case retriever != nil:
		cli.SetServices(nil, retriever)
	}

	return closers, nil
}
