// Package drive implements the document source against a Google Drive
// folder. Only PDF files are listed; everything else in the folder is
// ignored.
package drive

import (
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/refstack-labs/refbase-cli/internal/core/domain"
	"github.com/refstack-labs/refbase-cli/internal/core/ports/driven"
	"github.com/refstack-labs/refbase-cli/internal/logger"
)

// ContentTypePDF is the only MIME type the extractor handles.
const ContentTypePDF = "application/pdf"

// MaxDownloadSize caps a single file download (25MB).
const MaxDownloadSize = 25 * 1024 * 1024

// DefaultPageSize is the listing page size for API requests.
const DefaultPageSize = 100

// listFields are the file attributes fetched per listing page.
const listFields = "nextPageToken, files(id, name, mimeType, md5Checksum, modifiedTime, webViewLink, size)"

// Ensure Source implements the interface.
var _ driven.DocumentSource = (*Source)(nil)

// Config holds Google Drive source configuration.
type Config struct {
	// FolderID is the Drive folder holding the curated collection (required).
	FolderID string

	// CredentialsFile is a path to a Google credentials JSON file.
	// Either CredentialsFile or TokenSource must be set.
	CredentialsFile string

	// TokenSource supplies OAuth tokens directly. Takes precedence over
	// CredentialsFile when both are set.
	TokenSource oauth2.TokenSource

	// PageSize is the listing page size (default 100).
	PageSize int64
}

// Source lists and downloads PDF files from one Drive folder.
type Source struct {
	svc      *drive.Service
	folderID string
	pageSize int64
	limiter  *RateLimiter
}

// New creates a Drive document source.
func New(ctx context.Context, cfg Config) (*Source, error) {
	if cfg.FolderID == "" {
		return nil, fmt.Errorf("drive: %w: folder id is required", domain.ErrConfigIncomplete)
	}

	var opts []option.ClientOption
	switch {
	case cfg.TokenSource != nil:
		opts = append(opts, option.WithTokenSource(cfg.TokenSource))
	case cfg.CredentialsFile != "":
		opts = append(opts,
			option.WithCredentialsFile(cfg.CredentialsFile),
			option.WithScopes(drive.DriveReadonlyScope),
		)
	default:
		return nil, fmt.Errorf("drive: %w: credentials file or token source is required", domain.ErrConfigIncomplete)
	}

	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &Source{
		svc:      svc,
		folderID: cfg.FolderID,
		pageSize: pageSize,
		limiter:  NewRateLimiter(),
	}, nil
}

// List returns the folder's PDF files in source order, following
// pagination to the end.
func (s *Source) List(ctx context.Context) ([]domain.RemoteFile, error) {
	query := fmt.Sprintf("'%s' in parents and trashed = false and mimeType = '%s'",
		s.folderID, ContentTypePDF)

	var files []domain.RemoteFile
	pageToken := ""

	for {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		call := s.svc.Files.List().
			Q(query).
			Fields(listFields).
			PageSize(s.pageSize).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		page, err := call.Do()
		if err != nil {
			s.recordRateLimit(err)
			return nil, fmt.Errorf("list folder %s: %w", s.folderID, WrapError(err))
		}

		for _, f := range page.Files {
			files = append(files, fileToRemote(f))
		}

		pageToken = page.NextPageToken
		if pageToken == "" {
			break
		}
	}

	logger.Debug("Drive listing: %d files in folder %s", len(files), s.folderID)
	return files, nil
}

// Download fetches the raw bytes of a file, capped at MaxDownloadSize.
func (s *Source) Download(ctx context.Context, fileID string) ([]byte, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := s.svc.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		s.recordRateLimit(err)
		return nil, fmt.Errorf("download file %s: %w", fileID, WrapError(err))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxDownloadSize))
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", fileID, err)
	}

	return data, nil
}

// Close releases resources.
func (s *Source) Close() error {
	// The Drive service holds no closable resources.
	return nil
}

// recordRateLimit backs the limiter off when the API returns 429.
func (s *Source) recordRateLimit(err error) {
	if IsRateLimited(err) {
		logger.Warn("Drive API rate limited, backing off")
		s.limiter.RecordRateLimitError(0)
	}
}

// fileToRemote converts a Drive file to the domain listing entry.
func fileToRemote(f *drive.File) domain.RemoteFile {
	remote := domain.RemoteFile{
		ID:          f.Id,
		Name:        f.Name,
		ContentType: f.MimeType,
		Checksum:    f.Md5Checksum,
		ViewLink:    ResolveWebURL(f.Id, f.WebViewLink),
		SizeBytes:   f.Size,
	}

	if f.ModifiedTime != "" {
		if ts, err := time.Parse(time.RFC3339, f.ModifiedTime); err == nil {
			remote.ModifiedTime = ts
		}
	}

	return remote
}
