package drive

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"github.com/refstack-labs/refbase-cli/internal/core/domain"
)

func TestResolveWebURL(t *testing.T) {
	tests := []struct {
		name        string
		fileID      string
		webViewLink string
		want        string
	}{
		{
			name:        "webViewLink takes precedence",
			fileID:      "1abc123",
			webViewLink: "https://drive.google.com/file/d/1abc123/view?usp=drivesdk",
			want:        "https://drive.google.com/file/d/1abc123/view?usp=drivesdk",
		},
		{
			name:   "fallback to canonical URL when no link",
			fileID: "1abc123def456",
			want:   "https://drive.google.com/file/d/1abc123def456/view",
		},
		{
			name: "empty ID without link returns empty",
			want: "",
		},
		{
			name:        "link without ID still returned",
			webViewLink: "https://drive.google.com/file/d/xyz/view",
			want:        "https://drive.google.com/file/d/xyz/view",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveWebURL(tt.fileID, tt.webViewLink)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_RequiresFolderID(t *testing.T) {
	_, err := New(context.Background(), Config{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigIncomplete)
}

func TestNew_RequiresCredentials(t *testing.T) {
	_, err := New(context.Background(), Config{FolderID: "folder-1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigIncomplete)
}

func TestWrapError(t *testing.T) {
	tests := []struct {
		name string
		code int
		want error
	}{
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, ErrForbidden},
		{"not found", http.StatusNotFound, ErrFileNotFound},
		{"rate limited", http.StatusTooManyRequests, ErrRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapError(&googleapi.Error{Code: tt.code})
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, WrapError(nil))
	})

	t.Run("non-API error passes through", func(t *testing.T) {
		sentinel := errors.New("boom")
		assert.Equal(t, sentinel, WrapError(sentinel))
	})

	t.Run("unknown API code passes through", func(t *testing.T) {
		gerr := &googleapi.Error{Code: http.StatusInternalServerError}
		assert.Equal(t, error(gerr), WrapError(gerr))
	})
}

func TestWrapError_DomainSentinels(t *testing.T) {
	assert.ErrorIs(t, WrapError(&googleapi.Error{Code: http.StatusTooManyRequests}), domain.ErrRateLimited)
	assert.ErrorIs(t, WrapError(&googleapi.Error{Code: http.StatusNotFound}), domain.ErrNotFound)
	assert.ErrorIs(t, WrapError(&googleapi.Error{Code: http.StatusUnauthorized}), domain.ErrSourceUnavailable)
}

func TestIsRateLimited(t *testing.T) {
	assert.True(t, IsRateLimited(&googleapi.Error{Code: http.StatusTooManyRequests}))
	assert.True(t, IsRateLimited(ErrRateLimited))
	assert.False(t, IsRateLimited(&googleapi.Error{Code: http.StatusNotFound}))
	assert.False(t, IsRateLimited(errors.New("other")))
}

func TestFileToRemote(t *testing.T) {
	f := &drive.File{
		Id:           "file-1",
		Name:         "Service Blueprints -- Nielsen Norman Group.pdf",
		MimeType:     ContentTypePDF,
		Md5Checksum:  "abc123",
		ModifiedTime: "2026-03-14T09:30:00Z",
		WebViewLink:  "https://drive.google.com/file/d/file-1/view",
		Size:         2048,
	}

	remote := fileToRemote(f)

	assert.Equal(t, "file-1", remote.ID)
	assert.Equal(t, "Service Blueprints -- Nielsen Norman Group.pdf", remote.Name)
	assert.Equal(t, ContentTypePDF, remote.ContentType)
	assert.Equal(t, "abc123", remote.Checksum)
	assert.Equal(t, "https://drive.google.com/file/d/file-1/view", remote.ViewLink)
	assert.Equal(t, int64(2048), remote.SizeBytes)
	assert.Equal(t, time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC), remote.ModifiedTime)
}

func TestFileToRemote_InvalidModifiedTime(t *testing.T) {
	remote := fileToRemote(&drive.File{Id: "file-2", ModifiedTime: "not-a-time"})
	assert.True(t, remote.ModifiedTime.IsZero())
}

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiterWithConfig(RateLimitConfig{RequestsPerSecond: 100, BurstSize: 2})

	assert.True(t, rl.Allow())
	assert.True(t, rl.Allow())

	rl.RecordRateLimitError(60)
	assert.False(t, rl.Allow())
}

func TestRateLimiter_WaitCancellation(t *testing.T) {
	rl := NewRateLimiter()
	rl.RecordRateLimitError(300)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := rl.Wait(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
