package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDocument_Changed(t *testing.T) {
	modified := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	doc := Document{
		SourceFileID: "file-1",
		Checksum:     "abc123",
		ModifiedTime: modified,
	}

	tests := []struct {
		name     string
		remote   RemoteFile
		expected bool
	}{
		{
			name:     "unchanged when checksum and modified time match",
			remote:   RemoteFile{ID: "file-1", Checksum: "abc123", ModifiedTime: modified},
			expected: false,
		},
		{
			name:     "changed when checksum differs",
			remote:   RemoteFile{ID: "file-1", Checksum: "def456", ModifiedTime: modified},
			expected: true,
		},
		{
			name:     "changed when modified time differs",
			remote:   RemoteFile{ID: "file-1", Checksum: "abc123", ModifiedTime: modified.Add(time.Hour)},
			expected: true,
		},
		{
			name:     "equal instants in different locations match",
			remote:   RemoteFile{ID: "file-1", Checksum: "abc123", ModifiedTime: modified.In(time.FixedZone("x", 3600))},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, doc.Changed(tt.remote))
		})
	}
}

func TestReindexReport_AddError(t *testing.T) {
	var report ReindexReport

	report.AddError("file-1", "download failed")
	report.AddError("file-2", "dimension mismatch")

	assert.Equal(t, 2, report.ErrorCount)
	assert.Equal(t, "file-1", report.Errors[0].FileID)
	assert.Equal(t, "dimension mismatch", report.Errors[1].Message)
}
