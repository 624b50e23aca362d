package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/refstack-labs/refbase-cli/internal/core/domain"
)

func TestRemoveCmd_Use(t *testing.T) {
	assert.Equal(t, "remove [file-id]", removeCmd.Use)
}

func TestRemoveCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"remove"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestRemoveCmd_RemovesDocument(t *testing.T) {
	mockReindex, _, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"remove", "file-123"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Removed document file-123.")
	assert.Equal(t, []string{"file-123"}, mockReindex.removed)
}

func TestRemoveCmd_NotFound(t *testing.T) {
	mockReindex, _, cleanup := setupTestServices()
	defer cleanup()
	mockReindex.removeErr = domain.ErrNotFound

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"remove", "missing-id"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no document with file id missing-id")
}
