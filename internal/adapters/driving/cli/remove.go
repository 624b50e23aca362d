package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/refstack-labs/refbase-cli/internal/core/domain"
)

var removeCmd = &cobra.Command{
	Use:   "remove [file-id]",
	Short: "Remove a document from the index",
	Long: `Deletes the document with the given Drive file ID from the index,
together with all its chunks. Reindex never removes documents on its
own; this is the explicit removal path for files deleted from the
folder.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	if reindexer == nil {
		return errors.New("reindex service not configured")
	}

	fileID := args[0]
	if err := reindexer.RemoveDocument(cmd.Context(), fileID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no document with file id %s", fileID)
		}
		return fmt.Errorf("remove failed: %w", err)
	}

	cmd.Printf("Removed document %s.\n", fileID)
	return nil
}
