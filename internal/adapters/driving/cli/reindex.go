package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/refstack-labs/refbase-cli/internal/core/domain"
)

var reindexJSON bool

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Synchronise the Drive folder into the index",
	Long: `Lists the configured Drive folder, diffs every PDF against the stored
checksum and modification time, and reingests the files that changed.
Unchanged files are skipped; per-file failures are reported without
aborting the run.`,
	RunE: runReindex,
}

func init() {
	reindexCmd.Flags().BoolVar(&reindexJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(reindexCmd)
}

func runReindex(cmd *cobra.Command, _ []string) error {
	if reindexer == nil {
		return errors.New("reindex service not configured")
	}

	ctx := cmd.Context()

	// Run in a goroutine and poll status for progress updates.
	type result struct {
		report *domain.ReindexReport
		err    error
	}
	resCh := make(chan result, 1)
	go func() {
		report, err := reindexer.Reindex(ctx)
		resCh <- result{report, err}
	}()

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	lastCount := 0
	for {
		select {
		case res := <-resCh:
			if res.err != nil {
				return fmt.Errorf("reindex failed: %w", res.err)
			}
			return outputReport(cmd, res.report)
		case <-ticker.C:
			status, err := reindexer.Status(ctx)
			if err == nil && status != nil && status.DocumentsProcessed > lastCount {
				if !reindexJSON {
					cmd.Printf("\rProcessing... %d documents", status.DocumentsProcessed)
				}
				lastCount = status.DocumentsProcessed
			}
		}
	}
}

func outputReport(cmd *cobra.Command, report *domain.ReindexReport) error {
	if reindexJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("Scanned %d files: %d updated, %d skipped, %d errors.\n",
		report.ScannedCount, report.UpdatedCount, report.SkippedCount, report.ErrorCount)

	for _, e := range report.Errors {
		cmd.Printf("  error %s: %s\n", e.FileID, e.Message)
	}
	return nil
}
