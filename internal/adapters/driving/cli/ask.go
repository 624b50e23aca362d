package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/refstack-labs/refbase-cli/internal/core/domain"
)

var (
	askTopK int
	askJSON bool
)

var askCmd = &cobra.Command{
	Use:   "ask [query]",
	Short: "Answer a question with citations from the index",
	Long: `Embeds the query, finds the nearest indexed chunks, and prints the
citations that clear the confidence gates. An empty result means no
confident match was found, not a failure.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().IntVarP(&askTopK, "top-k", "k", 0, "number of candidate chunks to consider (0 = default)")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output citations as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if retriever == nil {
		return errors.New("retrieval service not configured")
	}

	citations, err := retriever.Retrieve(cmd.Context(), args[0], askTopK)
	if err != nil {
		return fmt.Errorf("retrieve failed: %w", err)
	}

	if askJSON {
		return outputCitationsJSON(cmd, citations)
	}
	return outputCitationsText(cmd, citations)
}

func outputCitationsJSON(cmd *cobra.Command, citations []domain.Citation) error {
	if citations == nil {
		citations = []domain.Citation{}
	}
	data, err := json.MarshalIndent(struct {
		Citations []domain.Citation `json:"citations"`
	}{citations}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal citations: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputCitationsText(cmd *cobra.Command, citations []domain.Citation) error {
	if len(citations) == 0 {
		cmd.Println("No confident matches found.")
		return nil
	}

	for _, c := range citations {
		cmd.Printf("[%s] %s\n", c.Ref, c.Title)
		if c.Link != "" {
			cmd.Printf("    %s\n", c.Link)
		}
		cmd.Printf("    %s\n", c.Snippet)
		cmd.Println()
	}
	return nil
}
