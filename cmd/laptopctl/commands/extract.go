package commands

import (
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/laptopfinder/backend/internal/usecase"
)

func newExtractCommand(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "extract <utterance>",
		Short:   "Print the preferences found in a sentence as JSON",
		Example: `  laptopctl extract "I need a laptop for gaming under $1500 with 16GB of RAM"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			utterance := strings.Join(args, " ")
			extractor := usecase.NewPreferenceExtractor(global.verbose)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]interface{}{
				"preferences": extractor.Extract(utterance),
				"is_greeting": extractor.IsGreeting(utterance),
			})
		},
	}
}
