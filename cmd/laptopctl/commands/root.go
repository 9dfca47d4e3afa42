// Package commands implements the laptopctl command tree.
package commands

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/laptopfinder/backend/internal/infrastructure/catalog"
	"github.com/laptopfinder/backend/internal/logging"
)

// globalOptions are shared by every subcommand
type globalOptions struct {
	catalogPath string
	verbose     bool
}

// NewRootCommand builds the laptopctl command tree
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "laptopctl",
		Short: "LaptopFinder command line - query the recommender without the HTTP API",
		Long: `laptopctl runs the laptop recommendation engine and preference extractor
locally against the built-in sample catalog, a JSON product file or a SQLite catalog.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			logging.Init(logging.Config{Level: level, Format: "console", Output: cmd.ErrOrStderr()})
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "",
		"catalog file (.json or .db/.sqlite); defaults to the sample catalog")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newRecommendCommand(opts),
		newExtractCommand(opts),
		newImportCommand(opts),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// catalogOptions picks the catalog source from the file extension
func catalogOptions(path string) catalog.Options {
	if path == "" {
		return catalog.Options{Source: catalog.SourceSample}
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return catalog.Options{Source: catalog.SourceJSON, Path: path}
	}
	return catalog.Options{Source: catalog.SourceSQLite, Path: path}
}

func openCatalog(ctx context.Context, path string) (*catalog.Store, error) {
	return catalog.Open(ctx, catalogOptions(path))
}
