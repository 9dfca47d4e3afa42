package commands

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/laptopfinder/backend/internal/infrastructure/catalog"
)

func newImportCommand(global *globalOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Copy a catalog into a SQLite database",
		Long: `Reads the catalog selected by --catalog (the sample catalog by default) and
upserts every product into the laptops table of the SQLite database given by --db.`,
		Example: `  laptopctl import --db catalog.db
  laptopctl import --catalog laptops.json --db catalog.db`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openCatalog(cmd.Context(), global.catalogPath)
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}

			if err := catalog.ImportProducts(cmd.Context(), dbPath, store.All()); err != nil {
				return fmt.Errorf("import into %s: %w", dbPath, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s products into %s\n",
				humanize.Comma(int64(store.Len())), dbPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database file (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}
