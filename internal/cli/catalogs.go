package cli

import (
	"fmt"
	"os"

	"github.com/orderlex/orderlex/internal/catalog"
	"github.com/orderlex/orderlex/internal/model"
	"github.com/spf13/cobra"
)

// catalogsCmd represents the catalogs command
var catalogsCmd = &cobra.Command{
	Use:   "catalogs",
	Short: "Show the sales catalogs the interpreter matches against",
	Long: `Catalogs prints the model-code and abbreviation catalogs in priority
order. Matching is order-sensitive: earlier entries win exact matches
first, and later entries win fuzzy-score ties.

Example:
  orderlex catalogs
  orderlex catalogs --model-codes codes.yaml --abbreviations options.yaml`,
	Args: cobra.NoArgs,
	RunE: runCatalogs,
}

func init() {
	rootCmd.AddCommand(catalogsCmd)

	catalogsCmd.Flags().StringVar(&modelCodesPath, "model-codes", "", "model-code catalog YAML (default: built-in)")
	catalogsCmd.Flags().StringVar(&abbreviationsPath, "abbreviations", "", "abbreviation catalog YAML (default: built-in)")
	catalogsCmd.Flags().StringVar(&vocabularyPath, "vocabulary", "", "extra vocabulary word list (default: built-in)")
}

func runCatalogs(cmd *cobra.Command, args []string) error {
	set, err := catalog.LoadSet(model.CatalogsConfig{
		ModelCodesPath:    modelCodesPath,
		AbbreviationsPath: abbreviationsPath,
		VocabularyPath:    vocabularyPath,
	})
	if err != nil {
		return fmt.Errorf("load catalogs: %w", err)
	}

	fmt.Println("Model codes (priority order):")
	for _, entry := range set.ModelCodes.Entries() {
		fmt.Printf("  %-6s %s\n", entry.Code, entry.Phrase)
	}
	fmt.Println()

	fmt.Println("Abbreviations (priority order):")
	for _, entry := range set.Abbreviations.Entries() {
		fmt.Printf("  %-6s %s\n", entry.Code, entry.Phrase)
	}
	fmt.Println()

	fmt.Printf("Vocabulary: %d words\n", set.Vocabulary.Len())
	fmt.Printf("Fingerprint: %s\n", set.Fingerprint())

	if verbose {
		fmt.Fprintf(os.Stderr, "\nCatalog sources:\n")
		fmt.Fprintf(os.Stderr, "  model codes:   %s\n", sourceLabel(modelCodesPath))
		fmt.Fprintf(os.Stderr, "  abbreviations: %s\n", sourceLabel(abbreviationsPath))
		fmt.Fprintf(os.Stderr, "  vocabulary:    %s\n", sourceLabel(vocabularyPath))
	}

	return nil
}

func sourceLabel(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}
