package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/orderlex/orderlex/internal/model"
	"github.com/orderlex/orderlex/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outJSON           string
	compact           bool
	noCache           bool
	cacheDir          string
	interpretTimeout  time.Duration
	annotatorProvider string
	annotatorModel    string
	modelCodesPath    string
	abbreviationsPath string
	vocabularyPath    string
)

// interpretCmd represents the interpret command
var interpretCmd = &cobra.Command{
	Use:   "interpret <prompt>",
	Short: "Interpret a single sales-order prompt",
	Long: `Interpret converts one natural-language sales-order prompt into a
structured request body:
- Match the prompt against the model-code catalog
- Synthesize a boolean feature-selection formula over option abbreviations
- Resolve the requested delivery date to ISO yyyy-mm-dd

The result is printed as JSON: one record per matched model code on
success, or a message explaining what the prompt is missing.

Example:
  orderlex interpret "iX xDrive50 with M Sport Package, delivery late November 2024"
  orderlex interpret "318i without Sunroof, end of March 2025" --json request.json
  orderlex interpret "M8 with Comfort Package EU, 2024-06-01" --annotator openai`,
	Args: cobra.ExactArgs(1),
	RunE: runInterpret,
}

func init() {
	rootCmd.AddCommand(interpretCmd)

	// Output flags
	interpretCmd.Flags().StringVar(&outJSON, "json", "", "also write the result JSON to this path")
	interpretCmd.Flags().BoolVar(&compact, "compact", false, "print compact JSON instead of indented")

	// Pipeline flags
	interpretCmd.Flags().DurationVar(&interpretTimeout, "timeout", 30*time.Second, "overall interpretation timeout")
	interpretCmd.Flags().BoolVar(&noCache, "no-cache", true, "disable the interpretation result cache")
	interpretCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "persist cached results under this directory")

	// Annotator flags
	interpretCmd.Flags().StringVar(&annotatorProvider, "annotator", "prose", "linguistic annotator (prose, openai)")
	interpretCmd.Flags().StringVar(&annotatorModel, "annotator-model", "gpt-4o-mini", "model name for the openai annotator")

	// Catalog flags
	interpretCmd.Flags().StringVar(&modelCodesPath, "model-codes", "", "model-code catalog YAML (default: built-in)")
	interpretCmd.Flags().StringVar(&abbreviationsPath, "abbreviations", "", "abbreviation catalog YAML (default: built-in)")
	interpretCmd.Flags().StringVar(&vocabularyPath, "vocabulary", "", "extra vocabulary word list (default: built-in)")
}

func runInterpret(cmd *cobra.Command, args []string) error {
	prompt := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), interpretTimeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Interpreting: %s\n", prompt)
		fmt.Fprintf(os.Stderr, "Annotator: %s\n", annotatorProvider)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	interpreter, err := pipeline.New(cfg)
	if err != nil {
		return fmt.Errorf("create interpreter: %w", err)
	}

	result := interpreter.Interpret(ctx, prompt)

	renderer := pipeline.NewRenderer(cfg.Output.Pretty)
	if err := renderer.Render(os.Stdout, result); err != nil {
		return fmt.Errorf("render result: %w", err)
	}

	if outJSON != "" {
		if err := renderer.RenderFile(result, outJSON); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote %s\n", outJSON)
		}
	}

	return nil
}

// buildConfig assembles the configuration from defaults and flags. The
// openai annotator reads its key from the environment, never from a flag.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Annotator.Provider = annotatorProvider
	cfg.Annotator.Model = annotatorModel
	cfg.Catalogs.ModelCodesPath = modelCodesPath
	cfg.Catalogs.AbbreviationsPath = abbreviationsPath
	cfg.Catalogs.VocabularyPath = vocabularyPath
	cfg.Cache.Enabled = !noCache
	cfg.Cache.Dir = cacheDir
	cfg.Output.Verbose = verbose
	cfg.Output.Pretty = !compact

	if annotatorProvider == "openai" {
		cfg.Annotator.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.Annotator.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}

	return cfg, nil
}
