package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/orderlex/orderlex/internal/pipeline"
	"github.com/orderlex/orderlex/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Interpret multiple prompts from a file in parallel",
	Long: `Batch interprets multiple sales-order prompts concurrently:
- Read prompts from the input file (one per line, # comments skipped)
- Interpret prompts in parallel with a configurable worker count
- Print one compact JSON result per prompt, or write per-prompt files

Example:
  orderlex batch prompts.txt
  orderlex batch prompts.txt --concurrency 10 --output-dir ./requests
  orderlex batch prompts.txt --annotator openai --timeout 5m`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "", "write one JSON file per prompt to this directory")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	// Inherit flags from the interpret command
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the interpretation result cache")
	batchCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "persist cached results under this directory")
	batchCmd.Flags().StringVar(&annotatorProvider, "annotator", "prose", "linguistic annotator (prose, openai)")
	batchCmd.Flags().StringVar(&annotatorModel, "annotator-model", "gpt-4o-mini", "model name for the openai annotator")
	batchCmd.Flags().StringVar(&modelCodesPath, "model-codes", "", "model-code catalog YAML (default: built-in)")
	batchCmd.Flags().StringVar(&abbreviationsPath, "abbreviations", "", "abbreviation catalog YAML (default: built-in)")
	batchCmd.Flags().StringVar(&vocabularyPath, "vocabulary", "", "extra vocabulary word list (default: built-in)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Orderlex Batch Processing\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	if outputDir != "" {
		fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	}
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.Workers = concurrency
	cfg.Output.Pretty = false

	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	interpreter, err := pipeline.New(cfg)
	if err != nil {
		return fmt.Errorf("create interpreter: %w", err)
	}

	processor := worker.NewBatchProcessor(interpreter, concurrency)

	fmt.Fprintf(os.Stderr, "⚙️  Reading prompts from file...\n")
	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "✓ Interpreted %d prompts\n", len(results))
	fmt.Fprintf(os.Stderr, "\n")

	renderer := pipeline.NewRenderer(false)
	successCount := 0
	failureCount := 0

	for i, result := range results {
		if result.Err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Prompt, result.Err)
			continue
		}

		if result.Result.Message != "" {
			failureCount++
		} else {
			successCount++
		}

		if outputDir != "" {
			path := filepath.Join(outputDir, fmt.Sprintf("request-%04d.json", i+1))
			if err := renderer.RenderFile(result.Result, path); err != nil {
				fmt.Fprintf(os.Stderr, "✗ %s: failed to write JSON: %v\n", result.Prompt, err)
				continue
			}
		} else {
			if err := renderer.Render(os.Stdout, result.Result); err != nil {
				return fmt.Errorf("render result: %w", err)
			}
		}
	}

	// Summary
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:       %d prompts\n", len(results))
	fmt.Fprintf(os.Stderr, "  Interpreted: %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Rejected:    %d\n", failureCount)
	if outputDir != "" {
		fmt.Fprintf(os.Stderr, "  Output:      %s\n", outputDir)
	}
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}
