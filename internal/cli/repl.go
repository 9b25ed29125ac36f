package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/orderlex/orderlex/internal/pipeline"
	"github.com/spf13/cobra"
)

var replLoop bool

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interpret prompts interactively",
	Long: `Repl reads sales-order prompts from standard input and prints the
interpreted request body for each. By default it keeps asking until a
prompt interprets successfully, then exits; with --loop it keeps going
until EOF or an empty line.

Example:
  orderlex repl
  orderlex repl --loop`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().BoolVar(&replLoop, "loop", false, "keep reading prompts after a successful interpretation")

	// Inherit flags from the interpret command
	replCmd.Flags().BoolVar(&noCache, "no-cache", true, "disable the interpretation result cache")
	replCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "persist cached results under this directory")
	replCmd.Flags().StringVar(&annotatorProvider, "annotator", "prose", "linguistic annotator (prose, openai)")
	replCmd.Flags().StringVar(&annotatorModel, "annotator-model", "gpt-4o-mini", "model name for the openai annotator")
	replCmd.Flags().StringVar(&modelCodesPath, "model-codes", "", "model-code catalog YAML (default: built-in)")
	replCmd.Flags().StringVar(&abbreviationsPath, "abbreviations", "", "abbreviation catalog YAML (default: built-in)")
	replCmd.Flags().StringVar(&vocabularyPath, "vocabulary", "", "extra vocabulary word list (default: built-in)")
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	interpreter, err := pipeline.New(cfg)
	if err != nil {
		return fmt.Errorf("create interpreter: %w", err)
	}

	renderer := pipeline.NewRenderer(true)
	scanner := bufio.NewScanner(os.Stdin)
	ctx := context.Background()

	for {
		fmt.Print("Please enter the prompt for your request: ")
		if !scanner.Scan() {
			break
		}
		prompt := strings.TrimSpace(scanner.Text())
		if prompt == "" {
			break
		}

		result := interpreter.Interpret(ctx, prompt)
		if err := renderer.Render(os.Stdout, result); err != nil {
			return fmt.Errorf("render result: %w", err)
		}

		// A successful interpretation carries no message
		if result.Message == "" && !replLoop {
			break
		}
	}

	return scanner.Err()
}
