package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/orderlex/orderlex/internal/model"
)

// Interpreter is the prompt interpretation seam the batch processor
// drives. Satisfied by pipeline.Interpreter.
type Interpreter interface {
	Interpret(ctx context.Context, text string) *model.Result
}

// InterpretJob interprets one prompt.
type InterpretJob struct {
	Prompt      string
	Interpreter Interpreter
}

// Execute runs the interpretation. Interpret never errors for prompt
// problems, so GetError only reports infrastructure faults (none today).
func (j *InterpretJob) Execute(ctx context.Context) Result {
	return &InterpretResult{
		Prompt: j.Prompt,
		Result: j.Interpreter.Interpret(ctx, j.Prompt),
	}
}

// InterpretResult pairs a prompt with its interpretation.
type InterpretResult struct {
	Prompt string
	Result *model.Result
	Err    error
}

// GetError returns the infrastructure error, if any.
func (r *InterpretResult) GetError() error {
	return r.Err
}

// BatchProcessor interprets many prompts concurrently.
type BatchProcessor struct {
	interpreter Interpreter
	concurrency int
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(interpreter Interpreter, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		interpreter: interpreter,
		concurrency: concurrency,
	}
}

// ProcessPrompts interprets the prompts on the pool and returns one
// result per prompt, in completion order.
func (b *BatchProcessor) ProcessPrompts(ctx context.Context, prompts []string) []*InterpretResult {
	if len(prompts) == 0 {
		return []*InterpretResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, prompt := range prompts {
		pool.Submit(&InterpretJob{
			Prompt:      prompt,
			Interpreter: b.interpreter,
		})
	}

	results := pool.Wait()

	out := make([]*InterpretResult, len(results))
	for i, result := range results {
		out[i] = result.(*InterpretResult)
	}
	return out
}

// ProcessFile reads prompts from a file and interprets them.
func (b *BatchProcessor) ProcessFile(ctx context.Context, path string) ([]*InterpretResult, error) {
	prompts, err := ReadPromptsFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prompts: %w", err)
	}
	return b.ProcessPrompts(ctx, prompts), nil
}

// ReadPromptsFromFile reads one prompt per line, skipping blanks,
// # comments and duplicates.
func ReadPromptsFromFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var prompts []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			prompts = append(prompts, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return prompts, nil
}
