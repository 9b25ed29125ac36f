package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/orderlex/orderlex/internal/model"
)

// Renderer writes interpretation results as JSON.
type Renderer struct {
	pretty bool
}

// NewRenderer creates a renderer. pretty indents the output for humans;
// batch outputs typically stay compact.
func NewRenderer(pretty bool) *Renderer {
	return &Renderer{pretty: pretty}
}

// Render writes the result to w, followed by a newline.
func (r *Renderer) Render(w io.Writer, result *model.Result) error {
	var (
		data []byte
		err  error
	)
	if r.pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

// RenderFile writes the result to a file.
func (r *Renderer) RenderFile(result *model.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return r.Render(f, result)
}
