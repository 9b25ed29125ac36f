package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/orderlex/orderlex/internal/model"
)

func TestRenderer_Compact(t *testing.T) {
	r := NewRenderer(false)
	result := &model.Result{Records: []model.RequestRecord{
		{ModelCode: "21CF", BooleanFormula: "+S403A", Date: "2024-06-01"},
	}}

	var buf bytes.Buffer
	if err := r.Render(&buf, result); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	want := `{"modelCode":"21CF","booleanFormula":"+S403A","date":"2024-06-01"}` + "\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestRenderer_Pretty(t *testing.T) {
	r := NewRenderer(true)
	result := &model.Result{Message: "Prompt doesn't include a valid date, please check"}

	var buf bytes.Buffer
	if err := r.Render(&buf, result); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "\n  \"message\"") {
		t.Errorf("expected indented output, got %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("expected trailing newline")
	}
}

func TestRenderer_RenderFile(t *testing.T) {
	r := NewRenderer(false)
	result := &model.Result{Records: []model.RequestRecord{
		{ModelCode: "28FF", BooleanFormula: "-S403A", Date: "2025-03-31"},
	}}

	path := filepath.Join(t.TempDir(), "request.json")
	if err := r.RenderFile(result, path); err != nil {
		t.Fatalf("render file failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read rendered file: %v", err)
	}
	if !strings.Contains(string(data), `"modelCode":"28FF"`) {
		t.Errorf("unexpected file content: %s", data)
	}
}
