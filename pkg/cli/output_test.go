package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := Output(map[string]any{"name": "docs", "dimension": 1536}, OutputOptions{
		Format: FormatJSON,
		Writer: &buf,
	})
	if err != nil {
		t.Fatalf("Output: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got["name"] != "docs" {
		t.Errorf("name = %v, want docs", got["name"])
	}
}

func TestOutput_YAMLDefault(t *testing.T) {
	var buf bytes.Buffer
	err := Output(map[string]string{"metric": "cosine"}, OutputOptions{
		Writer: &buf,
	})
	if err != nil {
		t.Fatalf("Output: %v", err)
	}

	if !strings.Contains(buf.String(), "metric: cosine") {
		t.Errorf("yaml output = %q, want metric: cosine", buf.String())
	}
}

func TestOutput_Raw(t *testing.T) {
	var buf bytes.Buffer
	err := Output("plain text", OutputOptions{
		Format: FormatRaw,
		Writer: &buf,
	})
	if err != nil {
		t.Fatalf("Output: %v", err)
	}
	if buf.String() != "plain text" {
		t.Errorf("raw output = %q", buf.String())
	}
}

func TestOutput_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Output("x", OutputOptions{Format: "xml", Writer: &buf})
	if err == nil {
		t.Error("expected error for unsupported format")
	}
}
