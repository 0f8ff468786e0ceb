package app

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/LorenzoMascia/nl2go/internal/catalog"
	"github.com/LorenzoMascia/nl2go/internal/interp"
)

func testInterpreter(t *testing.T) *interp.Interpreter {
	t.Helper()

	in := interp.New()
	n := in.LoadCatalogs([]catalog.Descriptor{
		{
			Name: "StorageModule",
			Methods: []catalog.Method{
				{
					Name:        "bucket_create",
					Description: "Create a new storage bucket",
					Examples: []catalog.Example{
						{Text: "create bucket {{name}}", Code: "bucket_create(name='{{name}}')"},
					},
				},
			},
		},
	})
	if n == 0 {
		t.Fatal("test catalog loaded no entries")
	}
	return in
}

func TestGenerateScript(t *testing.T) {
	in := testInterpreter(t)
	cfg := Config{Threshold: 0.1, TopK: 1, Comments: true, Quiet: true}

	instructions := []string{
		"# deployment plan",
		"",
		"create bucket mydata",
		"recalibrate the flux capacitor",
	}

	script := GenerateScript(context.Background(), in, nil, instructions, cfg)

	if !strings.HasPrefix(script, "# Generated by nl2go\n# 4 input lines\n") {
		t.Errorf("script header missing:\n%s", script)
	}
	if !strings.Contains(script, "# deployment plan\n") {
		t.Error("comment line did not pass through")
	}
	if !strings.Contains(script, "bucket_create(name='mydata')\n") {
		t.Errorf("generated call missing:\n%s", script)
	}
	if !strings.Contains(script, "# Line 3: create bucket mydata\n") {
		t.Errorf("source comment missing:\n%s", script)
	}
	if !strings.Contains(script, "# Matched: create bucket {{name}}") {
		t.Errorf("match comment missing:\n%s", script)
	}
	if !strings.Contains(script, "# Line 4: recalibrate the flux capacitor\n# WARNING: no matching method found\n") {
		t.Errorf("warning stanza missing:\n%s", script)
	}
}

func TestGenerateScriptNoComments(t *testing.T) {
	in := testInterpreter(t)
	cfg := Config{Threshold: 0.1, TopK: 1, Comments: false, Quiet: true}

	script := GenerateScript(context.Background(), in, nil, []string{"create bucket logs"}, cfg)

	if strings.Contains(script, "# Matched:") || strings.Contains(script, "# Line 1:") {
		t.Errorf("annotations present despite Comments=false:\n%s", script)
	}
	if !strings.Contains(script, "bucket_create(name='logs')\n") {
		t.Errorf("generated call missing:\n%s", script)
	}
}

func TestProcessLines(t *testing.T) {
	in := testInterpreter(t)

	lines := []string{
		"create bucket alpha",
		"",
		"# a comment",
		"recalibrate the flux capacitor",
	}

	results := ProcessLines(in, lines, 0.1)
	if len(results) != len(lines) {
		t.Fatalf("ProcessLines() returned %d results for %d lines", len(results), len(lines))
	}

	if results[0] == nil || results[0].Method != "bucket_create" {
		t.Errorf("results[0] = %+v, want bucket_create match", results[0])
	}
	if results[0] != nil && results[0].GeneratedCode != "bucket_create(name='alpha')" {
		t.Errorf("GeneratedCode = %q", results[0].GeneratedCode)
	}
	for i := 1; i < len(results); i++ {
		if results[i] != nil {
			t.Errorf("results[%d] = %+v, want nil", i, results[i])
		}
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"two sentences", "Create a bucket named data. Then start the instance.", 2},
		{"single sentence", "create bucket mydata", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitSentences(tt.text)
			if len(got) != tt.want {
				t.Errorf("splitSentences(%q) = %d sentences %v, want %d", tt.text, len(got), got, tt.want)
			}
			for _, s := range got {
				if strings.TrimSpace(s) == "" {
					t.Errorf("empty sentence in %v", got)
				}
			}
		})
	}
}

func TestCollectInstructionsFromFile(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/input.txt"
	content := "create bucket one\n# keep me\n\ncreate bucket two\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	instructions, err := collectInstructions([]string{path}, false)
	if err != nil {
		t.Fatalf("collectInstructions() error: %v", err)
	}

	want := []string{"create bucket one", "# keep me", "", "create bucket two", ""}
	if len(instructions) != len(want) {
		t.Fatalf("got %d instructions %v, want %d", len(instructions), instructions, len(want))
	}
	for i := range want {
		if instructions[i] != want[i] {
			t.Errorf("instruction %d = %q, want %q", i, instructions[i], want[i])
		}
	}
}

func TestCollectInstructionsMissingFile(t *testing.T) {
	if _, err := collectInstructions([]string{"/nonexistent/input.txt"}, false); err == nil {
		t.Error("collectInstructions() on a missing file: expected error")
	}
}
