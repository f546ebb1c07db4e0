package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jacoelho/jv"
)

func TestRunProducesValidDocuments(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	code := run([]string{"jvgen", "-count", "3", "-seed", "7", "-compact"}, &out, &bytes.Buffer{})
	if code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(lines))
	}
	for i, line := range lines {
		if _, err := jv.ParseString(line); err != nil {
			t.Errorf("document %d does not parse: %v", i, err)
		}
	}
}

func TestRunIsDeterministic(t *testing.T) {
	t.Parallel()

	var first, second bytes.Buffer
	run([]string{"jvgen", "-count", "2", "-seed", "42"}, &first, &bytes.Buffer{})
	run([]string{"jvgen", "-count", "2", "-seed", "42"}, &second, &bytes.Buffer{})

	if first.String() != second.String() {
		t.Fatal("same seed produced different output")
	}
}

func TestRunRejectsInvalidFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"zero count", []string{"jvgen", "-count", "0"}},
		{"zero depth", []string{"jvgen", "-depth", "0"}},
		{"unknown flag", []string{"jvgen", "-bogus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := run(tt.args, &bytes.Buffer{}, &bytes.Buffer{}); code != 2 {
				t.Fatalf("run(%v) = %d, want 2", tt.args, code)
			}
		})
	}
}
