package main

import (
	"strings"
	"testing"
)

func TestRunLint(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		wantErr bool
	}{
		{
			name: "clean file",
			file: "testdata/valid.env",
		},
		{
			name:    "duplicate keys",
			file:    "testdata/duplicate.env",
			wantErr: true,
		},
		{
			name:    "parse error",
			file:    "testdata/unterminated.env",
			wantErr: true,
		},
		{
			name:    "nonexistent file",
			file:    "testdata/nope.env",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lintFlags.format = "text"

			err := runLint(nil, []string{tt.file})
			if (err != nil) != tt.wantErr {
				t.Errorf("runLint(%q) error = %v, wantErr %v", tt.file, err, tt.wantErr)
			}
		})
	}
}

func TestLintFile(t *testing.T) {
	result := lintFile("testdata/duplicate.env")
	if result.Valid {
		t.Error("Valid = true, want false")
	}
	if len(result.Problems) != 1 {
		t.Fatalf("len(Problems) = %d, want 1", len(result.Problems))
	}
	if !strings.Contains(result.Problems[0], `duplicate key "A"`) {
		t.Errorf("Problems[0] = %q, want it to name the duplicated key", result.Problems[0])
	}
}

func TestLintFile_UnterminatedQuoteNamesStartLine(t *testing.T) {
	result := lintFile("testdata/unterminated.env")
	if result.Valid {
		t.Fatal("Valid = true, want false")
	}
	if len(result.Problems) != 1 {
		t.Fatalf("len(Problems) = %d, want 1", len(result.Problems))
	}
	if !strings.Contains(result.Problems[0], "line 1") {
		t.Errorf("Problems[0] = %q, want it to name the opening line", result.Problems[0])
	}
}
