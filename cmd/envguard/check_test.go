package main

import (
	"testing"
)

func TestRunCheck(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		sample  string
		wantErr bool
	}{
		{
			name:   "matching files",
			target: "testdata/valid.env",
			sample: "testdata/sample.env",
		},
		{
			name:    "missing key",
			target:  "testdata/missing.env",
			sample:  "testdata/sample.env",
			wantErr: true,
		},
		{
			name:    "extra key",
			target:  "testdata/extra.env",
			sample:  "testdata/sample.env",
			wantErr: true,
		},
		{
			name:    "duplicate key with equal key sets",
			target:  "testdata/duplicate.env",
			sample:  "testdata/sample.env",
			wantErr: true,
		},
		{
			name:    "unterminated quote",
			target:  "testdata/unterminated.env",
			sample:  "testdata/sample.env",
			wantErr: true,
		},
		{
			name:    "nonexistent target",
			target:  "testdata/nope.env",
			sample:  "testdata/sample.env",
			wantErr: true,
		},
		{
			name:    "nonexistent sample",
			target:  "testdata/valid.env",
			sample:  "testdata/nope.env",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkFlags.format = "text"

			err := runCheck(nil, []string{tt.target, tt.sample})
			if (err != nil) != tt.wantErr {
				t.Errorf("runCheck(%q, %q) error = %v, wantErr %v",
					tt.target, tt.sample, err, tt.wantErr)
			}
		})
	}
}

func TestRunCheck_JSONFormat(t *testing.T) {
	checkFlags.format = "json"
	defer func() { checkFlags.format = "text" }()

	if err := runCheck(nil, []string{"testdata/valid.env", "testdata/sample.env"}); err != nil {
		t.Errorf("runCheck() with JSON format returned error: %v", err)
	}
}

func TestExecuteCheck(t *testing.T) {
	result, err := executeCheck("testdata/extra.env", "testdata/sample.env")
	if err != nil {
		t.Fatalf("executeCheck() failed: %v", err)
	}
	if result.Valid {
		t.Error("Valid = true, want false")
	}
	if len(result.Diff.Extra) != 1 || result.Diff.Extra[0] != "C" {
		t.Errorf("Diff.Extra = %v, want [C]", result.Diff.Extra)
	}
	if len(result.Diff.Missing) != 0 {
		t.Errorf("Diff.Missing = %v, want empty", result.Diff.Missing)
	}
}

func TestExecuteCheck_ParseError(t *testing.T) {
	_, err := executeCheck("testdata/unterminated.env", "testdata/sample.env")
	if err == nil {
		t.Fatal("executeCheck() with unterminated quote succeeded, want error")
	}
}
