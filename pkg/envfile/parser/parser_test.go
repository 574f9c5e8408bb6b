package parser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"envguard-hq/envguard/pkg/envfile/ast"
	enverrors "envguard-hq/envguard/pkg/envfile/errors"
)

func TestParser_ParseBytes_SingleRecord(t *testing.T) {
	file, err := NewParser().ParseBytes([]byte("KEY=value\n"), "test.env")
	if err != nil {
		t.Fatalf("ParseBytes() failed: %v", err)
	}

	if len(file.Records) != 1 {
		t.Fatalf("len(Records) = %d, want 1", len(file.Records))
	}
	rec := file.Records[0]
	if rec.Key != "KEY" {
		t.Errorf("Key = %q, want %q", rec.Key, "KEY")
	}
	if rec.Value != "value" {
		t.Errorf("Value = %q, want %q", rec.Value, "value")
	}
	if rec.StartLine != 1 || rec.EndLine != 1 {
		t.Errorf("span = %d-%d, want 1-1", rec.StartLine, rec.EndLine)
	}
}

func TestParser_ParseBytes_Records(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []ast.Record
	}{
		{
			name:  "unquoted value is trimmed",
			input: "A=  spaced out  \n",
			want:  []ast.Record{{Key: "A", Value: "spaced out", StartLine: 1, EndLine: 1}},
		},
		{
			name:  "key is trimmed",
			input: "  A  = 1\n",
			want:  []ast.Record{{Key: "A", Value: "1", StartLine: 1, EndLine: 1}},
		},
		{
			name:  "inline comment stripped from unquoted value",
			input: "A=hello # greeting\n",
			want:  []ast.Record{{Key: "A", Value: "hello", StartLine: 1, EndLine: 1}},
		},
		{
			name:  "escaped hash stays in the value",
			input: `A=hello \# kept` + "\n",
			want:  []ast.Record{{Key: "A", Value: `hello \# kept`, StartLine: 1, EndLine: 1}},
		},
		{
			name:  "blank lines and comments are skipped",
			input: "\n# header\nA=1\n\n   # indented comment\nB=2\n",
			want: []ast.Record{
				{Key: "A", Value: "1", StartLine: 3, EndLine: 3},
				{Key: "B", Value: "2", StartLine: 6, EndLine: 6},
			},
		},
		{
			name:  "double quoted value",
			input: "A=\"hello world\"\n",
			want:  []ast.Record{{Key: "A", Value: "hello world", StartLine: 1, EndLine: 1}},
		},
		{
			name:  "single quoted value",
			input: "A='hello'\n",
			want:  []ast.Record{{Key: "A", Value: "hello", StartLine: 1, EndLine: 1}},
		},
		{
			name:  "quoted value keeps interior whitespace and hash",
			input: "A=\" # not a comment \"\n",
			want:  []ast.Record{{Key: "A", Value: " # not a comment ", StartLine: 1, EndLine: 1}},
		},
		{
			name:  "multi-line quoted value",
			input: "A=\"line1\nline2\"\nB=2\n",
			want: []ast.Record{
				{Key: "A", Value: "line1\nline2", StartLine: 1, EndLine: 2},
				{Key: "B", Value: "2", StartLine: 3, EndLine: 3},
			},
		},
		{
			name:  "trailing garbage after closing quote is dropped",
			input: "A=\"v\" trailing junk\nB=2\n",
			want: []ast.Record{
				{Key: "A", Value: "v", StartLine: 1, EndLine: 1},
				{Key: "B", Value: "2", StartLine: 2, EndLine: 2},
			},
		},
		{
			name:  "escaped quote does not close the value",
			input: `A="a\"b"` + "\n",
			want:  []ast.Record{{Key: "A", Value: `a\"b`, StartLine: 1, EndLine: 1}},
		},
		{
			name:  "empty value",
			input: "A=\nB=2\n",
			want: []ast.Record{
				{Key: "A", Value: "", StartLine: 1, EndLine: 1},
				{Key: "B", Value: "2", StartLine: 2, EndLine: 2},
			},
		},
		{
			name:  "no trailing newline",
			input: "A=1",
			want:  []ast.Record{{Key: "A", Value: "1", StartLine: 1, EndLine: 1}},
		},
		{
			name:  "escaped newline in key advances the line counter",
			input: "A\\\nB=1\nC=2\n",
			want: []ast.Record{
				{Key: "A\\\nB", Value: "1", StartLine: 1, EndLine: 2},
				{Key: "C", Value: "2", StartLine: 3, EndLine: 3},
			},
		},
		{
			name:  "duplicate keys are preserved in order",
			input: "A=1\nA=2\n",
			want: []ast.Record{
				{Key: "A", Value: "1", StartLine: 1, EndLine: 1},
				{Key: "A", Value: "2", StartLine: 2, EndLine: 2},
			},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "only comments and blanks",
			input: "# one\n\n# two\n",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := NewParser().ParseBytes([]byte(tt.input), "test.env")
			if err != nil {
				t.Fatalf("ParseBytes() failed: %v", err)
			}
			if len(file.Records) != len(tt.want) {
				t.Fatalf("len(Records) = %d, want %d\nrecords: %+v",
					len(file.Records), len(tt.want), file.Records)
			}
			for i, want := range tt.want {
				got := file.Records[i]
				if got != want {
					t.Errorf("Records[%d] = %+v, want %+v", i, got, want)
				}
			}
		})
	}
}

func TestParser_ParseBytes_Errors(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantType      enverrors.ErrorType
		wantStartLine int
		wantEndLine   int
	}{
		{
			name:          "missing separator",
			input:         "A=1\njust a line\n",
			wantType:      enverrors.ErrorTypeMissingSeparator,
			wantStartLine: 2,
			wantEndLine:   2,
		},
		{
			name:          "missing separator with escaped equals only",
			input:         `A\=B` + "\n",
			wantType:      enverrors.ErrorTypeMissingSeparator,
			wantStartLine: 1,
			wantEndLine:   1,
		},
		{
			name:          "empty key",
			input:         "=value\n",
			wantType:      enverrors.ErrorTypeEmptyKey,
			wantStartLine: 1,
			wantEndLine:   1,
		},
		{
			name:          "whitespace-only key",
			input:         "A=1\n   = 2\n",
			wantType:      enverrors.ErrorTypeEmptyKey,
			wantStartLine: 2,
			wantEndLine:   2,
		},
		{
			name:          "unterminated quote",
			input:         "A=\"unterminated\n",
			wantType:      enverrors.ErrorTypeUnterminatedQuote,
			wantStartLine: 1,
			wantEndLine:   2,
		},
		{
			name:          "unterminated quote spanning several lines",
			input:         "A=1\nB='open\nmore\nstill open",
			wantType:      enverrors.ErrorTypeUnterminatedQuote,
			wantStartLine: 2,
			wantEndLine:   4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser().ParseBytes([]byte(tt.input), "test.env")
			if err == nil {
				t.Fatal("ParseBytes() succeeded, want error")
			}

			var envErr *enverrors.Error
			if !errors.As(err, &envErr) {
				t.Fatalf("error type = %T, want *errors.Error", err)
			}
			if envErr.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", envErr.Type, tt.wantType)
			}
			if envErr.Span.StartLine != tt.wantStartLine {
				t.Errorf("Span.StartLine = %d, want %d", envErr.Span.StartLine, tt.wantStartLine)
			}
			if envErr.Span.EndLine != tt.wantEndLine {
				t.Errorf("Span.EndLine = %d, want %d", envErr.Span.EndLine, tt.wantEndLine)
			}
			if envErr.Span.File != "test.env" {
				t.Errorf("Span.File = %q, want %q", envErr.Span.File, "test.env")
			}
		})
	}
}

// Parsing must terminate for arbitrary input: every step either emits a
// record, consumes input, or fails.
func TestParser_ParseBytes_AlwaysTerminates(t *testing.T) {
	inputs := []string{
		"",
		"\n\n\n",
		"=\n=\n",
		"####",
		"A=1\nB=2\nC=3\n",
		"\\",
		"\\\n",
		"A=\"\\\"\n",
		" \t \n \t ",
		"====",
		"A==1\n",
		"#\n#\n#",
	}

	for _, input := range inputs {
		// Either outcome is fine; the call just must return.
		_, _ = NewParser().ParseBytes([]byte(input), "fuzz.env")
	}
}

func TestParser_Parse_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.env")
	if err := os.WriteFile(path, []byte("A=1\nB=2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	file, err := NewParser().Parse(path)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if file.Name != path {
		t.Errorf("Name = %q, want %q", file.Name, path)
	}
	if len(file.Records) != 2 {
		t.Errorf("len(Records) = %d, want 2", len(file.Records))
	}
}

func TestParser_Parse_MissingFile(t *testing.T) {
	_, err := NewParser().Parse(filepath.Join(t.TempDir(), "nope.env"))
	if err == nil {
		t.Fatal("Parse() succeeded, want error")
	}

	var envErr *enverrors.Error
	if !errors.As(err, &envErr) {
		t.Fatalf("error type = %T, want *errors.Error", err)
	}
	if envErr.Type != enverrors.ErrorTypeIO {
		t.Errorf("Type = %q, want %q", envErr.Type, enverrors.ErrorTypeIO)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("error does not unwrap to os.ErrNotExist")
	}
}
