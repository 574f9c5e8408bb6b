package parser

import (
	"os"
	"strings"

	"envguard-hq/envguard/pkg/envfile/ast"
	enverrors "envguard-hq/envguard/pkg/envfile/errors"
)

// Parser loads dotenv-style files into ordered record sequences.
// The zero value is usable; NewParser is provided for symmetry with the
// rest of the API.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads the file at path and parses it. The whole file is read into
// memory before parsing begins; there is no streaming mode.
func (p *Parser) Parse(path string) (*ast.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, enverrors.NewIO(path, err)
	}
	return p.ParseBytes(data, path)
}

// ParseBytes parses in-memory data. name is used in diagnostics only.
// The first failure aborts the whole load; no partial record sequence is
// returned.
func (p *Parser) ParseBytes(data []byte, name string) (*ast.File, error) {
	c := newCursor(string(data))
	file := &ast.File{Name: name}

	for {
		before := c.pos
		rec, done, err := nextRecord(c, name)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		if rec != nil {
			file.Records = append(file.Records, *rec)
		}
		// A step that consumed nothing would loop forever. That cannot
		// happen for any input, well-formed or not; treat it as a defect.
		if c.pos == before {
			return nil, enverrors.NewInternal(name, c.line, "parser made no progress")
		}
	}

	return file, nil
}

// nextRecord consumes one logical line. A blank line or whole-line comment
// yields no record (rec == nil); end of buffer yields done == true; a
// KEY=VALUE line yields one record, whose value may cover several physical
// lines when quoted.
func nextRecord(c *cursor, file string) (rec *ast.Record, done bool, err error) {
	c.skipSpaces()

	b, ok := c.peek()
	if !ok {
		return nil, true, nil
	}
	if b == '\n' {
		c.skipNewline()
		return nil, false, nil
	}
	if b == '#' {
		c.consumeLine(false)
		return nil, false, nil
	}

	startLine := c.line

	eq, newlines, found := c.findUnquoted('=', scopeLine)
	if !found {
		return nil, false, enverrors.NewMissingSeparator(file, startLine)
	}
	key := strings.TrimSpace(c.buf[c.pos:eq])
	if key == "" {
		return nil, false, enverrors.NewEmptyKey(file, startLine)
	}

	c.pos = eq + 1
	// Escaped newlines crossed while scanning for "=" are physical lines;
	// the line counter must account for them or every later span drifts.
	c.line += newlines
	c.skipSpaces()

	value, endLine, err := decodeValue(c, file)
	if err != nil {
		return nil, false, err
	}

	return &ast.Record{
		Key:       key,
		Value:     value,
		StartLine: startLine,
		EndLine:   endLine,
	}, false, nil
}
