package parser

import (
	"strings"

	enverrors "envguard-hq/envguard/pkg/envfile/errors"
)

// decodeValue consumes one value token starting at the cursor's current
// position, which must be the first non-blank character after "=". It
// returns the decoded text and the 1-based line the value ends on. The
// cursor is always left past the trailing newline of the value's last
// physical line (or at end of buffer).
func decodeValue(c *cursor, file string) (string, int, error) {
	b, ok := c.peek()
	if !ok {
		// "KEY=" at end of buffer: the value is empty.
		return "", c.line, nil
	}
	if b == '\'' || b == '"' {
		return decodeQuoted(c, file, b)
	}
	return decodeUnquoted(c)
}

// decodeQuoted consumes a value delimited by matching quotes. The raw text
// between the quotes becomes the value, embedded newlines included; no
// interior unescaping is performed. Anything between the closing quote and
// the end of that line is discarded without validation.
func decodeQuoted(c *cursor, file string, quote byte) (string, int, error) {
	startLine := c.line
	c.pos++ // opening quote

	off, newlines, found := c.findUnquoted(quote, scopeBuffer)
	if !found {
		// The scan reached end of buffer; report the full span it covered.
		return "", 0, enverrors.NewUnterminatedQuote(file, startLine, startLine+newlines)
	}

	value := c.buf[c.pos:off]
	c.pos = off + 1
	c.line += newlines
	endLine := c.line

	c.consumeLine(true) // trailing text after the closing quote is dropped

	return value, endLine, nil
}

// decodeUnquoted consumes a value running to end of line or to an unescaped
// "#", then trims surrounding whitespace.
func decodeUnquoted(c *cursor) (string, int, error) {
	endLine := c.line
	text := c.consumeLine(true)
	return strings.TrimSpace(text), endLine, nil
}
