package parser

import "strings"

// scanScope bounds an escape-aware scan.
type scanScope int

const (
	// scopeLine stops the scan at the current line's newline.
	scopeLine scanScope = iota
	// scopeBuffer scans across newlines to the end of the buffer.
	scopeBuffer
)

// cursor is a position and 1-based line counter over an immutable buffer.
// It borrows the buffer rather than copying it; every consume operation
// advances the offset, never duplicates text. The offset is monotonically
// non-decreasing for the lifetime of a parse.
type cursor struct {
	buf  string
	pos  int
	line int
}

func newCursor(buf string) *cursor {
	return &cursor{buf: buf, line: 1}
}

// atEnd reports whether the cursor has reached the end of the buffer.
func (c *cursor) atEnd() bool {
	return c.pos >= len(c.buf)
}

// peek returns the byte at the current position without consuming it.
func (c *cursor) peek() (byte, bool) {
	if c.atEnd() {
		return 0, false
	}
	return c.buf[c.pos], true
}

// skipSpaces advances past horizontal whitespace (space and tab only).
// It never crosses a newline.
func (c *cursor) skipSpaces() {
	for c.pos < len(c.buf) && (c.buf[c.pos] == ' ' || c.buf[c.pos] == '\t') {
		c.pos++
	}
}

// skipNewline consumes exactly one newline and increments the line counter.
// It reports false if the current character is not a newline.
func (c *cursor) skipNewline() bool {
	if c.atEnd() || c.buf[c.pos] != '\n' {
		return false
	}
	c.pos++
	c.line++
	return true
}

// findUnquoted scans forward from the current position for the next
// occurrence of ch that is not shielded by a backslash. A backslash always
// consumes the character after it, so the shielded character can never
// match or terminate the scan. With scopeLine the scan fails upon reaching
// an unescaped newline; with scopeBuffer newlines are crossed and counted.
// offset is the absolute buffer offset of the match; newlines is the number
// of physical newlines crossed before it (escaped newlines included).
func (c *cursor) findUnquoted(ch byte, scope scanScope) (offset, newlines int, found bool) {
	i := c.pos
	for i < len(c.buf) {
		b := c.buf[i]
		switch {
		case b == '\\':
			if i+1 < len(c.buf) && c.buf[i+1] == '\n' {
				newlines++
			}
			i += 2
		case b == ch:
			return i, newlines, true
		case b == '\n':
			if scope == scopeLine {
				return 0, newlines, false
			}
			newlines++
			i++
		default:
			i++
		}
	}
	return 0, newlines, false
}

// consumeLine returns the text from the current position up to (not
// including) the next newline, or to the end of the buffer if none remains.
// The cursor advances past the newline when present (line counter +1).
// With stripComment set, the returned text is truncated at the first
// unescaped "#" on the line; the cursor still advances past the full line.
func (c *cursor) consumeLine(stripComment bool) string {
	start := c.pos
	end := len(c.buf)
	if nl := strings.IndexByte(c.buf[c.pos:], '\n'); nl >= 0 {
		end = c.pos + nl
	}
	text := c.buf[start:end]
	if stripComment {
		if h := indexUnquoted(text, '#'); h >= 0 {
			text = text[:h]
		}
	}
	if end < len(c.buf) {
		c.pos = end + 1
		c.line++
	} else {
		c.pos = end
	}
	return text
}

// indexUnquoted returns the index of the first occurrence of ch in s that
// is not shielded by a backslash, or -1. s must not contain newlines.
func indexUnquoted(s string, ch byte) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case ch:
			return i
		}
	}
	return -1
}
