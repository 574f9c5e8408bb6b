// Package parser loads dotenv-style configuration files into ordered
// record sequences.
//
// The accepted format is line-oriented: each logical line is blank, a
// whole-line comment ("#" as the first non-blank character), or a KEY=VALUE
// assignment. Values may be quoted with single or double quotes, in which
// case they run until the next unescaped matching quote and may span
// several physical lines. Unquoted values end at the end of the line or at
// an unescaped "#" and are trimmed. A backslash shields exactly the next
// character from terminating a scan; no further escape decoding is
// performed (`\n` stays two characters).
//
// Basic usage:
//
//	p := parser.NewParser()
//	file, err := p.Parse(".env")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, rec := range file.Records {
//	    fmt.Printf("%s=%s (lines %d-%d)\n", rec.Key, rec.Value, rec.StartLine, rec.EndLine)
//	}
//
// The parser operates on a single immutable buffer with an integer cursor;
// it never copies text except to materialize a key or value. Loading aborts
// on the first failure with a typed *errors.Error carrying the exact line
// or line range.
package parser
