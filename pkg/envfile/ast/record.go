package ast

// Record is one parsed KEY=VALUE entry together with the physical lines it
// occupies in the source file. A quoted value may span several lines, so
// EndLine can exceed StartLine.
type Record struct {
	Key       string // Trimmed key text; never empty
	Value     string // Decoded value (comment-stripped and trimmed when unquoted)
	StartLine int    // Line the entry starts on (1-based)
	EndLine   int    // Line the value ends on (1-based, >= StartLine)
}

// Span returns the source span of the record within file.
func (r Record) Span(file string) Span {
	return Span{File: file, StartLine: r.StartLine, EndLine: r.EndLine}
}

// File is the ordered sequence of records loaded from one source file.
// Duplicate keys are preserved in file order; deduplication is an analysis
// step, not a loading concern.
type File struct {
	Name    string   // Display name (usually the path)
	Records []Record // Records in file order
}

// Keys returns the record keys in file order, duplicates included.
func (f *File) Keys() []string {
	keys := make([]string, len(f.Records))
	for i, r := range f.Records {
		keys[i] = r.Key
	}
	return keys
}

// Lookup returns the first record with the given key.
func (f *File) Lookup(key string) (Record, bool) {
	for _, r := range f.Records {
		if r.Key == key {
			return r, true
		}
	}
	return Record{}, false
}
