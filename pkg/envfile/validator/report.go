package validator

import (
	"fmt"
	"io"
)

// Reporter renders check results as human-readable diagnostic lines.
type Reporter struct {
	w io.Writer
}

// NewReporter creates a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Report writes one line per problem, or a confirmation line when the
// result is valid, followed by a summary.
func (r *Reporter) Report(res *Result) {
	if res.Valid {
		fmt.Fprintf(r.w, "✓ %s matches %s\n", res.Target, res.Reference)
		return
	}

	for _, p := range res.Problems {
		fmt.Fprintf(r.w, "✗ %s\n", p.Message)
	}

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, "Summary:")
	fmt.Fprintf(r.w, "  %d problem(s) found\n", len(res.Problems))
}
