package validator

import (
	"fmt"

	"envguard-hq/envguard/pkg/envfile/ast"
)

// ProblemKind categorizes a validation finding.
type ProblemKind string

const (
	ProblemDuplicateKey ProblemKind = "duplicate_key" // Key appears more than once in one file
	ProblemMissingKey   ProblemKind = "missing_key"   // Reference key absent from the target
	ProblemUnknownKey   ProblemKind = "unknown_key"   // Target key absent from the reference
)

// Problem is a single validation finding, already rendered to a
// human-readable message naming the offending file and key.
type Problem struct {
	File    string      `json:"file"`
	Kind    ProblemKind `json:"kind"`
	Key     string      `json:"key"`
	Message string      `json:"message"`
}

// Result aggregates every finding from checking one target file against its
// reference sample. All problems are collected, never just the first.
type Result struct {
	Target              string    `json:"target"`
	Reference           string    `json:"reference"`
	Valid               bool      `json:"valid"`
	TargetDuplicates    []string  `json:"target_duplicates,omitempty"`
	ReferenceDuplicates []string  `json:"reference_duplicates,omitempty"`
	Diff                Diff      `json:"-"`
	Problems            []Problem `json:"problems,omitempty"`
}

// Diagnostics returns the problem messages in report order.
func (r *Result) Diagnostics() []string {
	msgs := make([]string, len(r.Problems))
	for i, p := range r.Problems {
		msgs[i] = p.Message
	}
	return msgs
}

// Engine validates a target file against a reference sample file.
type Engine struct{}

// NewEngine creates a new validation engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Check runs duplicate detection on each side independently and a key-set
// comparison between the two sides. Values are ignored entirely. The result
// is valid only when neither side has duplicates and the key sets are
// identical.
func (e *Engine) Check(target, reference *ast.File) *Result {
	targetKeys := target.Keys()
	referenceKeys := reference.Keys()

	res := &Result{
		Target:              target.Name,
		Reference:           reference.Name,
		TargetDuplicates:    Duplicates(targetKeys),
		ReferenceDuplicates: Duplicates(referenceKeys),
		Diff:                Compare(targetKeys, referenceKeys),
	}

	for _, k := range res.TargetDuplicates {
		res.Problems = append(res.Problems, Problem{
			File:    target.Name,
			Kind:    ProblemDuplicateKey,
			Key:     k,
			Message: fmt.Sprintf("duplicate key %q in %s", k, target.Name),
		})
	}
	for _, k := range res.ReferenceDuplicates {
		res.Problems = append(res.Problems, Problem{
			File:    reference.Name,
			Kind:    ProblemDuplicateKey,
			Key:     k,
			Message: fmt.Sprintf("duplicate key %q in %s", k, reference.Name),
		})
	}
	for _, k := range res.Diff.Missing {
		res.Problems = append(res.Problems, Problem{
			File:    target.Name,
			Kind:    ProblemMissingKey,
			Key:     k,
			Message: fmt.Sprintf("missing key %q in %s (defined in %s)", k, target.Name, reference.Name),
		})
	}
	for _, k := range res.Diff.Extra {
		res.Problems = append(res.Problems, Problem{
			File:    target.Name,
			Kind:    ProblemUnknownKey,
			Key:     k,
			Message: fmt.Sprintf("unknown key %q in %s (not defined in %s)", k, target.Name, reference.Name),
		})
	}

	res.Valid = len(res.Problems) == 0
	return res
}
