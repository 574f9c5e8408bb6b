package history

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Run is one recorded check execution.
type Run struct {
	// ID uniquely identifies the run.
	ID string `json:"id"`

	// Target is the validated file.
	Target string `json:"target"`

	// Reference is the sample file the target was validated against.
	Reference string `json:"reference"`

	// Valid reports whether the check passed.
	Valid bool `json:"valid"`

	// Problems holds the diagnostic messages of a failed check.
	Problems []string `json:"problems,omitempty"`

	// CreatedAt is when the check completed (UTC).
	CreatedAt time.Time `json:"created_at"`
}

// NewRun builds a Run with a fresh ID and the current timestamp.
func NewRun(target, reference string, valid bool, problems []string) *Run {
	return &Run{
		ID:        uuid.NewString(),
		Target:    target,
		Reference: reference,
		Valid:     valid,
		Problems:  problems,
		CreatedAt: time.Now().UTC(),
	}
}

// Store persists check runs.
type Store interface {
	// Save records a completed run.
	Save(ctx context.Context, run *Run) error

	// Recent returns up to limit runs, newest first.
	Recent(ctx context.Context, limit int) ([]*Run, error)

	// Close releases any resources held by the store.
	Close() error
}
