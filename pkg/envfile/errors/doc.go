// Package errors defines the typed failures produced while loading a
// dotenv-style file. Every error carries the source span it refers to so
// callers can report exact lines, and a stable ErrorType so callers can
// match on the specific condition instead of a generic error.
package errors
