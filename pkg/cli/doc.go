// Package cli provides shared helpers for the envguard command line:
// typed error wrappers that classify command failures for consistent exit
// behavior and messages.
package cli
