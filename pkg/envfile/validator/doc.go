// Package validator analyzes loaded record sequences: duplicate-key
// detection within one file and key-set comparison between a target file
// and its reference sample. Values are never compared; only key identity
// matters.
package validator
