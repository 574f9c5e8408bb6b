// Package ast defines the data model produced by parsing a dotenv-style
// file: ordered records with their source line spans.
package ast
