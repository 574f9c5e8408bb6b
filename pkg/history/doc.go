// Package history records completed check runs so past results can be
// inspected later (envguard history). Two Store implementations are
// provided: a durable SQLite-backed store and an in-memory store used in
// tests and ephemeral setups.
package history
