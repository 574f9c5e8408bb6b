// Package watch implements continuous validation: a debounced file watcher
// that re-runs the check when the target or sample file changes, an
// optional cron scheduler for periodic re-checks, and Prometheus counters
// exposed while watching. Checks are always executed one at a time.
package watch
