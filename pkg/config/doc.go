// Package config loads and validates envguard's tool configuration.
//
// Configuration is read from a YAML file, filled in with defaults, then
// optionally overridden by ENVGUARD_* environment variables. Environment
// variables always take precedence over file values.
//
//	files:
//	  target: .env
//	  sample: .env.sample
//	history:
//	  enabled: true
//	  path: .envguard/history.db
//	watch:
//	  debounce: 100ms
//	  schedule: "0 * * * *"
//	  metrics_address: ":9090"
//	logging:
//	  level: info
//	  format: text
package config
