// Envguard validates dotenv-style configuration files against a reference
// sample: every key the sample defines must be present, no unknown keys, no
// duplicates. Values are never compared, so secrets stay out of scope.
//
// Usage:
//
//	# Validate .env against .env.sample (defaults)
//	envguard check
//
//	# Validate explicit files
//	envguard check deploy/.env deploy/.env.example
//
//	# Parse a single file and report duplicates
//	envguard lint .env
//
//	# Re-validate on every change
//	envguard watch --metrics-address :9090
//
//	# Show recorded check runs
//	envguard history --limit 20
package main

func main() {
	Execute()
}
