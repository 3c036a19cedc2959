// Package cli is responsible for parsing command-line arguments, validating
// them, and handling process-level concerns like exit codes. It translates
// CLI flags and the optional settings file into the application's config.
package cli
