// Package cli parses command-line arguments for the lingua tool, validates
// user input, and handles process-level concerns like exit codes. It
// translates CLI flags into an operation request the main package executes.
package cli
