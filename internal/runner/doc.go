// Package runner executes external tools (npm, git, ...) on behalf of the
// scaffolder. Commands either stream to the configured writers or run quietly
// with their output discarded.
package runner
