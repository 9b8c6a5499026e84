// Package cli defines the Cobra command tree for the panda-react CLI. The
// root command runs the interactive create flow; version, config and doctor
// are registered from their own files. Commands delegate to internal
// packages and only handle I/O and user interaction.
package cli
