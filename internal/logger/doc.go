// Package logger is a thin wrapper over log/slog. Records go to a JSON log
// file under the user's config directory; until Init is called every record
// is discarded so library code and tests never touch the filesystem.
package logger
